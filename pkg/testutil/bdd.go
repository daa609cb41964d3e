package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Given and Then name nested subtests so HTTP scenarios read as sentences in
// test output.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}

// WhenRequesting runs a "When requesting <path>" subtest that sends a GET for
// path to handler and hands the recorded response to fn.
func WhenRequesting(t *testing.T, handler http.Handler, path string, fn func(t *testing.T, rr *httptest.ResponseRecorder)) {
	t.Helper()
	t.Run("When requesting "+path, func(t *testing.T) {
		fn(t, DoRequest(handler, httptest.NewRequest(http.MethodGet, path, nil)))
	})
}

// WhenServing runs a "When <desc>" subtest that serves req with handler.
func WhenServing(t *testing.T, desc string, handler http.Handler, req *http.Request, fn func(t *testing.T, rr *httptest.ResponseRecorder)) {
	t.Helper()
	t.Run("When "+desc, func(t *testing.T) {
		fn(t, DoRequest(handler, req))
	})
}

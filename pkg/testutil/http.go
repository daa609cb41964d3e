// Package testutil provides helpers for the cikhttp tests and the integration
// suites.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// UnmarshalResponse decodes a 200 JSON response body into T.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, "unexpected status code: %s", rr.Body.String())
	var result T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result), "failed to unmarshal response")
	return &result
}

// errorBody mirrors the error response written by cikhttp.WriteError. The
// description is a pointer so an omitted field is distinguishable from "".
type errorBody struct {
	Error            string  `json:"error"`
	ErrorDescription *string `json:"error_description"`
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder, status int) errorBody {
	t.Helper()
	assert.Equal(t, status, rr.Code, "unexpected status code")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "failed to unmarshal error response")
	return body
}

// AssertInvalidCIK asserts a 400 invalid_cik response with a non-empty
// description and returns the description.
func AssertInvalidCIK(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeErrorBody(t, rr, http.StatusBadRequest)
	assert.Equal(t, "invalid_cik", body.Error, "unexpected error code")
	require.NotNil(t, body.ErrorDescription, "invalid_cik must carry error_description")
	assert.NotEmpty(t, *body.ErrorDescription)
	return *body.ErrorDescription
}

// AssertInternalError asserts a 500 internal_error response that does not
// leak an error_description.
func AssertInternalError(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	body := decodeErrorBody(t, rr, http.StatusInternalServerError)
	assert.Equal(t, "internal_error", body.Error, "unexpected error code")
	assert.Nil(t, body.ErrorDescription, "internal errors must not describe the cause")
}

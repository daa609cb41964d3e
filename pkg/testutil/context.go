package testutil

import (
	"net/http"

	"cik/pkg/cik"
	"cik/pkg/cikhttp"
)

// WithCIK adds a CIK to the request context, as cikhttp.RequireCIK would after
// a successful parse. If raw is not a valid CIK, the request is returned
// unchanged so handlers can be tested for the missing-CIK path.
func WithCIK(req *http.Request, raw string) *http.Request {
	c, err := cik.Parse(raw)
	if err != nil {
		return req
	}
	return req.WithContext(cikhttp.WithCIK(req.Context(), c))
}

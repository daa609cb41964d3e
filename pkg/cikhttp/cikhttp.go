// Package cikhttp parses CIKs at the HTTP trust boundary of chi routers.
//
// Paths may carry the bare number (/filers/320193), the zero-padded form
// (/filers/0000320193) or the EDGAR style with a CIK prefix
// (/filers/CIK0000320193). All three go through cik.Parse. Failures are
// *cik.DecodeError values with Format "param" that carry the raw value as the
// client sent it, prefix included.
package cikhttp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cik/pkg/cik"
)

const prefix = "CIK"

// URLParam parses the chi URL parameter key as a CIK.
func URLParam(r *http.Request, key string) (cik.CIK, error) {
	return parse(chi.URLParam(r, key))
}

// QueryParam parses the query string parameter key as a CIK.
func QueryParam(r *http.Request, key string) (cik.CIK, error) {
	return parse(r.URL.Query().Get(key))
}

func parse(raw string) (cik.CIK, error) {
	number := raw
	if len(number) >= len(prefix) && strings.EqualFold(number[:len(prefix)], prefix) {
		number = number[len(prefix):]
	}
	c, err := cik.Parse(number)
	if err != nil {
		return cik.CIK{}, &cik.DecodeError{Format: "param", Input: raw, Err: err}
	}
	return c, nil
}

type contextKeyCIK struct{}

// WithCIK returns a copy of ctx carrying c.
func WithCIK(ctx context.Context, c cik.CIK) context.Context {
	return context.WithValue(ctx, contextKeyCIK{}, c)
}

// FromContext returns the CIK stored by RequireCIK, if any.
func FromContext(ctx context.Context) (cik.CIK, bool) {
	c, ok := ctx.Value(contextKeyCIK{}).(cik.CIK)
	return c, ok
}

// Span attribute keys set by RequireCIK on the request's active span.
const (
	AttrCIK       = attribute.Key("cik.value")
	AttrErrorKind = attribute.Key("cik.error_kind")
)

// RequireCIK creates middleware that parses the URL parameter key and stores
// the CIK in the request context. Requests with an invalid CIK are answered
// with 400 and never reach next.
//
// Outcomes are counted on metrics and recorded on the active span. Both logger
// and metrics may be nil.
//
// Usage:
//
//	m := cikhttp.NewMetrics(prometheus.DefaultRegisterer)
//	r.Route("/filers/{cik}", func(r chi.Router) {
//	    r.Use(cikhttp.RequireCIK("cik", logger, m))
//	    r.Get("/", handleFiler)
//	})
func RequireCIK(key string, logger *slog.Logger, metrics *Metrics) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := trace.SpanFromContext(r.Context())
			c, err := URLParam(r, key)
			if err != nil {
				kind := ErrorKind(err)
				logger.DebugContext(r.Context(), "rejected cik path parameter",
					"param", key,
					"kind", kind,
					"error", err,
				)
				metrics.IncrementRejected(key, err)
				span.SetAttributes(AttrErrorKind.String(kind))
				WriteError(w, err)
				return
			}
			metrics.IncrementParsed(key)
			span.SetAttributes(AttrCIK.Int64(int64(c.Value())))
			next.ServeHTTP(w, r.WithContext(WithCIK(r.Context(), c)))
		})
	}
}

// errorResponse is the JSON body of an error response.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteError writes err as a JSON error response. CIK validation and decode
// failures become 400 invalid_cik with the message as description; anything
// else becomes 500 internal_error without a description.
func WriteError(w http.ResponseWriter, err error) {
	var decodeErr *cik.DecodeError
	if errors.Is(err, cik.ErrInvalid) || errors.As(err, &decodeErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:            "invalid_cik",
			ErrorDescription: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}

func writeJSON(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

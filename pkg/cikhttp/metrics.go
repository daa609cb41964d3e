package cikhttp

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cik/pkg/cik"
)

// Metrics counts CIK parameters seen by RequireCIK.
type Metrics struct {
	ParsedParams   *prometheus.CounterVec
	RejectedParams *prometheus.CounterVec
}

// NewMetrics creates the middleware metrics and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParsedParams: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cik_parsed_params_total",
			Help: "Total number of CIK path parameters accepted",
		}, []string{"param"}),
		RejectedParams: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cik_rejected_params_total",
			Help: "Total number of CIK path parameters rejected, by failure kind",
		}, []string{"param", "kind"}),
	}
}

// IncrementParsed increments the accepted counter for param.
func (m *Metrics) IncrementParsed(param string) {
	if m == nil {
		return
	}
	m.ParsedParams.WithLabelValues(param).Inc()
}

// IncrementRejected increments the rejected counter for param, labelled with
// the kind of err.
func (m *Metrics) IncrementRejected(param string, err error) {
	if m == nil {
		return
	}
	m.RejectedParams.WithLabelValues(param, ErrorKind(err)).Inc()
}

// Failure kinds reported by ErrorKind.
const (
	KindLength = "length"
	KindFormat = "format"
	KindValue  = "value"
	KindOther  = "other"
)

// ErrorKind classifies a CIK validation error. Errors outside the three known
// kinds, including future ones, report KindOther.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, cik.ErrInvalidLength):
		return KindLength
	case errors.Is(err, cik.ErrInvalidFormat):
		return KindFormat
	case errors.Is(err, cik.ErrInvalidValue):
		return KindValue
	default:
		return KindOther
	}
}

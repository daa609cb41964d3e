package cik

import "log/slog"

// LogValue implements slog.LogValuer so structured logs carry the number,
// matching the JSON form.
func (c CIK) LogValue() slog.Value {
	return slog.Uint64Value(c.value)
}

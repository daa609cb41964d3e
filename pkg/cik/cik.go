// Package cik provides CIK, a validated Central Index Key as used by the SEC's
// EDGAR filing system.
//
// A CIK is a number of up to 10 decimal digits in the range 1 to 9,999,999,999.
// EDGAR renders it with or without leading zeros, and data sets store it either
// as a string or as an integer. A 32-bit integer cannot hold every CIK, so the
// value is kept as a uint64.
//
// Every way of obtaining a CIK (Parse, Build, and the JSON, YAML, text, binary
// and SQL decoders) ends in Build, which makes the only range decision.
package cik

import (
	"cmp"
	"strconv"
)

const (
	// MaxLength is the longest accepted text form, in bytes.
	MaxLength = 10

	// MinValue and MaxValue bound the valid CIK range, inclusive.
	MinValue uint64 = 1
	MaxValue uint64 = 9_999_999_999
)

// CIK is a Central Index Key in confirmed valid range.
//
// Invariant: a CIK returned by any constructor or decoder in this package is in
// [MinValue, MaxValue]. The field is unexported so no other package can build
// one without validation. The zero value CIK{} means "no CIK"; IsZero reports
// it and every encoder refuses it.
//
// CIK is comparable, so == and map keys work on the underlying integer.
type CIK struct {
	value uint64
}

// Parse constructs a CIK from external text input.
//
// The text must be 1 to 10 bytes of ASCII digits with no sign, whitespace or
// separators. Leading zeros are accepted ("0000320193").
//
// Errors: *LengthError when the text is empty or longer than 10 bytes (checked
// before anything else), *FormatError when the text is not a base-10 unsigned
// integer, *ValueError when the number is out of range (for example "0").
func Parse(s string) (CIK, error) {
	if len(s) == 0 || len(s) > MaxLength {
		return CIK{}, &LengthError{Was: len(s)}
	}
	if !allDigits(s) {
		return CIK{}, &FormatError{Was: s}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return CIK{}, &FormatError{Was: s}
	}
	return Build(v)
}

// Build constructs a CIK from an integer.
//
// Errors: *ValueError when v is 0 or greater than MaxValue.
func Build(v uint64) (CIK, error) {
	if v < MinValue || v > MaxValue {
		return CIK{}, &ValueError{Was: v}
	}
	return CIK{value: v}, nil
}

// Validate reports whether s has CIK syntax: 1 to 10 ASCII digits.
//
// It is a syntax check only. "0" and "0000000000" pass Validate but fail Parse,
// so a true result does not mean Parse will succeed.
func Validate(s string) bool {
	if len(s) == 0 || len(s) > MaxLength {
		return false
	}
	return allDigits(s)
}

// MustParse is like Parse but panics on error. Use it for literals only.
func MustParse(s string) CIK {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustBuild is like Build but panics on error. Use it for literals only.
func MustBuild(v uint64) CIK {
	c, err := Build(v)
	if err != nil {
		panic(err)
	}
	return c
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Value returns the underlying integer.
func (c CIK) Value() uint64 {
	return c.value
}

// IsZero reports whether c is the zero value, i.e. no CIK at all.
func (c CIK) IsZero() bool {
	return c.value == 0
}

// String returns the canonical rendering: decimal digits, no leading zeros.
func (c CIK) String() string {
	return strconv.FormatUint(c.value, 10)
}

// Padded returns the ten-digit zero-padded rendering EDGAR uses in file and
// URL names, e.g. "0000320193".
func (c CIK) Padded() string {
	s := c.String()
	if len(s) >= MaxLength {
		return s
	}
	return zeros[:MaxLength-len(s)] + s
}

const zeros = "0000000000"

// GoString returns the diagnostic rendering used by %#v, e.g. "CIK320193".
// It is not accepted by Parse.
func (c CIK) GoString() string {
	return "CIK" + c.String()
}

// Compare returns -1, 0 or +1 depending on whether c is less than, equal to or
// greater than other.
func (c CIK) Compare(other CIK) int {
	return cmp.Compare(c.value, other.value)
}

// Less reports whether c sorts before other.
func (c CIK) Less(other CIK) bool {
	return c.value < other.value
}

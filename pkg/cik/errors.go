package cik

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds, stable for errors.Is.
//
// The set of kinds may grow. Code that switches on them should keep a default
// branch; ErrInvalid matches every validation failure, current and future.
var (
	ErrInvalid       = errors.New("cik: invalid")
	ErrInvalidLength = fmt.Errorf("%w length", ErrInvalid)
	ErrInvalidFormat = fmt.Errorf("%w format", ErrInvalid)
	ErrInvalidValue  = fmt.Errorf("%w value", ErrInvalid)

	// Adapter-level failures. The input never reached Parse or Build.
	ErrNegative    = errors.New("negative values not allowed")
	ErrUnsupported = errors.New("expected a positive integer up to 10 digits or a string representing the same")

	// ErrZero is returned when encoding the zero CIK.
	ErrZero = errors.New("cik: cannot encode zero value")
)

// LengthError reports text that is empty or longer than MaxLength bytes.
type LengthError struct {
	Was int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("cik: invalid length %d bytes when expecting 1 to %d", e.Was, MaxLength)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength || target == ErrInvalid
}

// FormatError reports text of acceptable length that is not a base-10
// unsigned integer.
type FormatError struct {
	Was string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cik: invalid format %q when expecting integer", e.Was)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat || target == ErrInvalid
}

// ValueError reports an integer outside [MinValue, MaxValue].
type ValueError struct {
	Was uint64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("cik: invalid value %d when expecting positive number up to 9,999,999,999", e.Was)
}

func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue || target == ErrInvalid
}

// DecodeError is returned by the JSON, YAML, text, binary and SQL decoders,
// and by the cikhttp parameter parsers.
// Err is either one of the validation errors above or ErrNegative /
// ErrUnsupported when the input had the wrong shape.
type DecodeError struct {
	Format string // "json", "yaml", "text", "sql", "param"
	Input  string
	Err    error
}

func (e *DecodeError) Error() string {
	reason := strings.TrimPrefix(e.Err.Error(), "cik: ")
	return fmt.Sprintf("cik: cannot decode %s %s: %s", e.Format, e.Input, reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(format, input string, err error) error {
	return &DecodeError{Format: format, Input: input, Err: err}
}

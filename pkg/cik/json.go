package cik

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// MarshalJSON implements json.Marshaler. A CIK is always emitted as a bare
// number, e.g. 320193, never as a string.
func (c CIK) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return nil, ErrZero
	}
	return strconv.AppendUint(nil, c.value, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Accepted shapes:
//   - integer number: 320193 (negative numbers fail with ErrNegative)
//   - string: "320193" or "0000320193", validated by Parse
//
// Anything else (fractions, exponents, booleans, null, objects, arrays) fails
// with ErrUnsupported. All errors are *DecodeError.
func (c *CIK) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var token any
	if err := dec.Decode(&token); err != nil {
		return decodeError("json", string(data), err)
	}

	var (
		decoded CIK
		err     error
	)
	switch v := token.(type) {
	case json.Number:
		decoded, err = fromNumber(v.String())
	case string:
		decoded, err = Parse(v)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return decodeError("json", string(data), err)
	}

	*c = decoded
	return nil
}

// fromNumber converts a JSON number literal. Only integers are accepted.
func fromNumber(s string) (CIK, error) {
	if strings.ContainsAny(s, ".eE") {
		return CIK{}, ErrUnsupported
	}
	if strings.HasPrefix(s, "-") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil && i >= 0 {
			// "-0"
			return Build(uint64(i))
		}
		return CIK{}, ErrNegative
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// Larger than any uint64; no ValueError can carry it.
		return CIK{}, ErrInvalidValue
	}
	return Build(u)
}

package cik

// MarshalText implements encoding.TextMarshaler using the canonical rendering.
// It is what encoding/json uses for map keys and what encoding/xml and most
// config decoders fall back to.
func (c CIK) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, ErrZero
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by calling Parse.
func (c *CIK) UnmarshalText(text []byte) error {
	decoded, err := Parse(string(text))
	if err != nil {
		return decodeError("text", string(text), err)
	}
	*c = decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The binary form is the
// canonical text, so a CIK written through go-redis reads back as "320193".
func (c CIK) MarshalBinary() ([]byte, error) {
	return c.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *CIK) UnmarshalBinary(data []byte) error {
	return c.UnmarshalText(data)
}

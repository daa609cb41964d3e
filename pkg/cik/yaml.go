package cik

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. A CIK is emitted as a plain integer.
func (c CIK) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, ErrZero
	}
	return c.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same shapes as JSON: an
// !!int scalar goes through Build, a !!str scalar through Parse.
//
// yaml.v3 tags integers beyond uint64 as !!float. Those are judged like JSON
// numbers, so a huge negative integer still fails with ErrNegative.
func (c *CIK) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := fromYAML(node)
	if err != nil {
		return decodeError("yaml", yamlInput(node), err)
	}
	*c = decoded
	return nil
}

func fromYAML(node *yaml.Node) (CIK, error) {
	if node.Kind != yaml.ScalarNode {
		return CIK{}, ErrUnsupported
	}
	switch node.ShortTag() {
	case "!!int":
		var signed int64
		if err := node.Decode(&signed); err == nil {
			if signed < 0 {
				return CIK{}, ErrNegative
			}
			return Build(uint64(signed))
		}
		var unsigned uint64
		if err := node.Decode(&unsigned); err != nil {
			return CIK{}, ErrInvalidValue
		}
		return Build(unsigned)
	case "!!str":
		return Parse(node.Value)
	case "!!float":
		if digits := strings.TrimPrefix(node.Value, "+"); isInteger(digits) {
			return fromNumber(digits)
		}
		return CIK{}, ErrUnsupported
	default:
		return CIK{}, ErrUnsupported
	}
}

func isInteger(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	return digits != "" && allDigits(digits)
}

// yamlInput renders node for error messages. Collections have no scalar
// value, so they are described by kind and position.
func yamlInput(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	kind := "node"
	switch node.Kind {
	case yaml.SequenceNode:
		kind = "sequence"
	case yaml.MappingNode:
		kind = "mapping"
	case yaml.DocumentNode:
		kind = "document"
	case yaml.AliasNode:
		kind = "alias"
	}
	return fmt.Sprintf("<%s at line %d, column %d>", kind, node.Line, node.Column)
}

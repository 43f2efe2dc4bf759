package ldraw

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies how a field was interpreted by Convert.
type Kind uint8

// Kind constants.
const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// Value is a single line field after numeric conversion.
// Exactly one of Int, Float or Text is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
}

// Int returns an integer Value.
func Int(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Fields splits a raw line on runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Convert interprets a field as a float when it contains a decimal point,
// as an integer otherwise, and falls back to text when neither parses.
// File names such as "3001.dat" contain a dot but fail float parsing,
// so they stay text.
func Convert(field string) Value {
	if strings.Contains(field, ".") {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return Float(f)
		}
		return Text(field)
	}
	if n, err := strconv.ParseInt(field, 10, 64); err == nil {
		return Int(n)
	}
	return Text(field)
}

// Number returns the numeric view of v. The bool result is false for text.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// String returns the field as it would appear in a line.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Text
	}
}

// MarshalJSON encodes numbers as JSON numbers and text as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return json.Marshal(v.Text)
	}
}

// MarshalYAML encodes the value as its natural scalar.
func (v Value) MarshalYAML() (any, error) {
	switch v.Kind {
	case KindInt:
		return v.Int, nil
	case KindFloat:
		return v.Float, nil
	default:
		return v.Text, nil
	}
}

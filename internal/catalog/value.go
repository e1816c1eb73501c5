// internal/catalog/value.go
//
// Value is the loosely typed "damage" attribute of a catalog entry.
// Source data carries either a JSON number (e.g. 500) or a JSON string
// (e.g. "Holy"), and match classification depends on which one it is.

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tells whether a Value holds a string or a number.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
)

// Value holds either a string or a float64, never both.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
}

// Text returns a string Value.
func Text(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// String renders v for display. Numbers drop trailing zeros (500, 12.5).
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Str
}

// Equal is native equality: numbers compare numerically, strings exactly,
// and values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindNumber {
		return v.Num == o.Num
	}
	return v.Str == o.Str
}

// UnmarshalJSON accepts a JSON number, a JSON string or null (empty string).
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Text("")
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("catalog: damage must be a number or string: %w", err)
	}
	*v = Number(n)
	return nil
}

// MarshalJSON writes the value back in its original JSON kind.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindNumber {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Str)
}

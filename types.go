package fixedwidth

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the primitive type of a schema field.
type Kind int

const (
	Invalid Kind = iota
	Integer
	String
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case String:
		return "string"
	}
	return "invalid"
}

// kindNames maps folded type tokens to kinds. The set is closed: anything
// not listed here is rejected when the schema is loaded.
var kindNames = map[string]Kind{
	"int":     Integer,
	"integer": Integer,
	"string":  String,
}

// ParseKind matches a type token case-insensitively against the supported
// kinds. ok is false if the token names an unsupported type.
func ParseKind(token string) (k Kind, ok bool) {
	k, ok = kindNames[cases.Fold().String(strings.TrimSpace(token))]
	return k, ok
}

// Value is a decoded field value. It holds either an integer or a string,
// as reported by Kind. The zero Value has kind Invalid.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// IntValue returns an Integer value.
func IntValue(i int64) Value {
	return Value{kind: Integer, i: i}
}

// StringValue returns a String value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

func (v Value) Kind() Kind { return v.kind }

// Int returns the integer held by v, or 0 if v is not an Integer.
func (v Value) Int() int64 { return v.i }

// Str returns the string held by v, or "" if v is not a String.
func (v Value) Str() string { return v.s }

// String formats v the way it would appear in a fixed-width line, without
// padding.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case String:
		return v.s
	}
	return ""
}

// Interface returns the value as an int64 or a string, or nil for an
// Invalid value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Integer:
		return v.i
	case String:
		return v.s
	}
	return nil
}

// Equal reports whether v and o have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v == o
}

package fixedwidth

import (
	"iter"
	"strconv"
	"strings"
)

// A Decoder decodes fixed-width lines into records according to a schema.
// A Decoder holds no per-line state and may be used from multiple
// goroutines once configured.
type Decoder struct {
	schema              *Schema
	useCodepointIndices bool
}

// NewDecoder returns a new decoder for s.
func NewDecoder(s *Schema) *Decoder {
	return &Decoder{schema: s}
}

// SetUseCodepointIndices configures whether field offsets and lengths are
// expressed in bytes (the default behavior) or in UTF-8 decoded codepoints.
// It must be called before the decoder is shared.
func (d *Decoder) SetUseCodepointIndices(use bool) {
	d.useCodepointIndices = use
}

// Schema returns the decoder's schema.
func (d *Decoder) Schema() *Schema { return d.schema }

// DecodeLine decodes a single line. lineNumber is only used to annotate
// errors. On failure the returned error is a *DecodeError and no part of
// the line is returned.
func (d *Decoder) DecodeLine(line string, lineNumber int) (Record, error) {
	raw := newRawLine(line, d.useCodepointIndices)

	// Check every field fits before converting anything.
	for _, f := range d.schema.fields {
		if f.End() > raw.len() {
			return Record{}, &DecodeError{
				Err:      ErrTruncatedLine,
				Line:     lineNumber,
				Variable: f.Variable,
				Needed:   f.End(),
				Actual:   raw.len(),
			}
		}
	}

	values := make([]Value, len(d.schema.fields))
	for i, f := range d.schema.fields {
		text := strings.TrimRight(raw.slice(f.Offset, f.End()), " ")
		v, err := coerce(f.Kind, text)
		if err != nil {
			return Record{}, &DecodeError{
				Err:      ErrTypeMismatch,
				Line:     lineNumber,
				Variable: f.Variable,
				Value:    text,
				Cause:    err,
			}
		}
		values[i] = v
	}
	return Record{schema: d.schema, values: values}, nil
}

// Result is the outcome of decoding one line: either Record or Err is set.
type Result struct {
	Line   int
	Record Record
	Err    error // always a *DecodeError
}

// DecodeAll decodes lines lazily, yielding one Result per line in input
// order. Lines are numbered from 1. A failed line does not stop the
// sequence; the caller decides whether to keep pulling.
func (d *Decoder) DecodeAll(lines iter.Seq[string]) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		n := 0
		for line := range lines {
			n++
			rec, err := d.DecodeLine(line, n)
			if !yield(Result{Line: n, Record: rec, Err: err}) {
				return
			}
		}
	}
}

type coerceFunc func(text string) (Value, error)

var coercers = map[Kind]coerceFunc{
	Integer: coerceInt,
	String:  coerceString,
}

func coerce(k Kind, text string) (Value, error) {
	return coercers[k](text)
}

func coerceString(text string) (Value, error) {
	return StringValue(text), nil
}

// coerceInt parses a base-10 signed integer. Fixed-width numbers are often
// right-aligned, so leading spaces are skipped. An empty field is an error.
func coerceInt(text string) (Value, error) {
	i, err := strconv.ParseInt(strings.TrimLeft(text, " "), 10, 64)
	if err != nil {
		return Value{}, err
	}
	return IntValue(i), nil
}

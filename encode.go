package fixedwidth

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// An OverflowError describes an integer that does not fit its field.
// Strings are truncated instead.
type OverflowError struct {
	Variable string
	Value    string
	Width    int
}

func (e *OverflowError) Error() string {
	return "fixedwidth: value " + e.Value + " of field " + strconv.Quote(e.Variable) +
		" does not fit width " + strconv.Itoa(e.Width)
}

// Marshal returns the fixed-width encoding of each record, one line per
// record, separated by newlines.
func Marshal(s *Schema, records ...Record) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	enc := NewEncoder(buff, s)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// An Encoder writes records as fixed-width lines.
type Encoder struct {
	w                   *bufio.Writer
	schema              *Schema
	useCodepointIndices bool
	lines               int
}

// NewEncoder returns a new encoder that writes lines laid out by s to w.
func NewEncoder(w io.Writer, s *Schema) *Encoder {
	return &Encoder{
		w:      bufio.NewWriter(w),
		schema: s,
	}
}

// SetUseCodepointIndices configures whether the schema positions count
// bytes (the default behavior) or UTF-8 codepoints.
func (e *Encoder) SetUseCodepointIndices(use bool) {
	e.useCodepointIndices = use
}

// Encode writes r as one line. Fields are looked up by variable, so r may
// come from a different schema as long as it has every variable. Lines
// after the first are preceded by a newline. Encode buffers its output;
// call Flush when done.
func (e *Encoder) Encode(r Record) error {
	line, err := e.encodeLine(r)
	if err != nil {
		return err
	}
	if e.lines > 0 {
		if err := e.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	e.lines++
	_, err = e.w.WriteString(line)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

func (e *Encoder) encodeLine(r Record) (string, error) {
	texts := make([]string, e.schema.Len())
	for i, f := range e.schema.fields {
		v, ok := r.Get(f.Variable)
		if !ok {
			return "", errors.Errorf("fixedwidth: record has no field %s", strconv.Quote(f.Variable))
		}
		if v.Kind() != f.Kind {
			return "", errors.Errorf("fixedwidth: field %s is %s, have %s", strconv.Quote(f.Variable), f.Kind, v.Kind())
		}
		texts[i] = v.String()
		if f.Kind == Integer && e.width(texts[i]) > f.Length {
			return "", &OverflowError{Variable: f.Variable, Value: texts[i], Width: f.Length}
		}
	}

	if e.useCodepointIndices {
		data := fill(make([]rune, e.schema.Width()), defaultPadChar)
		for i, f := range e.schema.fields {
			writeValue([]rune(texts[i]), data[f.Offset:f.End()], formatFor(f.Kind))
		}
		return string(data), nil
	}
	data := fill(make([]byte, e.schema.Width()), defaultPadChar)
	for i, f := range e.schema.fields {
		writeValue([]byte(texts[i]), data[f.Offset:f.End()], formatFor(f.Kind))
	}
	return string(data), nil
}

func (e *Encoder) width(s string) int {
	if e.useCodepointIndices {
		return len([]rune(s))
	}
	return len(s)
}

func fill[T byte | rune](data []T, c T) []T {
	for i := range data {
		data[i] = c
	}
	return data
}

func writeValue[T byte | rune](value, destination []T, f format) {
	fill(destination, T(f.padChar))
	if f.alignment == right {
		padLeft(value, destination)
		return
	}
	padRight(value, destination)
}

// padRight copies value to the start of destination. If value is longer
// than destination it is truncated on the right.
func padRight[T byte | rune](value, destination []T) {
	for i := 0; i < len(value) && i < len(destination); i++ {
		destination[i] = value[i]
	}
}

// padLeft copies value to the end of destination. If value is longer than
// destination it is truncated on the left.
func padLeft[T byte | rune](value, destination []T) {
	for i := 0; i < len(value) && i < len(destination); i++ {
		destination[len(destination)-i-1] = value[len(value)-i-1]
	}
}

package fixedwidth

import (
	"strconv"

	"github.com/pkg/errors"
)

// Schema errors. A *SchemaError always wraps one of these.
var (
	ErrMalformedLine   = errors.New("malformed field line")
	ErrMalformedField  = errors.New("malformed field")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrDuplicateField  = errors.New("duplicate field")
)

// Decode errors. A *DecodeError always wraps one of these.
var (
	ErrTruncatedLine = errors.New("truncated line")
	ErrTypeMismatch  = errors.New("type mismatch")
)

// A SchemaError describes why a layout description could not be turned
// into a Schema.
type SchemaError struct {
	Err   error  // one of the ErrMalformedLine, ErrMalformedField, ErrUnsupportedType, ErrDuplicateField
	Line  int    // 1-based line in the description, 0 if not tied to a line
	Name  string // field label or variable, when known
	Token string // the offending raw text
}

func (e *SchemaError) Error() string {
	s := "fixedwidth: schema"
	if e.Line > 0 {
		s += " line " + strconv.Itoa(e.Line)
	}
	s += ": " + e.Err.Error()
	if e.Name != "" {
		s += " " + strconv.Quote(e.Name)
	}
	if e.Token != "" {
		s += ": " + strconv.Quote(e.Token)
	}
	return s
}

func (e *SchemaError) Unwrap() error { return e.Err }

// A DecodeError describes why a single line could not be decoded. It is
// returned by DecodeLine and carried as data by DecodeAll.
type DecodeError struct {
	Err      error  // ErrTruncatedLine or ErrTypeMismatch
	Line     int    // 1-based line number
	Variable string // the field that failed
	Value    string // raw value for ErrTypeMismatch

	// Needed and Actual are set for ErrTruncatedLine: the width the field
	// requires and the width of the line.
	Needed, Actual int

	Cause error // underlying conversion error, if any
}

func (e *DecodeError) Error() string {
	s := "fixedwidth: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
	if e.Variable != "" {
		s += " in field " + strconv.Quote(e.Variable)
	}
	switch {
	case errors.Is(e.Err, ErrTruncatedLine):
		s += ": need " + strconv.Itoa(e.Needed) + ", have " + strconv.Itoa(e.Actual)
	case errors.Is(e.Err, ErrTypeMismatch):
		s += ": cannot decode " + strconv.Quote(e.Value)
	}
	if e.Cause != nil {
		return s + ": " + e.Cause.Error()
	}
	return s
}

func (e *DecodeError) Unwrap() error { return e.Err }

package fixedwidth

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrefix is the marker that identifies field lines in a layout
// description.
const DefaultPrefix = "Field"

// FieldSpec describes one field of a fixed-width line.
type FieldSpec struct {
	Name     string // label in the layout description, e.g. "Field1"
	Variable string // key of the field in decoded records
	Kind     Kind
	Offset   int // zero-based start position
	Length   int
}

// End returns the position just past the field.
func (f FieldSpec) End() int {
	return f.Offset + f.Length
}

// Schema is an ordered, immutable set of field specs. The order is the
// declaration order of the layout description.
type Schema struct {
	fields []FieldSpec
	index  map[string]int // variable -> position in fields
	width  int
}

// NewSchema validates fields and returns a Schema holding a copy of them.
// Variables and names must be unique.
func NewSchema(fields ...FieldSpec) (*Schema, error) {
	s := &Schema{
		fields: make([]FieldSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)

	names := make(map[string]bool, len(fields))
	for i, f := range s.fields {
		if err := validateField(f); err != nil {
			return nil, err
		}
		if _, dup := s.index[f.Variable]; dup {
			return nil, &SchemaError{Err: ErrDuplicateField, Name: f.Variable}
		}
		if names[f.Name] {
			return nil, &SchemaError{Err: ErrDuplicateField, Name: f.Name}
		}
		names[f.Name] = true
		s.index[f.Variable] = i
		if f.End() > s.width {
			s.width = f.End()
		}
	}
	return s, nil
}

func validateField(f FieldSpec) error {
	switch {
	case f.Variable == "":
		return &SchemaError{Err: ErrMalformedField, Name: f.Name}
	case f.Kind != Integer && f.Kind != String:
		return &SchemaError{Err: ErrUnsupportedType, Name: f.Name, Token: f.Kind.String()}
	case f.Offset < 0:
		return &SchemaError{Err: ErrMalformedField, Name: f.Name, Token: strconv.Itoa(f.Offset)}
	case f.Length <= 0:
		return &SchemaError{Err: ErrMalformedField, Name: f.Name, Token: strconv.Itoa(f.Length)}
	}
	return nil
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the i-th field spec.
func (s *Schema) Field(i int) FieldSpec { return s.fields[i] }

// Fields iterates over the field specs in declaration order.
func (s *Schema) Fields() iter.Seq2[int, FieldSpec] {
	return func(yield func(int, FieldSpec) bool) {
		for i, f := range s.fields {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Lookup returns the field spec for a variable.
func (s *Schema) Lookup(variable string) (FieldSpec, bool) {
	i, ok := s.index[variable]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Width returns the minimum line width that satisfies every field.
func (s *Schema) Width() int { return s.width }

// A Loader parses layout descriptions.
type Loader struct {
	// Prefix marks field lines. Lines that do not start with Prefix are
	// ignored. DefaultPrefix is used if Prefix is empty.
	Prefix string
}

// Load parses a layout description using DefaultPrefix.
func Load(lines iter.Seq[string]) (*Schema, error) {
	return (&Loader{}).Load(lines)
}

// LoadReader reads a layout description from r using DefaultPrefix.
func LoadReader(r io.Reader) (*Schema, error) {
	return (&Loader{}).LoadReader(r)
}

// LoadReader reads a layout description from r.
func (l *Loader) LoadReader(r io.Reader) (*Schema, error) {
	lr := NewLineReader(r)
	s, err := l.Load(lr.All())
	if err != nil {
		return nil, err
	}
	if err := lr.Err(); err != nil {
		return nil, errors.Wrap(err, "fixedwidth: read schema")
	}
	return s, nil
}

// Load parses a layout description. The first invalid line aborts loading.
func (l *Loader) Load(lines iter.Seq[string]) (*Schema, error) {
	prefix := l.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var (
		fields []FieldSpec
		n      int
	)
	for line := range lines {
		n++
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		f, err := parseFieldLine(line)
		if err != nil {
			if se, ok := err.(*SchemaError); ok && se.Line == 0 {
				se.Line = n
			}
			return nil, err
		}
		fields = append(fields, f)
	}
	return NewSchema(fields...)
}

// parseFieldLine splits a field line of the form
// "<label>=<type>,<variable>,<offset>,<length>" into a FieldSpec.
func parseFieldLine(line string) (FieldSpec, error) {
	name, rest, ok := strings.Cut(line, "=")
	if !ok {
		return FieldSpec{}, &SchemaError{Err: ErrMalformedLine, Token: line}
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 4 {
		return FieldSpec{}, &SchemaError{Err: ErrMalformedLine, Token: line}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	f := FieldSpec{
		Name:     strings.TrimSpace(name),
		Variable: parts[1],
	}
	if f.Kind, ok = ParseKind(parts[0]); !ok {
		return FieldSpec{}, &SchemaError{Err: ErrUnsupportedType, Name: f.Name, Token: parts[0]}
	}
	if f.Variable == "" {
		return FieldSpec{}, &SchemaError{Err: ErrMalformedField, Name: f.Name, Token: rest}
	}

	var err error
	if f.Offset, err = parseUint(parts[2]); err != nil {
		return FieldSpec{}, &SchemaError{Err: ErrMalformedField, Name: f.Name, Token: parts[2]}
	}
	if f.Length, err = parseUint(parts[3]); err != nil || f.Length == 0 {
		return FieldSpec{}, &SchemaError{Err: ErrMalformedField, Name: f.Name, Token: parts[3]}
	}
	return f, nil
}

func parseUint(s string) (int, error) {
	u, err := strconv.ParseUint(s, 10, 31)
	return int(u), err
}

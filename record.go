package fixedwidth

import (
	"iter"
	"strconv"

	"github.com/pkg/errors"
)

// Record is the decoded form of one line: a value for every field of its
// schema, in schema order. Records are immutable.
type Record struct {
	schema *Schema
	values []Value
}

// NewRecord builds a record for s from values given in schema order. Each
// value must have the kind of its field.
func NewRecord(s *Schema, values ...Value) (Record, error) {
	if len(values) != s.Len() {
		return Record{}, errors.Errorf("fixedwidth: record has %d values, schema has %d fields", len(values), s.Len())
	}
	for i, v := range values {
		if f := s.fields[i]; v.Kind() != f.Kind {
			return Record{}, errors.Errorf("fixedwidth: field %s is %s, have %s", strconv.Quote(f.Variable), f.Kind, v.Kind())
		}
	}
	vs := make([]Value, len(values))
	copy(vs, values)
	return Record{schema: s, values: vs}, nil
}

// Schema returns the schema the record was decoded with.
func (r Record) Schema() *Schema { return r.schema }

// Len returns the number of fields in the record.
func (r Record) Len() int { return len(r.values) }

// At returns the variable and value of the i-th field.
func (r Record) At(i int) (string, Value) {
	return r.schema.fields[i].Variable, r.values[i]
}

// Get returns the value of a variable.
func (r Record) Get(variable string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	i, ok := r.schema.index[variable]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// All iterates over the fields of the record in schema order.
func (r Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, v := range r.values {
			if !yield(r.schema.fields[i].Variable, v) {
				return
			}
		}
	}
}

// Values returns a copy of the record's values in schema order.
func (r Record) Values() []Value {
	vs := make([]Value, len(r.values))
	copy(vs, r.values)
	return vs
}

// Map returns the record as a map from variable to int64 or string.
func (r Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.values))
	for k, v := range r.All() {
		m[k] = v.Interface()
	}
	return m
}

// String formats the record as {variable:value ...}.
func (r Record) String() string {
	b := []byte{'{'}
	for i, v := range r.values {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, r.schema.fields[i].Variable...)
		b = append(b, ':')
		b = append(b, v.String()...)
	}
	return string(append(b, '}'))
}

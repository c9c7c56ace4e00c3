package fixedwidth

import (
	"reflect"
	"testing"
)

func TestNewRecord(t *testing.T) {
	s := personSchema(t)
	for _, tt := range []struct {
		name      string
		values    []Value
		shouldErr bool
	}{
		{"Valid", []Value{StringValue("Alice"), IntValue(25)}, false},
		{"Too Few", []Value{StringValue("Alice")}, true},
		{"Too Many", []Value{StringValue("Alice"), IntValue(25), IntValue(1)}, true},
		{"Wrong Kind", []Value{IntValue(1), IntValue(25)}, true},
		{"Zero Value", []Value{StringValue("Alice"), {}}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(s, tt.values...)
			if tt.shouldErr != (err != nil) {
				t.Errorf("NewRecord() err want %v, have %v (%v)", tt.shouldErr, err != nil, err)
			}
		})
	}
}

func TestRecord_Accessors(t *testing.T) {
	s := personSchema(t)
	values := []Value{StringValue("Alice"), IntValue(25)}
	r, err := NewRecord(s, values...)
	if err != nil {
		t.Fatal(err)
	}

	// The record must not share the caller's slice.
	values[0] = StringValue("Mallory")
	if v, _ := r.Get("name"); v.Str() != "Alice" {
		t.Errorf("Get(name) want Alice, have %v", v)
	}

	// Nor hand out its own.
	r.Values()[1] = IntValue(99)
	if v, _ := r.Get("age"); v.Int() != 25 {
		t.Errorf("Get(age) want 25, have %v", v)
	}

	if _, ok := r.Get("missing"); ok {
		t.Errorf("Get(missing) want !ok")
	}

	variable, v := r.At(1)
	if variable != "age" || v.Int() != 25 {
		t.Errorf("At(1) want age 25, have %s %v", variable, v)
	}

	var keys []string
	for k := range r.All() {
		keys = append(keys, k)
	}
	if !reflect.DeepEqual([]string{"name", "age"}, keys) {
		t.Errorf("All() want [name age], have %v", keys)
	}

	want := map[string]interface{}{"name": "Alice", "age": int64(25)}
	if !reflect.DeepEqual(want, r.Map()) {
		t.Errorf("Map() want %v, have %v", want, r.Map())
	}
	if r.Schema() != s {
		t.Errorf("Schema() want the record's schema")
	}
}

func TestRecord_Zero(t *testing.T) {
	var r Record
	if r.Len() != 0 {
		t.Errorf("Len() want 0, have %d", r.Len())
	}
	if _, ok := r.Get("name"); ok {
		t.Errorf("Get() on zero record want !ok")
	}
	if r.String() != "{}" {
		t.Errorf("String() want {}, have %s", r.String())
	}
}

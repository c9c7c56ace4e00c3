package fixedwidth

import (
	"iter"
	"slices"
	"testing"
)

// seq returns the given lines as a sequence.
func seq(lines ...string) iter.Seq[string] {
	return slices.Values(lines)
}

func mustLoad(tb testing.TB, lines ...string) *Schema {
	tb.Helper()
	s, err := Load(seq(lines...))
	if err != nil {
		tb.Fatalf("Load() unexpected err %v", err)
	}
	return s
}

// personSchema is the name/age layout used throughout the tests.
func personSchema(tb testing.TB) *Schema {
	return mustLoad(tb,
		"Field1=string,name,0,5",
		"Field2=int,age,5,3",
	)
}

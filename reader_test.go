package fixedwidth

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

var errBoom = errors.New("boom")

// errReader returns data and then err.
type errReader struct {
	data string
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestLineReader(t *testing.T) {
	for _, tt := range []struct {
		name     string
		raw      string
		expected []string
	}{
		{"Empty", "", nil},
		{"No Trailing New Line", "foo\nbar", []string{"foo", "bar"}},
		{"Trailing New Line", "foo\nbar\n", []string{"foo", "bar"}},
		{"Blank Line Mid File", "foo\n\nbar\n", []string{"foo", "", "bar"}},
		{"CRLF", "foo  \r\nbar\r\n", []string{"foo  ", "bar"}},
		{"Only New Line", "\n", []string{""}},
		{"Long Line", strings.Repeat("x", 100000) + "\n", []string{strings.Repeat("x", 100000)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.raw))
			var have []string
			for line := range lr.All() {
				have = append(have, line)
			}
			if !reflect.DeepEqual(tt.expected, have) {
				t.Errorf("All() want %q, have %q", tt.expected, have)
			}
			if lr.Err() != nil {
				t.Errorf("Err() unexpected %v", lr.Err())
			}
			if lr.Line() != len(tt.expected) {
				t.Errorf("Line() want %d, have %d", len(tt.expected), lr.Line())
			}
		})
	}
}

// Verify the behavior of ReadLine at the end of the input.
func TestLineReader_EOF(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine should have returned an EOF error. Returned: %v", err)
	}

	lr = NewLineReader(strings.NewReader("ABC\n"))
	line, err := lr.ReadLine()
	if err != nil || line != "ABC" {
		t.Errorf("ReadLine() want ABC, have %q (%v)", line, err)
	}
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine should have returned an EOF error. Returned: %v", err)
	}
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine should keep returning EOF. Returned: %v", err)
	}
}

func TestLineReader_Error(t *testing.T) {
	lr := NewLineReader(&errReader{data: "foo\nbar", err: errBoom})
	var have []string
	for line := range lr.All() {
		have = append(have, line)
	}
	if !reflect.DeepEqual([]string{"foo"}, have) {
		t.Errorf("All() want [foo], have %q", have)
	}
	if !errors.Is(lr.Err(), errBoom) {
		t.Errorf("Err() want %v, have %v", errBoom, lr.Err())
	}
}

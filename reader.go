package fixedwidth

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// A LineReader reads newline terminated lines from an input stream. Line
// terminators ("\n" or "\r\n") are removed. Lines may be of any length.
type LineReader struct {
	data *bufio.Reader
	done bool
	err  error
	n    int
}

// NewLineReader returns a new LineReader that reads from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		data: bufio.NewReader(r),
	}
}

// ReadLine returns the next line. If there is no data remaining it returns
// io.EOF. A final line without a terminator is returned normally; an empty
// final line is not.
func (lr *LineReader) ReadLine() (string, error) {
	if lr.err != nil {
		return "", lr.err
	}
	if lr.done {
		return "", io.EOF
	}

	line, err := lr.data.ReadString('\n')
	if err != nil && err != io.EOF {
		lr.err = err
		return "", err
	}
	if err == io.EOF {
		lr.done = true
		if line == "" {
			return "", io.EOF
		}
	}
	lr.n++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Line returns the number of lines read so far.
func (lr *LineReader) Line() int { return lr.n }

// All iterates over the remaining lines. Iteration stops at the end of the
// input or at the first read error, which is then reported by Err.
func (lr *LineReader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := lr.ReadLine()
			if err != nil {
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Err returns the first non-EOF error encountered by the LineReader.
func (lr *LineReader) Err() error { return lr.err }

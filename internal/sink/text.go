package sink

import (
	"bufio"

	"github.com/mattn/go-runewidth"

	"github.com/wallaceicy06/go-fixedschema"
)

// textWriter prints one "variable: value" line per field with the values
// aligned, and a blank line between records.
type textWriter struct {
	w     *bufio.Writer
	count int
}

func (t *textWriter) Write(r fixedwidth.Record) error {
	width := 0
	for k := range r.All() {
		width = max(width, runewidth.StringWidth(k))
	}

	if t.count > 0 {
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	t.count++

	for k, v := range r.All() {
		if _, err := t.w.WriteString(runewidth.FillRight(k, width) + " : " + v.String() + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *textWriter) Close() error {
	return t.w.Flush()
}

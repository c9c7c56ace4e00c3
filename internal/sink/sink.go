// Package sink writes decoded records in a choice of output formats. Every
// writer keeps the schema's field order.
package sink

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/wallaceicy06/go-fixedschema"
	"github.com/wallaceicy06/go-fixedschema/internal/config"
)

// A Writer consumes records. Close flushes buffered output; it does not
// close the underlying io.Writer.
type Writer interface {
	Write(r fixedwidth.Record) error
	Close() error
}

// New returns a Writer for the named format.
func New(format string, w io.Writer) (Writer, error) {
	bw := bufio.NewWriter(w)
	switch format {
	case config.FormatJSON:
		return &jsonWriter{w: bw}, nil
	case config.FormatYAML:
		return newYAMLWriter(bw), nil
	case config.FormatMsgpack:
		return newMsgpackWriter(bw), nil
	case config.FormatText:
		return &textWriter{w: bw}, nil
	}
	return nil, errors.Errorf("sink: unknown format %q", format)
}

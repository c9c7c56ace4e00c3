package sink

import (
	"bufio"
	"encoding/json"

	"github.com/wallaceicy06/go-fixedschema"
)

// jsonWriter writes one JSON object per line. Keys appear in schema order,
// which a map based encoding would lose.
type jsonWriter struct {
	w   *bufio.Writer
	buf []byte
}

func (j *jsonWriter) Write(r fixedwidth.Record) error {
	b := append(j.buf[:0], '{')
	first := true
	for k, v := range r.All() {
		if !first {
			b = append(b, ',')
		}
		first = false

		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v.Interface())
		if err != nil {
			return err
		}
		b = append(b, key...)
		b = append(b, ':')
		b = append(b, val...)
	}
	b = append(b, '}', '\n')
	j.buf = b

	_, err := j.w.Write(b)
	return err
}

func (j *jsonWriter) Close() error {
	return j.w.Flush()
}

package sink

import (
	"bufio"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wallaceicy06/go-fixedschema"
)

// msgpackWriter writes each record as a MessagePack map, one after another.
type msgpackWriter struct {
	w   *bufio.Writer
	enc *msgpack.Encoder
}

func newMsgpackWriter(w *bufio.Writer) *msgpackWriter {
	return &msgpackWriter{w: w, enc: msgpack.NewEncoder(w)}
}

func (m *msgpackWriter) Write(r fixedwidth.Record) error {
	if err := m.enc.EncodeMapLen(r.Len()); err != nil {
		return err
	}
	for k, v := range r.All() {
		if err := m.enc.EncodeString(k); err != nil {
			return err
		}
		var err error
		switch v.Kind() {
		case fixedwidth.Integer:
			err = m.enc.EncodeInt(v.Int())
		default:
			err = m.enc.EncodeString(v.Str())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *msgpackWriter) Close() error {
	return m.w.Flush()
}

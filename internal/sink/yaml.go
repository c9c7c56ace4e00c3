package sink

import (
	"bufio"

	"gopkg.in/yaml.v3"

	"github.com/wallaceicy06/go-fixedschema"
)

// yamlWriter writes each record as a YAML document of a stream.
type yamlWriter struct {
	w   *bufio.Writer
	enc *yaml.Encoder
}

func newYAMLWriter(w *bufio.Writer) *yamlWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlWriter{w: w, enc: enc}
}

func (y *yamlWriter) Write(r fixedwidth.Record) error {
	return y.enc.Encode(recordNode(r))
}

func (y *yamlWriter) Close() error {
	if err := y.enc.Close(); err != nil {
		return err
	}
	return y.w.Flush()
}

// recordNode builds a mapping node so the keys keep schema order.
func recordNode(r fixedwidth.Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range r.All() {
		tag := "!!str"
		if v.Kind() == fixedwidth.Integer {
			tag = "!!int"
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()},
		)
	}
	return node
}

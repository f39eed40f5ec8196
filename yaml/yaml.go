// Package yaml provides a Codec for YAML checklist files.
//
// YAML files carry the canonical document model with the same key names
// as the native JSON format. The format has no sniffable signature, so
// detection relies on the .yaml and .yml extensions.
package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/kneeboard"
)

type yamlCodec struct{}

// New returns the YAML codec.
func New() kneeboard.Codec {
	return &yamlCodec{}
}

func (c *yamlCodec) Format() kneeboard.Format {
	return kneeboard.FormatYAML
}

func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Decode parses YAML into a document. The yaml library reports
// positions only inside its message strings, so syntax errors carry no
// structured offset.
func (c *yamlCodec) Decode(data []byte) (*kneeboard.Document, error) {
	var doc kneeboard.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedContainer,
			Offset: -1,
			Detail: err.Error(),
		}
	}
	return &doc, nil
}

// Encode serializes a document as YAML.
func (c *yamlCodec) Encode(doc *kneeboard.Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}

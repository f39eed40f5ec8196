// Package markup provides a Codec for XML checklist files.
//
// The package is two layers. The generic layer (ParseTree, RenderTree)
// maps XML to an ordered key/value tree under a Config that drives both
// directions. The document layer maps that tree to the canonical model
// for the checklist dialect:
//
//	<binder title="N123AB">
//	  <group category="normal" title="Preflight">
//	    <checklist title="Cabin" note="...">
//	      <item kind="note" indent="1" action="advance">TEXT</item>
//	    </checklist>
//	  </group>
//	</binder>
//
// Enum attributes carry canonical string values; absent optional
// attributes mean zero values, and a bare <item>TEXT</item> is a plain
// text line.
package markup

import (
	"bytes"
	"fmt"

	"github.com/zoobzio/kneeboard"
)

type markupCodec struct {
	cfg Config
}

// New returns a markup codec with the given configuration.
func New(cfg Config) (kneeboard.Codec, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("markup config: %w", err)
	}
	return &markupCodec{cfg: cfg}, nil
}

// Default returns a markup codec with the canonical dialect
// configuration.
func Default() kneeboard.Codec {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *markupCodec) Format() kneeboard.Format {
	return kneeboard.FormatMarkup
}

func (c *markupCodec) ContentType() string {
	return "application/xml"
}

// Decode parses markup into a document. Syntax errors carry the line
// and byte offset; dialect violations carry a detail message.
func (c *markupCodec) Decode(data []byte) (*kneeboard.Document, error) {
	tag, node, err := ParseTree(c.cfg, data)
	if err != nil {
		return nil, err
	}
	return toDocument(c.cfg, tag, node)
}

// Encode serializes a document as markup with the XML declaration and
// two-space indentation.
func (c *markupCodec) Encode(doc *kneeboard.Document) ([]byte, error) {
	return RenderTree(c.cfg, tagBinder, fromDocument(c.cfg, doc))
}

// Sniff reports whether data looks like markup: the first byte past
// leading whitespace is '<'.
func (c *markupCodec) Sniff(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '<'
}

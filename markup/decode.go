package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/zoobzio/kneeboard"
)

// ParseTree parses XML into its ordered tree form, returning the root
// tag and the root node. Syntax is checked in a full tokenization pass
// before any structure is built, so a file with a late syntax error
// never yields a partial tree.
//
// Elements map to *Object: attributes under marked keys, character data
// under the text key, children under their tags. An element with no
// attributes and no children collapses to its text as a plain string.
// Repeated sibling tags group into an Array at the first occurrence;
// tags listed in ArrayTags are Arrays even with one child.
func ParseTree(cfg Config, data []byte) (string, any, error) {
	if err := checkSyntax(data); err != nil {
		return "", nil, err
	}

	d := &treeDecoder{
		cfg:      cfg,
		arraySet: cfg.arraySet(),
		dec:      xml.NewDecoder(bytes.NewReader(data)),
	}
	return d.root()
}

func checkSyntax(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tokenErr(dec, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return &kneeboard.SyntaxError{
					Err:    kneeboard.ErrMalformedMarkup,
					Offset: dec.InputOffset(),
					Detail: "multiple root elements",
				}
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				sawRoot = true
			}
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return &kneeboard.SyntaxError{
					Err:    kneeboard.ErrMalformedMarkup,
					Offset: dec.InputOffset(),
					Detail: "text outside root element",
				}
			}
		}
	}
	if !sawRoot {
		return &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedMarkup,
			Offset: dec.InputOffset(),
			Detail: "missing root element",
		}
	}
	return nil
}

// tokenErr maps a tokenizer error to a SyntaxError carrying the line
// and byte offset.
func tokenErr(dec *xml.Decoder, err error) error {
	se := &kneeboard.SyntaxError{
		Err:    kneeboard.ErrMalformedMarkup,
		Offset: dec.InputOffset(),
		Detail: err.Error(),
	}
	var xe *xml.SyntaxError
	if errors.As(err, &xe) {
		se.Line = xe.Line
		se.Detail = xe.Msg
	}
	return se
}

type treeDecoder struct {
	cfg      Config
	arraySet map[string]bool
	dec      *xml.Decoder
}

func (d *treeDecoder) root() (string, any, error) {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			// checkSyntax accepted this input, so only EOF without a
			// root could land here, and it did not.
			return "", nil, tokenErr(d.dec, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			node, err := d.element(start)
			if err != nil {
				return "", nil, err
			}
			return start.Name.Local, node, nil
		}
	}
}

func (d *treeDecoder) element(start xml.StartElement) (any, error) {
	obj := NewObject()
	for _, attr := range start.Attr {
		obj.Set(d.cfg.AttributeMarker+attr.Name.Local, attr.Value)
	}

	var text strings.Builder
	hasChildren := false
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, tokenErr(d.dec, err)
		}
		done := false
		switch t := tok.(type) {
		case xml.StartElement:
			hasChildren = true
			child, err := d.element(t)
			if err != nil {
				return nil, err
			}
			d.appendChild(obj, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			done = true
		}
		if done {
			break
		}
	}

	trimmed := strings.TrimSpace(text.String())
	if !hasChildren && len(start.Attr) == 0 {
		return trimmed, nil
	}
	if trimmed != "" {
		obj.Set(d.cfg.TextKey, trimmed)
	}
	return obj, nil
}

func (d *treeDecoder) appendChild(obj *Object, tag string, child any) {
	existing, ok := obj.Get(tag)
	if !ok {
		if d.arraySet[tag] {
			obj.Set(tag, Array{child})
		} else {
			obj.Set(tag, child)
		}
		return
	}
	if arr, isArray := existing.(Array); isArray {
		obj.Set(tag, append(arr, child))
		return
	}
	obj.Set(tag, Array{existing, child})
}

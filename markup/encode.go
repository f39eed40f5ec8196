package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// RenderTree serializes a tree as XML with the declaration header and
// two-space indentation. Attributes render in pair order; Array values
// render as repeated elements under the same tag.
func RenderTree(cfg Config, tag string, node any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	e := &treeEncoder{cfg: cfg, buf: &buf}
	if err := e.node(tag, node, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type treeEncoder struct {
	cfg Config
	buf *bytes.Buffer
}

func (e *treeEncoder) node(tag string, node any, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch v := node.(type) {
	case string:
		if v == "" {
			fmt.Fprintf(e.buf, "%s<%s/>\n", indent, tag)
			return nil
		}
		fmt.Fprintf(e.buf, "%s<%s>", indent, tag)
		e.text(v)
		fmt.Fprintf(e.buf, "</%s>\n", tag)
		return nil
	case Array:
		for _, elem := range v {
			if err := e.node(tag, elem, depth); err != nil {
				return err
			}
		}
		return nil
	case *Object:
		return e.object(tag, v, depth)
	}
	return fmt.Errorf("render markup: unsupported node type %T at <%s>", node, tag)
}

func (e *treeEncoder) object(tag string, obj *Object, depth int) error {
	indent := strings.Repeat("  ", depth)

	var attrs, children []Pair
	text := ""
	for _, p := range obj.Pairs() {
		switch {
		case strings.HasPrefix(p.Key, e.cfg.AttributeMarker):
			attrs = append(attrs, p)
		case p.Key == e.cfg.TextKey:
			s, ok := p.Value.(string)
			if !ok {
				return fmt.Errorf("render markup: text of <%s> must be a string, got %T", tag, p.Value)
			}
			text = s
		default:
			children = append(children, p)
		}
	}

	fmt.Fprintf(e.buf, "%s<%s", indent, tag)
	for _, a := range attrs {
		s, ok := a.Value.(string)
		if !ok {
			return fmt.Errorf("render markup: attribute %s of <%s> must be a string, got %T",
				strings.TrimPrefix(a.Key, e.cfg.AttributeMarker), tag, a.Value)
		}
		fmt.Fprintf(e.buf, " %s=\"", strings.TrimPrefix(a.Key, e.cfg.AttributeMarker))
		e.text(s)
		e.buf.WriteByte('"')
	}

	switch {
	case len(children) == 0 && text == "":
		e.buf.WriteString("/>\n")
	case len(children) == 0:
		e.buf.WriteByte('>')
		e.text(text)
		fmt.Fprintf(e.buf, "</%s>\n", tag)
	default:
		e.buf.WriteString(">\n")
		if text != "" {
			e.buf.WriteString(strings.Repeat("  ", depth+1))
			e.text(text)
			e.buf.WriteByte('\n')
		}
		for _, c := range children {
			if err := e.node(c.Key, c.Value, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(e.buf, "%s</%s>\n", indent, tag)
	}
	return nil
}

// text writes escaped character data or attribute value bytes.
// EscapeText only fails when the writer fails, and a Buffer does not.
func (e *treeEncoder) text(s string) {
	_ = xml.EscapeText(e.buf, []byte(s))
}

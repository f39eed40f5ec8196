package markup

import (
	"fmt"
	"strconv"

	"github.com/zoobzio/kneeboard"
)

// Checklist dialect tags and attributes.
const (
	tagBinder    = "binder"
	tagGroup     = "group"
	tagChecklist = "checklist"
	tagItem      = "item"

	attrTitle    = "title"
	attrCategory = "category"
	attrNote     = "note"
	attrKind     = "kind"
	attrIndent   = "indent"
	attrAction   = "action"
	attrTarget   = "target"
	attrBand     = "band"
)

func dialectErr(format string, args ...any) error {
	return &kneeboard.SyntaxError{
		Err:    kneeboard.ErrMalformedMarkup,
		Offset: -1,
		Detail: fmt.Sprintf(format, args...),
	}
}

// toDocument maps a parsed tree to a document, enforcing the dialect:
// the root must be <binder>, groups must carry a known category, and
// enum attributes must carry canonical values.
func toDocument(cfg Config, tag string, node any) (*kneeboard.Document, error) {
	if tag != tagBinder {
		return nil, dialectErr("root element must be <%s>, found <%s>", tagBinder, tag)
	}

	switch root := node.(type) {
	case string:
		if root != "" {
			return nil, dialectErr("unexpected text in <%s>", tagBinder)
		}
		return &kneeboard.Document{}, nil
	case *Object:
		doc := &kneeboard.Document{Title: attrValue(cfg, root, attrTitle)}
		for _, gnode := range childNodes(root, tagGroup) {
			g, err := toGroup(cfg, gnode)
			if err != nil {
				return nil, err
			}
			doc.Groups = append(doc.Groups, g)
		}
		return doc, nil
	}
	return nil, dialectErr("malformed <%s> element", tagBinder)
}

func toGroup(cfg Config, node any) (kneeboard.Group, error) {
	obj, ok := node.(*Object)
	if !ok {
		return kneeboard.Group{}, dialectErr("missing %s attribute in <%s>", attrCategory, tagGroup)
	}
	category, ok := attr(cfg, obj, attrCategory)
	if !ok {
		return kneeboard.Group{}, dialectErr("missing %s attribute in <%s>", attrCategory, tagGroup)
	}
	if !kneeboard.IsValidCategory(kneeboard.Category(category)) {
		return kneeboard.Group{}, dialectErr("unknown category %q in <%s>", category, tagGroup)
	}

	g := kneeboard.Group{
		Category: kneeboard.Category(category),
		Title:    attrValue(cfg, obj, attrTitle),
	}
	for _, cnode := range childNodes(obj, tagChecklist) {
		cl, err := toChecklist(cfg, cnode)
		if err != nil {
			return kneeboard.Group{}, err
		}
		g.Checklists = append(g.Checklists, cl)
	}
	return g, nil
}

func toChecklist(cfg Config, node any) (kneeboard.Checklist, error) {
	switch v := node.(type) {
	case string:
		if v != "" {
			return kneeboard.Checklist{}, dialectErr("unexpected text in <%s>", tagChecklist)
		}
		return kneeboard.Checklist{}, nil
	case *Object:
		cl := kneeboard.Checklist{
			Title: attrValue(cfg, v, attrTitle),
			Note:  attrValue(cfg, v, attrNote),
		}
		for _, inode := range childNodes(v, tagItem) {
			it, err := toItem(cfg, inode)
			if err != nil {
				return kneeboard.Checklist{}, err
			}
			cl.Items = append(cl.Items, it)
		}
		return cl, nil
	}
	return kneeboard.Checklist{}, dialectErr("malformed <%s> element", tagChecklist)
}

func toItem(cfg Config, node any) (kneeboard.Item, error) {
	switch v := node.(type) {
	case string:
		// A bare <item>TEXT</item> is a plain text line.
		return kneeboard.Item{Kind: kneeboard.KindPlainText, Text: v}, nil
	case *Object:
		it := kneeboard.Item{Kind: kneeboard.KindPlainText}

		if kind, ok := attr(cfg, v, attrKind); ok {
			if !kneeboard.IsValidItemKind(kneeboard.ItemKind(kind)) {
				return kneeboard.Item{}, dialectErr("unknown kind %q in <%s>", kind, tagItem)
			}
			it.Kind = kneeboard.ItemKind(kind)
		}
		if indent, ok := attr(cfg, v, attrIndent); ok {
			n, err := strconv.Atoi(indent)
			if err != nil {
				return kneeboard.Item{}, dialectErr("bad indent %q in <%s>", indent, tagItem)
			}
			it.Indent = n
		}
		if action, ok := attr(cfg, v, attrAction); ok {
			if !kneeboard.IsValidCompletionAction(kneeboard.CompletionAction(action)) {
				return kneeboard.Item{}, dialectErr("unknown action %q in <%s>", action, tagItem)
			}
			it.Action = kneeboard.CompletionAction(action)
		}
		if target, ok := attr(cfg, v, attrTarget); ok && target != "" {
			if !kneeboard.IsValidScratchpadTarget(kneeboard.ScratchpadTarget(target)) {
				return kneeboard.Item{}, dialectErr("unknown target %q in <%s>", target, tagItem)
			}
			it.Target = kneeboard.ScratchpadTarget(target)
		}
		if band, ok := attr(cfg, v, attrBand); ok && band != "" {
			if !kneeboard.IsValidFrequencyBand(kneeboard.FrequencyBand(band)) {
				return kneeboard.Item{}, dialectErr("unknown band %q in <%s>", band, tagItem)
			}
			it.Band = kneeboard.FrequencyBand(band)
		}
		if text, ok := v.Get(cfg.TextKey); ok {
			if s, isString := text.(string); isString {
				it.Text = s
			}
		}
		return it, nil
	}
	return kneeboard.Item{}, dialectErr("malformed <%s> element", tagItem)
}

// attr returns the named attribute's value and whether it is present.
func attr(cfg Config, obj *Object, name string) (string, bool) {
	v, ok := obj.Get(cfg.AttributeMarker + name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// attrValue returns the named attribute's value, or "" when absent.
func attrValue(cfg Config, obj *Object, name string) string {
	s, _ := attr(cfg, obj, name)
	return s
}

// childNodes returns the children under tag, lifting a lone child into
// a one-element slice so non-array configurations still decode.
func childNodes(obj *Object, tag string) []any {
	v, ok := obj.Get(tag)
	if !ok {
		return nil
	}
	if arr, isArray := v.(Array); isArray {
		return arr
	}
	return []any{v}
}

// fromDocument maps a document to its tree form. Attributes with zero
// values are omitted, and a plain text item with no other attributes
// collapses to a bare text element.
func fromDocument(cfg Config, doc *kneeboard.Document) *Object {
	root := NewObject()
	if doc.Title != "" {
		root.Set(cfg.AttributeMarker+attrTitle, doc.Title)
	}
	if len(doc.Groups) > 0 {
		groups := make(Array, 0, len(doc.Groups))
		for _, g := range doc.Groups {
			groups = append(groups, fromGroup(cfg, g))
		}
		root.Set(tagGroup, groups)
	}
	return root
}

func fromGroup(cfg Config, g kneeboard.Group) *Object {
	obj := NewObject()
	obj.Set(cfg.AttributeMarker+attrCategory, string(g.Category))
	if g.Title != "" {
		obj.Set(cfg.AttributeMarker+attrTitle, g.Title)
	}
	if len(g.Checklists) > 0 {
		checklists := make(Array, 0, len(g.Checklists))
		for _, cl := range g.Checklists {
			checklists = append(checklists, fromChecklist(cfg, cl))
		}
		obj.Set(tagChecklist, checklists)
	}
	return obj
}

func fromChecklist(cfg Config, cl kneeboard.Checklist) *Object {
	obj := NewObject()
	if cl.Title != "" {
		obj.Set(cfg.AttributeMarker+attrTitle, cl.Title)
	}
	if cl.Note != "" {
		obj.Set(cfg.AttributeMarker+attrNote, cl.Note)
	}
	if len(cl.Items) > 0 {
		items := make(Array, 0, len(cl.Items))
		for _, it := range cl.Items {
			items = append(items, fromItem(cfg, it))
		}
		obj.Set(tagItem, items)
	}
	return obj
}

func fromItem(cfg Config, it kneeboard.Item) any {
	obj := NewObject()
	if it.Kind != kneeboard.KindPlainText {
		obj.Set(cfg.AttributeMarker+attrKind, string(it.Kind))
	}
	if it.Indent != 0 {
		obj.Set(cfg.AttributeMarker+attrIndent, strconv.Itoa(it.Indent))
	}
	if it.Action != kneeboard.ActionNone {
		obj.Set(cfg.AttributeMarker+attrAction, string(it.Action))
	}
	if it.Target != "" {
		obj.Set(cfg.AttributeMarker+attrTarget, string(it.Target))
	}
	if it.Band != "" {
		obj.Set(cfg.AttributeMarker+attrBand, string(it.Band))
	}
	if obj.Len() == 0 {
		return it.Text
	}
	if it.Text != "" {
		obj.Set(cfg.TextKey, it.Text)
	}
	return obj
}

// Package binder provides a Codec for the structured JSON container
// format used by checklist binder packages.
//
// A container wraps one checklist object in a versioned envelope.
// Group identity travels as a numeric (type, subtype) pair resolved
// through a GroupTable; item kinds and completion actions travel as
// numeric codes. Decoding is all or nothing: the first syntax error,
// shape violation, version mismatch, or unknown code aborts the whole
// import.
package binder

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/zoobzio/kneeboard"
)

// Envelope values pinned by the format.
const (
	DataModelVersion   = 1
	PackageTypeVersion = 1
	TypeTag            = "checklistBinder"
)

type container struct {
	DataModelVersion   int      `json:"dataModelVersion"`
	PackageTypeVersion int      `json:"packageTypeVersion"`
	Type               string   `json:"type"`
	Objects            []object `json:"objects"`
}

type object struct {
	Name   string  `json:"name"`
	Groups []group `json:"groups"`
}

type group struct {
	Type       int         `json:"type"`
	Subtype    int         `json:"subtype"`
	Checklists []checklist `json:"checklists"`
}

type checklist struct {
	Name  string `json:"name"`
	Note  string `json:"note,omitempty"`
	Items []item `json:"items,omitempty"`
}

type item struct {
	Type   int    `json:"type"`
	Action int    `json:"action,omitempty"`
	Level  int    `json:"level,omitempty"`
	Text   string `json:"text,omitempty"`
}

// itemCoding is the joint (kind, parameter) identity behind a numeric
// item type code.
type itemCoding struct {
	kind   kneeboard.ItemKind
	target kneeboard.ScratchpadTarget
	band   kneeboard.FrequencyBand
}

// itemCodes assigns type codes by position. Parameterized kinds get one
// code per parameter value, so the mapping is total over valid items.
var itemCodes = []itemCoding{
	{kind: kneeboard.KindPlainText},
	{kind: kneeboard.KindNote},
	{kind: kneeboard.KindLocalAltimeter},
	{kind: kneeboard.KindOpenNearest},
	{kind: kneeboard.KindOpenScratchpad, target: kneeboard.TargetGeneral},
	{kind: kneeboard.KindOpenScratchpad, target: kneeboard.TargetClearance},
	{kind: kneeboard.KindFrequencyPrompt, band: kneeboard.BandCom},
	{kind: kneeboard.KindFrequencyPrompt, band: kneeboard.BandNav},
}

var codeByItem = buildItemCodeIndex()

func buildItemCodeIndex() map[itemCoding]int {
	m := make(map[itemCoding]int, len(itemCodes))
	for code, c := range itemCodes {
		m[c] = code
	}
	return m
}

// actionCodes assigns action codes by position, zero value first.
var actionCodes = kneeboard.CompletionActions()

var codeByAction = buildActionCodeIndex()

func buildActionCodeIndex() map[kneeboard.CompletionAction]int {
	m := make(map[kneeboard.CompletionAction]int, len(actionCodes))
	for code, a := range actionCodes {
		m[a] = code
	}
	return m
}

type binderCodec struct {
	table *GroupTable
}

// New returns the container codec using the built-in group table.
func New() kneeboard.Codec {
	return NewWithTable(DefaultTable())
}

// NewWithTable returns a container codec that resolves group identities
// through the given table.
func NewWithTable(table *GroupTable) kneeboard.Codec {
	return &binderCodec{table: table}
}

func (c *binderCodec) Format() kneeboard.Format {
	return kneeboard.FormatBinder
}

func (c *binderCodec) ContentType() string {
	return "application/x-checklist-binder+json"
}

// Decode parses a container file into a document.
func (c *binderCodec) Decode(data []byte) (*kneeboard.Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedContainer,
			Offset: jsonOffset(err),
			Detail: err.Error(),
		}
	}

	if err := compiledSchema.Validate(raw); err != nil {
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedContainer,
			Offset: -1,
			Detail: schemaDetail(err),
		}
	}

	var env container
	if err := json.Unmarshal(data, &env); err != nil {
		// Schema passed but typed decode did not, e.g. a version
		// written as 1.0.
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedContainer,
			Offset: jsonOffset(err),
			Detail: err.Error(),
		}
	}

	if env.DataModelVersion != DataModelVersion {
		return nil, &kneeboard.ContainerError{
			Err:   kneeboard.ErrUnsupportedContainerVersion,
			Field: "dataModelVersion",
			Value: strconv.Itoa(env.DataModelVersion),
		}
	}
	if env.PackageTypeVersion != PackageTypeVersion {
		return nil, &kneeboard.ContainerError{
			Err:   kneeboard.ErrUnsupportedContainerVersion,
			Field: "packageTypeVersion",
			Value: strconv.Itoa(env.PackageTypeVersion),
		}
	}
	if env.Type != TypeTag {
		return nil, &kneeboard.ContainerError{
			Err:   kneeboard.ErrUnsupportedContainerVersion,
			Field: "type",
			Value: strconv.Quote(env.Type),
		}
	}
	if len(env.Objects) != 1 {
		return nil, &kneeboard.ContainerError{
			Err:   kneeboard.ErrUnsupportedContainerVersion,
			Field: "objects",
			Value: strconv.Itoa(len(env.Objects)),
		}
	}

	obj := env.Objects[0]
	doc := &kneeboard.Document{Title: obj.Name}
	for _, g := range obj.Groups {
		entry, ok := c.table.Lookup(GroupKey{Type: g.Type, Subtype: g.Subtype})
		if !ok {
			return nil, &kneeboard.GroupKeyError{
				Err:     kneeboard.ErrUnsupportedGroupKey,
				Type:    g.Type,
				Subtype: g.Subtype,
			}
		}
		kg := kneeboard.Group{Category: entry.Category, Title: entry.Title}
		for _, cl := range g.Checklists {
			kc := kneeboard.Checklist{Title: cl.Name, Note: cl.Note}
			for _, it := range cl.Items {
				ki, err := decodeItem(it)
				if err != nil {
					return nil, err
				}
				kc.Items = append(kc.Items, ki)
			}
			kg.Checklists = append(kg.Checklists, kc)
		}
		doc.Groups = append(doc.Groups, kg)
	}
	return doc, nil
}

func decodeItem(it item) (kneeboard.Item, error) {
	if it.Type < 0 || it.Type >= len(itemCodes) {
		return kneeboard.Item{}, &kneeboard.CodeError{
			Err:  kneeboard.ErrUnsupportedItemCode,
			Axis: "kind",
			Code: it.Type,
		}
	}
	if it.Action < 0 || it.Action >= len(actionCodes) {
		return kneeboard.Item{}, &kneeboard.CodeError{
			Err:  kneeboard.ErrUnsupportedItemCode,
			Axis: "action",
			Code: it.Action,
		}
	}
	coding := itemCodes[it.Type]
	return kneeboard.Item{
		Kind:   coding.kind,
		Text:   it.Text,
		Indent: it.Level,
		Target: coding.target,
		Band:   coding.band,
		Action: actionCodes[it.Action],
	}, nil
}

// Encode serializes a document as a container file. A group title with
// no table entry falls back to its category's default key; nothing
// else falls back.
func (c *binderCodec) Encode(doc *kneeboard.Document) ([]byte, error) {
	groups := make([]group, 0, len(doc.Groups))
	for gi, g := range doc.Groups {
		key, ok := c.table.Key(g.Category, g.Title)
		if !ok {
			key = c.table.Default(g.Category)
		}
		checklists := make([]checklist, 0, len(g.Checklists))
		for ci, cl := range g.Checklists {
			wire := checklist{Name: cl.Title, Note: cl.Note}
			for ii, it := range cl.Items {
				code, ok := codeByItem[itemCoding{kind: it.Kind, target: it.Target, band: it.Band}]
				if !ok {
					return nil, fmt.Errorf("%w: no item code for kind %q at groups[%d].checklists[%d].items[%d]",
						kneeboard.ErrInvalidDocument, it.Kind, gi, ci, ii)
				}
				action, ok := codeByAction[it.Action]
				if !ok {
					return nil, fmt.Errorf("%w: no action code for %q at groups[%d].checklists[%d].items[%d]",
						kneeboard.ErrInvalidDocument, it.Action, gi, ci, ii)
				}
				wire.Items = append(wire.Items, item{
					Type:   code,
					Action: action,
					Level:  it.Indent,
					Text:   it.Text,
				})
			}
			checklists = append(checklists, wire)
		}
		groups = append(groups, group{
			Type:       key.Type,
			Subtype:    key.Subtype,
			Checklists: checklists,
		})
	}

	env := container{
		DataModelVersion:   DataModelVersion,
		PackageTypeVersion: PackageTypeVersion,
		Type:               TypeTag,
		Objects:            []object{{Name: doc.Title, Groups: groups}},
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode binder: %w", err)
	}
	return append(data, '\n'), nil
}

// Sniff reports whether data carries the container type tag.
func (c *binderCodec) Sniff(data []byte) bool {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Type == TypeTag
}

// jsonOffset extracts the byte offset from a json decode error, or -1
// when the error carries none.
func jsonOffset(err error) int64 {
	switch e := err.(type) {
	case *json.SyntaxError:
		return e.Offset
	case *json.UnmarshalTypeError:
		return e.Offset
	}
	return -1
}

package kneeboard

// MaxIndent is the deepest nesting level an item may carry.
const MaxIndent = 4

// Document is a checklist binder: the full set of checklists for one
// aircraft, organized into groups by category.
//
// Source records which format the document was decoded from. It is session
// metadata: the Registry stamps it after a successful decode, Equal ignores
// it, and no codec serializes it.
type Document struct {
	Title  string  `json:"title" yaml:"title"`
	Source Format  `json:"-" yaml:"-"`
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Group is a category-classified collection of checklists.
type Group struct {
	Category   Category    `json:"category" yaml:"category"`
	Title      string      `json:"title" yaml:"title"`
	Checklists []Checklist `json:"checklists,omitempty" yaml:"checklists,omitempty"`
}

// Checklist is a titled sequence of items with an optional note.
type Checklist struct {
	Title string `json:"title" yaml:"title"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Item is a single checklist line.
//
// Target is meaningful only when Kind is KindOpenScratchpad, and Band only
// when Kind is KindFrequencyPrompt; Validate enforces both pairings.
type Item struct {
	Kind   ItemKind         `json:"kind" yaml:"kind"`
	Text   string           `json:"text,omitempty" yaml:"text,omitempty"`
	Indent int              `json:"indent,omitempty" yaml:"indent,omitempty"`
	Target ScratchpadTarget `json:"target,omitempty" yaml:"target,omitempty"`
	Band   FrequencyBand    `json:"band,omitempty" yaml:"band,omitempty"`
	Action CompletionAction `json:"action,omitempty" yaml:"action,omitempty"`
}

// Clone returns a deep copy. Modifications to the clone do not affect the
// original document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Title: d.Title, Source: d.Source}
	if d.Groups != nil {
		out.Groups = make([]Group, len(d.Groups))
		for i := range d.Groups {
			out.Groups[i] = d.Groups[i].clone()
		}
	}
	return out
}

func (g Group) clone() Group {
	out := Group{Category: g.Category, Title: g.Title}
	if g.Checklists != nil {
		out.Checklists = make([]Checklist, len(g.Checklists))
		for i := range g.Checklists {
			out.Checklists[i] = g.Checklists[i].clone()
		}
	}
	return out
}

func (c Checklist) clone() Checklist {
	out := Checklist{Title: c.Title, Note: c.Note}
	if c.Items != nil {
		out.Items = make([]Item, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// Equal reports whether two documents carry the same content. Source is
// ignored; nil and empty slices compare equal.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Title != o.Title || len(d.Groups) != len(o.Groups) {
		return false
	}
	for i := range d.Groups {
		if !d.Groups[i].equal(o.Groups[i]) {
			return false
		}
	}
	return true
}

func (g Group) equal(o Group) bool {
	if g.Category != o.Category || g.Title != o.Title || len(g.Checklists) != len(o.Checklists) {
		return false
	}
	for i := range g.Checklists {
		if !g.Checklists[i].equal(o.Checklists[i]) {
			return false
		}
	}
	return true
}

func (c Checklist) equal(o Checklist) bool {
	if c.Title != o.Title || c.Note != o.Note || len(c.Items) != len(o.Items) {
		return false
	}
	for i := range c.Items {
		if c.Items[i] != o.Items[i] {
			return false
		}
	}
	return true
}

// GroupCount returns the number of groups. Safe on a nil document.
func (d *Document) GroupCount() int {
	if d == nil {
		return 0
	}
	return len(d.Groups)
}

// ItemCount returns the total number of items across all checklists.
// Safe on a nil document.
func (d *Document) ItemCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for gi := range d.Groups {
		for ci := range d.Groups[gi].Checklists {
			n += len(d.Groups[gi].Checklists[ci].Items)
		}
	}
	return n
}

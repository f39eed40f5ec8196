package binder

import (
	"fmt"

	"github.com/zoobzio/kneeboard"
)

// GroupKey is the numeric identity of a group in a container file.
type GroupKey struct {
	Type    int
	Subtype int
}

// GroupEntry binds a numeric key to its canonical identity.
type GroupEntry struct {
	Key      GroupKey
	Category kneeboard.Category
	Title    string
}

type identity struct {
	category kneeboard.Category
	title    string
}

// GroupTable maps group identities between numeric container keys and
// canonical (category, title) pairs. Tables are immutable after
// construction and safe for concurrent use.
type GroupTable struct {
	entries  []GroupEntry
	byKey    map[GroupKey]GroupEntry
	byName   map[identity]GroupKey
	defaults map[kneeboard.Category]GroupKey
}

// NewGroupTable builds a table from entries and per-category default
// keys. Entries must have valid categories, unique numeric keys, and
// unique canonical identities. Every category must have a default, and
// every default must name an existing entry.
func NewGroupTable(entries []GroupEntry, defaults map[kneeboard.Category]GroupKey) (*GroupTable, error) {
	t := &GroupTable{
		entries:  make([]GroupEntry, len(entries)),
		byKey:    make(map[GroupKey]GroupEntry, len(entries)),
		byName:   make(map[identity]GroupKey, len(entries)),
		defaults: make(map[kneeboard.Category]GroupKey, len(defaults)),
	}
	copy(t.entries, entries)

	for _, e := range entries {
		if !kneeboard.IsValidCategory(e.Category) {
			return nil, fmt.Errorf("group table: entry (%d,%d) has unknown category %q", e.Key.Type, e.Key.Subtype, e.Category)
		}
		if _, dup := t.byKey[e.Key]; dup {
			return nil, fmt.Errorf("group table: duplicate key (%d,%d)", e.Key.Type, e.Key.Subtype)
		}
		id := identity{e.Category, e.Title}
		if _, dup := t.byName[id]; dup {
			return nil, fmt.Errorf("group table: duplicate identity (%s, %q)", e.Category, e.Title)
		}
		t.byKey[e.Key] = e
		t.byName[id] = e.Key
	}

	for cat, key := range defaults {
		if _, ok := t.byKey[key]; !ok {
			return nil, fmt.Errorf("group table: default for %s names missing entry (%d,%d)", cat, key.Type, key.Subtype)
		}
		t.defaults[cat] = key
	}
	for _, cat := range kneeboard.Categories() {
		if _, ok := t.defaults[cat]; !ok {
			return nil, fmt.Errorf("group table: no default for category %s", cat)
		}
	}

	return t, nil
}

// Lookup resolves a numeric key to its canonical identity.
func (t *GroupTable) Lookup(key GroupKey) (GroupEntry, bool) {
	e, ok := t.byKey[key]
	return e, ok
}

// Key resolves a canonical identity to its numeric key.
func (t *GroupTable) Key(category kneeboard.Category, title string) (GroupKey, bool) {
	key, ok := t.byName[identity{category, title}]
	return key, ok
}

// Default returns the fallback key for a category. Encoding uses it for
// group titles with no table entry.
func (t *GroupTable) Default(category kneeboard.Category) GroupKey {
	return t.defaults[category]
}

// Entries returns the table entries in construction order.
// The slice is a fresh copy on every call.
func (t *GroupTable) Entries() []GroupEntry {
	out := make([]GroupEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// DefaultTable returns the built-in group table. The table is shared;
// callers must not rely on identity comparisons against it.
func DefaultTable() *GroupTable {
	return defaultTable
}

var defaultTable = mustTable(defaultEntries(), map[kneeboard.Category]GroupKey{
	kneeboard.CategoryNormal:    {0, 10},
	kneeboard.CategoryAbnormal:  {1, 3},
	kneeboard.CategoryEmergency: {2, 4},
})

func mustTable(entries []GroupEntry, defaults map[kneeboard.Category]GroupKey) *GroupTable {
	t, err := NewGroupTable(entries, defaults)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultEntries() []GroupEntry {
	normal := []string{
		"Preflight",
		"Before Start",
		"Engine Start",
		"Before Taxi",
		"Before Takeoff",
		"Cruise",
		"Descent",
		"Before Landing",
		"After Landing",
		"Shutdown",
		"Normal Procedures",
	}
	abnormal := []string{
		"Alternator Failure",
		"Low Vacuum",
		"Pitot Static Failure",
		"Abnormal Procedures",
	}
	emergency := []string{
		"Engine Failure In Flight",
		"Engine Fire In Flight",
		"Electrical Fire",
		"Forced Landing",
		"Emergency Procedures",
	}

	var entries []GroupEntry
	add := func(typ int, category kneeboard.Category, titles []string) {
		for sub, title := range titles {
			entries = append(entries, GroupEntry{
				Key:      GroupKey{Type: typ, Subtype: sub},
				Category: category,
				Title:    title,
			})
		}
	}
	add(0, kneeboard.CategoryNormal, normal)
	add(1, kneeboard.CategoryAbnormal, abnormal)
	add(2, kneeboard.CategoryEmergency, emergency)
	return entries
}

package testing

import (
	"testing"

	"github.com/zoobzio/kneeboard"
)

func TestFixturesAreValid(t *testing.T) {
	fixtures := map[string]func() *kneeboard.Document{
		"Sample":      Sample,
		"Minimal":     Minimal,
		"CompactSafe": CompactSafe,
	}

	for name, fn := range fixtures {
		t.Run(name, func(t *testing.T) {
			if vs := kneeboard.Validate(fn()); len(vs) > 0 {
				t.Errorf("fixture has violations: %v", vs)
			}
		})
	}
}

func TestFixturesAreFresh(t *testing.T) {
	doc := Sample()
	doc.Title = "mutated"
	doc.Groups[0].Checklists[0].Items[0].Text = "mutated"

	if again := Sample(); !again.Equal(Sample()) || again.Title == "mutated" {
		t.Error("Sample() should return a fresh copy on every call")
	}
}

func TestSampleCoverage(t *testing.T) {
	doc := Sample()

	kinds := make(map[kneeboard.ItemKind]bool)
	actions := make(map[kneeboard.CompletionAction]bool)
	targets := make(map[kneeboard.ScratchpadTarget]bool)
	bands := make(map[kneeboard.FrequencyBand]bool)
	categories := make(map[kneeboard.Category]bool)
	for _, g := range doc.Groups {
		categories[g.Category] = true
		for _, c := range g.Checklists {
			for _, it := range c.Items {
				kinds[it.Kind] = true
				actions[it.Action] = true
				if it.Target != "" {
					targets[it.Target] = true
				}
				if it.Band != "" {
					bands[it.Band] = true
				}
			}
		}
	}

	for _, k := range kneeboard.ItemKinds() {
		if !kinds[k] {
			t.Errorf("Sample() carries no item of kind %q", k)
		}
	}
	for _, a := range kneeboard.CompletionActions() {
		if !actions[a] {
			t.Errorf("Sample() carries no item with action %q", a)
		}
	}
	for _, tg := range kneeboard.ScratchpadTargets() {
		if !targets[tg] {
			t.Errorf("Sample() carries no item with target %q", tg)
		}
	}
	for _, b := range kneeboard.FrequencyBands() {
		if !bands[b] {
			t.Errorf("Sample() carries no item with band %q", b)
		}
	}
	for _, c := range kneeboard.Categories() {
		if !categories[c] {
			t.Errorf("Sample() carries no group of category %q", c)
		}
	}
}

func TestCompactSafeStaysRepresentable(t *testing.T) {
	representable := map[kneeboard.ItemKind]bool{
		kneeboard.KindPlainText:      true,
		kneeboard.KindNote:           true,
		kneeboard.KindLocalAltimeter: true,
	}

	for gi, g := range CompactSafe().Groups {
		for ci, c := range g.Checklists {
			for ii, it := range c.Items {
				if !representable[it.Kind] {
					t.Errorf("groups[%d].checklists[%d].items[%d] kind %q is not compact-representable", gi, ci, ii, it.Kind)
				}
				for _, r := range it.Text {
					if r > 0xFF {
						t.Errorf("groups[%d].checklists[%d].items[%d] text carries non-Latin-1 rune %q", gi, ci, ii, r)
					}
				}
			}
		}
	}
}

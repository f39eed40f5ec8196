package kneeboard

import "fmt"

// Violation describes one canonical-model invariant broken by a document.
// Path locates the offending field ("groups[0].checklists[1].items[2].kind").
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// Validate checks a document against the canonical model's invariants and
// returns every violation found. A nil slice means the document is valid.
//
// Violations are reported, never repaired. The Registry runs Validate after
// every decode and before every encode; codecs themselves do not.
func Validate(doc *Document) []Violation {
	if doc == nil {
		return []Violation{{Path: "document", Message: "missing"}}
	}
	var vs []Violation
	for gi := range doc.Groups {
		g := &doc.Groups[gi]
		gPath := fmt.Sprintf("groups[%d]", gi)
		if !IsValidCategory(g.Category) {
			vs = append(vs, Violation{gPath + ".category", fmt.Sprintf("unknown category %q", string(g.Category))})
		}
		for ci := range g.Checklists {
			c := &g.Checklists[ci]
			cPath := fmt.Sprintf("%s.checklists[%d]", gPath, ci)
			for ii := range c.Items {
				vs = append(vs, itemViolations(&c.Items[ii], fmt.Sprintf("%s.items[%d]", cPath, ii))...)
			}
		}
	}
	return vs
}

func itemViolations(it *Item, path string) []Violation {
	var vs []Violation
	if !IsValidItemKind(it.Kind) {
		vs = append(vs, Violation{path + ".kind", fmt.Sprintf("unknown kind %q", string(it.Kind))})
	}
	if it.Indent < 0 || it.Indent > MaxIndent {
		vs = append(vs, Violation{path + ".indent", fmt.Sprintf("indent %d out of range 0..%d", it.Indent, MaxIndent)})
	}
	if it.Kind == KindOpenScratchpad {
		if it.Target == "" {
			vs = append(vs, Violation{path + ".target", "missing scratchpad target"})
		} else if !IsValidScratchpadTarget(it.Target) {
			vs = append(vs, Violation{path + ".target", fmt.Sprintf("unknown scratchpad target %q", string(it.Target))})
		}
	} else if it.Target != "" {
		vs = append(vs, Violation{path + ".target", fmt.Sprintf("scratchpad target %q on kind %q", string(it.Target), string(it.Kind))})
	}
	if it.Kind == KindFrequencyPrompt {
		if it.Band == "" {
			vs = append(vs, Violation{path + ".band", "missing frequency band"})
		} else if !IsValidFrequencyBand(it.Band) {
			vs = append(vs, Violation{path + ".band", fmt.Sprintf("unknown frequency band %q", string(it.Band))})
		}
	} else if it.Band != "" {
		vs = append(vs, Violation{path + ".band", fmt.Sprintf("frequency band %q on kind %q", string(it.Band), string(it.Kind))})
	}
	if !IsValidCompletionAction(it.Action) {
		vs = append(vs, Violation{path + ".action", fmt.Sprintf("unknown completion action %q", string(it.Action))})
	}
	return vs
}

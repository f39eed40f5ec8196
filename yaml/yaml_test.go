package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/kneeboard"
)

var _ kneeboard.Codec = (*yamlCodec)(nil)

func testDoc() *kneeboard.Document {
	return &kneeboard.Document{
		Title: "N123AB",
		Groups: []kneeboard.Group{
			{
				Category: kneeboard.CategoryEmergency,
				Title:    "Engine Failure In Flight",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Restart",
						Note:  "Establish best glide first",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Airspeed - 68 KIAS"},
							{Kind: kneeboard.KindNote, Text: "If restart fails, continue below", Indent: 1},
							{Kind: kneeboard.KindOpenScratchpad, Text: "Squawk", Target: kneeboard.TargetClearance},
							{Kind: kneeboard.KindFrequencyPrompt, Text: "Guard", Band: kneeboard.BandCom, Action: kneeboard.ActionAdvance},
						},
					},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	codec := New()
	doc := testDoc()

	data, err := codec.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	back, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !doc.Equal(back) {
		t.Error("round trip should return an equal document")
	}
}

func TestEncode_Shape(t *testing.T) {
	codec := New()
	data, err := codec.Encode(testDoc())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := string(data)
	for _, want := range []string{"title: N123AB", "category: emergency", "kind: frequencyPrompt", "target: clearance"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded output missing %s", want)
		}
	}
	for _, absent := range []string{"source:", "Source:"} {
		if strings.Contains(out, absent) {
			t.Errorf("encoded output should omit session metadata %s", absent)
		}
	}
}

func TestDecode_HandWritten(t *testing.T) {
	input := `title: N123AB
groups:
  - category: normal
    title: Preflight
    checklists:
      - title: Cabin
        items:
          - kind: plainText
            text: Documents - CHECK
          - kind: localAltimeter
`
	codec := New()
	doc, err := codec.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Title != "N123AB" {
		t.Errorf("Title = %q, want N123AB", doc.Title)
	}
	items := doc.Groups[0].Checklists[0].Items
	if len(items) != 2 || items[1].Kind != kneeboard.KindLocalAltimeter {
		t.Errorf("Items = %+v", items)
	}
}

func TestDecode_Anchors(t *testing.T) {
	input := `title: N123AB
groups:
  - category: normal
    title: Preflight
    checklists:
      - &runup
        title: Run-Up
        items:
          - kind: plainText
            text: Magnetos - CHECK
      - *runup
`
	codec := New()
	doc, err := codec.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	lists := doc.Groups[0].Checklists
	if len(lists) != 2 || lists[1].Title != "Run-Up" {
		t.Errorf("Checklists = %+v", lists)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed flow sequence", "groups: [unterminated"},
		{"unclosed quote", `title: "unterminated`},
		{"type mismatch", "groups: not a list"},
	}

	codec := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode([]byte(tt.input))
			if !errors.Is(err, kneeboard.ErrMalformedContainer) {
				t.Fatalf("Decode error = %v, want ErrMalformedContainer", err)
			}

			var se *kneeboard.SyntaxError
			if !errors.As(err, &se) {
				t.Fatal("errors.As should extract *kneeboard.SyntaxError")
			}
			if se.Offset != -1 {
				t.Errorf("Offset = %d, want -1 (yaml errors carry no offset)", se.Offset)
			}
			if se.Detail == "" {
				t.Error("Detail should carry the yaml error message")
			}
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	codec := New()
	doc, err := codec.Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Title != "" || len(doc.Groups) != 0 {
		t.Errorf("empty input should decode to a zero document, got %+v", doc)
	}
}

func TestRoundTrip_SpecialCharacters(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"newline", "line1\nline2"},
		{"colon", "Mixture - RICH: then lean"},
		{"unicode", "高度計 - SET"},
		{"leading dash", "- not a list"},
	}

	codec := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &kneeboard.Document{
				Title: "x",
				Groups: []kneeboard.Group{{
					Category: kneeboard.CategoryNormal,
					Title:    "G",
					Checklists: []kneeboard.Checklist{{
						Title: "C",
						Items: []kneeboard.Item{{Kind: kneeboard.KindPlainText, Text: tt.text}},
					}},
				}},
			}

			data, err := codec.Encode(doc)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, err := codec.Decode(data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			got := back.Groups[0].Checklists[0].Items[0].Text
			if got != tt.text {
				t.Errorf("round trip text = %q, want %q", got, tt.text)
			}
		})
	}
}

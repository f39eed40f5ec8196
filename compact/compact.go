// Package compact provides a Codec for the compact single-byte-text
// checklist format.
//
// A compact file is a line-oriented payload followed by a 4-byte
// little-endian IEEE CRC-32 trailer computed over every payload byte.
// Each payload line starts with a control byte that selects its role;
// text travels as Latin-1, one byte per rune. The format represents
// only the plainText, note, and localAltimeter item kinds.
package compact

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
	"unicode"

	"github.com/zoobzio/kneeboard"
)

// Magic is the required first payload line.
const Magic = "!CKL1"

const trailerSize = 4

// Control bytes, one per line role.
const (
	ctlMagic          = '!'
	ctlTitle          = '#'
	ctlGroupStart     = '{'
	ctlGroupEnd       = '}'
	ctlChecklistStart = '('
	ctlNote           = '|'
	ctlItem           = '*'
	ctlContinuation   = '+'
	ctlChecklistEnd   = ')'
	ctlEnd            = '.'
)

// Kind chars in the 3-byte item header.
const (
	kindPlain     = 'p'
	kindNote      = 'n'
	kindAltimeter = 'a'
)

var charForKind = map[kneeboard.ItemKind]byte{
	kneeboard.KindPlainText:      kindPlain,
	kneeboard.KindNote:           kindNote,
	kneeboard.KindLocalAltimeter: kindAltimeter,
}

var kindForChar = map[byte]kneeboard.ItemKind{
	kindPlain:     kneeboard.KindPlainText,
	kindNote:      kneeboard.KindNote,
	kindAltimeter: kneeboard.KindLocalAltimeter,
}

var digitForCategory = map[kneeboard.Category]byte{
	kneeboard.CategoryNormal:    '0',
	kneeboard.CategoryAbnormal:  '1',
	kneeboard.CategoryEmergency: '2',
}

var categoryForDigit = map[byte]kneeboard.Category{
	'0': kneeboard.CategoryNormal,
	'1': kneeboard.CategoryAbnormal,
	'2': kneeboard.CategoryEmergency,
}

// actionOrder assigns action digits by position, zero value first.
// Six actions, so digits run '0' through '5'.
var actionOrder = kneeboard.CompletionActions()

type compactCodec struct{}

// New returns the compact codec.
func New() kneeboard.Codec {
	return &compactCodec{}
}

func (c *compactCodec) Format() kneeboard.Format {
	return kneeboard.FormatCompact
}

func (c *compactCodec) ContentType() string {
	return "application/x-checklist-compact"
}

// Decode parses a compact file. The trailer checksum is verified before
// any line is examined, so corruption is reported as a checksum
// mismatch rather than whatever grammar error the flipped byte causes.
func (c *compactCodec) Decode(data []byte) (*kneeboard.Document, error) {
	if len(data) < len(Magic)+1+trailerSize {
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedLine,
			Offset: 0,
			Detail: "truncated file",
		}
	}

	payload := data[:len(data)-trailerSize]
	want := binary.LittleEndian.Uint32(data[len(data)-trailerSize:])
	got := crc32.ChecksumIEEE(payload)
	if want != got {
		return nil, &kneeboard.ChecksumError{
			Err:  kneeboard.ErrChecksumMismatch,
			Want: want,
			Got:  got,
		}
	}

	return parsePayload(payload)
}

type parser struct {
	doc       kneeboard.Document
	group     *kneeboard.Group
	checklist *kneeboard.Checklist
	lastItem  int
	lineNo    int
	sawMagic  bool
	sawTitle  bool
	sawNote   bool
	done      bool
}

func parsePayload(payload []byte) (*kneeboard.Document, error) {
	p := &parser{lastItem: -1}

	offset := 0
	rest := payload
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			rest = rest[i+1:]
		} else {
			rest = nil
		}
		p.lineNo++
		if err := p.line(offset, line); err != nil {
			return nil, err
		}
		offset += len(line) + 1
	}

	if !p.done {
		p.lineNo++
		return nil, p.errAt(len(payload), "missing end marker")
	}
	return &p.doc, nil
}

func (p *parser) errAt(offset int, detail string) error {
	return &kneeboard.SyntaxError{
		Err:    kneeboard.ErrMalformedLine,
		Offset: int64(offset),
		Line:   p.lineNo,
		Detail: detail,
	}
}

func (p *parser) line(offset int, line []byte) error {
	if p.done {
		return p.errAt(offset, "line after end marker")
	}
	if !p.sawMagic {
		if !bytes.Equal(line, []byte(Magic)) {
			return p.errAt(offset, fmt.Sprintf("first line must be %q", Magic))
		}
		p.sawMagic = true
		return nil
	}
	if len(line) == 0 {
		return p.errAt(offset, "empty line")
	}

	switch line[0] {
	case ctlMagic:
		return p.errAt(offset, "duplicate magic header")

	case ctlTitle:
		if p.sawTitle {
			return p.errAt(offset, "duplicate title")
		}
		if p.group != nil || len(p.doc.Groups) > 0 {
			return p.errAt(offset, "title after first group")
		}
		p.sawTitle = true
		p.doc.Title = decodeText(line[1:])

	case ctlGroupStart:
		if p.group != nil {
			return p.errAt(offset, "group inside group")
		}
		if len(line) < 2 {
			return p.errAt(offset, "missing category digit")
		}
		category, ok := categoryForDigit[line[1]]
		if !ok {
			return p.errAt(offset, fmt.Sprintf("bad category digit %q", line[1]))
		}
		p.group = &kneeboard.Group{Category: category, Title: decodeText(line[2:])}

	case ctlChecklistStart:
		if p.group == nil {
			return p.errAt(offset, "checklist outside group")
		}
		if p.checklist != nil {
			return p.errAt(offset, "checklist inside checklist")
		}
		p.checklist = &kneeboard.Checklist{Title: decodeText(line[1:])}
		p.lastItem = -1
		p.sawNote = false

	case ctlNote:
		if p.checklist == nil {
			return p.errAt(offset, "note outside checklist")
		}
		if p.sawNote {
			return p.errAt(offset, "duplicate note")
		}
		if len(p.checklist.Items) > 0 {
			return p.errAt(offset, "note after items")
		}
		p.sawNote = true
		p.checklist.Note = decodeText(line[1:])

	case ctlItem:
		if p.checklist == nil {
			return p.errAt(offset, "item outside checklist")
		}
		if len(line) < 4 {
			return p.errAt(offset, "truncated item header")
		}
		kind, ok := kindForChar[line[1]]
		if !ok {
			return p.errAt(offset, fmt.Sprintf("bad kind char %q", line[1]))
		}
		if line[2] < '0' || line[2] > '0'+kneeboard.MaxIndent {
			return p.errAt(offset, fmt.Sprintf("bad indent digit %q", line[2]))
		}
		if line[3] < '0' || int(line[3]-'0') >= len(actionOrder) {
			return p.errAt(offset, fmt.Sprintf("bad action digit %q", line[3]))
		}
		p.checklist.Items = append(p.checklist.Items, kneeboard.Item{
			Kind:   kind,
			Text:   decodeText(line[4:]),
			Indent: int(line[2] - '0'),
			Action: actionOrder[line[3]-'0'],
		})
		p.lastItem = len(p.checklist.Items) - 1

	case ctlContinuation:
		if p.checklist == nil || p.lastItem < 0 {
			return p.errAt(offset, "continuation without item")
		}
		p.checklist.Items[p.lastItem].Text += "\n" + decodeText(line[1:])

	case ctlChecklistEnd:
		if p.checklist == nil {
			return p.errAt(offset, "checklist end outside checklist")
		}
		if len(line) > 1 {
			return p.errAt(offset, "trailing bytes after ')'")
		}
		p.group.Checklists = append(p.group.Checklists, *p.checklist)
		p.checklist = nil
		p.lastItem = -1

	case ctlGroupEnd:
		if p.checklist != nil {
			return p.errAt(offset, "group end inside checklist")
		}
		if p.group == nil {
			return p.errAt(offset, "group end outside group")
		}
		if len(line) > 1 {
			return p.errAt(offset, "trailing bytes after '}'")
		}
		p.doc.Groups = append(p.doc.Groups, *p.group)
		p.group = nil

	case ctlEnd:
		if p.group != nil || p.checklist != nil {
			return p.errAt(offset, "end marker inside open scope")
		}
		if len(line) > 1 {
			return p.errAt(offset, "trailing bytes after '.'")
		}
		p.done = true

	default:
		return p.errAt(offset, fmt.Sprintf("unknown control byte %q", line[0]))
	}
	return nil
}

// decodeText maps Latin-1 bytes to runes one for one.
func decodeText(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// Encode serializes a document as a compact file. Text outside Latin-1
// and item kinds without a compact representation are rejected; nothing
// is silently dropped or substituted.
func (c *compactCodec) Encode(doc *kneeboard.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte('\n')

	if doc.Title != "" {
		if err := validateText(doc.Title, "title", false); err != nil {
			return nil, err
		}
		buf.WriteByte(ctlTitle)
		writeText(&buf, doc.Title)
		buf.WriteByte('\n')
	}

	for gi, g := range doc.Groups {
		path := fmt.Sprintf("groups[%d]", gi)
		digit, ok := digitForCategory[g.Category]
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q at %s", kneeboard.ErrInvalidDocument, g.Category, path)
		}
		if err := validateText(g.Title, path+".title", false); err != nil {
			return nil, err
		}
		buf.WriteByte(ctlGroupStart)
		buf.WriteByte(digit)
		writeText(&buf, g.Title)
		buf.WriteByte('\n')

		for ci, cl := range g.Checklists {
			clPath := fmt.Sprintf("%s.checklists[%d]", path, ci)
			if err := validateText(cl.Title, clPath+".title", false); err != nil {
				return nil, err
			}
			buf.WriteByte(ctlChecklistStart)
			writeText(&buf, cl.Title)
			buf.WriteByte('\n')

			if cl.Note != "" {
				if err := validateText(cl.Note, clPath+".note", false); err != nil {
					return nil, err
				}
				buf.WriteByte(ctlNote)
				writeText(&buf, cl.Note)
				buf.WriteByte('\n')
			}

			for ii, it := range cl.Items {
				itPath := fmt.Sprintf("%s.items[%d]", clPath, ii)
				if err := encodeItem(&buf, it, itPath); err != nil {
					return nil, err
				}
			}

			buf.WriteByte(ctlChecklistEnd)
			buf.WriteByte('\n')
		}

		buf.WriteByte(ctlGroupEnd)
		buf.WriteByte('\n')
	}

	buf.WriteByte(ctlEnd)
	buf.WriteByte('\n')

	payload := buf.Bytes()
	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint32(trailer[:], crc32.ChecksumIEEE(payload))
	return append(payload, trailer[:]...), nil
}

func encodeItem(buf *bytes.Buffer, it kneeboard.Item, path string) error {
	kindChar, ok := charForKind[it.Kind]
	if !ok {
		return &kneeboard.ItemError{
			Err:  kneeboard.ErrUnrepresentableItem,
			Path: path,
			Kind: it.Kind,
		}
	}
	if it.Indent < 0 || it.Indent > kneeboard.MaxIndent {
		return fmt.Errorf("%w: indent %d out of range at %s", kneeboard.ErrInvalidDocument, it.Indent, path)
	}
	action := -1
	for i, a := range actionOrder {
		if a == it.Action {
			action = i
			break
		}
	}
	if action < 0 {
		return fmt.Errorf("%w: unknown action %q at %s", kneeboard.ErrInvalidDocument, it.Action, path)
	}
	if err := validateText(it.Text, path+".text", true); err != nil {
		return err
	}

	segments := strings.Split(it.Text, "\n")
	buf.WriteByte(ctlItem)
	buf.WriteByte(kindChar)
	buf.WriteByte('0' + byte(it.Indent))
	buf.WriteByte('0' + byte(action))
	writeText(buf, segments[0])
	buf.WriteByte('\n')
	for _, seg := range segments[1:] {
		buf.WriteByte(ctlContinuation)
		writeText(buf, seg)
		buf.WriteByte('\n')
	}
	return nil
}

// validateText rejects runes Latin-1 cannot carry: anything above
// U+00FF and every control rune except tab. Newlines pass only in item
// text, where continuation lines carry them.
func validateText(s, path string, multiline bool) error {
	pos := 0
	for _, r := range s {
		if r == '\n' && multiline {
			pos++
			continue
		}
		if r > 0xFF || (unicode.IsControl(r) && r != '\t') {
			return &kneeboard.CharacterError{
				Err:      kneeboard.ErrUnrepresentableCharacter,
				Rune:     r,
				Path:     path,
				Position: pos,
			}
		}
		pos++
	}
	return nil
}

// writeText emits validated text as Latin-1, one byte per rune.
func writeText(buf *bytes.Buffer, s string) {
	for _, r := range s {
		buf.WriteByte(byte(r))
	}
}

// Sniff reports whether data starts with the magic header line.
func (c *compactCodec) Sniff(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic+"\n"))
}

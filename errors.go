package kneeboard

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedFormat indicates a format identifier no codec serves.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrDuplicateFormat indicates two codecs claimed the same format.
	ErrDuplicateFormat = errors.New("duplicate format")

	// ErrMalformedMarkup indicates XML input that is not well formed or
	// does not follow the markup dialect.
	ErrMalformedMarkup = errors.New("malformed markup")

	// ErrMalformedLine indicates a compact payload line that violates the
	// line grammar.
	ErrMalformedLine = errors.New("malformed line")

	// ErrMalformedContainer indicates container JSON that is not valid JSON
	// or does not match the container shape.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrChecksumMismatch indicates a compact file whose trailer checksum
	// does not match its payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedContainerVersion indicates a container envelope whose
	// version, type tag, or object count is not supported.
	ErrUnsupportedContainerVersion = errors.New("unsupported container version")

	// ErrUnsupportedGroupKey indicates a container group identity pair with
	// no table entry.
	ErrUnsupportedGroupKey = errors.New("unsupported group key")

	// ErrUnsupportedItemCode indicates a container item or action code with
	// no known mapping.
	ErrUnsupportedItemCode = errors.New("unsupported item code")

	// ErrUnrepresentableCharacter indicates text containing a rune the
	// target format cannot carry.
	ErrUnrepresentableCharacter = errors.New("unrepresentable character")

	// ErrUnrepresentableItem indicates an item whose kind the target format
	// cannot carry.
	ErrUnrepresentableItem = errors.New("unrepresentable item")

	// ErrInvalidDocument indicates a canonical document that violates the
	// model's invariants.
	ErrInvalidDocument = errors.New("invalid document")
)

// FormatError reports an operation against a format identifier that cannot
// be served. It wraps ErrUnsupportedFormat or ErrDuplicateFormat.
type FormatError struct {
	Err    error  // Underlying sentinel error
	Format Format // Offending format identifier, may be empty for Detect
}

func (e *FormatError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), string(e.Format))
	}
	return e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SyntaxError reports malformed input at a location. It wraps
// ErrMalformedMarkup, ErrMalformedLine, or ErrMalformedContainer.
//
// Offset is the byte offset into the input when known, -1 otherwise.
// Line is the 1-based line number when known, 0 otherwise.
type SyntaxError struct {
	Err    error
	Offset int64
	Line   int
	Detail string
}

func (e *SyntaxError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	switch {
	case e.Line > 0 && e.Offset >= 0:
		return fmt.Sprintf("%s (line %d, offset %d)", msg, e.Line, e.Offset)
	case e.Line > 0:
		return fmt.Sprintf("%s (line %d)", msg, e.Line)
	case e.Offset >= 0:
		return fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ChecksumError reports a compact file whose declared checksum does not
// match the payload. It wraps ErrChecksumMismatch.
type ChecksumError struct {
	Err  error
	Want uint32 // Checksum declared in the file trailer
	Got  uint32 // Checksum computed over the payload
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s: file declares %08x, payload computes %08x", e.Err.Error(), e.Want, e.Got)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// ContainerError reports a container envelope field with an unsupported
// value. It wraps ErrUnsupportedContainerVersion.
type ContainerError struct {
	Err   error
	Field string // Envelope field ("dataModelVersion", "type", "objects")
	Value string // Offending value as written
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.Field, e.Value)
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}

// GroupKeyError reports a container group identity pair with no table
// entry. It wraps ErrUnsupportedGroupKey.
type GroupKeyError struct {
	Err     error
	Type    int
	Subtype int
}

func (e *GroupKeyError) Error() string {
	return fmt.Sprintf("%s (type %d, subtype %d)", e.Err.Error(), e.Type, e.Subtype)
}

func (e *GroupKeyError) Unwrap() error {
	return e.Err
}

// CodeError reports an unknown numeric code on one of the container's item
// axes. It wraps ErrUnsupportedItemCode.
type CodeError struct {
	Err  error
	Axis string // Code axis ("kind" or "action")
	Code int
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %s %d", e.Err.Error(), e.Axis, e.Code)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// CharacterError reports a rune the target format cannot carry. It wraps
// ErrUnrepresentableCharacter.
//
// Position is the rune index within the string named by Path.
type CharacterError struct {
	Err      error
	Rune     rune
	Path     string // Model path to the string ("groups[0].checklists[1].items[2].text")
	Position int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at %s[%d]", e.Err.Error(), e.Rune, e.Path, e.Position)
}

func (e *CharacterError) Unwrap() error {
	return e.Err
}

// ItemError reports an item whose kind the target format cannot carry.
// It wraps ErrUnrepresentableItem.
type ItemError struct {
	Err  error
	Path string // Model path to the item ("groups[0].checklists[1].items[2]")
	Kind ItemKind
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: kind %q at %s", e.Err.Error(), string(e.Kind), e.Path)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// DocumentError reports canonical-model violations found by Validate.
// It wraps ErrInvalidDocument.
type DocumentError struct {
	Err        error
	Violations []Violation
}

func (e *DocumentError) Error() string {
	switch len(e.Violations) {
	case 0:
		return e.Err.Error()
	case 1:
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Violations[0])
	}
	return fmt.Sprintf("%s: %d violations (first: %s)", e.Err.Error(), len(e.Violations), e.Violations[0])
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

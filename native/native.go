// Package native provides a Codec for the native JSON checklist format.
//
// Native files are the canonical document model serialized as indented
// JSON. Decoding is tolerant: // and /* */ comments and trailing commas
// are accepted and stripped before parsing. Encoding always produces
// strict JSON that any standard parser can read.
package native

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/zoobzio/kneeboard"
)

type nativeCodec struct{}

// New returns the native JSON codec.
func New() kneeboard.Codec {
	return &nativeCodec{}
}

func (c *nativeCodec) Format() kneeboard.Format {
	return kneeboard.FormatNative
}

func (c *nativeCodec) ContentType() string {
	return "application/json"
}

// Decode parses native JSON into a document. Comments and trailing
// commas are stripped first; jsonc blanks them in place so error
// offsets still point into the original input.
func (c *nativeCodec) Decode(data []byte) (*kneeboard.Document, error) {
	var doc kneeboard.Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, &kneeboard.SyntaxError{
			Err:    kneeboard.ErrMalformedContainer,
			Offset: jsonOffset(err),
			Detail: err.Error(),
		}
	}
	return &doc, nil
}

// Encode serializes a document as indented JSON with a trailing newline.
func (c *nativeCodec) Encode(doc *kneeboard.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode native: %w", err)
	}
	return append(data, '\n'), nil
}

// Sniff reports whether data looks like a native checklist file: a JSON
// object without the container envelope's type tag. Container files
// always carry type "checklistBinder"; native files never have a type
// key at all.
func (c *nativeCodec) Sniff(data []byte) bool {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &probe); err != nil {
		return false
	}
	return probe.Type == ""
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

package kneeboard

import (
	"context"
	"errors"
	"time"
)

// Registry dispatches decode and encode calls to format codecs.
//
// A Registry is immutable after construction and safe for concurrent use.
// It validates every document crossing it: after decode, so callers never
// see a document that violates the canonical model, and before encode, so
// codecs can assume valid input.
type Registry struct {
	codecs map[Format]Codec
	order  []Format // registration order, drives Detect priority
}

// NewRegistry builds a registry over the given codecs. Registration order
// decides Detect priority. A nil codec or a second codec for the same
// format fails construction.
func NewRegistry(codecs ...Codec) (*Registry, error) {
	r := &Registry{codecs: make(map[Format]Codec, len(codecs))}
	for _, c := range codecs {
		if c == nil {
			return nil, errors.New("nil codec")
		}
		f := c.Format()
		if _, dup := r.codecs[f]; dup {
			return nil, &FormatError{Err: ErrDuplicateFormat, Format: f}
		}
		r.codecs[f] = c
		r.order = append(r.order, f)
	}
	emitRegistryCreated(context.Background(), len(r.order))
	return r, nil
}

// Decode parses data in the named format, validates the result, and stamps
// its Source. The context flows into signal emissions only.
func (r *Registry) Decode(ctx context.Context, data []byte, format Format) (*Document, error) {
	c, ok := r.codecs[format]
	if !ok {
		return nil, &FormatError{Err: ErrUnsupportedFormat, Format: format}
	}

	start := time.Now()
	emitDecodeStart(ctx, string(format), c.ContentType(), len(data))

	var doc *Document
	var retErr error
	defer func() {
		emitDecodeComplete(ctx, string(format), c.ContentType(), len(data),
			time.Since(start), doc.GroupCount(), doc.ItemCount(), retErr)
	}()

	doc, retErr = c.Decode(data)
	if retErr != nil {
		return nil, retErr
	}
	if vs := Validate(doc); len(vs) > 0 {
		doc = nil
		retErr = &DocumentError{Err: ErrInvalidDocument, Violations: vs}
		return nil, retErr
	}
	doc.Source = format
	return doc, nil
}

// Encode validates doc and renders it in the named format. The context
// flows into signal emissions only.
func (r *Registry) Encode(ctx context.Context, doc *Document, format Format) ([]byte, error) {
	c, ok := r.codecs[format]
	if !ok {
		return nil, &FormatError{Err: ErrUnsupportedFormat, Format: format}
	}

	start := time.Now()
	emitEncodeStart(ctx, string(format), c.ContentType(), doc.GroupCount(), doc.ItemCount())

	var out []byte
	var retErr error
	defer func() {
		emitEncodeComplete(ctx, string(format), c.ContentType(), len(out),
			time.Since(start), doc.GroupCount(), doc.ItemCount(), retErr)
	}()

	if vs := Validate(doc); len(vs) > 0 {
		retErr = &DocumentError{Err: ErrInvalidDocument, Violations: vs}
		return nil, retErr
	}
	out, retErr = c.Encode(doc)
	if retErr != nil {
		return nil, retErr
	}
	return out, nil
}

// Detect identifies the format of raw bytes by consulting each codec's
// Sniffer in registration order. Codecs without a Sniffer are skipped.
func (r *Registry) Detect(data []byte) (Format, error) {
	for _, f := range r.order {
		if s, ok := r.codecs[f].(Sniffer); ok && s.Sniff(data) {
			return f, nil
		}
	}
	return "", &FormatError{Err: ErrUnsupportedFormat}
}

// Formats returns the registered formats in registration order.
// The slice is a fresh copy on every call.
func (r *Registry) Formats() []Format {
	out := make([]Format, len(r.order))
	copy(out, r.order)
	return out
}

// Codec returns the codec registered for the format.
func (r *Registry) Codec(format Format) (Codec, bool) {
	c, ok := r.codecs[format]
	return c, ok
}

// Package kneeboard converts aviation checklist documents between on-disk
// formats.
//
// The package defines a canonical document model (Document, Group, Checklist,
// Item), a Codec interface for format implementations, and a Registry that
// dispatches decode and encode calls by format identifier. Every conversion
// is a pure, synchronous transform: raw bytes decode into the canonical
// model, the caller edits the model, and the model encodes back into any
// supported format.
//
// # Formats
//
// The following codec implementations are available as subpackages:
//
//   - compact - checksummed line-oriented binary format (.ckl)
//   - binder - structured JSON container format (.cbp)
//   - markup - generic XML format (.xml)
//   - native - the engine's own JSON format (.json)
//   - yaml - YAML rendition of the native model (.yaml)
//
// The convert subpackage wires all of them into a ready-to-use registry.
//
// # Basic Usage
//
//	reg, _ := kneeboard.NewRegistry(binder.New(), native.New())
//
//	// Decode a container file into the canonical model
//	doc, err := reg.Decode(ctx, data, kneeboard.FormatBinder)
//
//	// Edit the model, then encode it as native JSON
//	doc.Title = "N123AB"
//	out, err := reg.Encode(ctx, doc, kneeboard.FormatNative)
//
// # Validation
//
// The Registry validates documents against the canonical model after every
// decode and before every encode; violations surface as ErrInvalidDocument
// carrying the full violation list. Codecs never repair input: the only
// permitted fallback in the engine is the binder codec's encode-time group
// key default.
//
// # Errors
//
// All failures wrap package-level sentinels (ErrUnsupportedFormat,
// ErrChecksumMismatch, ErrUnsupportedGroupKey, ...) in context-carrying
// types (SyntaxError, ChecksumError, GroupKeyError, ...). Branch with
// errors.Is and extract context with errors.As. The engine returns errors;
// it never logs and never retries.
//
// # Detection
//
// Codecs that implement Sniffer can recognize their own byte shape;
// Registry.Detect asks each in registration order. YAML is not sniffable
// (nearly any text parses as YAML) and is recognized only by file extension
// via FormatForPath.
//
// # Concurrency
//
// All shared state (registries, group tables, markup configurations) is
// immutable after construction. A Registry is safe for concurrent use
// without locking; conversions run on the caller's goroutine.
//
// # Signals
//
// Operations emit capitan signals (kneeboard.decode.start,
// kneeboard.encode.complete, ...) with typed fields for format, sizes,
// counts, duration, and error. The context passed to Decode and Encode flows
// into these emissions only; conversions never block on it.
package kneeboard

// Codec converts between raw bytes and the canonical document model for one
// format. Implementations must be stateless or immutable after construction
// so they are safe for concurrent use.
type Codec interface {
	// Format returns the identifier this codec serves.
	Format() Format

	// ContentType returns the MIME type for encoded output (e.g., "application/json").
	ContentType() string

	// Decode parses data into a canonical document.
	Decode(data []byte) (*Document, error)

	// Encode renders doc into the codec's byte format.
	Encode(doc *Document) ([]byte, error)
}

// Sniffer is implemented by codecs that can recognize their own byte shape.
// Registry.Detect consults sniffers in registration order, so a codec with a
// precise signature should be registered before one with a loose signature.
type Sniffer interface {
	// Sniff reports whether data plausibly holds a document in this
	// codec's format. Sniff should be cheap relative to Decode.
	Sniff(data []byte) bool
}

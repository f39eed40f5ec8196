// Package convert wires every built-in codec into a ready-made Registry.
//
// It is the batteries-included entry point: applications that want the
// standard five formats with default settings call the package-level
// functions and never touch Registry construction.
//
//	doc, err := convert.Decode(ctx, data, kneeboard.FormatBinder)
//	if err != nil {
//		return err
//	}
//	out, err := convert.Encode(ctx, doc, kneeboard.FormatCompact)
//
// Applications that need a custom binder group table or markup dialect
// build their own Registry from the codec packages instead.
package convert

import (
	"context"
	"sync"

	"github.com/zoobzio/kneeboard"
	"github.com/zoobzio/kneeboard/binder"
	"github.com/zoobzio/kneeboard/compact"
	"github.com/zoobzio/kneeboard/markup"
	"github.com/zoobzio/kneeboard/native"
	"github.com/zoobzio/kneeboard/yaml"
)

var (
	defaultOnce sync.Once
	defaultReg  *kneeboard.Registry
)

// DefaultRegistry returns the shared registry carrying every built-in codec
// with its default configuration. Registration follows the canonical format
// order, which is also Detect priority. The registry is built on first use
// and safe for concurrent use.
func DefaultRegistry() *kneeboard.Registry {
	defaultOnce.Do(func() {
		r, err := kneeboard.NewRegistry(
			compact.New(),
			binder.New(),
			markup.Default(),
			native.New(),
			yaml.New(),
		)
		if err != nil {
			// Only reachable through a bug in the codec packages
			// themselves, never through caller input.
			panic("convert: default registry: " + err.Error())
		}
		defaultReg = r
	})
	return defaultReg
}

// Decode parses data in the named format through the default registry.
func Decode(ctx context.Context, data []byte, format kneeboard.Format) (*kneeboard.Document, error) {
	return DefaultRegistry().Decode(ctx, data, format)
}

// Encode renders doc in the named format through the default registry.
func Encode(ctx context.Context, doc *kneeboard.Document, format kneeboard.Format) ([]byte, error) {
	return DefaultRegistry().Encode(ctx, doc, format)
}

// Detect identifies the format of raw bytes through the default registry.
func Detect(data []byte) (kneeboard.Format, error) {
	return DefaultRegistry().Detect(data)
}

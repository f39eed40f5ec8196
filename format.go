package kneeboard

import (
	"path/filepath"
	"strings"
	"time"
)

// Format identifies a supported on-disk checklist format.
type Format string

const (
	// FormatCompact is the checksummed line-oriented binary format.
	FormatCompact Format = "compact"

	// FormatBinder is the structured JSON container format.
	FormatBinder Format = "binder"

	// FormatMarkup is the generic XML format.
	FormatMarkup Format = "markup"

	// FormatNative is the engine's own JSON format.
	FormatNative Format = "native"

	// FormatYAML is the YAML rendition of the native model.
	FormatYAML Format = "yaml"
)

// validFormats contains all valid format identifiers.
var validFormats = map[Format]bool{
	FormatCompact: true,
	FormatBinder:  true,
	FormatMarkup:  true,
	FormatNative:  true,
	FormatYAML:    true,
}

// IsValidFormat returns true if the format is a known format identifier.
func IsValidFormat(f Format) bool {
	return validFormats[f]
}

// Formats returns all format identifiers in canonical order.
// The slice is a fresh copy on every call.
func Formats() []Format {
	return []Format{FormatCompact, FormatBinder, FormatMarkup, FormatNative, FormatYAML}
}

// Ext returns the canonical file extension for the format, including the
// leading dot, or "" for an unknown format.
func (f Format) Ext() string {
	switch f {
	case FormatCompact:
		return ".ckl"
	case FormatBinder:
		return ".cbp"
	case FormatMarkup:
		return ".xml"
	case FormatNative:
		return ".json"
	case FormatYAML:
		return ".yaml"
	}
	return ""
}

// FormatForPath maps a file path to a format by extension. The bool reports
// whether the extension is recognized.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ckl":
		return FormatCompact, true
	case ".cbp":
		return FormatBinder, true
	case ".xml":
		return FormatMarkup, true
	case ".json":
		return FormatNative, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// RecentEntry is the record the application's recent-files ledger keeps for
// each opened document. The engine defines the shared shape but performs no
// ledger bookkeeping of its own.
type RecentEntry struct {
	FilePath   string    `json:"filePath"`
	FileName   string    `json:"fileName"`
	Format     Format    `json:"format"`
	LastOpened time.Time `json:"lastOpened"`
}

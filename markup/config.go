package markup

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls how XML maps to the ordered tree form. The same
// configuration drives both directions, so parse and render stay
// symmetric by construction.
type Config struct {
	// AttributeMarker prefixes attribute names in tree keys, keeping
	// them distinct from child element tags.
	AttributeMarker string `toml:"attribute_marker"`

	// TextKey is the tree key holding an element's character data.
	TextKey string `toml:"text_key"`

	// ArrayTags lists tags that always parse as a sequence, even with a
	// single child. Render reproduces each as repeated elements.
	ArrayTags []string `toml:"array_tags"`
}

// DefaultConfig returns the checklist dialect's canonical configuration.
func DefaultConfig() Config {
	return Config{
		AttributeMarker: "$",
		TextKey:         "_",
		ArrayTags:       []string{tagGroup, tagChecklist, tagItem},
	}
}

// ParseConfig reads a Config from TOML bytes. Absent keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse markup config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse markup config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.AttributeMarker == "" {
		return errors.New("attribute_marker must not be empty")
	}
	if c.TextKey == "" {
		return errors.New("text_key must not be empty")
	}
	return nil
}

func (c Config) arraySet() map[string]bool {
	set := make(map[string]bool, len(c.ArrayTags))
	for _, tag := range c.ArrayTags {
		set[tag] = true
	}
	return set
}

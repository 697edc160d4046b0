package manifest

import (
	"fmt"

	"github.com/minicodemonkey/boardgen/internal/sprite"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of the full manifest.
type Document struct {
	SampleRate int           `yaml:"sampleRate"`
	Audio      []AudioAsset  `yaml:"audio"`
	Sprites    []SpriteAsset `yaml:"sprites"`

	// Palette maps style guide color names to #rrggbb.
	Palette map[string]string `yaml:"palette"`
}

// Palette returns the sprite palette keyed by color name.
func Palette() map[string]string {
	out := make(map[string]string)
	for _, name := range sprite.ColorNames() {
		c, _ := sprite.Lookup(name)
		out[name] = sprite.Hex(c)
	}
	return out
}

// YAML renders the full manifest.
func YAML() ([]byte, error) {
	doc := Document{
		SampleRate: SampleRate,
		Audio:      Audio(),
		Sprites:    Sprites(),
		Palette:    Palette(),
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

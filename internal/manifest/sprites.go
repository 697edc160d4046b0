package manifest

import (
	"fmt"
	"image"
	"path"

	"github.com/minicodemonkey/boardgen/internal/sprite"
)

// SpriteKind selects the drawing routine for a sprite asset.
type SpriteKind string

const (
	SpriteTile      SpriteKind = "tile"
	SpriteCharacter SpriteKind = "character"
	SpriteDice      SpriteKind = "dice"
	SpriteUI        SpriteKind = "ui"
)

// UI element names.
const (
	EnergyBarBackground = "energy_bar_bg"
	EnergyBarFill       = "energy_bar_fill"
	ButtonBackground    = "button_bg"
)

// Image subdirectories.
const (
	TilesDir      = "tiles"
	CharactersDir = "characters"
	UIDir         = "ui"
)

// SpriteAsset describes one PNG file. File is relative to the images
// directory.
type SpriteAsset struct {
	File    string          `yaml:"file"`
	Kind    SpriteKind      `yaml:"kind"`
	Size    int             `yaml:"size,omitempty"`
	Tile    sprite.TileKind `yaml:"tile,omitempty"`
	Frame   int             `yaml:"frame,omitempty"`
	Face    int             `yaml:"face,omitempty"`
	Element string          `yaml:"element,omitempty"`
}

// Dir returns the images subdirectory the sprite is written to.
func (s SpriteAsset) Dir() string {
	return path.Dir(s.File)
}

// Render draws the sprite.
func (s SpriteAsset) Render() (*image.NRGBA, error) {
	switch s.Kind {
	case SpriteTile:
		return sprite.Tile(s.Tile, s.Size)
	case SpriteCharacter:
		return sprite.Character(s.Size, s.Frame), nil
	case SpriteDice:
		return sprite.Dice(s.Size, s.Face), nil
	case SpriteUI:
		switch s.Element {
		case EnergyBarBackground:
			return sprite.EnergyBarBackground(), nil
		case EnergyBarFill:
			return sprite.EnergyBarFill(), nil
		case ButtonBackground:
			return sprite.ButtonBackground(), nil
		}
		return nil, fmt.Errorf("unknown UI element %q", s.Element)
	}
	return nil, fmt.Errorf("unknown sprite kind %q", s.Kind)
}

// Sprites returns the sprite manifest in generation order.
func Sprites() []SpriteAsset {
	var out []SpriteAsset

	for _, kind := range sprite.TileKinds {
		out = append(out, SpriteAsset{
			File: path.Join(TilesDir, fmt.Sprintf("tile_%s.png", kind)),
			Kind: SpriteTile,
			Size: 40,
			Tile: kind,
		})
	}

	out = append(out, SpriteAsset{
		File: path.Join(CharactersDir, "player_idle.png"),
		Kind: SpriteCharacter,
		Size: 32,
	})
	for i := 1; i <= 4; i++ {
		out = append(out, SpriteAsset{
			File:  path.Join(CharactersDir, fmt.Sprintf("player_walk_%d.png", i)),
			Kind:  SpriteCharacter,
			Size:  32,
			Frame: i,
		})
	}

	for face := 1; face <= 6; face++ {
		out = append(out, SpriteAsset{
			File: path.Join(UIDir, fmt.Sprintf("dice_%d.png", face)),
			Kind: SpriteDice,
			Size: 60,
			Face: face,
		})
	}

	for _, el := range []string{EnergyBarBackground, EnergyBarFill, ButtonBackground} {
		out = append(out, SpriteAsset{
			File:    path.Join(UIDir, el+".png"),
			Kind:    SpriteUI,
			Element: el,
		})
	}

	return out
}

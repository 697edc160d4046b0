// Package sprite draws the placeholder pixel-art sprites for the board game:
// tiles, the player character, dice faces and a few UI elements.
package sprite

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Color palette from the game's style guide.
var (
	PrimaryGreen     = mustHex("#4CAF50")
	SecondaryBlue    = mustHex("#2196F3")
	DangerRed        = mustHex("#F44336")
	BonusGold        = mustHex("#FFD700")
	BranchPurple     = mustHex("#9C27B0")
	NormalLightGreen = mustHex("#8FBC8F")
	Black            = mustHex("#000000")
	White            = mustHex("#FFFFFF")
	DarkGreen        = mustHex("#2E7D32")
	Brown            = mustHex("#8B4513")
	SkyBlue          = mustHex("#87CEEB")
	Grey             = mustHex("#808080")
)

var palette = map[string]color.NRGBA{
	"primary_green":      PrimaryGreen,
	"secondary_blue":     SecondaryBlue,
	"danger_red":         DangerRed,
	"bonus_gold":         BonusGold,
	"branch_purple":      BranchPurple,
	"normal_light_green": NormalLightGreen,
	"black":              Black,
	"white":              White,
	"dark_green":         DarkGreen,
	"brown":              Brown,
	"sky_blue":           SkyBlue,
	"grey":               Grey,
}

// Lookup returns the palette color registered under name.
func Lookup(name string) (color.NRGBA, bool) {
	c, ok := palette[name]
	return c, ok
}

// ColorNames returns the palette names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hex formats c as #RRGGBB.
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func mustHex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("sprite: bad palette color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

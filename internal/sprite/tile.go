package sprite

import (
	"fmt"
	"image"
	"image/color"
)

// TileKind identifies a board tile type.
type TileKind string

const (
	TileStart    TileKind = "start"
	TileNormal   TileKind = "normal"
	TileObstacle TileKind = "obstacle"
	TileBonus    TileKind = "bonus"
	TileBranch   TileKind = "branch"
	TileFinish   TileKind = "finish"
)

// TileKinds lists every tile kind in board order.
var TileKinds = []TileKind{TileStart, TileNormal, TileObstacle, TileBonus, TileBranch, TileFinish}

// TileColor returns the background color of a tile kind.
func TileColor(kind TileKind) (color.NRGBA, error) {
	switch kind {
	case TileStart:
		return PrimaryGreen, nil
	case TileNormal:
		return NormalLightGreen, nil
	case TileObstacle:
		return DangerRed, nil
	case TileBonus:
		return SecondaryBlue, nil
	case TileBranch:
		return BranchPurple, nil
	case TileFinish:
		return BonusGold, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown tile kind %q", kind)
}

// Tile draws a size×size board tile: a rounded colored square with a black
// border and a white icon in the middle.
func Tile(kind TileKind, size int) (*image.NRGBA, error) {
	bg, err := TileColor(kind)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(size, size)
	const margin = 2
	c.RoundedRect(margin, margin, size-margin, size-margin, 4, Style{Fill: bg, Outline: Black, Width: 2})
	drawTileIcon(c, kind, size)
	return c.Image(), nil
}

func drawTileIcon(c *Canvas, kind TileKind, size int) {
	center := size / 2
	icon := Style{Fill: White, Outline: Black}

	switch kind {
	case TileStart:
		// House roof.
		c.Polygon([]image.Point{
			{center, 8}, {8, center}, {center, center}, {size - 8, center},
		}, icon)
	case TileFinish:
		// Flag.
		c.Rect(center-8, 8, center+8, size-8, icon)
	case TileObstacle:
		c.Line(8, 8, size-8, size-8, 3, White)
		c.Line(8, size-8, size-8, 8, 3, White)
	case TileBonus:
		c.RegularPolygon(center, center, 8, 5, icon)
	case TileBranch:
		c.Line(8, center, size-8, center, 2, White)
		c.Line(center, 8, center, size-8, 2, White)
	default:
		c.Ellipse(center-4, center-4, center+4, center+4, icon)
	}
}

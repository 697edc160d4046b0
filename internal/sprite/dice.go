package sprite

import "image"

const pipRadius = 3

// pipLayout returns the pip centers for a die face. Faces outside 1..6 have
// no pips.
func pipLayout(size, face int) []image.Point {
	q, t, h := size/4, size/3, size/2
	tq, tt := 3*size/4, 2*size/3
	switch face {
	case 1:
		return []image.Point{{h, h}}
	case 2:
		return []image.Point{{t, t}, {tt, tt}}
	case 3:
		return []image.Point{{q, q}, {h, h}, {tq, tq}}
	case 4:
		return []image.Point{{t, t}, {tt, t}, {t, tt}, {tt, tt}}
	case 5:
		return []image.Point{{q, q}, {tq, q}, {h, h}, {q, tq}, {tq, tq}}
	case 6:
		return []image.Point{{t, q}, {tt, q}, {t, h}, {tt, h}, {t, tq}, {tt, tq}}
	}
	return nil
}

// Dice draws a white die face showing face pips.
func Dice(size, face int) *image.NRGBA {
	c := NewCanvas(size, size)
	const margin = 4
	c.RoundedRect(margin, margin, size-margin, size-margin, 8, Style{Fill: White, Outline: Black, Width: 2})

	for _, p := range pipLayout(size, face) {
		c.Ellipse(p.X-pipRadius, p.Y-pipRadius, p.X+pipRadius, p.Y+pipRadius, Style{Fill: Black})
	}
	return c.Image()
}

package sprite

import "image"

// EnergyBarBackground is the empty energy gauge.
func EnergyBarBackground() *image.NRGBA {
	c := NewCanvas(100, 10)
	c.RoundedRect(0, 0, 100, 10, 5, Style{Fill: Grey, Outline: Black})
	return c.Image()
}

// EnergyBarFill is the gauge overlay, cropped by the game to the energy level.
func EnergyBarFill() *image.NRGBA {
	c := NewCanvas(100, 10)
	c.RoundedRect(0, 0, 100, 10, 5, Style{Fill: PrimaryGreen})
	return c.Image()
}

// ButtonBackground is the pill-shaped background of menu buttons.
func ButtonBackground() *image.NRGBA {
	c := NewCanvas(100, 40)
	c.RoundedRect(0, 0, 100, 40, 20, Style{Fill: SecondaryBlue, Outline: Black, Width: 2})
	return c.Image()
}

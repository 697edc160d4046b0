package sprite

import "image"

// Character draws the player sprite. Odd walk frames are raised by one
// pixel so the walk cycle bobs.
func Character(size, frame int) *image.NRGBA {
	c := NewCanvas(size, size)
	if frame%2 == 1 {
		c.Offset(-1)
	}

	center := size / 2
	bodyW, bodyH := size-8, size-8
	bodyX, bodyY := (size-bodyW)/2, (size-bodyH)/2

	c.RoundedRect(bodyX, bodyY, bodyX+bodyW, bodyY+bodyH, 4, Style{Fill: PrimaryGreen, Outline: Black, Width: 1})

	eyeY := bodyY + 6
	c.Ellipse(bodyX+6, eyeY, bodyX+8, eyeY+2, Style{Fill: Black})
	c.Ellipse(bodyX+bodyW-8, eyeY, bodyX+bodyW-6, eyeY+2, Style{Fill: Black})

	smileY := eyeY + 6
	c.Line(bodyX+6, smileY, center, smileY+4, 1, Black)
	c.Line(center, smileY+4, bodyX+bodyW-6, smileY, 1, Black)

	return c.Image()
}

package sprite

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Style describes how a shape is painted. A nil Fill or Outline skips that
// part. Outlines are drawn inside the shape bounds, Width pixels thick.
type Style struct {
	Fill    color.Color
	Outline color.Color
	Width   int
}

func (s Style) width() int {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// Canvas is a transparent RGBA image with hard-edged drawing primitives.
// Box coordinates are inclusive: (0, 0, 3, 3) covers a 4×4 pixel block.
type Canvas struct {
	img *image.NRGBA
	dy  int // vertical shift applied to everything drawn
}

// NewCanvas returns a fully transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Offset shifts subsequent drawing down by dy pixels (up when negative).
func (c *Canvas) Offset(dy int) {
	c.dy = dy
}

type rect struct {
	x0, y0, x1, y1 float32
}

// box converts an inclusive pixel box to a continuous rectangle clipped to
// the canvas.
func (c *Canvas) box(x0, y0, x1, y1 int) rect {
	b := c.img.Bounds()
	y0 += c.dy
	y1 += c.dy
	return rect{
		x0: float32(max(x0, b.Min.X)),
		y0: float32(max(y0, b.Min.Y)),
		x1: float32(min(x1+1, b.Max.X)),
		y1: float32(min(y1+1, b.Max.Y)),
	}
}

func (r rect) inset(d float32) rect {
	return rect{r.x0 + d, r.y0 + d, r.x1 - d, r.y1 - d}
}

func (r rect) empty() bool {
	return r.x1 <= r.x0 || r.y1 <= r.y0
}

// Kappa for approximating a quarter circle with a cubic Bézier.
const kappa = 0.5522847

func roundRectPath(r rect, radius float32) func(*vector.Rasterizer) {
	radius = min(radius, (r.x1-r.x0)/2, (r.y1-r.y0)/2)
	k := radius * kappa
	return func(z *vector.Rasterizer) {
		z.MoveTo(r.x0+radius, r.y0)
		z.LineTo(r.x1-radius, r.y0)
		z.CubeTo(r.x1-radius+k, r.y0, r.x1, r.y0+radius-k, r.x1, r.y0+radius)
		z.LineTo(r.x1, r.y1-radius)
		z.CubeTo(r.x1, r.y1-radius+k, r.x1-radius+k, r.y1, r.x1-radius, r.y1)
		z.LineTo(r.x0+radius, r.y1)
		z.CubeTo(r.x0+radius-k, r.y1, r.x0, r.y1-radius+k, r.x0, r.y1-radius)
		z.LineTo(r.x0, r.y0+radius)
		z.CubeTo(r.x0, r.y0+radius-k, r.x0+radius-k, r.y0, r.x0+radius, r.y0)
		z.ClosePath()
	}
}

func ellipsePath(r rect) func(*vector.Rasterizer) {
	cx, cy := (r.x0+r.x1)/2, (r.y0+r.y1)/2
	rx, ry := (r.x1-r.x0)/2, (r.y1-r.y0)/2
	kx, ky := rx*kappa, ry*kappa
	return func(z *vector.Rasterizer) {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
	}
}

type point struct {
	x, y float32
}

func polygonPath(pts []point) func(*vector.Rasterizer) {
	return func(z *vector.Rasterizer) {
		z.MoveTo(pts[0].x, pts[0].y)
		for _, p := range pts[1:] {
			z.LineTo(p.x, p.y)
		}
		z.ClosePath()
	}
}

// coverage rasterizes a path into an alpha mask the size of the canvas.
func (c *Canvas) coverage(trace func(*vector.Rasterizer)) *image.Alpha {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	trace(z)
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

// paint sets every pixel at least half covered by include and less than
// half covered by exclude (when non-nil).
func (c *Canvas) paint(include, exclude *image.Alpha, col color.Color) {
	fill := color.NRGBAModel.Convert(col).(color.NRGBA)
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if include.AlphaAt(x, y).A < 0x80 {
				continue
			}
			if exclude != nil && exclude.AlphaAt(x, y).A >= 0x80 {
				continue
			}
			c.img.SetNRGBA(x, y, fill)
		}
	}
}

// shape paints outer with s.Fill and the band between outer and inner with
// s.Outline.
func (c *Canvas) shape(outer, inner func(*vector.Rasterizer), innerEmpty bool, s Style) {
	outerMask := c.coverage(outer)
	var innerMask *image.Alpha
	if !innerEmpty {
		innerMask = c.coverage(inner)
	}

	if s.Fill != nil {
		switch {
		case s.Outline == nil:
			c.paint(outerMask, nil, s.Fill)
		case innerMask != nil:
			c.paint(innerMask, nil, s.Fill)
		}
	}
	if s.Outline != nil {
		c.paint(outerMask, innerMask, s.Outline)
	}
}

// RoundedRect draws a rectangle with circular corners of the given radius.
func (c *Canvas) RoundedRect(x0, y0, x1, y1, radius int, s Style) {
	outer := c.box(x0, y0, x1, y1)
	if outer.empty() {
		return
	}
	w := float32(s.width())
	inner := outer.inset(w)
	c.shape(
		roundRectPath(outer, float32(radius)),
		roundRectPath(inner, max(float32(radius)-w, 0)),
		inner.empty(),
		s,
	)
}

// Rect draws an axis-aligned rectangle.
func (c *Canvas) Rect(x0, y0, x1, y1 int, s Style) {
	c.RoundedRect(x0, y0, x1, y1, 0, s)
}

// Ellipse draws the ellipse inscribed in the box.
func (c *Canvas) Ellipse(x0, y0, x1, y1 int, s Style) {
	outer := c.box(x0, y0, x1, y1)
	if outer.empty() {
		return
	}
	inner := outer.inset(float32(s.width()))
	c.shape(ellipsePath(outer), ellipsePath(inner), inner.empty(), s)
}

// Polygon fills the polygon through the centers of pts and traces its edges
// with 1 pixel lines.
func (c *Canvas) Polygon(pts []image.Point, s Style) {
	if len(pts) < 2 {
		return
	}
	fpts := make([]point, len(pts))
	for i, p := range pts {
		fpts[i] = point{float32(p.X) + 0.5, float32(p.Y+c.dy) + 0.5}
	}
	c.polygon(fpts, s)
}

// RegularPolygon draws an n-sided polygon inscribed in the circle around
// (cx, cy), with the first vertex pointing straight up.
func (c *Canvas) RegularPolygon(cx, cy, radius, sides int, s Style) {
	if sides < 3 {
		return
	}
	pts := make([]point, sides)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = point{
			x: float32(float64(cx) + 0.5 + float64(radius)*math.Cos(a)),
			y: float32(float64(cy+c.dy) + 0.5 + float64(radius)*math.Sin(a)),
		}
	}
	c.polygon(pts, s)
}

func (c *Canvas) polygon(pts []point, s Style) {
	if s.Fill != nil {
		c.paint(c.coverage(polygonPath(pts)), nil, s.Fill)
	}
	if s.Outline != nil {
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			c.line(int(math.Floor(float64(a.x))), int(math.Floor(float64(a.y))),
				int(math.Floor(float64(b.x))), int(math.Floor(float64(b.y))), 1, s.Outline)
		}
	}
}

// Line draws a straight line between two pixels with a square brush width
// pixels wide.
func (c *Canvas) Line(x0, y0, x1, y1, width int, col color.Color) {
	c.line(x0, y0+c.dy, x1, y1+c.dy, width, col)
}

func (c *Canvas) line(x0, y0, x1, y1, width int, col color.Color) {
	if width <= 0 {
		width = 1
	}
	fill := color.NRGBAModel.Convert(col).(color.NRGBA)
	lo, hi := -(width-1)/2, width/2
	stamp := func(x, y int) {
		for dy := lo; dy <= hi; dy++ {
			for dx := lo; dx <= hi; dx++ {
				p := image.Pt(x+dx, y+dy)
				if p.In(c.img.Bounds()) {
					c.img.SetNRGBA(p.X, p.Y, fill)
				}
			}
		}
	}

	// Bresenham.
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

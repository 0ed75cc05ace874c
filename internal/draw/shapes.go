package draw

import (
	"math"

	"github.com/x444dyx/pulse/internal/shape"
)

// DrawShape draws the outline of the given shape centered at (cx, cy) in
// logical coordinates, with r the distance from center to each vertex (or
// to every point, for the circle). Unknown shapes fall back to the circle.
func (c *Canvas) DrawShape(id shape.ID, cx, cy, r float64) {
	if r <= 0 {
		c.SetFloat(cx, cy)
		return
	}
	switch id {
	case shape.Square:
		c.drawVertices(cx, cy, r, 4, math.Pi/4)
	case shape.Triangle:
		c.drawVertices(cx, cy, r, 3, -math.Pi/2)
	case shape.Diamond:
		c.drawVertices(cx, cy, r, 4, -math.Pi/2)
	default:
		c.DrawCircle(cx, cy, r)
	}
}

// DrawCircle draws a circle outline as a many-sided polygon. The segment
// count scales with the on-screen radius so large rings stay smooth and
// small ones stay cheap.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	segments := int(r * c.scaleX * 2)
	if segments < 16 {
		segments = 16
	}
	if segments > 256 {
		segments = 256
	}
	points := c.borrowPoints(segments)
	step := 2 * math.Pi / float64(segments)
	for i := range points {
		a := float64(i) * step
		points[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawOutline(points)
}

// drawVertices draws a regular n-gon with vertices at distance r from the
// center, rotated so the shape sits the expected way up.
func (c *Canvas) drawVertices(cx, cy, r float64, n int, rotation float64) {
	points := c.borrowPoints(n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		a := rotation + float64(i)*step
		points[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	c.DrawOutline(points)
}

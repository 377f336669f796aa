package shapes

import (
	"image/color"
	"math"
)

// Bézier approximation constant for a 90 degree circular arc.
const kappa = 0.5522847498307936

// RoundedRect fills the rectangle (x0,y0)-(x1,y1) with corners rounded by
// radius: the bounds minus the corner squares as two overlapping
// rectangles, then a quarter disc in each corner. Full-opacity fills make
// the overlaps seamless. A radius larger than half the shorter dimension
// draws overlapping corner discs, mirroring the reference behavior rather
// than failing.
func (c *Canvas) RoundedRect(x0, y0, x1, y1, radius float64, col color.Color) {
	if !c.checkBounds("rounded rect", x0, y0, x1, y1) {
		return
	}
	if radius <= 0 {
		c.FillRect(x0, y0, x1, y1, col)
		return
	}
	if x0+radius <= x1-radius {
		c.FillRect(x0+radius, y0, x1-radius, y1, col)
	}
	if y0+radius <= y1-radius {
		c.FillRect(x0, y0+radius, x1, y1-radius, col)
	}
	c.fillQuarterDisc(x0+radius, y0+radius, radius, 180, col) // top-left
	c.fillQuarterDisc(x1-radius, y0+radius, radius, 270, col) // top-right
	c.fillQuarterDisc(x0+radius, y1-radius, radius, 90, col)  // bottom-left
	c.fillQuarterDisc(x1-radius, y1-radius, radius, 0, col)   // bottom-right
}

// Pill fills a stadium shape: a rounded rect whose radius is half the
// shorter bound dimension, so the short ends are full semicircles.
func (c *Canvas) Pill(x0, y0, x1, y1 float64, col color.Color) {
	if !c.checkBounds("pill", x0, y0, x1, y1) {
		return
	}
	c.RoundedRect(x0, y0, x1, y1, math.Min(x1-x0, y1-y0)/2, col)
}

// fillQuarterDisc fills the 90 degree wedge of the circle centered at
// (cx,cy) starting at startDeg. Angles follow the image convention:
// 0 at three o'clock, increasing toward positive y (down). The arc is a
// single cubic Bézier, the same construction the renderer uses for full
// ellipses.
func (c *Canvas) fillQuarterDisc(cx, cy, r float64, startDeg int, col color.Color) {
	if c.err != nil {
		return
	}
	a1 := float64(startDeg) * math.Pi / 180
	a2 := a1 + math.Pi/2
	sx, sy := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	ex, ey := cx+r*math.Cos(a2), cy+r*math.Sin(a2)
	c1x := sx - kappa*r*math.Sin(a1)
	c1y := sy + kappa*r*math.Cos(a1)
	c2x := ex + kappa*r*math.Sin(a2)
	c2y := ey - kappa*r*math.Cos(a2)

	c.setColor(col)
	c.dc.MoveTo(cx, cy)
	c.dc.LineTo(sx, sy)
	c.dc.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	c.dc.ClosePath()
	c.setErr(c.dc.Fill())
}

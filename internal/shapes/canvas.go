// Package shapes is the primitive drawing layer. It wraps the gg software
// renderer with bounding-box addressed operations (the convention every
// composer thinks in) and adds the compound shapes the underlying library
// is not used for directly: rounded rectangles and pills built from
// rectangles and quarter discs.
package shapes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// InvalidGeometryError reports degenerate bounds passed to a primitive.
type InvalidGeometryError struct {
	Op             string
	X0, Y0, X1, Y1 float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("%s: invalid bounds [%g,%g,%g,%g]", e.Op, e.X0, e.Y0, e.X1, e.Y1)
}

// Point is a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Canvas is a single-use RGBA pixel buffer with drawing primitives.
// Draw calls after the first error become no-ops; check Err once after
// the full draw sequence. A Canvas is exclusively owned by the composer
// call that created it.
type Canvas struct {
	dc   *gg.Context
	w, h int
	err  error
}

// New creates a transparent canvas. Dimensions must be positive.
func New(w, h int) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, &InvalidGeometryError{Op: "new canvas", X1: float64(w), Y1: float64(h)}
	}
	return &Canvas{dc: gg.NewContext(w, h), w: w, h: h}, nil
}

// Err returns the first drawing error, or nil.
func (c *Canvas) Err() error { return c.err }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Image returns the finished pixel buffer. The caller takes ownership.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// ggColor converts through NRGBA so translucent colors keep their straight
// channel values; gg.FromColor reads the premultiplied color.Color view and
// would darken any fill with alpha below 255.
func ggColor(col color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func (c *Canvas) setColor(col color.Color) {
	g := ggColor(col)
	c.dc.SetRGBA(g.R, g.G, g.B, g.A)
}

func (c *Canvas) checkBounds(op string, x0, y0, x1, y1 float64) bool {
	if c.err != nil {
		return false
	}
	if x1 < x0 || y1 < y0 {
		c.setErr(&InvalidGeometryError{Op: op, X0: x0, Y0: y0, X1: x1, Y1: y1})
		return false
	}
	return true
}

// FillCanvas floods the whole canvas with col, including its alpha value.
func (c *Canvas) FillCanvas(col color.Color) {
	if c.err != nil {
		return
	}
	c.dc.ClearWithColor(ggColor(col))
}

// FillRect fills the axis-aligned rectangle with corners (x0,y0)-(x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	if !c.checkBounds("fill rect", x0, y0, x1, y1) {
		return
	}
	c.setColor(col)
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.setErr(c.dc.Fill())
}

// StrokeRect outlines the rectangle with a stroke of the given width drawn
// inside the bounds.
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width float64, col color.Color) {
	if !c.checkBounds("stroke rect", x0, y0, x1, y1) {
		return
	}
	w := max((x1-x0)-width, 0)
	h := max((y1-y0)-width, 0)
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(x0+width/2, y0+width/2, w, h)
	c.setErr(c.dc.Stroke())
}

// FillEllipse fills the ellipse inscribed in the bounding box.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 float64, col color.Color) {
	if !c.checkBounds("fill ellipse", x0, y0, x1, y1) {
		return
	}
	c.setColor(col)
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.setErr(c.dc.Fill())
}

// StrokeEllipse outlines the ellipse inscribed in the bounding box with a
// stroke of the given width drawn inside it.
func (c *Canvas) StrokeEllipse(x0, y0, x1, y1, width float64, col color.Color) {
	if !c.checkBounds("stroke ellipse", x0, y0, x1, y1) {
		return
	}
	rx := max((x1-x0)/2-width/2, 0)
	ry := max((y1-y0)/2-width/2, 0)
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, rx, ry)
	c.setErr(c.dc.Stroke())
}

// FillPolygon fills the closed polygon through pts. Fewer than three
// points is degenerate and rejected.
func (c *Canvas) FillPolygon(pts []Point, col color.Color) {
	if c.err != nil {
		return
	}
	if len(pts) < 3 {
		c.setErr(&InvalidGeometryError{Op: "fill polygon"})
		return
	}
	c.setColor(col)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.setErr(c.dc.Fill())
}

// Line strokes a straight segment of the given width.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	if c.err != nil {
		return
	}
	c.setColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.setErr(c.dc.Stroke())
}

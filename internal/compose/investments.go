package compose

import (
	"image"
	"image/color"
	"math"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// Investment renders one investment category icon. All geometry hangs off
// a size/8 margin and the canvas center.
func (cp *Composer) Investment(key string, col color.NRGBA, size int) (image.Image, error) {
	return cp.drawIcon(palette.NSInvestments, investmentIcons, key, col, size)
}

var investmentIcons = map[string]iconFunc{
	"property":  drawProperty,
	"trade":     drawTrade,
	"financial": drawFinancial,
	"magical":   drawMagical,
	"political": drawPolitical,
	"dark":      drawDark,
}

// drawProperty draws a house: triangular roof over a rectangular base.
func drawProperty(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(center), float64(margin)),
		shapes.Pt(float64(margin), float64(center)),
		shapes.Pt(float64(size-margin), float64(center)),
	}, col)
	// base inset by 4px either side; clamp so tiny sizes stay ordered
	x0 := float64(margin + 4)
	x1 := float64(size - margin - 4)
	if x1 < x0 {
		x0, x1 = float64(center), float64(center)
	}
	c.FillRect(x0, float64(center), x1, float64(size-margin), col)
}

// drawTrade draws a thick bidirectional arrow block.
func drawTrade(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	aw := size / 6
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(margin), float64(center-aw)),
		shapes.Pt(float64(size-margin-aw), float64(center-aw)),
		shapes.Pt(float64(size-margin-aw), float64(margin)),
		shapes.Pt(float64(size-margin), float64(center)),
		shapes.Pt(float64(size-margin-aw), float64(size-margin)),
		shapes.Pt(float64(size-margin-aw), float64(center+aw)),
		shapes.Pt(float64(margin), float64(center+aw)),
	}, col)
}

// drawFinancial draws a coin: filled disc, background ring, inner disc.
func drawFinancial(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int) {
	margin := size / 8
	c.FillEllipse(float64(margin), float64(margin), float64(size-margin), float64(size-margin), col)
	inner := margin + size/8
	c.FillEllipse(float64(inner), float64(inner), float64(size-inner), float64(size-inner), th.Background)
	inner2 := inner + size/12
	c.FillEllipse(float64(inner2), float64(inner2), float64(size-inner2), float64(size-inner2), col)
}

// drawMagical draws a five point star: ten vertices alternating between
// the outer radius and 0.4 of it, stepped by 36 degrees from straight up.
func drawMagical(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	outer := float64(center - margin)
	pts := make([]shapes.Point, 0, 10)
	for i := 0; i < 5; i++ {
		a := float64(i*72-90) * math.Pi / 180
		pts = append(pts, shapes.Pt(float64(center)+outer*math.Cos(a), float64(center)+outer*math.Sin(a)))
		a2 := float64(i*72-90+36) * math.Pi / 180
		pts = append(pts, shapes.Pt(float64(center)+outer*0.4*math.Cos(a2), float64(center)+outer*0.4*math.Sin(a2)))
	}
	c.FillPolygon(pts, col)
}

// drawPolitical draws a crown silhouette as a single nine point polygon.
func drawPolitical(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	baseY := size - margin - size/6
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(margin), float64(baseY)),
		shapes.Pt(float64(margin), float64(size-margin)),
		shapes.Pt(float64(size-margin), float64(size-margin)),
		shapes.Pt(float64(size-margin), float64(baseY)),
		shapes.Pt(float64(size-margin-size/8), float64(margin+size/4)),
		shapes.Pt(float64(center+size/8), float64(baseY-size/8)),
		shapes.Pt(float64(center), float64(margin)),
		shapes.Pt(float64(center-size/8), float64(baseY-size/8)),
		shapes.Pt(float64(margin+size/8), float64(margin+size/4)),
	}, col)
}

// drawDark draws a skull: cranium ellipse, rectangular jaw, and two eye
// sockets cut with the background color to read as see-through.
func drawDark(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	c.FillEllipse(float64(margin+4), float64(margin), float64(max(size-margin-4, margin+4)), float64(size-margin-size/4), col)
	c.FillRect(float64(margin+size/5), float64(size-margin-size/3), float64(size-margin-size/5), float64(size-margin), col)
	eye := size / 6
	eyeY := center - size/8
	for _, ex := range []int{center - size/4, center + size/4} {
		c.FillEllipse(float64(ex-eye/2), float64(eyeY-eye/2), float64(ex+eye/2), float64(eyeY+eye/2), th.Background)
	}
}

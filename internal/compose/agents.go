package compose

import (
	"image"
	"image/color"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// Agent renders one agent category icon.
func (cp *Composer) Agent(key string, col color.NRGBA, size int) (image.Image, error) {
	return cp.drawIcon(palette.NSAgents, agentIcons, key, col, size)
}

var agentIcons = map[string]iconFunc{
	"individual": drawIndividual,
	"family":     drawFamily,
	"cult":       drawCult,
	"bound":      drawBound,
}

// drawIndividual draws a single figure: head ellipse over a trapezoid body.
func drawIndividual(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	headR := size / 6
	c.FillEllipse(float64(center-headR), float64(margin), float64(center+headR), float64(margin+headR*2), col)
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(center-size/4), float64(margin+headR*2+2)),
		shapes.Pt(float64(center+size/4), float64(margin+headR*2+2)),
		shapes.Pt(float64(center+size/3), float64(size-margin)),
		shapes.Pt(float64(center-size/3), float64(size-margin)),
	}, col)
}

// drawFamily draws a parent head over two child heads, joined by a tree of
// 2px connector lines.
func drawFamily(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	headR := size / 10
	leftX := margin + size/8
	rightX := size - margin - size/8
	c.FillEllipse(float64(center-headR), float64(margin), float64(center+headR), float64(margin+headR*2), col)
	c.FillEllipse(float64(leftX-headR), float64(center), float64(leftX+headR), float64(center+headR*2), col)
	c.FillEllipse(float64(rightX-headR), float64(center), float64(rightX+headR), float64(center+headR*2), col)
	c.Line(float64(center), float64(margin+headR*2), float64(center), float64(center-headR), 2, col)
	c.Line(float64(leftX), float64(center-headR), float64(rightX), float64(center-headR), 2, col)
	c.Line(float64(leftX), float64(center-headR), float64(leftX), float64(center), 2, col)
	c.Line(float64(rightX), float64(center-headR), float64(rightX), float64(center), 2, col)
}

// drawCult draws a hooded figure with an accent eye glow. The glow is a
// fixed-size ellipse at every resolution, matching the reference art.
func drawCult(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	hoodW := size / 3
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(center), float64(margin)),
		shapes.Pt(float64(center-hoodW), float64(center+size/6)),
		shapes.Pt(float64(center-hoodW+size/8), float64(size-margin)),
		shapes.Pt(float64(center+hoodW-size/8), float64(size-margin)),
		shapes.Pt(float64(center+hoodW), float64(center+size/6)),
	}, col)
	c.FillEllipse(float64(center-3), float64(center-2), float64(center+3), float64(center+4), th.Accent)
}

// drawBound draws a chained figure: head, body block, and three pairs of
// outlined chain links stepped down the side margins.
func drawBound(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	headR := size / 8
	headTop := margin + size/6
	c.FillEllipse(float64(center-headR), float64(headTop), float64(center+headR), float64(headTop+headR*2), col)
	c.FillRect(float64(center-size/6), float64(headTop+headR*2), float64(center+size/6), float64(max(size-margin-size/6, headTop+headR*2)), col)
	chainR := size / 16
	for i := 0; i < 3; i++ {
		y := margin + i*size/4
		c.StrokeEllipse(float64(margin-chainR), float64(y), float64(margin+chainR), float64(y+chainR*2), 2, th.Accent)
		c.StrokeEllipse(float64(size-margin-chainR), float64(y), float64(size-margin+chainR), float64(y+chainR*2), 2, th.Accent)
	}
}

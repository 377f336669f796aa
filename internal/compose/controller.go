package compose

import (
	"image"
	"image/color"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// Glyph renders a controller button glyph. Face buttons are filled
// circles carrying an abstract letter shape cut in the background color;
// bumpers, triggers and menu buttons are pills; the d-pad is a cross and
// the sticks are outlined circles with a center dot.
func (cp *Composer) Glyph(key string, col color.NRGBA, size int) (image.Image, error) {
	return cp.drawIcon(palette.NSController, controllerGlyphs, key, col, size)
}

var controllerGlyphs = map[string]iconFunc{
	"a":       faceButton(drawGlyphA),
	"b":       faceButton(drawGlyphB),
	"x":       faceButton(drawGlyphX),
	"y":       faceButton(drawGlyphY),
	"lb":      drawBumper,
	"rb":      drawBumper,
	"lt":      drawTrigger,
	"rt":      drawTrigger,
	"dpad":    drawDpad,
	"start":   drawMenuButton,
	"back":    drawMenuButton,
	"stick_l": drawStick,
	"stick_r": drawStick,
}

// faceButton wraps a letter-shape drawer with the shared filled circle.
func faceButton(letter func(c *shapes.Canvas, th palette.Theme, size int)) iconFunc {
	return func(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int) {
		margin := size / 8
		c.FillEllipse(float64(margin), float64(margin), float64(size-margin), float64(size-margin), col)
		letter(c, th, size)
	}
}

// drawGlyphA cuts an upward triangle.
func drawGlyphA(c *shapes.Canvas, th palette.Theme, size int) {
	margin, center := size/8, size/2
	ls := size / 3
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(center), float64(margin+ls/2)),
		shapes.Pt(float64(center-ls/2), float64(size-margin-ls/2)),
		shapes.Pt(float64(center+ls/2), float64(size-margin-ls/2)),
	}, th.Background)
}

// drawGlyphB cuts two stacked bumps against a spine.
func drawGlyphB(c *shapes.Canvas, th palette.Theme, size int) {
	center := size / 2
	ls := size / 3
	c.FillEllipse(float64(center-ls/2), float64(center-ls/2), float64(center+ls/2), float64(center), th.Background)
	c.FillEllipse(float64(center-ls/2), float64(center), float64(center+ls/2), float64(center+ls/2), th.Background)
	c.FillRect(float64(center-ls/2), float64(center-ls/2), float64(center-ls/4), float64(center+ls/2), th.Background)
}

// drawGlyphX cuts a diagonal cross.
func drawGlyphX(c *shapes.Canvas, th palette.Theme, size int) {
	center := size / 2
	ls := size / 3
	lw := float64(max(ls/4, 1))
	c.Line(float64(center-ls/2), float64(center-ls/2), float64(center+ls/2), float64(center+ls/2), lw, th.Background)
	c.Line(float64(center+ls/2), float64(center-ls/2), float64(center-ls/2), float64(center+ls/2), lw, th.Background)
}

// drawGlyphY cuts a three stroke fork.
func drawGlyphY(c *shapes.Canvas, th palette.Theme, size int) {
	center := size / 2
	ls := size / 3
	lw := float64(max(ls/4, 1))
	c.Line(float64(center-ls/2), float64(center-ls/2), float64(center), float64(center), lw, th.Background)
	c.Line(float64(center+ls/2), float64(center-ls/2), float64(center), float64(center), lw, th.Background)
	c.Line(float64(center), float64(center), float64(center), float64(center+ls/2), lw, th.Background)
}

// drawBumper draws a horizontal pill across the canvas.
func drawBumper(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	h := max(size/4, 8)
	c.Pill(float64(margin), float64(center-h/2), float64(max(size-margin, margin)), float64(center+h/2), col)
}

// drawTrigger draws a vertical pill.
func drawTrigger(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	w := max(size/3, 10)
	c.Pill(float64(center-w/2), float64(margin), float64(center+w/2), float64(max(size-margin, margin)), col)
}

// drawDpad draws a cross from two overlapping rectangles.
func drawDpad(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	dw := size / 4
	c.FillRect(float64(center-dw/2), float64(margin), float64(center+dw/2), float64(max(size-margin, margin)), col)
	c.FillRect(float64(margin), float64(center-dw/2), float64(max(size-margin, margin)), float64(center+dw/2), col)
}

// drawStick draws an outlined circle with a filled center dot.
func drawStick(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	c.StrokeEllipse(float64(margin), float64(margin), float64(max(size-margin, margin)), float64(max(size-margin, margin)), 3, col)
	dotR := size / 8
	c.FillEllipse(float64(center-dotR), float64(center-dotR), float64(center+dotR), float64(center+dotR), col)
}

// drawMenuButton draws the small start/back pill, inset an extra size/6
// beyond the normal margin.
func drawMenuButton(c *shapes.Canvas, _ palette.Theme, col color.NRGBA, size int) {
	margin, center := size/8, size/2
	h := max(size/5, 6)
	x0 := margin + size/6
	x1 := max(size-margin-size/6, x0)
	c.Pill(float64(x0), float64(center-h), float64(x1), float64(center+h), col)
}

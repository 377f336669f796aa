package compose

import (
	"image"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// Panel renders a UI panel background: translucent dark fill, accent outer
// border, primary inner border inset by 4px, and accent corner squares at
// the inner border corners.
func (cp *Composer) Panel(w, h int) (image.Image, error) {
	th := cp.theme()
	c, err := shapes.New(w, h)
	if err != nil {
		return nil, err
	}
	bg := th.Background
	bg.A = 240
	c.FillCanvas(bg)
	c.StrokeRect(0, 0, float64(w), float64(h), 2, th.Accent)
	if w > 8 && h > 8 {
		c.StrokeRect(4, 4, float64(w-4), float64(h-4), 1, th.Primary)
	}
	const corner = 8
	for _, x := range []int{4, w - 4 - corner} {
		for _, y := range []int{4, h - 4 - corner} {
			c.FillRect(float64(x), float64(y), float64(x+corner), float64(y+corner), th.Accent)
		}
	}
	return finish(c)
}

// buttonStyles pairs a fill with an outline per interaction state.
// Fills are also resolvable through the palette's ui namespace.
var buttonStyles = map[string]struct{ outlineSecondary bool }{
	"normal":  {false},
	"hover":   {false},
	"pressed": {true},
}

// Button renders a button texture for one interaction state.
func (cp *Composer) Button(state string, w, h int) (image.Image, error) {
	style, ok := buttonStyles[state]
	if !ok {
		return nil, &palette.UnknownCategoryError{Namespace: palette.NSUI, Key: state}
	}
	fill, err := cp.pal.ColorOf(palette.NSUI, state)
	if err != nil {
		return nil, err
	}
	th := cp.theme()
	outline := th.Accent
	if style.outlineSecondary {
		outline = th.Secondary
	}
	c, err := shapes.New(w, h)
	if err != nil {
		return nil, err
	}
	c.RoundedRect(0, 0, float64(w), float64(h), 6, fill)
	c.StrokeRect(0, 0, float64(w), float64(h), 2, outline)
	return finish(c)
}

// Meter renders the exposure meter background: outlined dark bar with
// accent threshold lines at 25%, 50% and 75% of the width.
func (cp *Composer) Meter(w, h int) (image.Image, error) {
	th := cp.theme()
	c, err := shapes.New(w, h)
	if err != nil {
		return nil, err
	}
	c.FillRect(0, 0, float64(w), float64(h), th.Background)
	c.StrokeRect(0, 0, float64(w), float64(h), 1, th.Secondary)
	for _, t := range []float64{0.25, 0.50, 0.75} {
		x := float64(int(t * float64(w)))
		c.Line(x+0.5, 0, x+0.5, float64(h), 1, th.Accent)
	}
	return finish(c)
}

// Logo renders the game logo: a bone-white skull truncated at the bottom
// sixth, background eye sockets, and three overlapping gold coins along
// the bottom edge.
func (cp *Composer) Logo(size int) (image.Image, error) {
	th := cp.theme()
	c, err := square(size)
	if err != nil {
		return nil, err
	}
	margin, center := size/8, size/2
	c.FillEllipse(float64(margin), float64(margin), float64(size-margin), float64(max(size-margin-size/6, margin)), th.Secondary)
	eye := size / 5
	eyeY := center - size/10
	for _, ex := range []int{center - size/4, center + size/4} {
		c.FillEllipse(float64(ex-eye/2), float64(eyeY-eye/2), float64(ex+eye/2), float64(eyeY+eye/2), th.Background)
	}
	coinR := size / 6
	coinTop := size - margin - coinR*2
	c.FillEllipse(float64(center-coinR-size/8), float64(coinTop), float64(center-size/8), float64(size-margin), th.Accent)
	c.FillEllipse(float64(center-coinR/2), float64(coinTop), float64(center+coinR/2), float64(size-margin), th.Accent)
	c.FillEllipse(float64(center+size/8-coinR), float64(coinTop), float64(center+size/8), float64(size-margin), th.Accent)
	return finish(c)
}

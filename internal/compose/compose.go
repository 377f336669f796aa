// Package compose turns semantic category names into pixel images. Every
// composer is a pure function of (key, color, canvas size): it computes
// proportional coordinates from the canvas size and emits primitive draw
// calls, so the same algorithm stays visually consistent at 32, 64 and
// 128 pixels. Category dispatch goes through per-family tables keyed by
// name.
package compose

import (
	"image"
	"image/color"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// Composer renders catalog assets against a fixed palette registry.
type Composer struct {
	pal *palette.Registry
}

// New creates a Composer bound to the given registry.
func New(pal *palette.Registry) *Composer {
	return &Composer{pal: pal}
}

func (cp *Composer) theme() palette.Theme { return cp.pal.Theme() }

// square allocates a size×size canvas.
func square(size int) (*shapes.Canvas, error) {
	return shapes.New(size, size)
}

// finish hands the pixel buffer to the caller unless a draw call failed.
func finish(c *shapes.Canvas) (image.Image, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

type iconFunc func(c *shapes.Canvas, th palette.Theme, col color.NRGBA, size int)

// drawIcon runs one table-dispatched square icon composer.
func (cp *Composer) drawIcon(namespace string, table map[string]iconFunc, key string, col color.NRGBA, size int) (image.Image, error) {
	draw, ok := table[key]
	if !ok {
		return nil, &palette.UnknownCategoryError{Namespace: namespace, Key: key}
	}
	c, err := square(size)
	if err != nil {
		return nil, err
	}
	draw(c, cp.theme(), col, size)
	return finish(c)
}

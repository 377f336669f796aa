package compose

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/lichworks/assetforge/internal/palette"
	"github.com/lichworks/assetforge/internal/shapes"
)

// mapSeed fixes the age-spot scatter so regenerated map backgrounds are
// byte-identical across runs. Changing it invalidates shipped assets.
const mapSeed = 42

var (
	parchment    = color.NRGBA{218, 197, 165, 255}
	mapBorder    = color.NRGBA{101, 67, 33, 255}
	coastalLand  = color.NRGBA{139, 119, 101, 255}
	mountainRock = color.NRGBA{169, 169, 169, 255}
	snowCap      = color.NRGBA{255, 255, 255, 255}
	forestTree   = color.NRGBA{0, 100, 0, 255}
)

// MapBackground renders the parchment world map: base fill, one hundred
// pseudorandom elliptical age spots shaded off the parchment color, then
// a thick dark outer border and a thin accent inner border. The random
// source is created inside this call, so reproducibility holds no matter
// what else ran before it.
func (cp *Composer) MapBackground(w, h int) (image.Image, error) {
	th := cp.theme()
	c, err := shapes.New(w, h)
	if err != nil {
		return nil, err
	}
	c.FillRect(0, 0, float64(w), float64(h), parchment)

	rng := rand.New(rand.NewSource(mapSeed))
	for i := 0; i < 100; i++ {
		x := rng.Intn(w + 1)
		y := rng.Intn(h + 1)
		r := 5 + rng.Intn(16)
		shade := -20 + rng.Intn(41)
		spot := palette.Shade(parchment, shade, shade, shade-10)
		c.FillEllipse(float64(x-r), float64(y-r), float64(x+r), float64(y+r), spot)
	}

	c.StrokeRect(0, 0, float64(w), float64(h), 8, mapBorder)
	if w > 16 && h > 16 {
		c.StrokeRect(8, 8, float64(w-8), float64(h-8), 2, th.Accent)
	}
	return finish(c)
}

// KingdomMarker renders a castle tower in the kingdom's color with two
// battlement blocks and an accent flag.
func (cp *Composer) KingdomMarker(col color.NRGBA, size int) (image.Image, error) {
	th := cp.theme()
	c, err := square(size)
	if err != nil {
		return nil, err
	}
	center := size / 2
	towerW := size / 3
	top := size / 4
	bottom := max(size-4, top)
	c.FillRect(float64(center-towerW/2), float64(top), float64(center+towerW/2), float64(bottom), col)
	battH := size / 6
	battW := size / 8
	c.FillRect(float64(center-towerW/2-battW), float64(top), float64(center-towerW/2+battW), float64(top+battH), col)
	c.FillRect(float64(center+towerW/2-battW), float64(top), float64(center+towerW/2+battW), float64(top+battH), col)
	c.FillPolygon([]shapes.Point{
		shapes.Pt(float64(center), 4),
		shapes.Pt(float64(center+size/4), float64(size/6)),
		shapes.Pt(float64(center), float64(size/4)),
	}, th.Accent)
	return finish(c)
}

// Terrain renders a flat terrain tile in the given base color with a
// per-type decoration: coastal gets a land corner, mountain a rock
// triangle with a snow cap, forest three tree triangles. Inland stays a
// plain fill.
func (cp *Composer) Terrain(kind string, col color.NRGBA, size int) (image.Image, error) {
	draw, ok := terrainTiles[kind]
	if !ok {
		return nil, &palette.UnknownCategoryError{Namespace: palette.NSTerrain, Key: kind}
	}
	c, err := square(size)
	if err != nil {
		return nil, err
	}
	c.FillRect(0, 0, float64(size), float64(size), col)
	draw(c, size)
	return finish(c)
}

var terrainTiles = map[string]func(c *shapes.Canvas, size int){
	"coastal": func(c *shapes.Canvas, size int) {
		c.FillPolygon([]shapes.Point{
			shapes.Pt(0, 0),
			shapes.Pt(float64(size/2), 0),
			shapes.Pt(0, float64(size/2)),
		}, coastalLand)
	},
	"inland": func(c *shapes.Canvas, size int) {},
	"mountain": func(c *shapes.Canvas, size int) {
		c.FillPolygon([]shapes.Point{
			shapes.Pt(float64(size/2), float64(size/6)),
			shapes.Pt(float64(size/6), float64(size-size/6)),
			shapes.Pt(float64(size-size/6), float64(size-size/6)),
		}, mountainRock)
		c.FillPolygon([]shapes.Point{
			shapes.Pt(float64(size/2), float64(size/6)),
			shapes.Pt(float64(size/3), float64(size/3)),
			shapes.Pt(float64(size-size/3), float64(size/3)),
		}, snowCap)
	},
	"forest": func(c *shapes.Canvas, size int) {
		for _, x := range []int{size / 4, size / 2, 3 * size / 4} {
			c.FillPolygon([]shapes.Point{
				shapes.Pt(float64(x), float64(size/4)),
				shapes.Pt(float64(x-size/6), float64(size-size/4)),
				shapes.Pt(float64(x+size/6), float64(size-size/4)),
			}, forestTree)
		}
	},
}

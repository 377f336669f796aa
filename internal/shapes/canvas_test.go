package shapes

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	testRed  = color.NRGBA{200, 40, 40, 255}
	testBlue = color.NRGBA{40, 40, 200, 255}
)

func rgbaPix(t *testing.T, img image.Image) []uint8 {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("canvas image is %T, want *image.RGBA", img)
	}
	return rgba.Pix
}

func sampleAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("canvas image is %T, want *image.RGBA", img)
	}
	return rgba.RGBAAt(x, y)
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, tt := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		if _, err := New(tt.w, tt.h); err == nil {
			t.Errorf("New(%d, %d) succeeded, want error", tt.w, tt.h)
		}
	}
	if _, err := New(1, 1); err != nil {
		t.Errorf("New(1, 1): %v", err)
	}
}

func TestInvertedBoundsFailFast(t *testing.T) {
	ops := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"fill rect", func(c *Canvas) { c.FillRect(10, 0, 5, 5, testRed) }},
		{"stroke rect", func(c *Canvas) { c.StrokeRect(0, 10, 5, 5, 1, testRed) }},
		{"fill ellipse", func(c *Canvas) { c.FillEllipse(10, 0, 5, 5, testRed) }},
		{"stroke ellipse", func(c *Canvas) { c.StrokeEllipse(0, 10, 5, 5, 1, testRed) }},
		{"rounded rect", func(c *Canvas) { c.RoundedRect(10, 0, 5, 5, 2, testRed) }},
		{"pill", func(c *Canvas) { c.Pill(0, 10, 5, 5, testRed) }},
		{"degenerate polygon", func(c *Canvas) { c.FillPolygon([]Point{Pt(0, 0), Pt(1, 1)}, testRed) }},
	}
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(16, 16)
			if err != nil {
				t.Fatal(err)
			}
			tt.draw(c)
			var geom *InvalidGeometryError
			if !errors.As(c.Err(), &geom) {
				t.Fatalf("Err() = %v, want InvalidGeometryError", c.Err())
			}
			// the canvas must stay blank rather than draw a corrupt region
			if got := sampleAt(t, c.Image(), 7, 7); got.A != 0 {
				t.Errorf("canvas drew despite invalid bounds: %v", got)
			}
		})
	}
}

func TestDrawCallsAfterErrorAreNoOps(t *testing.T) {
	c, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	c.FillRect(10, 0, 5, 5, testRed) // poisons the canvas
	first := c.Err()
	c.FillRect(0, 0, 16, 16, testBlue)
	if got := sampleAt(t, c.Image(), 8, 8); got.A != 0 {
		t.Errorf("draw after error modified canvas: %v", got)
	}
	if c.Err() != first {
		t.Errorf("Err() changed after subsequent calls: %v", c.Err())
	}
}

func TestFillRectCoversRegion(t *testing.T) {
	c, err := New(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	c.FillRect(8, 8, 24, 24, testRed)
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	img := c.Image()
	if got := sampleAt(t, img, 16, 16); got != (color.RGBA{200, 40, 40, 255}) {
		t.Errorf("interior = %v, want opaque red", got)
	}
	for _, p := range []image.Point{{4, 4}, {27, 16}, {16, 4}} {
		if got := sampleAt(t, img, p.X, p.Y); got.A != 0 {
			t.Errorf("outside pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestZeroAreaBoundsDrawNothing(t *testing.T) {
	c, err := New(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	c.FillRect(8, 2, 8, 14, testRed)
	c.FillEllipse(2, 8, 14, 8, testRed)
	if c.Err() != nil {
		t.Fatalf("zero-area bounds are not an error, got %v", c.Err())
	}
}

func TestRepeatedSequenceIsDeterministic(t *testing.T) {
	render := func() image.Image {
		c, err := New(48, 48)
		if err != nil {
			t.Fatal(err)
		}
		c.FillRect(0, 0, 48, 48, testBlue)
		c.FillEllipse(6, 6, 42, 42, testRed)
		c.FillPolygon([]Point{Pt(24, 8), Pt(40, 40), Pt(8, 40)}, testBlue)
		c.Line(0, 0, 48, 48, 2, testRed)
		c.StrokeEllipse(10, 10, 38, 38, 3, testBlue)
		if c.Err() != nil {
			t.Fatal(c.Err())
		}
		return c.Image()
	}
	a, b := render(), render()
	if !bytes.Equal(rgbaPix(t, a), rgbaPix(t, b)) {
		t.Error("identical draw sequences produced different pixel buffers")
	}
}

func TestTranslucentFillKeepsStraightChannels(t *testing.T) {
	// non-opaque fills must land in the buffer with their NRGBA channel
	// values intact, not darkened by a premultiplied round trip
	tests := []struct {
		name string
		col  color.NRGBA
	}{
		{"panel background", color.NRGBA{10, 10, 15, 240}},
		{"half alpha", color.NRGBA{201, 162, 39, 128}},
		{"opaque", color.NRGBA{45, 27, 78, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(8, 8)
			if err != nil {
				t.Fatal(err)
			}
			c.FillCanvas(tt.col)
			if c.Err() != nil {
				t.Fatal(c.Err())
			}
			want := color.RGBA{tt.col.R, tt.col.G, tt.col.B, tt.col.A}
			if got := sampleAt(t, c.Image(), 4, 4); got != want {
				t.Errorf("pixel = %v, want %v", got, want)
			}
		})
	}
}

func TestTranslucentRectKeepsStraightChannels(t *testing.T) {
	c, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	col := color.NRGBA{10, 10, 15, 240}
	c.FillRect(0, 0, 8, 8, col)
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	want := color.RGBA{col.R, col.G, col.B, col.A}
	if got := sampleAt(t, c.Image(), 4, 4); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

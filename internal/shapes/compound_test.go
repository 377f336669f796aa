package shapes

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRoundedRectZeroRadiusIsPlainRect(t *testing.T) {
	rounded, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	rounded.RoundedRect(8, 8, 56, 40, 0, testRed)

	plain, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	plain.FillRect(8, 8, 56, 40, testRed)

	if !bytes.Equal(rgbaPix(t, rounded.Image()), rgbaPix(t, plain.Image())) {
		t.Error("radius 0 rounded rect differs from plain filled rect")
	}
}

func TestRoundedRectCornersAreCut(t *testing.T) {
	c, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	c.RoundedRect(0, 0, 64, 64, 16, testRed)
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	img := c.Image()
	// corner pixel lies outside the corner disc
	if got := sampleAt(t, img, 2, 2); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
	// edge midpoints and center are solid fill
	for _, p := range []image.Point{{32, 32}, {32, 2}, {2, 32}, {61, 32}, {32, 61}} {
		if got := sampleAt(t, img, p.X, p.Y); got != (color.RGBA{200, 40, 40, 255}) {
			t.Errorf("pixel %v = %v, want opaque red", p, got)
		}
	}
	// corner disc interior is filled seamlessly
	if got := sampleAt(t, img, 8, 8); got != (color.RGBA{200, 40, 40, 255}) {
		t.Errorf("corner disc interior = %v, want opaque red", got)
	}
}

func TestPillMatchesFullRadiusRoundedRect(t *testing.T) {
	pill, err := New(128, 48)
	if err != nil {
		t.Fatal(err)
	}
	pill.Pill(0, 0, 128, 48, testRed)

	rr, err := New(128, 48)
	if err != nil {
		t.Fatal(err)
	}
	rr.RoundedRect(0, 0, 128, 48, 24, testRed)

	if !bytes.Equal(rgbaPix(t, pill.Image()), rgbaPix(t, rr.Image())) {
		t.Error("pill differs from rounded rect at half the shorter dimension")
	}
}

func TestPillEndCapsAndStraightMiddle(t *testing.T) {
	c, err := New(128, 48)
	if err != nil {
		t.Fatal(err)
	}
	c.Pill(0, 0, 128, 48, testRed)
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	img := c.Image()
	solid := color.RGBA{200, 40, 40, 255}

	// semicircular left cap: outside the 24px disc is empty, inside is solid
	for _, p := range []image.Point{{2, 2}, {2, 45}, {125, 2}, {125, 45}} {
		if got := sampleAt(t, img, p.X, p.Y); got.A != 0 {
			t.Errorf("cap corner %v = %v, want transparent", p, got)
		}
	}
	for _, p := range []image.Point{{3, 24}, {124, 24}, {12, 12}, {115, 35}} {
		if got := sampleAt(t, img, p.X, p.Y); got != solid {
			t.Errorf("cap interior %v = %v, want opaque red", p, got)
		}
	}

	// straight-sided middle spans the full height
	for x := 30; x <= 100; x += 10 {
		if got := sampleAt(t, img, x, 1); got != solid {
			t.Errorf("top edge at x=%d = %v, want opaque red", x, got)
		}
		if got := sampleAt(t, img, x, 46); got != solid {
			t.Errorf("bottom edge at x=%d = %v, want opaque red", x, got)
		}
	}
}

func TestPillVerticalOrientation(t *testing.T) {
	c, err := New(48, 128)
	if err != nil {
		t.Fatal(err)
	}
	c.Pill(0, 0, 48, 128, testBlue)
	if c.Err() != nil {
		t.Fatal(c.Err())
	}
	img := c.Image()
	if got := sampleAt(t, img, 2, 2); got.A != 0 {
		t.Errorf("top cap corner = %v, want transparent", got)
	}
	if got := sampleAt(t, img, 24, 64); got != (color.RGBA{40, 40, 200, 255}) {
		t.Errorf("center = %v, want opaque blue", got)
	}
	if got := sampleAt(t, img, 1, 64); got != (color.RGBA{40, 40, 200, 255}) {
		t.Errorf("straight middle edge = %v, want opaque blue", got)
	}
}

func TestQuarterDiscCapIsRound(t *testing.T) {
	// sample a diagonal walk across the left cap boundary of a pill:
	// alpha must rise from empty to solid, never jumping to a wrong color
	c, err := New(128, 48)
	if err != nil {
		t.Fatal(err)
	}
	c.Pill(0, 0, 128, 48, testRed)
	img := c.Image()

	outside := sampleAt(t, img, 4, 6) // distance ~26 from (24,24)
	inside := sampleAt(t, img, 10, 14) // distance ~17
	if outside.A != 0 {
		t.Errorf("point outside cap arc = %v, want transparent", outside)
	}
	if inside != (color.RGBA{200, 40, 40, 255}) {
		t.Errorf("point inside cap arc = %v, want opaque red", inside)
	}
}

package compose

import (
	"errors"
	"image/color"
	"testing"

	"github.com/lichworks/assetforge/internal/palette"
)

func TestGlyphUnknownKey(t *testing.T) {
	cp, _ := newComposer()
	_, err := cp.Glyph("home", color.NRGBA{255, 255, 255, 255}, 64)
	var unknown *palette.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownCategoryError", err)
	}
}

func TestGlyphAllKeysAndSizes(t *testing.T) {
	cp, pal := newComposer()
	for _, key := range pal.Keys(palette.NSController) {
		for _, size := range []int{16, 32, 64} {
			img, err := cp.Glyph(key, mustColor(t, pal, palette.NSController, key), size)
			if err != nil {
				t.Fatalf("Glyph(%q, %d): %v", key, size, err)
			}
			if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
				t.Errorf("Glyph(%q, %d) bounds = %v", key, size, b)
			}
			alphaBounds(t, img)
		}
	}
}

func TestFaceButtonLetterCutouts(t *testing.T) {
	cp, pal := newComposer()
	bg := opaque(pal.Theme().Background)
	tests := []struct {
		key            string
		circle, letter [2]int
	}{
		{"a", [2]int{32, 14}, [2]int{32, 30}},
		{"b", [2]int{32, 12}, [2]int{36, 27}},
		{"x", [2]int{14, 32}, [2]int{32, 32}},
		{"y", [2]int{14, 32}, [2]int{32, 36}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			col := mustColor(t, pal, palette.NSController, tt.key)
			img, err := cp.Glyph(tt.key, col, 64)
			if err != nil {
				t.Fatal(err)
			}
			if got := at(t, img, tt.circle[0], tt.circle[1]); got != opaque(col) {
				t.Errorf("circle = %v, want %v", got, col)
			}
			if got := at(t, img, tt.letter[0], tt.letter[1]); got != bg {
				t.Errorf("letter = %v, want background", got)
			}
			if got := at(t, img, 1, 1); got.A != 0 {
				t.Errorf("corner = %v, want transparent", got)
			}
		})
	}
}

func TestBumperAndTriggerPills(t *testing.T) {
	cp, pal := newComposer()

	col := mustColor(t, pal, palette.NSController, "lb")
	img, err := cp.Glyph("lb", col, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(t, img, 32, 32); got != opaque(col) {
		t.Errorf("bumper body = %v", got)
	}
	if got := at(t, img, 12, 32); got != opaque(col) {
		t.Errorf("bumper end cap = %v", got)
	}
	if got := at(t, img, 32, 10); got.A != 0 {
		t.Errorf("above bumper = %v, want transparent", got)
	}

	col = mustColor(t, pal, palette.NSController, "rt")
	img, err = cp.Glyph("rt", col, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(t, img, 32, 32); got != opaque(col) {
		t.Errorf("trigger body = %v", got)
	}
	if got := at(t, img, 10, 32); got.A != 0 {
		t.Errorf("beside trigger = %v, want transparent", got)
	}
}

func TestDpadCross(t *testing.T) {
	cp, pal := newComposer()
	col := mustColor(t, pal, palette.NSController, "dpad")
	img, err := cp.Glyph("dpad", col, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(t, img, 32, 32); got != opaque(col) {
		t.Errorf("hub = %v", got)
	}
	if got := at(t, img, 32, 10); got != opaque(col) {
		t.Errorf("vertical arm = %v", got)
	}
	if got := at(t, img, 10, 10); got.A != 0 {
		t.Errorf("between arms = %v, want transparent", got)
	}
}

func TestStickRingAndDot(t *testing.T) {
	cp, pal := newComposer()
	col := mustColor(t, pal, palette.NSController, "stick_l")
	img, err := cp.Glyph("stick_l", col, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(t, img, 32, 9); got != opaque(col) {
		t.Errorf("ring = %v", got)
	}
	if got := at(t, img, 32, 32); got != opaque(col) {
		t.Errorf("dot = %v", got)
	}
	if got := at(t, img, 32, 20); got.A != 0 {
		t.Errorf("ring gap = %v, want transparent", got)
	}
}

func TestMenuButtonInset(t *testing.T) {
	cp, pal := newComposer()
	col := mustColor(t, pal, palette.NSController, "start")
	img, err := cp.Glyph("start", col, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got := at(t, img, 32, 32); got != opaque(col) {
		t.Errorf("pill = %v", got)
	}
	// inset past the normal margin on both sides
	if got := at(t, img, 10, 32); got.A != 0 {
		t.Errorf("left of pill = %v, want transparent", got)
	}
	if got := at(t, img, 53, 32); got.A != 0 {
		t.Errorf("right of pill = %v, want transparent", got)
	}
}

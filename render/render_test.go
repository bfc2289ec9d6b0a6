package render

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestSpriteCellSize(t *testing.T) {
	tests := []struct {
		px, py int
		cw, ch int
	}{
		{2, 2, 1, 1},
		{64, 64, 32, 32},
		{3, 5, 2, 3},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		img := image.NewRGBA(image.Rect(0, 0, tt.px, tt.py))
		w, h := SpriteCellSize(img)
		if w != tt.cw || h != tt.ch {
			t.Errorf("SpriteCellSize(%dx%d): expected %dx%d, got %dx%d",
				tt.px, tt.py, tt.cw, tt.ch, w, h)
		}
	}
}

func TestQuadrantPatternTable(t *testing.T) {
	// Full block, empty, and the four single-quadrant runes.
	if quadrantRunes[15] != '█' {
		t.Errorf("Pattern 1111 should be full block, got %q", quadrantRunes[15])
	}
	if quadrantRunes[0] != ' ' {
		t.Errorf("Pattern 0000 should be blank, got %q", quadrantRunes[0])
	}
	singles := map[int]rune{8: '▘', 4: '▝', 2: '▖', 1: '▗'}
	for pattern, want := range singles {
		if quadrantRunes[pattern] != want {
			t.Errorf("Pattern %04b: expected %q, got %q", pattern, want, quadrantRunes[pattern])
		}
	}
}

func TestPulseLevelBounds(t *testing.T) {
	period := 1200 * time.Millisecond
	for ms := 0; ms <= 3000; ms += 37 {
		level := PulseLevel(time.Duration(ms)*time.Millisecond, period)
		if level < 0 || level > 1 {
			t.Fatalf("PulseLevel out of range at %dms: %v", ms, level)
		}
	}

	// Trough at phase 0, peak at half period.
	if got := PulseLevel(0, period); got != 0 {
		t.Errorf("Expected level 0 at phase 0, got %v", got)
	}
	peak := PulseLevel(period/2, period)
	if peak < 0.999 {
		t.Errorf("Expected peak near 1 at half period, got %v", peak)
	}
}

func TestPulseLevelIsPure(t *testing.T) {
	period := time.Second
	for _, e := range []time.Duration{0, 250 * time.Millisecond, 999 * time.Millisecond} {
		if PulseLevel(e, period) != PulseLevel(e, period) {
			t.Errorf("PulseLevel(%v) not deterministic", e)
		}
	}
}

func TestBlinkOnHalfDuty(t *testing.T) {
	period := time.Second
	if !BlinkOn(0, period) {
		t.Error("Blink should be on at phase 0")
	}
	if !BlinkOn(499*time.Millisecond, period) {
		t.Error("Blink should be on just before half period")
	}
	if BlinkOn(500*time.Millisecond, period) {
		t.Error("Blink should be off at half period")
	}
	if !BlinkOn(time.Second, period) {
		t.Error("Blink should wrap back on at a full period")
	}
}

func TestBlitPatternFromAlpha(t *testing.T) {
	// Build a 2x2 image with only the top-left pixel lit and verify the
	// pattern computation path (via a tiny stand-in of the sampling logic).
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	var pattern int
	if img.RGBAAt(0, 0).A != 0 {
		pattern |= 8
	}
	if img.RGBAAt(1, 0).A != 0 {
		pattern |= 4
	}
	if img.RGBAAt(0, 1).A != 0 {
		pattern |= 2
	}
	if img.RGBAAt(1, 1).A != 0 {
		pattern |= 1
	}

	if quadrantRunes[pattern] != '▘' {
		t.Errorf("Expected top-left quadrant rune, got %q", quadrantRunes[pattern])
	}
}

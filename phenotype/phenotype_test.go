package phenotype

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/petri/biology"
)

func props(shape string, shapeI float64, surface string, surfaceI float64, hex string, colorI float64) biology.VisualProperties {
	return biology.VisualProperties{
		Shape:   biology.VisualTrait{Type: shape, Intensity: shapeI},
		Surface: biology.VisualTrait{Type: surface, Intensity: surfaceI},
		Color:   biology.ColorTrait{Hex: hex, Intensity: colorI},
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	cases := []biology.VisualProperties{
		props("spherical", 1.0, "rough", 0.7, "#00FF00", 1.0),
		props("rod", 0.3, "spiky", 1.0, "#FF0000", 0.7),
		props("rod", 0.7, "smooth", 0.7, "#0000FF", 0.3),
	}

	for _, p := range cases {
		for _, preset := range []DetailPreset{PresetPreview, PresetGallery} {
			a := Render(p, 100, preset)
			b := Render(p, 100, preset)
			if !bytes.Equal(a.Pix, b.Pix) {
				t.Errorf("Render not pixel-identical for %+v preset %d", p, preset)
			}
		}
	}
}

func TestSphereRadiusScenario(t *testing.T) {
	// Full shape expression at size 100: radius = 0.35*100*(0.7+0.3*1.0) = 35.
	// Smooth surface so the edge is unobscured by texture.
	img := Render(props("spherical", 1.0, "smooth", 0.5, "#00FF00", 1.0), 100, PresetPreview)

	if got := img.RGBAAt(50+35, 50); got.A == 0 {
		t.Error("Expected pixel at radius 35 to be inside the body")
	}
	if got := img.RGBAAt(50+36, 50); got.A != 0 {
		t.Errorf("Expected pixel at radius 36 to be outside the body, got %+v", got)
	}
	// Full green at full color intensity. The right edge is away from the
	// highlight, so it must be the plain fill.
	if got := img.RGBAAt(50+34, 50); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("Expected pure green fill, got %+v", got)
	}
}

func TestRoughDotCountScenario(t *testing.T) {
	// 8 + 12*0.5 = 14 dots on the circle edge in the preview preset.
	d := details[PresetPreview]
	if got := roughCount(d, true, 0.5); got != 14 {
		t.Errorf("Expected 14 rough dots, got %d", got)
	}

	// The dot at angle 0 sits on the edge at (center+radius, center) and
	// darkens the green fill there.
	img := Render(props("spherical", 1.0, "rough", 0.5, "#00FF00", 1.0), 100, PresetPreview)
	smooth := Render(props("spherical", 1.0, "smooth", 0.5, "#00FF00", 1.0), 100, PresetPreview)
	dotPixel := img.RGBAAt(85, 50)
	if dotPixel == smooth.RGBAAt(85, 50) {
		t.Error("Expected rough dot to alter the edge pixel")
	}
	if dotPixel.A == 0 {
		t.Error("Expected rough dot pixel to be visible")
	}
}

func TestColorIntensityModulation(t *testing.T) {
	// Channel scaling floors: 255 * 0.3 = 76.
	img := Render(props("spherical", 0.4, "smooth", 0.7, "#00FF00", 0.3), 100, PresetPreview)
	if got := img.RGBAAt(50, 50); got != (color.RGBA{G: 76, A: 255}) {
		t.Errorf("Expected dimmed green (0,76,0), got %+v", got)
	}
}

func TestHighlightOnlyAboveHalfExpression(t *testing.T) {
	// Color intensity 0.7 keeps the fill unsaturated (255*0.7 = 178) so the
	// 1.3x highlight is distinguishable from the fill.
	low := Render(props("spherical", 0.3, "smooth", 0.7, "#00FF00", 0.7), 100, PresetPreview)
	// At 0.3 expression there is no highlight, so every opaque pixel is the
	// identical fill color.
	fill := color.RGBA{G: 178, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if c := low.RGBAAt(x, y); c.A != 0 && c != fill {
				t.Fatalf("Unexpected non-fill pixel %+v at (%d,%d) without highlight", c, x, y)
			}
		}
	}

	high := Render(props("spherical", 1.0, "smooth", 0.7, "#00FF00", 0.7), 100, PresetPreview)
	found := false
	for y := 0; y < 100 && !found; y++ {
		for x := 0; x < 100; x++ {
			if c := high.RGBAAt(x, y); c.A != 0 && c != fill {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected a highlight above half expression")
	}
}

func TestClassifyCircularToleranceBoundary(t *testing.T) {
	tests := []struct {
		name     string
		rect     image.Rectangle
		circular bool
	}{
		{"Square", image.Rect(0, 0, 70, 70), true},
		{"Just inside tolerance", image.Rect(0, 0, 70, 79), true},
		{"Exactly tolerance", image.Rect(0, 0, 70, 80), false},
		{"Beyond tolerance", image.Rect(0, 0, 70, 120), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyCircular(tt.rect, 10); got != tt.circular {
				t.Errorf("classifyCircular(%v, 10): expected %v, got %v", tt.rect, tt.circular, got)
			}
		})
	}
}

func TestCapsulePerimeterPartition(t *testing.T) {
	rect := image.Rect(10, 10, 50, 130) // width 40, height 120
	p := newCapsulePerimeter(rect)

	if p.straight != 80 {
		t.Errorf("Expected straight length 80, got %v", p.straight)
	}
	wantCap := math.Pi * 20
	if math.Abs(p.capArc-wantCap) > 1e-9 {
		t.Errorf("Expected cap arc %v, got %v", wantCap, p.capArc)
	}
	wantTotal := 2*80 + 2*wantCap
	if math.Abs(p.total()-wantTotal) > 1e-9 {
		t.Errorf("Expected total %v, got %v", wantTotal, p.total())
	}

	// Start of the left side: leftmost x, just below the top cap, pointing
	// left.
	x, y, dx, dy := p.at(0)
	if x != 10 || y != 30 || dx != -1 || dy != 0 {
		t.Errorf("at(0): got (%v,%v) dir (%v,%v)", x, y, dx, dy)
	}

	// Midpoint of the top cap: topmost point, pointing straight up.
	x, y, dx, dy = p.at(p.straight + p.capArc/2)
	if math.Abs(x-30) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("Top cap midpoint: got (%v,%v), expected (30,10)", x, y)
	}
	if math.Abs(dx) > 1e-9 || math.Abs(dy+1) > 1e-9 {
		t.Errorf("Top cap midpoint direction: got (%v,%v), expected (0,-1)", dx, dy)
	}

	// Start of the right side: rightmost x, just above the bottom cap,
	// pointing right.
	x, y, dx, dy = p.at(p.straight + p.capArc)
	if x != 50 || math.Abs(y-110) > 1e-9 || dx != 1 || dy != 0 {
		t.Errorf("Right side start: got (%v,%v) dir (%v,%v)", x, y, dx, dy)
	}

	// Midpoint of the bottom cap: bottommost point, pointing straight down.
	x, y, dx, dy = p.at(2*p.straight + p.capArc + p.capArc/2)
	if math.Abs(x-30) > 1e-9 || math.Abs(y-130) > 1e-9 {
		t.Errorf("Bottom cap midpoint: got (%v,%v), expected (30,130)", x, y)
	}
	if math.Abs(dx) > 1e-9 || math.Abs(dy-1) > 1e-9 {
		t.Errorf("Bottom cap midpoint direction: got (%v,%v), expected (0,1)", dx, dy)
	}
}

func TestGalleryPresetUsesFixedCounts(t *testing.T) {
	d := details[PresetGallery]
	for _, intensity := range []float64{0.3, 0.7, 1.0} {
		if got := roughCount(d, true, intensity); got != 10 {
			t.Errorf("Gallery circular rough count at %v: expected 10, got %d", intensity, got)
		}
		if got := roughCount(d, false, intensity); got != 14 {
			t.Errorf("Gallery rod rough count at %v: expected 14, got %d", intensity, got)
		}
		if got := spikeLength(d, intensity); got != 8 {
			t.Errorf("Gallery spike length at %v: expected 8, got %d", intensity, got)
		}
	}
	if got := spikeCount(d, false); got != 12 {
		t.Errorf("Gallery rod spike count: expected 12, got %d", got)
	}
}

func TestPreviewPresetScalesWithIntensity(t *testing.T) {
	d := details[PresetPreview]
	tests := []struct {
		intensity float64
		circular  int
		rod       int
		spikeLen  int
	}{
		{0.3, 11, 22, 16},
		{0.7, 16, 32, 24},
		{1.0, 20, 40, 30},
	}
	for _, tt := range tests {
		if got := roughCount(d, true, tt.intensity); got != tt.circular {
			t.Errorf("Circular rough count at %v: expected %d, got %d", tt.intensity, tt.circular, got)
		}
		if got := roughCount(d, false, tt.intensity); got != tt.rod {
			t.Errorf("Rod rough count at %v: expected %d, got %d", tt.intensity, tt.rod, got)
		}
		if got := spikeLength(d, tt.intensity); got != tt.spikeLen {
			t.Errorf("Spike length at %v: expected %d, got %d", tt.intensity, tt.spikeLen, got)
		}
	}
	// Spike counts are fixed regardless of intensity.
	if spikeCount(d, true) != 10 || spikeCount(d, false) != 16 {
		t.Errorf("Expected 10/16 spikes, got %d/%d", spikeCount(d, true), spikeCount(d, false))
	}
}

func TestSpikyRodExtendsBeyondBody(t *testing.T) {
	img := Render(props("rod", 1.0, "spiky", 1.0, "#FFFF00", 1.0), 100, PresetPreview)

	// Rod body: width 25, so left edge at x=38. A left-side spike of length
	// 30 reaches outside the body; verify spike-gray pixels exist left of
	// the body edge.
	found := false
	for y := 0; y < 100; y++ {
		for x := 0; x < 37; x++ {
			if img.RGBAAt(x, y) == spikeColor {
				found = true
			}
		}
	}
	if !found {
		t.Error("Expected spikes to extend beyond the rod body")
	}
}

func TestSmoothSurfaceHasNoTexture(t *testing.T) {
	img := Render(props("rod", 0.3, "smooth", 1.0, "#00FFFF", 1.0), 100, PresetPreview)
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == spikeColor {
				t.Fatalf("Unexpected texture pixel at (%d,%d) on smooth surface", x, y)
			}
		}
	}
}

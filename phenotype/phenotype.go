// Package phenotype renders organism sprites procedurally from trait state:
// body silhouette (rod capsule or sphere), surface texture distributed along
// the body perimeter, and expression-modulated color. No art assets; the
// output is a pure function of the phenotype, target size, and detail
// preset, so re-rendering the same inputs is pixel-identical.
package phenotype

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/petri/biology"
)

// DetailPreset selects a texture fidelity profile. The live preview scales
// dot/spike counts with expression intensity; the gallery draws many small
// sprites and uses fixed, lower counts.
type DetailPreset int

const (
	PresetPreview DetailPreset = iota
	PresetGallery
)

// detail holds the per-preset texture parameters. Counts and lengths follow
// base + scale*intensity; gallery values have zero scale.
type detail struct {
	tolerance int   // circular-vs-rod classification, pixels
	dotAlpha  uint8 // rough dot translucency

	roughCircleBase, roughCircleScale float64
	roughRodBase, roughRodScale       float64
	dotRadiusBase, dotRadiusScale     float64

	spikeCircleCount, spikeRodCount int
	spikeLenBase, spikeLenScale     float64
}

var details = map[DetailPreset]detail{
	PresetPreview: {
		tolerance:        10,
		dotAlpha:         100,
		roughCircleBase:  8,
		roughCircleScale: 12,
		roughRodBase:     15,
		roughRodScale:    25,
		dotRadiusBase:    2,
		dotRadiusScale:   2,
		spikeCircleCount: 10,
		spikeRodCount:    16,
		spikeLenBase:     10,
		spikeLenScale:    20,
	},
	PresetGallery: {
		tolerance:        5,
		dotAlpha:         150,
		roughCircleBase:  10,
		roughRodBase:     14,
		dotRadiusBase:    2,
		spikeCircleCount: 10,
		spikeRodCount:    12,
		spikeLenBase:     8,
	},
}

var spikeColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}

// Render draws the organism into a fresh size x size RGBA image.
func Render(props biology.VisualProperties, size int, preset DetailPreset) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	d := details[preset]

	fill := modulate(parseHex(props.Color.Hex), props.Color.Intensity)

	var body image.Rectangle
	if props.Shape.Type == string(biology.ShapeSpherical) {
		body = drawSphere(img, size, fill, props.Shape.Intensity)
	} else {
		body = drawRod(img, size, fill, props.Shape.Intensity)
	}

	drawTexture(img, body, props.Surface, d)
	return img
}

// drawSphere paints the circular body and returns its bounding rect.
// Radius scales with expression; a highlight circle offset toward the upper
// left appears only above half expression.
func drawSphere(img *image.RGBA, size int, fill color.RGBA, expression float64) image.Rectangle {
	cx, cy := size/2, size/2
	baseRadius := int(float64(size) * 0.35)
	radius := int(float64(baseRadius) * (0.7 + 0.3*expression))

	fillCircle(img, cx, cy, radius, fill)

	if expression > 0.5 {
		highlight := lighten(fill, 1.3)
		fillCircle(img, cx-radius/3, cy-radius/3, int(float64(radius)*0.3), highlight)
	}

	return image.Rect(cx-radius, cy-radius, cx+radius, cy+radius)
}

// drawRod paints the capsule body and returns its bounding rect. Height
// scales with expression; width is fixed at a quarter of the target size.
func drawRod(img *image.RGBA, size int, fill color.RGBA, expression float64) image.Rectangle {
	cx, cy := size/2, size/2
	width := int(float64(size) * 0.25)
	height := int(float64(width) * (1.5 + 1.5*expression))

	rect := image.Rect(cx-width/2, cy-height/2, cx-width/2+width, cy-height/2+height)
	fillCapsule(img, rect, fill)

	if expression > 0.5 {
		highlight := lighten(fill, 1.2)
		hrect := image.Rect(
			rect.Min.X+width/4,
			rect.Min.Y+height/8,
			rect.Min.X+width/4+width/3,
			rect.Min.Y+height/8+height/4,
		)
		fillEllipse(img, hrect, highlight)
	}

	return rect
}

// drawTexture overlays the surface texture along the body perimeter. Smooth
// surfaces get nothing.
func drawTexture(img *image.RGBA, body image.Rectangle, surface biology.VisualTrait, d detail) {
	switch surface.Type {
	case string(biology.SurfaceRough):
		drawRough(img, body, surface.Intensity, d)
	case string(biology.SurfaceSpiky):
		drawSpiky(img, body, surface.Intensity, d)
	}
}

func roughCount(d detail, circular bool, intensity float64) int {
	if circular {
		return int(d.roughCircleBase + d.roughCircleScale*intensity)
	}
	return int(d.roughRodBase + d.roughRodScale*intensity)
}

func dotRadius(d detail, intensity float64) int {
	return int(d.dotRadiusBase + d.dotRadiusScale*intensity)
}

func spikeCount(d detail, circular bool) int {
	if circular {
		return d.spikeCircleCount
	}
	return d.spikeRodCount
}

func spikeLength(d detail, intensity float64) int {
	return int(d.spikeLenBase + d.spikeLenScale*intensity)
}

func drawRough(img *image.RGBA, body image.Rectangle, intensity float64, d detail) {
	dot := color.RGBA{A: d.dotAlpha}
	radius := dotRadius(d, intensity)
	cx := float64(body.Min.X+body.Max.X) / 2
	cy := float64(body.Min.Y+body.Max.Y) / 2

	if classifyCircular(body, d.tolerance) {
		n := roughCount(d, true, intensity)
		r := float64(body.Dx()) / 2
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			blendCircle(img, int(cx+r*math.Cos(angle)), int(cy+r*math.Sin(angle)), radius, dot)
		}
		return
	}

	n := roughCount(d, false, intensity)
	p := newCapsulePerimeter(body)
	total := p.total()
	for i := 0; i < n; i++ {
		x, y, _, _ := p.at(float64(i) / float64(n) * total)
		blendCircle(img, int(x), int(y), radius, dot)
	}
}

func drawSpiky(img *image.RGBA, body image.Rectangle, intensity float64, d detail) {
	length := float64(spikeLength(d, intensity))
	cx := float64(body.Min.X+body.Max.X) / 2
	cy := float64(body.Min.Y+body.Max.Y) / 2

	if classifyCircular(body, d.tolerance) {
		n := spikeCount(d, true)
		r := float64(body.Dx()) / 2
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			baseX := cx + r*math.Cos(angle)
			baseY := cy + r*math.Sin(angle)
			tipX := cx + (r+length)*math.Cos(angle)
			tipY := cy + (r+length)*math.Sin(angle)
			drawLine(img, baseX, baseY, tipX, tipY, spikeColor)
		}
		return
	}

	n := spikeCount(d, false)
	p := newCapsulePerimeter(body)
	total := p.total()
	for i := 0; i < n; i++ {
		x, y, dirX, dirY := p.at(float64(i) / float64(n) * total)
		drawLine(img, x, y, x+length*dirX, y+length*dirY, spikeColor)
	}
}

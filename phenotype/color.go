package phenotype

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// parseHex converts a stored hex string to an opaque RGBA. The phenotype is
// validated upstream, so an unparseable hex only happens on hand-edited
// records; fall back to white rather than fail the render.
func parseHex(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// modulate scales each channel by the expression intensity, flooring.
func modulate(c color.RGBA, intensity float64) color.RGBA {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: c.A,
	}
}

// lighten multiplies each channel by factor, clamping at 255.
func lighten(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		n := int(float64(v) * factor)
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

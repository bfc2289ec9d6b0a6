package phenotype

import (
	"image"
	"image/color"
	"math"
)

// Raster primitives over *image.RGBA. Everything here is integer/float math
// with fixed rounding so identical inputs paint identical pixels.

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	rsq := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rsq {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// blendCircle paints a circle with source-over alpha blending, used for the
// translucent rough-texture dots.
func blendCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	rsq := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rsq {
				blendPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

// fillCapsule paints a vertically oriented rounded rectangle whose corner
// radius is half its width, forming semicircular caps.
func fillCapsule(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	hw := rect.Dx() / 2
	capCX := rect.Min.X + hw
	topCY := rect.Min.Y + hw
	bottomCY := rect.Max.Y - hw
	hwsq := hw * hw

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			switch {
			case y >= topCY && y <= bottomCY:
				setPixel(img, x, y, c)
			case y < topCY:
				dx, dy := x-capCX, y-topCY
				if dx*dx+dy*dy <= hwsq {
					setPixel(img, x, y, c)
				}
			default:
				dx, dy := x-capCX, y-bottomCY
				if dx*dx+dy*dy <= hwsq {
					setPixel(img, x, y, c)
				}
			}
		}
	}
}

// fillEllipse paints an axis-aligned ellipse inscribed in rect.
func fillEllipse(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(rect.Min.X) + rx
	cy := float64(rect.Min.Y) + ry

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				setPixel(img, x, y, c)
			}
		}
	}
}

// drawLine paints a 2px-wide segment by stamping radius-1 discs along a
// fixed-step walk from (x0,y0) to (x1,y1).
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	steps := int(math.Ceil(length))
	if steps == 0 {
		fillCircle(img, int(x0), int(y0), 1, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fillCircle(img, int(x0+dx*t), int(y0+dy*t), 1, c)
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetRGBA(x, y, c)
}

func blendPixel(img *image.RGBA, x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	dst := img.RGBAAt(x, y)
	alpha := float64(src.A) / 255
	inv := 1 - alpha
	out := color.RGBA{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: uint8(math.Min(255, float64(src.A)+float64(dst.A)*inv)),
	}
	img.SetRGBA(x, y, out)
}

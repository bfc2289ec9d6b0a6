package phenotype

import (
	"image"
	"math"
)

// classifyCircular reports whether a body bounding rect should be textured as
// a circle. Circular iff width and height differ by strictly less than the
// tolerance; a difference of exactly the tolerance is treated as a rod.
func classifyCircular(rect image.Rectangle, tolerance int) bool {
	diff := rect.Dx() - rect.Dy()
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}

// capsulePerimeter parameterizes the outline of a vertical capsule by arc
// length, partitioned into four segments proportional to their true lengths:
// left side, top cap, right side, bottom cap. Straight sides measure
// height-width; each cap is a semicircle of circumference pi*halfWidth.
type capsulePerimeter struct {
	rect      image.Rectangle
	halfWidth float64
	straight  float64
	capArc    float64
}

func newCapsulePerimeter(rect image.Rectangle) capsulePerimeter {
	hw := float64(rect.Dx()) / 2
	return capsulePerimeter{
		rect:      rect,
		halfWidth: hw,
		straight:  float64(rect.Dy() - rect.Dx()),
		capArc:    math.Pi * hw,
	}
}

func (p capsulePerimeter) total() float64 {
	return 2*p.straight + 2*p.capArc
}

// at returns the point at the given distance along the perimeter together
// with the outward direction there: perpendicular on the straight sides,
// radial on the caps.
func (p capsulePerimeter) at(dist float64) (x, y, dirX, dirY float64) {
	centerX := float64(p.rect.Min.X) + p.halfWidth
	top := float64(p.rect.Min.Y)
	bottom := float64(p.rect.Max.Y)

	switch {
	case dist < p.straight:
		// Left side, top to bottom.
		progress := dist / p.straight
		return float64(p.rect.Min.X), top + p.halfWidth + progress*p.straight, -1, 0

	case dist < p.straight+p.capArc:
		// Top cap, sweeping left to right above the body.
		angle := math.Pi + (dist-p.straight)/p.capArc*math.Pi
		dirX, dirY = math.Cos(angle), math.Sin(angle)
		return centerX + p.halfWidth*dirX, top + p.halfWidth + p.halfWidth*dirY, dirX, dirY

	case dist < 2*p.straight+p.capArc:
		// Right side, bottom to top.
		progress := (dist - p.straight - p.capArc) / p.straight
		return float64(p.rect.Max.X), top + p.halfWidth + p.straight - progress*p.straight, 1, 0

	default:
		// Bottom cap, sweeping right to left below the body.
		angle := (dist - 2*p.straight - p.capArc) / p.capArc * math.Pi
		dirX, dirY = math.Cos(angle), math.Sin(angle)
		return centerX + p.halfWidth*dirX, bottom - p.halfWidth + p.halfWidth*dirY, dirX, dirY
	}
}

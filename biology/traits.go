package biology

// Gameplay trait calculators. Pure functions from expression level to a
// gameplay multiplier; no organism-state coupling. The contracts pin the
// three canonical expression levels (0.3, 0.7, 1.0); between them the
// multipliers interpolate linearly so the functions stay monotone for any
// input.

// Lives maps expression level to a life count in {1, 2, 3}. Monotone
// nondecreasing: weak promoters give 1 life, strong give 3.
func Lives(expression float64) int {
	switch {
	case expression < 0.5:
		return 1
	case expression < 0.85:
		return 2
	default:
		return 3
	}
}

// SpeedMultiplier maps expression level to a movement multiplier:
// 0.7 at weak (0.3), 1.0 at medium (0.7), 1.3 at strong (1.0).
// Monotone increasing.
func SpeedMultiplier(expression float64) float64 {
	return interpolate(expression, 0.7, 1.0, 1.3)
}

// SizeMultiplier maps expression level to a sprite size multiplier with
// inverted sense: 1.3 at weak, 1.0 at medium, 0.7 at strong. A strong
// promoter shrinks the organism. Monotone decreasing.
func SizeMultiplier(expression float64) float64 {
	return interpolate(expression, 1.3, 1.0, 0.7)
}

// interpolate evaluates the piecewise-linear curve through
// (0.3, atWeak), (0.7, atMedium), (1.0, atStrong), clamped outside.
func interpolate(e, atWeak, atMedium, atStrong float64) float64 {
	switch {
	case e <= 0.3:
		return atWeak
	case e < 0.7:
		return atWeak + (e-0.3)/0.4*(atMedium-atWeak)
	case e < 1.0:
		return atMedium + (e-0.7)/0.3*(atStrong-atMedium)
	default:
		return atStrong
	}
}

package render

import (
	"math"
	"time"
)

// PulseLevel maps elapsed time to a smooth 0..1 glow level with the given
// period. Pure function of its inputs: polling it off-schedule or twice per
// frame changes nothing.
func PulseLevel(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 1
	}
	phase := float64(elapsed%period) / float64(period)
	return 0.5 - 0.5*math.Cos(2*math.Pi*phase)
}

// BlinkOn reports whether a blinking element is visible at the given elapsed
// time: on for the first half of each period.
func BlinkOn(elapsed, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	return elapsed%period < period/2
}

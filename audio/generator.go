package audio

import "math"

// Waveform types for the cue synthesizer.
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// sampleRate is fixed; all cues are synthesized once at startup.
const sampleRate = 44100

// oscillator generates mono waveform samples at unity gain.
func oscillator(waveType int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / sampleRate

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer with a linear attack and release.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * sampleRate)
	release := int(releaseSec * sampleRate)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// appendTone synthesizes one enveloped note and appends it to the buffer.
func appendTone(buf []float64, waveType int, freq, durSec, gain float64) []float64 {
	tone := oscillator(waveType, freq, int(durSec*sampleRate))
	applyEnvelope(tone, 0.005, durSec*0.4)
	for i := range tone {
		tone[i] *= gain
	}
	return append(buf, tone...)
}

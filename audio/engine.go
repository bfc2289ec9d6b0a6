// Package audio triggers the game's sound cues. Everything is synthesized
// at startup from oscillator tones; no sound assets ship with the binary.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one of the fixed sound effects.
type Cue int

const (
	CueSelect Cue = iota // selector changed
	CueBuild             // organism saved
	CueHit               // player collided with a hazard
	CueGameOver
)

// Engine owns the speaker and the pre-synthesized cue buffers. A nil Engine
// is valid and silent, so callers never need to branch on audio presence.
type Engine struct {
	cues map[Cue][]float64
}

// NewEngine initializes the speaker and synthesizes all cues.
func NewEngine() (*Engine, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}

	e := &Engine{cues: map[Cue][]float64{}}

	e.cues[CueSelect] = appendTone(nil, waveSquare, 880, 0.04, 0.25)

	var build []float64
	build = appendTone(build, waveSine, 523.25, 0.09, 0.4) // C5
	build = appendTone(build, waveSine, 659.25, 0.09, 0.4) // E5
	build = appendTone(build, waveSine, 783.99, 0.14, 0.4) // G5
	e.cues[CueBuild] = build

	e.cues[CueHit] = appendTone(nil, waveSaw, 110, 0.12, 0.5)

	var over []float64
	over = appendTone(over, waveSquare, 392.00, 0.16, 0.35) // G4
	over = appendTone(over, waveSquare, 329.63, 0.16, 0.35) // E4
	over = appendTone(over, waveSquare, 261.63, 0.28, 0.35) // C4
	e.cues[CueGameOver] = over

	return e, nil
}

// Play starts a cue asynchronously. No-op on a nil engine or unknown cue.
func (e *Engine) Play(c Cue) {
	if e == nil {
		return
	}
	samples, ok := e.cues[c]
	if !ok {
		return
	}
	speaker.Play(&toneStreamer{samples: samples})
}

// Close stops playback.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	speaker.Clear()
}

// toneStreamer adapts a mono sample buffer to beep's stereo streamer.
type toneStreamer struct {
	samples []float64
	pos     int
}

func (t *toneStreamer) Stream(out [][2]float64) (n int, ok bool) {
	if t.pos >= len(t.samples) {
		return 0, false
	}
	for i := range out {
		if t.pos >= len(t.samples) {
			return i, true
		}
		v := t.samples[t.pos]
		out[i][0] = v
		out[i][1] = v
		t.pos++
	}
	return len(out), true
}

func (t *toneStreamer) Err() error { return nil }

package audio

import (
	"math"
	"testing"
)

func TestOscillatorSine(t *testing.T) {
	buf := oscillator(waveSine, 441, 1000)
	if len(buf) != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", len(buf))
	}
	for i, v := range buf {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Sample %d out of range: %v", i, v)
		}
	}
	if buf[0] != 0 {
		t.Errorf("Sine should start at zero phase, got %v", buf[0])
	}
}

func TestOscillatorSquareIsBipolar(t *testing.T) {
	buf := oscillator(waveSquare, 880, 2000)
	var hi, lo bool
	for _, v := range buf {
		if v == 1.0 {
			hi = true
		}
		if v == -1.0 {
			lo = true
		}
		if v != 1.0 && v != -1.0 {
			t.Fatalf("Square wave sample must be +/-1, got %v", v)
		}
	}
	if !hi || !lo {
		t.Error("Square wave should visit both levels")
	}
}

func TestEnvelopeTapersEnds(t *testing.T) {
	buf := make([]float64, 4410) // 100ms
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 0.01, 0.02)

	if buf[0] != 0 {
		t.Errorf("Attack should start silent, got %v", buf[0])
	}
	if math.Abs(buf[len(buf)-1]) > 0.01 {
		t.Errorf("Release should end near silence, got %v", buf[len(buf)-1])
	}
	mid := buf[len(buf)/2]
	if mid != 1.0 {
		t.Errorf("Sustain should be unity, got %v", mid)
	}
}

func TestToneStreamerDrains(t *testing.T) {
	s := &toneStreamer{samples: []float64{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Expected (2, true), got (%d, %v)", n, ok)
	}
	if out[0][0] != 0.1 || out[0][1] != 0.1 {
		t.Errorf("Expected mono sample duplicated to both channels, got %v", out[0])
	}

	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("Expected (1, true) for the tail, got (%d, %v)", n, ok)
	}

	n, ok = s.Stream(out)
	if n != 0 || ok {
		t.Fatalf("Expected (0, false) when drained, got (%d, %v)", n, ok)
	}
}

func TestNilEngineIsSilent(t *testing.T) {
	var e *Engine
	// Must not panic.
	e.Play(CueSelect)
	e.Close()
}

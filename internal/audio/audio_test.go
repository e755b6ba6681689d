package audio

import (
	"math"
	"testing"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
)

func drain(t *testing.T, cue breakout.Sound, volume float64) (int, float64) {
	t.Helper()
	st, err := Cue(cue, sampleRate, volume)
	if err != nil {
		t.Fatalf("Cue(%s): %v", cue, err)
	}
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := st.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || total > int(sampleRate) {
			break
		}
	}
	return total, peak
}

func TestEveryCueRenders(t *testing.T) {
	for _, cue := range breakout.Sounds {
		t.Run(string(cue), func(t *testing.T) {
			total, peak := drain(t, cue, 0.5)
			if total == 0 || total > int(sampleRate) {
				t.Errorf("cue length %d samples", total)
			}
			if peak == 0 || peak > 0.5+1e-6 {
				t.Errorf("peak %f outside (0, 0.5]", peak)
			}
		})
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, breakout.SoundPaddle, 0)
	if peak != 0 {
		t.Errorf("volume 0 should be silent, peak %f", peak)
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := Cue("nope", sampleRate, 1); err == nil {
		t.Error("expected error for unknown cue")
	}
}

func TestSpeakerWithoutDevice(t *testing.T) {
	s := NewSpeaker(1, nil)
	// Not initialized: Play must be a silent no-op.
	s.Play(breakout.SoundPaddle)
	s.Close()

	if !s.Enabled() {
		t.Error("speaker starts enabled")
	}
	if s.Toggle() || s.Enabled() {
		t.Error("Toggle should mute")
	}
	s.SetEnabled(true)
	if !s.Enabled() {
		t.Error("SetEnabled(true) should unmute")
	}

	var sink Sink = Nop{}
	sink.Play(breakout.SoundGameOver)
}

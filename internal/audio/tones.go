package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
)

// note is one step of a cue. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[breakout.Sound][]note{
	breakout.SoundPaddle:        {{440, 40 * time.Millisecond}},
	breakout.SoundPaddleResize:  {{330, 50 * time.Millisecond}, {494, 70 * time.Millisecond}},
	breakout.SoundNormalBrick:   {{660, 35 * time.Millisecond}},
	breakout.SoundMetallicBrick: {{1320, 30 * time.Millisecond}, {1760, 40 * time.Millisecond}},
	breakout.SoundBonusCurrency: {{988, 60 * time.Millisecond}, {1319, 120 * time.Millisecond}},
	breakout.SoundNextLevel: {
		{523, 90 * time.Millisecond},
		{659, 90 * time.Millisecond},
		{784, 90 * time.Millisecond},
		{1047, 180 * time.Millisecond},
	},
	breakout.SoundGameOver: {
		{392, 150 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{262, 300 * time.Millisecond},
	},
}

// Cue synthesizes the streamer for a named cue at the given volume
// (1 is full scale).
func Cue(s breakout.Sound, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cues[s]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %q", s)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		freq := n.freq
		if freq == 0 {
			freq = 1 // rests are a muted tone
		}
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %q: %w", s, err)
		}
		var part beep.Streamer = beep.Take(rate.N(n.dur), tone)
		if n.freq == 0 {
			part = newVolume(part, 0)
		}
		parts = append(parts, part)
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume wraps s in a linear volume; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Package audio turns the engine's named sound cues into synthesized
// tones played through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays sound cues.
type Sink interface {
	Play(breakout.Sound)
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(breakout.Sound) {}

// Speaker mixes cues into the system audio device.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	ready   bool
	log     *log.Logger
}

// NewSpeaker creates a speaker that is enabled but not yet initialized.
func NewSpeaker(volume float64, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
		log:     logger,
	}
}

// Init opens the audio device. On error the speaker stays silent and the
// game carries on.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Play queues a cue. Unknown cues, a muted speaker and a missing device
// are all silent.
func (s *Speaker) Play(cue breakout.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || !s.enabled {
		return
	}
	st, err := Cue(cue, sampleRate, s.volume)
	if err != nil {
		s.log.Debug("skipping cue", "cue", cue, "err", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SetEnabled mutes or unmutes the speaker.
func (s *Speaker) SetEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = on
}

// Enabled reports whether cues are played.
func (s *Speaker) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the mute state and returns the new enabled state.
func (s *Speaker) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	return s.enabled
}

// Close stops every playing cue and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}

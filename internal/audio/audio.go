// Package audio plays short synthesized sound cues for game events.
// Sound is optional: the silent player is the default and speaker
// initialization failures leave the game running without audio.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueEat Cue = iota
	CueSpeedUp
	CueCrash
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueSpeedUp:
		return "speed-up"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking.
type Player interface {
	Play(c Cue)
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue) {}

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialized speaker player. Play is a no-op
// until Initialize succeeds.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play implements Player.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Stream(c)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences any playing cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Stream returns a finite streamer for the cue, or nil for an unknown cue.
func Stream(c Cue) beep.Streamer {
	switch c {
	case CueEat:
		// Two rising notes.
		return beep.Seq(
			beep.Take(sampleRate.N(60*time.Millisecond), NewToneGenerator(sampleRate, 880, 0.25)),
			beep.Take(sampleRate.N(90*time.Millisecond), NewToneGenerator(sampleRate, 1320, 0.25)),
		)
	case CueSpeedUp:
		return beep.Take(sampleRate.N(250*time.Millisecond), NewSweepGenerator(sampleRate, 300, 900, 250*time.Millisecond))
	case CueCrash:
		return beep.Take(sampleRate.N(300*time.Millisecond), NewBuzzGenerator(sampleRate, 110))
	default:
		return nil
	}
}

package audio

import (
	"math"
	"testing"
	"time"
)

// drain reads st to the end and returns the sample count and peak.
func drain(t *testing.T, c Cue) (count int, peak float64) {
	t.Helper()
	st := Stream(c)
	if st == nil {
		t.Fatalf("no stream for %v", c)
	}
	buf := make([][2]float64, 512)
	for range 1000 {
		n, ok := st.Stream(buf)
		for _, s := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(s[0]), math.Abs(s[1])))
		}
		count += n
		if !ok {
			return count, peak
		}
	}
	t.Fatalf("%v stream did not end", c)
	return 0, 0
}

func TestCueStreamsAreFinite(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueEat, 150 * time.Millisecond},
		{CueSpeedUp, 250 * time.Millisecond},
		{CueCrash, 300 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			count, peak := drain(t, tt.cue)
			if want := sampleRate.N(tt.want); count < want-1 || count > want+1 {
				t.Errorf("samples = %d, expected about %d", count, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, expected audible and unclipped", peak)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if Stream(Cue(99)) != nil {
		t.Error("unknown cue should have no stream")
	}
}

func TestPlayersWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Play panicked: %v", r)
		}
	}()

	Silent{}.Play(CueEat)

	// Never initialized: every call is a no-op.
	s := NewSpeaker()
	s.Play(CueEat)
	s.Play(CueCrash)
	s.Close()
}

package config

import "time"

// SpeedRamp shortens the tick interval as the score crosses multiples of
// Every, down to Floor.
type SpeedRamp struct {
	Enabled bool
	Floor   time.Duration
	Step    time.Duration
	Every   int
}

// Next returns the interval to use after score was reached at current.
// changed is false when the interval stays the same.
func (r SpeedRamp) Next(score int, current time.Duration) (next time.Duration, changed bool) {
	if !r.Enabled || r.Every <= 0 || r.Step <= 0 {
		return current, false
	}
	if score <= 0 || score%r.Every != 0 || current <= r.Floor {
		return current, false
	}
	return max(r.Floor, current-r.Step), true
}

package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualEveryFiresAtInterval(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	m.Every(150*time.Millisecond, func() { at = append(at, m.Now()) })

	m.Advance(500 * time.Millisecond)

	want := []time.Duration{150 * time.Millisecond, 300 * time.Millisecond, 450 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired %d times (%v), expected %d", len(at), at, len(want))
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("firing %d at %v, expected %v", i, at[i], want[i])
		}
	}
	if m.Now() != 500*time.Millisecond {
		t.Errorf("Now() = %v, expected 500ms", m.Now())
	}
}

func TestManualAfterFiresOnce(t *testing.T) {
	m := NewManual()
	calls := 0
	m.After(3*time.Second, func() { calls++ })

	m.Advance(2 * time.Second)
	if calls != 0 {
		t.Fatalf("fired early")
	}
	m.Advance(5 * time.Second)
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.After(20*time.Millisecond, func() { order = append(order, "b") })
	m.After(10*time.Millisecond, func() { order = append(order, "a") })
	m.After(20*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(time.Second)

	if got := len(order); got != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, expected [a b c]", order)
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	calls := 0
	timer := m.Every(10*time.Millisecond, func() { calls++ })

	m.Advance(35 * time.Millisecond)
	timer.Stop()
	timer.Stop()
	m.Advance(100 * time.Millisecond)

	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
}

func TestManualRearmFromCallback(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	var timer Timer
	interval := 150 * time.Millisecond

	var tick func()
	tick = func() {
		at = append(at, m.Now())
		if len(at) == 2 {
			// Swap to a faster interval from inside the callback.
			timer.Stop()
			interval = 140 * time.Millisecond
			timer = m.Every(interval, tick)
		}
	}
	timer = m.Every(interval, tick)

	m.Advance(600 * time.Millisecond)

	want := []time.Duration{150, 300, 440, 580}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, expected %v ms", at, want)
	}
	for i := range want {
		if at[i] != want[i]*time.Millisecond {
			t.Errorf("firing %d at %v, expected %vms", i, at[i], want[i])
		}
	}
}

func TestRealEveryAndStop(t *testing.T) {
	var calls atomic.Int32
	timer := Real{}.Every(5*time.Millisecond, func() { calls.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	timer.Stop()
	if calls.Load() < 2 {
		t.Fatalf("Every fired %d times, expected at least 2", calls.Load())
	}

	// Allow an in-flight callback to finish, then expect silence.
	time.Sleep(20 * time.Millisecond)
	stopped := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != stopped {
		t.Errorf("Every kept firing after Stop: %d -> %d", stopped, calls.Load())
	}
}

func TestRealAfterStop(t *testing.T) {
	var calls atomic.Int32
	timer := Real{}.After(20*time.Millisecond, func() { calls.Add(1) })
	timer.Stop()

	time.Sleep(50 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("After fired after Stop")
	}
}

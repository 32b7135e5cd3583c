package schedule

import (
	"fmt"
	"sync"
	"time"
)

// Manual is a virtual clock. Timers fire only inside Advance, in due-time
// order (creation order on ties), on the caller's goroutine. Callbacks may
// stop timers and arm new ones; a new timer due before the Advance target
// fires in the same call.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m       *Manual
	seq     int
	due     time.Duration
	period  time.Duration // 0 for one-shot
	fn      func()
	stopped bool
}

// NewManual creates a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Every implements Scheduler.
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		panic(fmt.Sprintf("schedule: non-positive interval %v", d))
	}
	return m.add(d, d, fn)
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) Timer {
	return m.add(d, 0, fn)
}

func (m *Manual) add(delay, period time.Duration, fn func()) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, seq: m.seq, due: m.now + max(delay, 0), period: period, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that falls due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			m.removeLocked(t)
		}
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest armed timer due at or before target.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range m.timers {
		if t.due > target {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) removeLocked(t *manualTimer) {
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped {
		return
	}
	t.m.removeLocked(t)
}

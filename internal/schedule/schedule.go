// Package schedule provides cancellable repeating and one-shot timers behind
// a small interface, with a real-time implementation and a manually advanced
// virtual clock for tests.
package schedule

import (
	"sync"
	"time"
)

// Timer is a scheduled callback. Stop prevents any further firing; it is
// safe to call more than once and from inside the callback itself.
type Timer interface {
	Stop()
}

// Scheduler arms timers.
type Scheduler interface {
	// Every calls fn every d until stopped. d must be positive.
	Every(d time.Duration, fn func()) Timer
	// After calls fn once after d unless stopped first.
	After(d time.Duration, fn func()) Timer
}

// Real schedules on the wall clock. Callbacks run on their own goroutines;
// callers serialize state access themselves.
type Real struct{}

// realTimer runs a ticker loop until done is closed.
type realTimer struct {
	done     chan struct{}
	doneOnce sync.Once
}

func (t *realTimer) Stop() {
	t.doneOnce.Do(func() {
		close(t.done)
	})
}

// Every implements Scheduler.
func (Real) Every(d time.Duration, fn func()) Timer {
	t := &realTimer{done: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// A tick racing with Stop must not fire.
				select {
				case <-t.done:
					return
				default:
				}
				fn()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

// afterTimer wraps time.AfterFunc.
type afterTimer struct {
	t *time.Timer
}

func (t afterTimer) Stop() {
	t.t.Stop()
}

// After implements Scheduler.
func (Real) After(d time.Duration, fn func()) Timer {
	return afterTimer{t: time.AfterFunc(d, fn)}
}

package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cancel stops a scheduled task. Calling it more than once is safe.
type Cancel func()

// Clock samples the current time and schedules deferred and periodic work.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time

	// After runs fn once after delay.
	After(delay time.Duration, fn func()) Cancel

	// Every runs fn repeatedly, once per interval, until cancelled.
	Every(interval time.Duration, fn func()) Cancel
}

// Dispatcher hands a timer callback to the goroutine that owns widget state.
type Dispatcher func(fn func())

// Real is a Clock backed by the runtime timers.
//
// Timer goroutines never call task functions directly: each firing is passed
// to the dispatcher, which serializes it with the rest of the UI work. The
// cancellation check runs on the dispatching side, so a firing queued before
// Cancel was called is dropped.
type Real struct {
	dispatch Dispatcher
}

// NewReal creates a Real clock. A nil dispatcher runs callbacks on the timer
// goroutine.
func NewReal(dispatch Dispatcher) *Real {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Real{dispatch: dispatch}
}

// Now implements Clock.
func (r *Real) Now() time.Time {
	return time.Now()
}

// After implements Clock.
func (r *Real) After(delay time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	t := time.AfterFunc(delay, func() {
		r.dispatch(func() {
			if cancelled.Load() {
				return
			}
			fn()
		})
	})

	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Every implements Clock.
//
// Firings are not queued behind each other: if the previous firing has not
// been run by the dispatcher yet, the tick is skipped.
func (r *Real) Every(interval time.Duration, fn func()) Cancel {
	var (
		cancelled atomic.Bool
		inflight  atomic.Bool
		once      sync.Once
	)

	ticker := time.NewTicker(interval)
	stop := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !inflight.CompareAndSwap(false, true) {
					continue
				}
				r.dispatch(func() {
					defer inflight.Store(false)
					if cancelled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()

	return func() {
		cancelled.Store(true)
		once.Do(func() { close(stop) })
	}
}

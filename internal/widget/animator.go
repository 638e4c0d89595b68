package widget

import (
	"time"

	"github.com/jmylchreest/tickr/internal/clock"
)

// DefaultClearDelay is how long a tick highlight stays on a field.
const DefaultClearDelay = 100 * time.Millisecond

// Animator applies the tick highlight to a field and clears it after a delay.
//
// An Animator owns a single pending-removal slot: every Pulse cancels the
// removal scheduled by the previous one, so rapid pulses coalesce into one
// removal timed from the latest call.
type Animator struct {
	clock  clock.Clock
	delay  time.Duration
	target *Field
	cancel clock.Cancel
}

// NewAnimator creates an Animator. A non-positive delay uses DefaultClearDelay.
func NewAnimator(c clock.Clock, delay time.Duration) *Animator {
	if delay <= 0 {
		delay = DefaultClearDelay
	}
	return &Animator{clock: c, delay: delay}
}

// Pulse highlights target and (re)schedules the highlight removal.
func (a *Animator) Pulse(target *Field) {
	target.Ticking = true

	if a.cancel != nil {
		a.cancel()
	}

	a.target = target
	a.cancel = a.clock.After(a.delay, func() {
		target.Ticking = false
		a.cancel = nil
	})
}

// Cancel drops the pending removal and clears the highlight it was due to
// remove.
func (a *Animator) Cancel() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.target != nil {
		a.target.Ticking = false
	}
}

// Pending reports whether a removal is scheduled.
func (a *Animator) Pending() bool {
	return a.cancel != nil
}

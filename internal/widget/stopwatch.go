package widget

import (
	"time"

	"github.com/jmylchreest/tickr/internal/clock"
	"github.com/jmylchreest/tickr/internal/timefmt"
)

// DefaultStopwatchInterval is the refresh period of a running stopwatch.
const DefaultStopwatchInterval = 10 * time.Millisecond

// StopwatchOptions configures a Stopwatch.
type StopwatchOptions struct {
	Interval   time.Duration
	ClearDelay time.Duration
}

// Stopwatch is a start/stop/reset stopwatch.
//
// While running, elapsed time is recomputed on every refresh as the distance
// from a reference instant; Start moves the reference back by the time
// already accumulated so a resumed stopwatch continues where it stopped.
// While stopped, the last computed elapsed time is frozen.
type Stopwatch struct {
	clock    clock.Clock
	sounds   Sounds
	anim     *Animator
	interval time.Duration

	running     bool
	accumulated int64 // ms
	reference   time.Time
	cancel      clock.Cancel

	face    StopwatchFace
	buttons Buttons
}

// NewStopwatch creates a stopped Stopwatch showing zero. Nil sounds are
// discarded.
func NewStopwatch(c clock.Clock, sounds Sounds, opts StopwatchOptions) *Stopwatch {
	if sounds == nil {
		sounds = NopSounds{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultStopwatchInterval
	}

	sw := &Stopwatch{
		clock:    c,
		sounds:   sounds,
		anim:     NewAnimator(c, opts.ClearDelay),
		interval: opts.Interval,
		buttons:  Buttons{Start: true},
	}
	sw.setText(timefmt.Format(0))
	return sw
}

// Start begins or resumes timing. It does nothing if already running.
func (sw *Stopwatch) Start() {
	if sw.running {
		return
	}

	sw.sounds.Play(SoundStart)
	sw.running = true
	sw.reference = sw.clock.Now().Add(-time.Duration(sw.accumulated) * time.Millisecond)
	sw.cancel = sw.clock.Every(sw.interval, sw.refresh)

	sw.buttons = Buttons{Start: false, Stop: true, Reset: true}
}

// Stop freezes the elapsed time. It does nothing if already stopped.
func (sw *Stopwatch) Stop() {
	if !sw.running {
		return
	}

	sw.sounds.Play(SoundStop)
	sw.running = false
	if sw.cancel != nil {
		sw.cancel()
		sw.cancel = nil
	}
	sw.anim.Cancel()

	sw.buttons = Buttons{Start: true, Stop: false, Reset: true}
}

// Reset stops the stopwatch and returns it to zero.
func (sw *Stopwatch) Reset() {
	sw.sounds.Play(SoundReset)
	sw.Stop()
	sw.accumulated = 0
	sw.render(0)

	sw.buttons = Buttons{Start: true, Stop: false, Reset: false}
}

// Running reports whether the stopwatch is running.
func (sw *Stopwatch) Running() bool {
	return sw.running
}

// Elapsed returns the elapsed time as of the last refresh.
func (sw *Stopwatch) Elapsed() time.Duration {
	return time.Duration(sw.accumulated) * time.Millisecond
}

// Face returns the current stopwatch display.
func (sw *Stopwatch) Face() StopwatchFace {
	return sw.face
}

// Buttons returns which controls are enabled.
func (sw *Stopwatch) Buttons() Buttons {
	return sw.buttons
}

func (sw *Stopwatch) refresh() {
	sw.accumulated = sw.clock.Now().Sub(sw.reference).Milliseconds()
	sw.render(sw.accumulated)
}

func (sw *Stopwatch) render(ms int64) {
	parts := timefmt.Format(ms)
	sw.anim.Pulse(&sw.face.Milliseconds)
	sw.setText(parts)
}

func (sw *Stopwatch) setText(parts timefmt.Parts) {
	sw.face.Hours.Text = parts.Hours
	sw.face.Minutes.Text = parts.Minutes
	sw.face.Seconds.Text = parts.Seconds
	sw.face.Milliseconds.Text = parts.Milliseconds
}

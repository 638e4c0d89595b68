package widget

import (
	"time"

	"github.com/jmylchreest/tickr/internal/clock"
	"github.com/jmylchreest/tickr/internal/timefmt"
)

// DefaultClockInterval is how often the wall clock is sampled.
const DefaultClockInterval = time.Second

// ClockOptions configures a ClockEngine.
type ClockOptions struct {
	Interval   time.Duration
	ClearDelay time.Duration
	TickSound  bool // play SoundTick on every tick
}

// ClockEngine samples the wall clock and renders it to a ClockFace.
type ClockEngine struct {
	clock     clock.Clock
	sounds    Sounds
	anim      *Animator
	interval  time.Duration
	tickSound bool

	face    ClockFace
	started bool
}

// NewClockEngine creates a ClockEngine. Nil sounds are discarded.
func NewClockEngine(c clock.Clock, sounds Sounds, opts ClockOptions) *ClockEngine {
	if sounds == nil {
		sounds = NopSounds{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultClockInterval
	}

	return &ClockEngine{
		clock:     c,
		sounds:    sounds,
		anim:      NewAnimator(c, opts.ClearDelay),
		interval:  opts.Interval,
		tickSound: opts.TickSound,
	}
}

// Start renders the current time and schedules a tick every interval. The
// schedule lives as long as the engine; later calls do nothing.
func (e *ClockEngine) Start() {
	if e.started {
		return
	}
	e.started = true

	e.Tick()
	e.clock.Every(e.interval, e.Tick)
}

// Tick samples the current time and renders it.
func (e *ClockEngine) Tick() {
	hours, minutes, seconds := timefmt.Clock(e.clock.Now())

	e.anim.Pulse(&e.face.Seconds)
	e.face.Hours.Text = hours
	e.face.Minutes.Text = minutes
	e.face.Seconds.Text = seconds

	if e.tickSound {
		e.sounds.Play(SoundTick)
	}
}

// Face returns the current clock display.
func (e *ClockEngine) Face() ClockFace {
	return e.face
}

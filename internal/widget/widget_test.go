package widget

import (
	"time"

	"github.com/jmylchreest/tickr/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 9, 30, 15, 0, time.Local)

// recordingSounds records every Play call.
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) Play(name string) {
	r.played = append(r.played, name)
}

func newTestStopwatch() (*Stopwatch, *clock.Virtual, *recordingSounds) {
	vc := clock.NewVirtual(epoch)
	sounds := &recordingSounds{}
	sw := NewStopwatch(vc, sounds, StopwatchOptions{})
	return sw, vc, sounds
}

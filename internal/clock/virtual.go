package clock

import (
	"slices"
	"sync"
	"time"
)

// Virtual is a simulated Clock. Time only moves when Advance is called, and
// due tasks run on the caller's goroutine in deadline order.
type Virtual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*virtualTask
}

type virtualTask struct {
	at       time.Time
	interval time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewVirtual creates a Virtual clock starting at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now implements Clock.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// After implements Clock.
func (v *Virtual) After(delay time.Duration, fn func()) Cancel {
	return v.schedule(delay, 0, fn)
}

// Every implements Clock.
func (v *Virtual) Every(interval time.Duration, fn func()) Cancel {
	return v.schedule(interval, interval, fn)
}

func (v *Virtual) schedule(delay, interval time.Duration, fn func()) Cancel {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTask{
		at:       v.now.Add(delay),
		interval: interval,
		seq:      v.seq,
		fn:       fn,
	}
	v.tasks = append(v.tasks, t)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		t.done = true
		v.removeLocked(t)
	}
}

// Advance moves the clock forward by d, running every task that falls due.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)

	for {
		t := v.nextDueLocked(target)
		if t == nil {
			break
		}

		v.now = t.at
		if t.interval > 0 {
			t.at = t.at.Add(t.interval)
		} else {
			t.done = true
			v.removeLocked(t)
		}

		v.mu.Unlock()
		t.fn()
		v.mu.Lock()
	}

	v.now = target
	v.mu.Unlock()
}

// Pending returns the number of scheduled tasks that have not run to
// completion or been cancelled.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := 0
	for _, t := range v.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// nextDueLocked returns the earliest live task due at or before target.
// Ties go to the task scheduled first.
func (v *Virtual) nextDueLocked(target time.Time) *virtualTask {
	var next *virtualTask
	for _, t := range v.tasks {
		if t.done || t.at.After(target) {
			continue
		}
		if next == nil || t.at.Before(next.at) || (t.at.Equal(next.at) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (v *Virtual) removeLocked(t *virtualTask) {
	if i := slices.Index(v.tasks, t); i >= 0 {
		v.tasks = slices.Delete(v.tasks, i, i+1)
	}
}

package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal_AfterDispatches(t *testing.T) {
	dispatched := make(chan func(), 1)
	r := NewReal(func(fn func()) { dispatched <- fn })

	done := make(chan struct{})
	r.After(5*time.Millisecond, func() { close(done) })

	select {
	case fn := <-dispatched:
		fn()
	case <-time.After(time.Second):
		t.Fatal("timer was not dispatched")
	}

	select {
	case <-done:
	default:
		t.Fatal("callback did not run")
	}
}

func TestReal_CancelDropsQueuedFiring(t *testing.T) {
	dispatched := make(chan func(), 1)
	r := NewReal(func(fn func()) { dispatched <- fn })

	ran := false
	cancel := r.After(time.Millisecond, func() { ran = true })

	var fn func()
	select {
	case fn = <-dispatched:
	case <-time.After(time.Second):
		t.Fatal("timer was not dispatched")
	}

	// The firing is queued; cancelling before it runs must drop it.
	cancel()
	fn()
	assert.False(t, ran)
}

func TestReal_EveryStopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	r := NewReal(nil)
	cancel := r.Every(2*time.Millisecond, func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, time.Second, time.Millisecond)

	cancel()
	cancel()

	mu.Lock()
	stopped := calls
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	// A firing already past the cancelled check may still land once.
	assert.LessOrEqual(t, calls, stopped+1)
}

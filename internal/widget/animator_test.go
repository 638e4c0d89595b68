package widget

import (
	"testing"
	"time"

	"github.com/jmylchreest/tickr/internal/clock"
	"github.com/stretchr/testify/assert"
)

func TestAnimator_PulseClearsAfterDelay(t *testing.T) {
	vc := clock.NewVirtual(epoch)
	a := NewAnimator(vc, 0)
	var f Field

	a.Pulse(&f)
	assert.True(t, f.Ticking)
	assert.True(t, a.Pending())

	vc.Advance(99 * time.Millisecond)
	assert.True(t, f.Ticking)

	vc.Advance(time.Millisecond)
	assert.False(t, f.Ticking)
	assert.False(t, a.Pending())
}

func TestAnimator_PulsesCoalesce(t *testing.T) {
	vc := clock.NewVirtual(epoch)
	a := NewAnimator(vc, 100*time.Millisecond)
	var f Field

	a.Pulse(&f)
	vc.Advance(60 * time.Millisecond)
	a.Pulse(&f)
	assert.Equal(t, 1, vc.Pending(), "second pulse must replace the first removal")

	// The first removal would have fired at 100ms.
	vc.Advance(60 * time.Millisecond)
	assert.True(t, f.Ticking)

	vc.Advance(40 * time.Millisecond)
	assert.False(t, f.Ticking)
	assert.Equal(t, 0, vc.Pending())
}

func TestAnimator_SharedSlotAcrossTargets(t *testing.T) {
	vc := clock.NewVirtual(epoch)
	a := NewAnimator(vc, 100*time.Millisecond)
	var first, second Field

	a.Pulse(&first)
	a.Pulse(&second)
	vc.Advance(time.Second)

	// Only the latest target's removal survives in the slot.
	assert.True(t, first.Ticking)
	assert.False(t, second.Ticking)
}

func TestAnimator_Cancel(t *testing.T) {
	vc := clock.NewVirtual(epoch)
	a := NewAnimator(vc, 100*time.Millisecond)
	var f Field

	a.Pulse(&f)
	a.Cancel()
	assert.False(t, f.Ticking)
	assert.False(t, a.Pending())
	assert.Equal(t, 0, vc.Pending())

	// Cancel without a pending pulse is harmless.
	a.Cancel()
}

package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_ExistingIDDisposesFirst: re-registering a rotating entity
// leaves exactly one timer set active, with the old one fully cancelled.
func TestRegister_ExistingIDDisposesFirst(t *testing.T) {
	r, clock, sink, _ := newTestRotator()
	r.Register("p2", refs("a", "b", "c"), "a")

	r.OnInterestEnter("p2")
	clock.Advance(200 * time.Millisecond)
	require.Equal(t, PhaseRotating, r.PhaseOf("p2"))
	require.Equal(t, 1, r.ActiveTimerCount())

	// Surface redraw re-registers the same logical entity, twice in a row.
	r.Register("p2", refs("a", "b", "c"), "a")
	r.Register("p2", refs("a", "b", "c"), "a")

	assert.Equal(t, PhaseIdle, r.PhaseOf("p2"))
	assert.Equal(t, 0, r.ActiveTimerCount())
	assert.Equal(t, 0, clock.PendingTimers(), "old timers fully cancelled")

	// Rotation on the fresh registration runs on a single timer set: two
	// ticks produce exactly two commits.
	r.OnInterestEnter("p2")
	clock.Advance(200 * time.Millisecond)
	require.Equal(t, 1, r.ActiveTimerCount())

	clock.Advance(2*1500*time.Millisecond + 500*time.Millisecond)
	assert.Equal(t, []int{1, 2}, sink.committedIndices())
}

// TestDisposeAll_SweepsEverything: no timers survive regardless of how
// many entities were mid-rotation or mid-transition.
func TestDisposeAll_SweepsEverything(t *testing.T) {
	r, clock, sink, _ := newTestRotator()
	r.Register("p1", refs("a", "b"), "a")
	r.Register("p2", refs("c", "d", "e"), "c")
	r.Register("p3", refs("f", "g"), "f")

	r.OnInterestEnter("p1") // pending start
	r.OnInterestEnter("p2")
	r.OnInterestEnter("p3")
	clock.Advance(200 * time.Millisecond) // p1..p3 rotating
	clock.Advance(1500 * time.Millisecond)
	// All three are now mid fade-out as well.
	require.Equal(t, 3, r.ActiveTimerCount())

	r.DisposeAll()

	assert.Equal(t, 0, r.ActiveTimerCount())
	assert.Equal(t, 0, clock.PendingTimers())
	assert.False(t, r.Registered("p1"))

	commits := len(sink.commits)
	clock.Advance(time.Minute)
	assert.Len(t, sink.commits, commits, "nothing fires after a sweep")
}

// TestDispose_UnknownIDIsNoOp.
func TestDispose_UnknownIDIsNoOp(t *testing.T) {
	r, _, _, _ := newTestRotator()
	r.Dispose("never-registered")
	r.DisposeAll()
	assert.Equal(t, 0, r.ActiveTimerCount())
}

// TestRegister_EmptySequenceFallsBackToDefault.
func TestRegister_EmptySequenceFallsBackToDefault(t *testing.T) {
	r, clock, sink, _ := newTestRotator()
	r.Register("p1", nil, "a")

	ref, ok := r.CommittedRef("p1")
	require.True(t, ok)
	assert.Equal(t, ImageRef("a"), ref)

	r.OnInterestEnter("p1")
	clock.Advance(10 * time.Second)
	assert.Empty(t, sink.commits)
}

// TestRegister_ResetsCommittedIndex: a redraw rebuilds rotation state from
// scratch; nothing persists across registrations.
func TestRegister_ResetsCommittedIndex(t *testing.T) {
	r, _, _, _ := newTestRotator()
	r.Register("p1", refs("a", "b", "c"), "a")
	r.Navigate("p1", Next)

	idx, _ := r.CommittedIndex("p1")
	require.Equal(t, 1, idx)

	r.Register("p1", refs("a", "b", "c"), "a")
	idx, _ = r.CommittedIndex("p1")
	assert.Equal(t, 0, idx)
}

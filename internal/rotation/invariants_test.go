package rotation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Scheduler Invariants
// ============================================================================

// TestProperty_TimerBoundsHoldUnderRandomOps drives a Rotator with random
// operation sequences and checks, after every step, that no entity ever
// holds more than one timer of each kind and that the diagnostic count
// never exceeds the number of registered entities.
func TestProperty_TimerBoundsHoldUnderRandomOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := NewManualClock()
		pre := &fakePreloader{failFor: map[ImageRef]error{
			"flaky": errors.New("preload failed"),
		}}
		sink := &recordSink{}
		r := New(Config{Clock: clock, Sink: sink, Preloader: pre})

		ids := []string{"p1", "p2", "p3", "p4"}
		registered := map[string]bool{}

		numOps := rapid.IntRange(10, 200).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			id := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("id-%d", i))
			op := rapid.IntRange(0, 7).Draw(t, fmt.Sprintf("op-%d", i))

			switch op {
			case 0:
				n := rapid.IntRange(1, 5).Draw(t, fmt.Sprintf("images-%d", i))
				images := make([]ImageRef, n)
				for j := range images {
					images[j] = ImageRef(fmt.Sprintf("%s-img-%d", id, j))
				}
				// One id cycles a permanently failing candidate.
				if id == "p4" && n > 1 {
					images[1] = "flaky"
				}
				r.Register(id, images, images[0])
				registered[id] = true
			case 1:
				r.Dispose(id)
				registered[id] = false
			case 2:
				r.OnInterestEnter(id)
			case 3:
				r.OnInterestLeave(id)
			case 4:
				r.Stop(id)
			case 5:
				r.Navigate(id, Next)
			case 6:
				r.Navigate(id, Prev)
			case 7:
				step := rapid.IntRange(1, 2500).Draw(t, fmt.Sprintf("ms-%d", i))
				clock.Advance(time.Duration(step) * time.Millisecond)
			}

			active := 0
			for _, known := range registered {
				if known {
					active++
				}
			}
			require.LessOrEqual(t, r.ActiveTimerCount(), active,
				"more entities hold timers than are registered")

			// Committed indices always stay in range.
			for _, entityID := range ids {
				if idx, ok := r.CommittedIndex(entityID); ok {
					require.GreaterOrEqual(t, idx, 0)
					require.Less(t, idx, 5)
				}
			}
		}

		// No-leak law: a full sweep leaves zero timers of any kind, no
		// matter what state the entities were in.
		r.DisposeAll()
		require.Equal(t, 0, r.ActiveTimerCount())
		require.Equal(t, 0, clock.PendingTimers())
	})
}

// TestProperty_CommitsAreStrictlySequential holds one entity in Rotating
// through a random number of ticks and requires strict modulo cycling of
// the committed index, regardless of image count.
func TestProperty_CommitsAreStrictlySequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := NewManualClock()
		sink := &recordSink{}
		r := New(Config{Clock: clock, Sink: sink, Preloader: &fakePreloader{}})

		n := rapid.IntRange(2, 8).Draw(t, "imageCount")
		images := make([]ImageRef, n)
		for i := range images {
			images[i] = ImageRef(fmt.Sprintf("img-%d", i))
		}
		r.Register("p1", images, images[0])

		r.OnInterestEnter("p1")
		ticks := rapid.IntRange(1, 3*n).Draw(t, "ticks")
		clock.Advance(200*time.Millisecond +
			time.Duration(ticks)*1500*time.Millisecond + 500*time.Millisecond)

		indices := sink.committedIndices()
		require.Len(t, indices, ticks)
		for i, idx := range indices {
			require.Equal(t, (i+1)%n, idx, "commit %d out of order", i)
		}
	})
}

// TestProperty_RapidHoverTogglingNeverLeaksTimers flips interest on and
// off at random sub-second intervals, the bug class the generation guard
// exists for, and requires the timer bound and clean teardown every time.
func TestProperty_RapidHoverTogglingNeverLeaksTimers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := NewManualClock()
		sink := &recordSink{}
		r := New(Config{Clock: clock, Sink: sink, Preloader: &fakePreloader{}})
		r.Register("p1", refs("a", "b", "c"), "a")

		toggles := rapid.IntRange(2, 60).Draw(t, "toggles")
		for i := 0; i < toggles; i++ {
			if i%2 == 0 {
				r.OnInterestEnter("p1")
			} else {
				r.OnInterestLeave("p1")
			}
			step := rapid.IntRange(0, 700).Draw(t, fmt.Sprintf("ms-%d", i))
			clock.Advance(time.Duration(step) * time.Millisecond)

			require.LessOrEqual(t, r.ActiveTimerCount(), 1)
		}

		r.OnInterestLeave("p1")
		require.Equal(t, 0, r.ActiveTimerCount())
		require.Equal(t, PhaseIdle, r.PhaseOf("p1"))

		// Whatever committed last, the entity is back on its default.
		ref, ok := r.CommittedRef("p1")
		require.True(t, ok)
		require.Equal(t, ImageRef("a"), ref)

		r.DisposeAll()
		require.Equal(t, 0, clock.PendingTimers())
	})
}

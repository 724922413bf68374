// Package rotation implements the hover-driven media rotation core that
// powers per-card image cycling on the catalog grid, the detail-page
// thumbnail navigator, and the featured carousel.
//
// The package is a pure scheduler: it owns per-entity timer lifecycles and
// transition state machines but never renders anything. The UI adapts
// committed state through the Sink interface, which keeps every invariant
// testable without a terminal. All public methods and all timer callbacks
// are serialized behind a single mutex, so state changes never interleave.
package rotation

import "time"

// ImageRef is an opaque reference to one image in an entity's sequence.
// The surrounding UI resolves refs to renderable previews; the core only
// compares and forwards them.
type ImageRef string

// Phase is the rotation lifecycle phase of one entity.
type Phase int

const (
	// PhaseIdle means no timers are held for the entity.
	PhaseIdle Phase = iota
	// PhasePendingStart means the start-delay timer is pending. A leave
	// signal before it fires returns the entity to Idle with zero ticks.
	PhasePendingStart
	// PhaseRotating means the repeating tick timer is active.
	PhaseRotating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingStart:
		return "pending-start"
	case PhaseRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Direction selects the target of an explicit navigation request.
type Direction int

const (
	// Next advances to the following image, wrapping at the end.
	Next Direction = iota
	// Prev moves to the preceding image, wrapping at the start.
	Prev
)

// Timings holds every duration the core schedules with. Zero fields are
// replaced by the defaults, so config only needs to override what it cares
// about.
type Timings struct {
	// StartDelay debounces interest signals. A pointer pass shorter than
	// this never starts rotation.
	StartDelay time.Duration

	// TickPeriod is the interval between advance requests while rotating.
	TickPeriod time.Duration

	// FadeDuration is the length of each half of a crossfade. The committed
	// index moves at the midpoint, after fade-out completes.
	FadeDuration time.Duration

	// ResumeCooldown is how long the carousel loop stays paused after a
	// manual navigation before auto-advance resumes.
	ResumeCooldown time.Duration

	// FrameInterval is the loop driver's animation tick.
	FrameInterval time.Duration
}

// DefaultTimings returns the production timings.
func DefaultTimings() Timings {
	return Timings{
		StartDelay:     200 * time.Millisecond,
		TickPeriod:     1500 * time.Millisecond,
		FadeDuration:   400 * time.Millisecond,
		ResumeCooldown: 2000 * time.Millisecond,
		FrameInterval:  16 * time.Millisecond,
	}
}

func (t Timings) withDefaults() Timings {
	def := DefaultTimings()
	if t.StartDelay <= 0 {
		t.StartDelay = def.StartDelay
	}
	if t.TickPeriod <= 0 {
		t.TickPeriod = def.TickPeriod
	}
	if t.FadeDuration <= 0 {
		t.FadeDuration = def.FadeDuration
	}
	if t.ResumeCooldown <= 0 {
		t.ResumeCooldown = def.ResumeCooldown
	}
	if t.FrameInterval <= 0 {
		t.FrameInterval = def.FrameInterval
	}
	return t
}

// Preloader fetches an image out-of-band before a crossfade may begin.
// Implementations must eventually invoke done exactly once, from any
// goroutine. Invoking it synchronously from inside Preload is fine: the
// Rotator never holds its lock across a Preload call. A nil Preloader
// treats every image as resident.
type Preloader interface {
	Preload(ref ImageRef, done func(error))
}

// CommitEvent describes a committed image swap. It is emitted exactly once
// per commit, at the crossfade midpoint, never during fade phases.
type CommitEvent struct {
	EntityID  string
	Index     int
	Ref       ImageRef
	Indicator Indicator
}

// Sink receives visual state changes from the core. Methods are invoked
// with the Rotator's lock held; implementations must return quickly and
// must not call back into the Rotator.
type Sink interface {
	// TransitionStarted fires when a crossfade begins fading out.
	TransitionStarted(entityID string)
	// ImageCommitted fires at the swap instant with the new committed index.
	ImageCommitted(ev CommitEvent)
	// TransitionSettled fires when fade-in completes. Abandoned transitions
	// never settle.
	TransitionSettled(entityID string)
}

// NopSink discards all events. Useful for tests that only inspect state.
type NopSink struct{}

func (NopSink) TransitionStarted(string)    {}
func (NopSink) ImageCommitted(CommitEvent)  {}
func (NopSink) TransitionSettled(string)    {}

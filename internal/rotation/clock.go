package rotation

import "time"

// Timer is a cancelable one-shot timer handle.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// timer from firing. Stopping an already-fired timer is a no-op.
	Stop() bool
}

// Clock abstracts time so every law in this package is testable with a
// deterministic clock. Production code uses NewClock; tests use ManualClock.
type Clock interface {
	Now() time.Time
	// AfterFunc schedules fn to run once after d. fn may run on any
	// goroutine; callers are expected to re-enter their own locking.
	AfterFunc(d time.Duration, fn func()) Timer
}

// NewClock returns the real wall clock backed by time.AfterFunc.
func NewClock() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return realTimer{t: time.AfterFunc(d, fn)}
}

type realTimer struct{ t *time.Timer }

func (rt realTimer) Stop() bool { return rt.t.Stop() }

package rotation

// Shared test doubles. Everything runs on ManualClock, so callbacks fire
// synchronously and none of these need locking.

// recordSink captures every event the core emits, in order.
type recordSink struct {
	started []string
	commits []CommitEvent
	settled []string
}

func (s *recordSink) TransitionStarted(id string) { s.started = append(s.started, id) }
func (s *recordSink) ImageCommitted(ev CommitEvent) {
	s.commits = append(s.commits, ev)
}
func (s *recordSink) TransitionSettled(id string) { s.settled = append(s.settled, id) }

func (s *recordSink) committedIndices() []int {
	out := make([]int, 0, len(s.commits))
	for _, ev := range s.commits {
		out = append(out, ev.Index)
	}
	return out
}

// pendingLoad is one deferred preload waiting for the test to release it.
type pendingLoad struct {
	ref  ImageRef
	done func(error)
}

// fakePreloader answers preloads synchronously by default. Setting hold
// queues callbacks instead so tests can interleave interrupts with loads
// still in flight. failFor marks refs whose preload fails.
type fakePreloader struct {
	hold    bool
	failFor map[ImageRef]error
	pending []pendingLoad
	loads   []ImageRef
}

func (p *fakePreloader) Preload(ref ImageRef, done func(error)) {
	p.loads = append(p.loads, ref)
	if p.hold {
		p.pending = append(p.pending, pendingLoad{ref: ref, done: done})
		return
	}
	done(p.failFor[ref])
}

// release fires all queued callbacks in arrival order.
func (p *fakePreloader) release() {
	pending := p.pending
	p.pending = nil
	for _, load := range pending {
		load.done(p.failFor[load.ref])
	}
}

// newTestRotator assembles a Rotator on a manual clock with recording
// collaborators and the production default timings.
func newTestRotator() (*Rotator, *ManualClock, *recordSink, *fakePreloader) {
	clock := NewManualClock()
	sink := &recordSink{}
	pre := &fakePreloader{}
	r := New(Config{Clock: clock, Sink: sink, Preloader: pre})
	return r, clock, sink, pre
}

func refs(names ...string) []ImageRef {
	out := make([]ImageRef, len(names))
	for i, n := range names {
		out[i] = ImageRef(n)
	}
	return out
}

package rotation

import (
	"sync"

	"github.com/zjrosen/vitrine/internal/log"
)

// entity is one registered visual surface (a product card or carousel
// slide) together with its rotation and transition bookkeeping. Entities
// are owned by the Rotator and only touched with its lock held.
type entity struct {
	id           string
	images       []ImageRef
	defaultIndex int
	committed    int

	// gen is replaced by stop, dispose, and re-register, drawn from a
	// Rotator-wide sequence so no two registrations of the same id can
	// ever share a value. Timer and preload callbacks capture it at
	// scheduling time and no-op if it moved, which is what makes
	// cancellation synchronous from the caller's view.
	gen uint64

	phase      Phase
	startTimer Timer
	tickTimer  Timer

	trans *transition
}

// Config wires a Rotator's collaborators.
type Config struct {
	// Clock defaults to the real wall clock.
	Clock Clock
	// Timings defaults to DefaultTimings for any zero field.
	Timings Timings
	// Preloader may be nil, in which case every image is treated as
	// resident and crossfades begin immediately.
	Preloader Preloader
	// Sink defaults to NopSink.
	Sink Sink
	// ReducedMotion commits automatic advances instantly instead of
	// crossfading. Manual navigation already behaves this way.
	ReducedMotion bool
}

// Rotator is the registry and scheduler facade the UI talks to. One
// Rotator serves every rotating surface on screen; entities are keyed by
// the caller's stable ids.
type Rotator struct {
	mu      sync.Mutex
	clock   Clock
	timings Timings
	pre     Preloader
	sink    Sink

	reducedMotion bool

	genSeq   uint64
	entities map[string]*entity

	// deferred holds preload invocations queued while the lock was held.
	// Preloader implementations may invoke done synchronously, so the
	// actual calls only happen after the lock is released; see flush.
	deferred []func()
}

// flushLocked hands back the queued external calls and clears the queue.
// Callers run them after unlocking.
func (r *Rotator) flushLocked() []func() {
	calls := r.deferred
	r.deferred = nil
	return calls
}

// nextGenLocked issues the next value of the rotator-wide generation
// sequence.
func (r *Rotator) nextGenLocked() uint64 {
	r.genSeq++
	return r.genSeq
}

// New creates a Rotator.
func New(cfg Config) *Rotator {
	if cfg.Clock == nil {
		cfg.Clock = NewClock()
	}
	if cfg.Sink == nil {
		cfg.Sink = NopSink{}
	}
	return &Rotator{
		clock:         cfg.Clock,
		timings:       cfg.Timings.withDefaults(),
		pre:           cfg.Preloader,
		sink:          cfg.Sink,
		reducedMotion: cfg.ReducedMotion,
		entities:      make(map[string]*entity),
	}
}

// Register adds an entity with its ordered image sequence. If the id is
// already registered it is disposed first, so redrawing a surface for the
// same logical entity can never accumulate duplicate timers. The committed
// index starts at the default image.
func (r *Rotator) Register(id string, images []ImageRef, defaultImage ImageRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.entities[id]; ok {
		r.disposeLocked(old)
	}
	if len(images) == 0 {
		images = []ImageRef{defaultImage}
	}
	defaultIndex := 0
	for i, ref := range images {
		if ref == defaultImage {
			defaultIndex = i
			break
		}
	}
	r.entities[id] = &entity{
		id:           id,
		images:       images,
		defaultIndex: defaultIndex,
		committed:    defaultIndex,
		gen:          r.nextGenLocked(),
	}
	log.Debug(log.CatRotation, "entity registered", "id", id, "images", len(images))
}

// Dispose removes an entity, synchronously cancelling its timers and
// abandoning any in-flight transition without committing it. Unknown ids
// are a no-op.
func (r *Rotator) Dispose(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return
	}
	r.disposeLocked(e)
	delete(r.entities, id)
}

// DisposeAll sweeps every registered entity. Called whenever the rendered
// set changes wholesale, for example when a new page of results replaces
// the grid.
func (r *Rotator) DisposeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entities {
		r.disposeLocked(e)
		delete(r.entities, id)
	}
}

// disposeLocked cancels timers and abandons transitions for e. The entity
// ends in Idle holding zero handles; its generation is bumped so any
// callback already scheduled observes the move and aborts.
func (r *Rotator) disposeLocked(e *entity) {
	r.stopLocked(e)
	r.abandonLocked(e)
	log.Debug(log.CatRotation, "entity disposed", "id", e.id)
}

// CommittedIndex reports the committed image index for an entity.
func (r *Rotator) CommittedIndex(id string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return 0, false
	}
	return e.committed, true
}

// CommittedRef reports the committed image reference for an entity.
func (r *Rotator) CommittedRef(id string) (ImageRef, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return "", false
	}
	return e.images[e.committed], true
}

// PhaseOf reports an entity's rotation phase. Unknown ids are Idle.
func (r *Rotator) PhaseOf(id string) Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[id]
	if !ok {
		return PhaseIdle
	}
	return e.phase
}

// Registered reports whether an entity id is currently registered.
func (r *Rotator) Registered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entities[id]
	return ok
}

// ActiveTimerCount returns the number of entities currently holding a
// pending-start or active rotation-tick timer. Diagnostic hook used by
// tests to assert the no-leak law.
func (r *Rotator) ActiveTimerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entities {
		if e.startTimer != nil || e.tickTimer != nil {
			n++
		}
	}
	return n
}

package rotation

import "github.com/zjrosen/vitrine/internal/log"

// OnInterestEnter reacts to a pointer entering an entity's surface. An
// idle entity with more than one image moves to PendingStart; the start
// delay absorbs accidental pointer passes. Entities already pending or
// rotating, and unknown ids, are left alone.
func (r *Rotator) OnInterestEnter(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || len(e.images) < 2 || e.phase != PhaseIdle {
		return
	}

	e.phase = PhasePendingStart
	gen := e.gen
	e.startTimer = r.clock.AfterFunc(r.timings.StartDelay, func() {
		r.onStartDelay(id, gen)
	})
}

// OnInterestLeave reacts to the pointer leaving an entity's surface. All
// timers are cancelled and the entity returns to its default image via the
// immediate restore path. Safe from any phase; unknown ids are a no-op.
func (r *Rotator) OnInterestLeave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok {
		return
	}
	r.stopLocked(e)
	r.abandonLocked(e)
	r.restoreLocked(e)
}

// Stop cancels any pending-start or tick timer for the entity and leaves
// it Idle. Idempotent and safe from every phase; it is called
// speculatively from leave handling, navigation, and disposal.
func (r *Rotator) Stop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entities[id]; ok {
		r.stopLocked(e)
	}
}

// Navigate moves an entity to the previous or next image on explicit user
// request. Navigation bypasses the phase machine: timers are cancelled,
// any in-flight crossfade is interrupted, and the requested index is
// committed without fades. The entity ends Idle with no auto-resume.
func (r *Rotator) Navigate(id string, dir Direction) {
	r.mu.Lock()
	e, ok := r.entities[id]
	if !ok || len(e.images) < 2 {
		r.mu.Unlock()
		return
	}
	target := e.committed
	switch dir {
	case Next:
		target = (e.committed + 1) % len(e.images)
	case Prev:
		target = (e.committed - 1 + len(e.images)) % len(e.images)
	}
	r.navigateLocked(e, target)
	calls := r.flushLocked()
	r.mu.Unlock()
	for _, call := range calls {
		call()
	}
}

// NavigateTo jumps an entity to an explicit index. Used by the detail
// page's thumbnail navigator. Out-of-range indices are ignored.
func (r *Rotator) NavigateTo(id string, index int) {
	r.mu.Lock()
	e, ok := r.entities[id]
	if !ok || index < 0 || index >= len(e.images) {
		r.mu.Unlock()
		return
	}
	r.navigateLocked(e, index)
	calls := r.flushLocked()
	r.mu.Unlock()
	for _, call := range calls {
		call()
	}
}

func (r *Rotator) navigateLocked(e *entity, target int) {
	r.stopLocked(e)
	r.abandonLocked(e)
	r.showLocked(e, target)
}

// stopLocked cancels both timer kinds and returns the entity to Idle. The
// generation bump guarantees that a start immediately following a stop in
// the same turn can never leave two repeating timers alive: any callback
// from the old generation aborts on entry.
func (r *Rotator) stopLocked(e *entity) {
	e.gen = r.nextGenLocked()
	if e.startTimer != nil {
		e.startTimer.Stop()
		e.startTimer = nil
	}
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
	e.phase = PhaseIdle
}

// onStartDelay fires when the debounce delay elapses. The entity moves to
// Rotating and the first tick is scheduled one full period out.
func (r *Rotator) onStartDelay(id string, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.phase != PhasePendingStart {
		return
	}
	e.startTimer = nil
	e.phase = PhaseRotating
	log.Debug(log.CatRotation, "rotation started", "id", id)
	r.armTickLocked(e)
}

func (r *Rotator) armTickLocked(e *entity) {
	id := e.id
	gen := e.gen
	e.tickTimer = r.clock.AfterFunc(r.timings.TickPeriod, func() {
		r.onTick(id, gen)
	})
}

// onTick advances the entity one image and re-arms itself. The advance
// runs through the crossfade engine; the committed index only moves at the
// fade midpoint, not here.
func (r *Rotator) onTick(id string, gen uint64) {
	r.mu.Lock()
	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.phase != PhaseRotating {
		r.mu.Unlock()
		return
	}
	next := (e.committed + 1) % len(e.images)
	r.beginCrossfadeLocked(e, next)
	r.armTickLocked(e)
	calls := r.flushLocked()
	r.mu.Unlock()
	for _, call := range calls {
		call()
	}
}

// restoreLocked returns the entity to its default image. The default is
// already resident so this skips preloading and commits without fades,
// which keeps leave handling non-blocking. Nothing is emitted when the
// entity is already showing its default.
func (r *Rotator) restoreLocked(e *entity) {
	if e.committed == e.defaultIndex {
		return
	}
	r.commitLocked(e, e.defaultIndex)
}

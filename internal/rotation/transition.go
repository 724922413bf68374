package rotation

import "github.com/zjrosen/vitrine/internal/log"

// TransitionPhase tracks where an in-flight crossfade is.
type TransitionPhase int

const (
	// TransPreloading means the candidate image is being fetched
	// out-of-band. Nothing is visible yet.
	TransPreloading TransitionPhase = iota
	// TransFadingOut means the committed image is fading. Reads still
	// observe the prior committed index.
	TransFadingOut
	// TransSwapping is the commit instant. The visible reference and the
	// committed index change here and only here.
	TransSwapping
	// TransFadingIn means the new image is fading in.
	TransFadingIn
	// TransSettled means bookkeeping has been cleared.
	TransSettled
)

// transition is one in-flight crossfade. At most one exists per entity;
// a new advance request interrupts and replaces it rather than queueing.
type transition struct {
	gen     uint64
	to      ImageRef
	toIndex int
	phase   TransitionPhase
	timer   Timer
}

// beginCrossfadeLocked starts a crossfade toward images[target]. Any
// transition already in flight is abandoned first without committing.
// Under reduced motion the fade halves are skipped and the image commits
// through the instant-swap path.
func (r *Rotator) beginCrossfadeLocked(e *entity, target int) {
	r.abandonLocked(e)

	if r.reducedMotion {
		r.showLocked(e, target)
		return
	}

	t := &transition{
		gen:     e.gen,
		to:      e.images[target],
		toIndex: target,
		phase:   TransPreloading,
	}
	e.trans = t

	if r.pre == nil {
		r.enterFadeOutLocked(e, t)
		return
	}
	id := e.id
	gen := e.gen
	r.deferred = append(r.deferred, func() {
		r.pre.Preload(t.to, func(err error) {
			r.onPreloaded(id, gen, t, err)
		})
	})
}

// onPreloaded resumes a crossfade once its candidate is resident. A failed
// preload aborts the transition: the committed image is untouched and no
// index update is emitted.
func (r *Rotator) onPreloaded(id string, gen uint64, t *transition, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.trans != t {
		return
	}
	if err != nil {
		log.Debug(log.CatRotation, "preload failed, transition aborted", "id", id, "ref", string(t.to), "error", err)
		e.trans = nil
		return
	}
	r.enterFadeOutLocked(e, t)
}

func (r *Rotator) enterFadeOutLocked(e *entity, t *transition) {
	t.phase = TransFadingOut
	r.sink.TransitionStarted(e.id)

	id := e.id
	gen := e.gen
	t.timer = r.clock.AfterFunc(r.timings.FadeDuration, func() {
		r.onFadeOutDone(id, gen, t)
	})
}

// onFadeOutDone is the midpoint. The swap happens here: the committed
// index moves and is reported, then fade-in begins.
func (r *Rotator) onFadeOutDone(id string, gen uint64, t *transition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.trans != t {
		return
	}
	t.phase = TransSwapping
	r.commitLocked(e, t.toIndex)
	t.phase = TransFadingIn

	t.timer = r.clock.AfterFunc(r.timings.FadeDuration, func() {
		r.onFadeInDone(id, gen, t)
	})
}

func (r *Rotator) onFadeInDone(id string, gen uint64, t *transition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.trans != t {
		return
	}
	t.phase = TransSettled
	e.trans = nil
	r.sink.TransitionSettled(e.id)
}

// showLocked commits images[target] without fades, the path used by
// explicit navigation. The candidate may not be resident yet, so it still
// preloads; on failure the entity keeps its last committed image.
func (r *Rotator) showLocked(e *entity, target int) {
	if target == e.committed {
		return
	}
	if r.pre == nil {
		r.commitLocked(e, target)
		return
	}
	t := &transition{
		gen:     e.gen,
		to:      e.images[target],
		toIndex: target,
		phase:   TransPreloading,
	}
	e.trans = t
	id := e.id
	gen := e.gen
	r.deferred = append(r.deferred, func() {
		r.pre.Preload(t.to, func(err error) {
			r.onShowPreloaded(id, gen, t, err)
		})
	})
}

func (r *Rotator) onShowPreloaded(id string, gen uint64, t *transition, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entities[id]
	if !ok || e.gen != gen || e.trans != t {
		return
	}
	e.trans = nil
	if err != nil {
		log.Debug(log.CatRotation, "preload failed, navigation dropped", "id", id, "ref", string(t.to), "error", err)
		return
	}
	r.commitLocked(e, t.toIndex)
}

// commitLocked is the single writer of the visible-image slot. It updates
// the committed index and reports it, together with the indicator
// projection, through the sink.
func (r *Rotator) commitLocked(e *entity, index int) {
	e.committed = index
	r.sink.ImageCommitted(CommitEvent{
		EntityID:  e.id,
		Index:     index,
		Ref:       e.images[index],
		Indicator: Project(e.id, index, len(e.images)),
	})
}

// abandonLocked drops any in-flight transition without committing it. No
// further callbacks fire for the abandoned transition and it never
// settles.
func (r *Rotator) abandonLocked(e *entity) {
	if e.trans == nil {
		return
	}
	if e.trans.timer != nil {
		e.trans.timer.Stop()
	}
	e.trans = nil
}

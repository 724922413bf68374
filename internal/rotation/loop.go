package rotation

import (
	"math"
	"sync"
)

// LoopConfig wires a LoopDriver.
type LoopConfig struct {
	// Clock defaults to the real wall clock.
	Clock Clock
	// Timings supplies FrameInterval and ResumeCooldown; zero fields take
	// the defaults.
	Timings Timings
	// Rate is how far the position advances per frame, in cells.
	Rate float64
	// SlideWidth is the rendered width of one slide, in cells.
	SlideWidth float64
	// SlideCount is the number of slides in one track cycle.
	SlideCount int
	// OnFrame receives the wrapped position after every frame and after a
	// manual snap. Called with the driver's lock held; must not call back
	// into the driver.
	OnFrame func(pos float64)
	// OnSnap receives the slide index and its indicator projection after a
	// manual snap. Same re-entrancy rule as OnFrame.
	OnSnap func(slide int, ind Indicator)
}

// LoopDriver produces the featured carousel's continuous scroll position.
// Unlike the per-card scheduler it is not gated on interest signals: it
// advances a float position at a fixed rate per animation frame and wraps
// modulo one full track cycle, so the strip appears to loop forever
// without jumping. Manual navigation pauses it, snaps to a slide boundary,
// and resumes after a cooldown.
type LoopDriver struct {
	mu       sync.Mutex
	clock    Clock
	timings  Timings
	rate     float64
	slideW   float64
	trackW   float64
	count    int
	onFrame  func(float64)
	onSnap   func(int, Indicator)

	pos     float64
	running bool
	paused  bool
	gen     uint64

	frameTimer  Timer
	resumeTimer Timer
}

// NewLoopDriver creates a stopped driver.
func NewLoopDriver(cfg LoopConfig) *LoopDriver {
	if cfg.Clock == nil {
		cfg.Clock = NewClock()
	}
	if cfg.SlideCount < 1 {
		cfg.SlideCount = 1
	}
	if cfg.SlideWidth <= 0 {
		cfg.SlideWidth = 1
	}
	return &LoopDriver{
		clock:   cfg.Clock,
		timings: cfg.Timings.withDefaults(),
		rate:    cfg.Rate,
		slideW:  cfg.SlideWidth,
		trackW:  cfg.SlideWidth * float64(cfg.SlideCount),
		count:   cfg.SlideCount,
		onFrame: cfg.OnFrame,
		onSnap:  cfg.OnSnap,
	}
}

// Start begins auto-advancing. Idempotent.
func (d *LoopDriver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.paused = false
	d.armFrameLocked()
}

// Stop halts the driver and cancels every timer in the same synchronous
// step, mirroring entity disposal in the scheduler. Idempotent.
func (d *LoopDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.running = false
	d.paused = false
	if d.frameTimer != nil {
		d.frameTimer.Stop()
		d.frameTimer = nil
	}
	if d.resumeTimer != nil {
		d.resumeTimer.Stop()
		d.resumeTimer = nil
	}
}

// Position returns the current wrapped scroll position in cells.
func (d *LoopDriver) Position() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// SlideIndex returns the slide the position currently sits in.
func (d *LoopDriver) SlideIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.slideIndexLocked()
}

// Running reports whether the driver has been started and not stopped.
func (d *LoopDriver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Paused reports whether auto-advance is in its post-navigation cooldown.
func (d *LoopDriver) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Nudge handles manual arrow navigation: the continuous drive pauses, the
// position snaps to the adjacent slide boundary in the given direction,
// and auto-advance resumes after the cooldown.
func (d *LoopDriver) Nudge(dir Direction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}

	d.gen++
	d.paused = true
	if d.frameTimer != nil {
		d.frameTimer.Stop()
		d.frameTimer = nil
	}
	if d.resumeTimer != nil {
		d.resumeTimer.Stop()
		d.resumeTimer = nil
	}

	slide := d.slideIndexLocked()
	switch dir {
	case Next:
		slide++
	case Prev:
		// Snap back to the current boundary if mid-slide, otherwise move
		// one slide back.
		if d.pos == float64(slide)*d.slideW {
			slide--
		}
	}
	d.pos = d.wrap(float64(slide) * d.slideW)

	if d.onFrame != nil {
		d.onFrame(d.pos)
	}
	if d.onSnap != nil {
		idx := d.slideIndexLocked()
		d.onSnap(idx, Project("carousel", idx, d.count))
	}

	gen := d.gen
	d.resumeTimer = d.clock.AfterFunc(d.timings.ResumeCooldown, func() {
		d.onResume(gen)
	})
}

func (d *LoopDriver) onResume(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen || !d.running {
		return
	}
	d.resumeTimer = nil
	d.paused = false
	d.armFrameLocked()
}

func (d *LoopDriver) armFrameLocked() {
	gen := d.gen
	d.frameTimer = d.clock.AfterFunc(d.timings.FrameInterval, func() {
		d.tickFrame(gen)
	})
}

func (d *LoopDriver) tickFrame(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen || !d.running || d.paused {
		return
	}
	d.pos = d.wrap(d.pos + d.rate)
	if d.onFrame != nil {
		d.onFrame(d.pos)
	}
	d.armFrameLocked()
}

func (d *LoopDriver) slideIndexLocked() int {
	idx := int(math.Floor(d.pos/d.slideW)) % d.count
	if idx < 0 {
		idx += d.count
	}
	return idx
}

// wrap folds a position into [0, trackW) so the loop never jumps.
func (d *LoopDriver) wrap(pos float64) float64 {
	pos = math.Mod(pos, d.trackW)
	if pos < 0 {
		pos += d.trackW
	}
	return pos
}

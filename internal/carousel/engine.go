// Package carousel implements the progress-driven engine behind a scrollable
// item carousel.
//
// Progress is a single continuous coordinate: one unit is one item. Gestures,
// autoplay and the imperative Handle propose changes; the engine clamps or
// loops them, recomputes item transforms through a layout strategy and
// notifies observers.
//
// The engine is driven cooperatively from one goroutine: the owner feeds
// gesture events and calls Advance once per frame. It is not safe for
// concurrent use.
package carousel

import (
	"math"

	"github.com/llehouerou/carousel/internal/layout"
	"github.com/llehouerou/carousel/internal/loop"
)

// Transform is the placement of one item for the current frame.
type Transform = layout.Transform

// Item is the last computed placement of one physical item.
type Item struct {
	Transform  Transform
	Offset     float64 // relative offset used for Transform
	InWindow   bool    // inside the recompute window at the last update
	Generation uint64  // engine generation of the last recomputation
}

// Engine owns the carousel state. Create it with New.
type Engine struct {
	cfg      Config
	strategy layout.Strategy
	size     float64

	progress float64
	index    int
	phase    Phase

	transition *transition
	drag       dragState
	autoplay   autoplayState

	// scroll session: opened by a drag or an animated transition, closed
	// with OnScrollEnd when the engine comes to rest.
	scrollOpen bool
	scrollFrom int

	items      []Item
	generation uint64

	callbacks Callbacks
	subs      []*Subscription
	closed    bool
}

// New validates cfg and creates an engine resting at cfg.DefaultIndex
// (clamped, or wrapped when looping).
func New(cfg Config, cb Callbacks) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{callbacks: cb}
	e.apply(cfg)
	e.progress = e.restingProgress(cfg.DefaultIndex)
	e.index = e.nearest(e.progress)
	e.recompute(true)

	if cfg.AutoPlay.Enabled {
		e.autoplay.running = true
	}

	Logger().Debug("carousel created",
		"items", cfg.ItemCount,
		"mode", cfg.Mode.Kind().String(),
		"loop", cfg.Loop,
		"index", e.index)
	return e, nil
}

func (e *Engine) apply(cfg Config) {
	e.cfg = cfg
	e.strategy = cfg.Mode.strategy(cfg)
	e.size = cfg.Mode.ContainerSize()
	if len(e.items) != cfg.ItemCount {
		e.items = make([]Item, cfg.ItemCount)
	}
}

// restingProgress returns the progress of a rest position on index.
func (e *Engine) restingProgress(index int) float64 {
	n := e.cfg.ItemCount
	if e.cfg.Loop {
		return float64(loop.Wrap(index, n))
	}
	return float64(loop.Clamp(index, n))
}

func (e *Engine) nearest(progress float64) int {
	return loop.NearestIndex(progress, e.cfg.ItemCount, e.cfg.Loop)
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Progress returns the raw progress. With loop it is not wrapped.
func (e *Engine) Progress() float64 {
	return e.progress
}

// CurrentIndex returns the physical index nearest to progress.
func (e *Engine) CurrentIndex() int {
	return e.index
}

// Phase returns the interaction phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return State{
		Progress:      e.progress,
		CurrentIndex:  e.index,
		GestureActive: e.phase == PhaseDragging,
		AutoPlaying:   e.autoplay.running,
		Phase:         e.phase,
	}
}

// InFlight returns the transition being animated, if any.
func (e *Engine) InFlight() (Transition, bool) {
	if e.transition == nil {
		return Transition{}, false
	}
	return e.transition.Transition, true
}

// Items returns a copy of the last computed item placements, indexed by
// physical index.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Generation returns the number of recomputations so far. Items whose
// Generation equals it were refreshed by the latest update.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// ContainerSize returns the length of one item step.
func (e *Engine) ContainerSize() float64 {
	return e.size
}

// Subscribe returns a channel-based subscription to engine events.
func (e *Engine) Subscribe() *Subscription {
	sub := newSubscription()
	if e.closed {
		sub.close()
		return sub
	}
	e.subs = append(e.subs, sub)
	return sub
}

// Close cancels any in-flight transition, stops autoplay and closes
// subscriptions. Further calls on the engine are no-ops.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.transition = nil
	e.autoplay.running = false
	e.phase = PhaseIdle
	e.closed = true
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	Logger().Debug("carousel closed", "index", e.index)
}

// Reconfigure replaces the configuration while at rest, keeping the current
// index (clamped or wrapped into the new item count). All transforms are
// recomputed.
func (e *Engine) Reconfigure(cfg Config) error {
	if e.closed {
		return nil
	}
	if e.phase != PhaseIdle || e.transition != nil {
		Logger().Warn("reconfigure rejected", "phase", e.phase.String())
		return ErrNotAtRest
	}
	if err := cfg.Validate(); err != nil {
		Logger().Warn("reconfigure rejected", "err", err)
		return err
	}

	prev := e.index
	keep := e.index
	e.apply(cfg)
	e.progress = e.restingProgress(keep)
	e.index = e.nearest(e.progress)
	e.recompute(true)
	e.autoplay.running = cfg.AutoPlay.Enabled
	e.autoplay.elapsed = 0

	if e.index != prev {
		e.emitSnap(prev)
	}
	e.emitProgress()
	return nil
}

// SetItemCount changes the number of items while at rest.
func (e *Engine) SetItemCount(n int) error {
	cfg := e.cfg
	cfg.ItemCount = n
	return e.Reconfigure(cfg)
}

// SetContainerSize changes the container dimensions while at rest.
func (e *Engine) SetContainerSize(width, height float64) error {
	cfg := e.cfg
	cfg.Mode = cfg.Mode.withSize(width, height)
	return e.Reconfigure(cfg)
}

// offsetFor returns the relative offset of physical item i, picking the
// looped copy that falls in the strategy's wrap range.
func (e *Engine) offsetFor(i int) float64 {
	off := float64(i) - e.progress
	if e.cfg.Loop {
		n := e.cfg.ItemCount
		off = loop.WrapOffset(off, n, e.strategy.WrapStart(n))
	}
	return off
}

// recompute refreshes item transforms. Outside the window, items keep their
// previous transform unless full is set.
func (e *Engine) recompute(full bool) {
	e.generation++
	for i := range e.items {
		off := e.offsetFor(i)
		in := layout.InWindow(off, e.cfg.WindowSize)
		e.items[i].InWindow = in
		if !in && !full {
			continue
		}
		e.items[i].Transform = e.strategy.TransformFor(off, e.size)
		e.items[i].Offset = off
		e.items[i].Generation = e.generation
	}
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	prev := e.phase
	e.phase = p
	Logger().Debug("phase changed", "from", prev.String(), "to", p.String())
	for _, sub := range e.subs {
		sub.sendPhase(PhaseChange{Previous: prev, Current: p})
	}
}

func (e *Engine) emitSnap(prev int) {
	if e.callbacks.OnSnapToItem != nil {
		e.callbacks.OnSnapToItem(e.index)
	}
	for _, sub := range e.subs {
		sub.sendSnap(SnapChange{Previous: prev, Index: e.index})
	}
}

func (e *Engine) emitProgress() {
	offset := e.progress * e.size
	if e.callbacks.OnProgressChange != nil {
		e.callbacks.OnProgressChange(offset, e.progress)
	}
	for _, sub := range e.subs {
		sub.sendProgress(ProgressChange{Offset: offset, Absolute: e.progress})
	}
}

func (e *Engine) emitScrollEnd(prev int) {
	if e.callbacks.OnScrollEnd != nil {
		e.callbacks.OnScrollEnd(prev, e.index)
	}
	for _, sub := range e.subs {
		sub.sendScrollEnd(ScrollEnd{Previous: prev, Current: e.index})
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package carousel

import (
	"math"
	"time"

	"github.com/llehouerou/carousel/internal/loop"
)

// active reports whether the engine accepts progress intents.
func (e *Engine) active() bool {
	return !e.closed && e.cfg.ItemCount > 0
}

// ApplyDelta adds delta to progress. Without loop the result is clamped to
// [0, itemCount-1] and the return value reports whether clamping occurred.
func (e *Engine) ApplyDelta(delta float64) bool {
	if !e.active() || !isFinite(delta) {
		return false
	}
	clamped := e.setProgress(e.progress + delta)
	e.checkArrival()
	return clamped
}

// SetProgress sets progress directly. It is the entry point for an external
// tick driver; when progress reaches the in-flight transition's target
// exactly, the transition completes.
func (e *Engine) SetProgress(value float64) {
	if !e.active() || !isFinite(value) {
		return
	}
	e.setProgress(value)
	e.checkArrival()
}

// setProgress stores value, updates the index and transforms, then notifies.
// Observers therefore never see transforms that disagree with the index.
func (e *Engine) setProgress(value float64) bool {
	clamped := false
	if !e.cfg.Loop {
		value, clamped = loop.ClampProgress(value, e.cfg.ItemCount)
	}

	prev := e.index
	e.progress = value
	e.index = e.nearest(value)
	e.recompute(false)

	if e.index != prev {
		e.emitSnap(prev)
	}
	e.emitProgress()
	return clamped
}

// SettleTo moves progress to the rest position of target along the shortest
// path. When animated, the returned Transition is now in flight and is
// advanced by Advance; otherwise progress is set immediately and the second
// return value is false.
func (e *Engine) SettleTo(target int, animated bool) (Transition, bool) {
	if !e.active() {
		return Transition{}, false
	}
	n := e.cfg.ItemCount
	if e.cfg.Loop {
		target = loop.Wrap(target, n)
	} else {
		target = loop.Clamp(target, n)
	}

	base := e.settleBase()
	delta := loop.ShortestDelta(e.nearest(base), target, n, e.cfg.Loop)
	return e.settleToLogical(base+delta, animated)
}

// settleBase is the logical rest position further settles are computed
// from: the in-flight target, or the rest position nearest to progress.
func (e *Engine) settleBase() float64 {
	if e.transition != nil {
		return e.transition.To
	}
	return math.Round(e.progress)
}

func (e *Engine) settleToLogical(to float64, animated bool) (Transition, bool) {
	if !e.cfg.Loop {
		to, _ = loop.ClampProgress(to, e.cfg.ItemCount)
	}
	e.cancelTransition()

	if !animated || e.cfg.Animation.Duration <= 0 || to == e.progress {
		if to != e.progress {
			e.setProgress(to)
		}
		e.comeToRest()
		return Transition{}, false
	}

	t := Transition{
		From:     e.progress,
		To:       to,
		Duration: e.cfg.Animation.Duration,
		Easing:   e.cfg.Animation.Easing,
	}
	e.transition = newTransition(t)
	e.openScroll()
	e.setPhase(PhaseSettling)
	Logger().Debug("transition started", "from", t.From, "to", t.To, "duration", t.Duration)
	return t, true
}

// cancelTransition drops the in-flight transition. Progress keeps the value
// it had at cancellation time.
func (e *Engine) cancelTransition() {
	if e.transition == nil {
		return
	}
	Logger().Debug("transition cancelled", "progress", e.progress, "to", e.transition.To)
	e.transition = nil
}

// Advance is the frame callback: it moves the in-flight transition forward by
// dt, or runs the autoplay timer when at rest.
func (e *Engine) Advance(dt time.Duration) {
	if !e.active() || dt < 0 {
		return
	}
	if t := e.transition; t != nil {
		p, _ := t.advance(dt)
		e.setProgress(p)
		e.checkArrival()
		return
	}
	e.tickAutoPlay(dt)
}

// checkArrival completes the in-flight transition once progress equals its
// target exactly.
func (e *Engine) checkArrival() {
	t := e.transition
	if t == nil || e.progress != t.To {
		return
	}
	e.transition = nil
	Logger().Debug("transition completed", "index", e.index)
	e.comeToRest()
}

func (e *Engine) openScroll() {
	if e.scrollOpen {
		return
	}
	e.scrollOpen = true
	e.scrollFrom = e.index
}

// comeToRest returns to Idle and closes any open scroll session.
func (e *Engine) comeToRest() {
	e.setPhase(PhaseIdle)
	e.autoplay.elapsed = 0
	if !e.scrollOpen {
		return
	}
	e.scrollOpen = false
	e.emitScrollEnd(e.scrollFrom)
}

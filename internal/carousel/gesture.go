package carousel

import "math"

// GestureState is the state reported by a pan gesture source.
type GestureState int

const (
	GestureBegan GestureState = iota
	GestureChanged
	GestureEnded
	GestureCancelled
)

// String returns the state name.
func (s GestureState) String() string {
	switch s {
	case GestureBegan:
		return "Began"
	case GestureChanged:
		return "Changed"
	case GestureEnded:
		return "Ended"
	case GestureCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// GestureEvent is one sample from a pan gesture source. Translation is
// cumulative since the gesture began; velocity is in container units per
// second.
type GestureEvent struct {
	TranslationX float64
	TranslationY float64
	VelocityX    float64
	VelocityY    float64
	State        GestureState
}

type dragState struct {
	lastTranslation float64
	startProgress   float64 // rest position nearest to progress when the drag began
}

// HandleGesture feeds one gesture sample into the engine.
//
// Began cancels any in-flight transition and pauses autoplay. Changed moves
// progress by the translation since the previous sample. Ended and
// Cancelled settle on a rest position chosen from progress and, for Ended,
// the release velocity.
func (e *Engine) HandleGesture(ev GestureEvent) {
	if !e.active() || e.size <= 0 {
		return
	}
	switch ev.State {
	case GestureBegan:
		e.beginDrag(ev)
	case GestureChanged:
		if e.phase != PhaseDragging {
			return
		}
		e.dragTo(ev)
	case GestureEnded:
		if e.phase != PhaseDragging {
			return
		}
		e.dragTo(ev)
		e.release(e.axisVelocity(ev))
	case GestureCancelled:
		if e.phase != PhaseDragging {
			return
		}
		e.release(0)
	}
}

func (e *Engine) beginDrag(ev GestureEvent) {
	e.cancelTransition()
	e.drag = dragState{
		lastTranslation: e.axisTranslation(ev),
		startProgress:   math.Round(e.progress),
	}
	e.openScroll()
	e.setPhase(PhaseDragging)
	if e.callbacks.OnScrollBegin != nil {
		e.callbacks.OnScrollBegin()
	}
}

func (e *Engine) dragTo(ev GestureEvent) {
	raw := e.axisTranslation(ev)
	delta := raw - e.drag.lastTranslation
	e.drag.lastTranslation = raw
	if delta == 0 || !isFinite(delta) {
		return
	}
	e.setProgress(e.progress + e.cfg.Mode.dragFactor()*delta/e.size)
}

// release picks the rest position to settle on. velocity is in progress
// units per second.
func (e *Engine) release(velocity float64) {
	p := e.progress
	target := math.Round(p)

	snapping := e.cfg.EnableSnap || e.cfg.PagingEnabled
	threshold := e.cfg.Snap.VelocityThreshold
	if snapping {
		switch {
		case velocity > threshold:
			target++
		case velocity < -threshold:
			target--
		}
	}
	if e.cfg.PagingEnabled {
		start := e.drag.startProgress
		target = math.Max(start-1, math.Min(start+1, target))
	}

	Logger().Debug("gesture released", "progress", p, "velocity", velocity, "target", target)
	e.settleToLogical(target, true)
}

func (e *Engine) axisTranslation(ev GestureEvent) float64 {
	if e.cfg.Mode.Vertical() {
		return ev.TranslationY
	}
	return ev.TranslationX
}

// axisVelocity converts the release velocity into progress units per second.
func (e *Engine) axisVelocity(ev GestureEvent) float64 {
	v := ev.VelocityX
	if e.cfg.Mode.Vertical() {
		v = ev.VelocityY
	}
	if !isFinite(v) {
		return 0
	}
	return e.cfg.Mode.dragFactor() * v / e.size
}

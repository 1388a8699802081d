package carousel

// Instance is the imperative control surface of a carousel.
type Instance interface {
	Prev()
	Next()
	GoToIndex(index int, animated bool)
	CurrentIndex() int
}

var _ Instance = Handle{}

// Handle gives a caller control over an engine without access to its state.
// Repeated Next or Prev calls during a transition chain from its target.
type Handle struct {
	e *Engine
}

// Handle returns the control handle of the engine.
func (e *Engine) Handle() Handle {
	return Handle{e: e}
}

// Prev settles on the previous item.
func (h Handle) Prev() {
	h.step(-1)
}

// Next settles on the next item.
func (h Handle) Next() {
	h.step(1)
}

func (h Handle) step(dir int) {
	e := h.e
	if !e.active() {
		return
	}
	from := e.nearest(e.settleBase())
	if !e.cfg.Loop && (from+dir < 0 || from+dir > e.cfg.ItemCount-1) {
		return
	}
	e.SettleTo(from+dir, true)
}

// GoToIndex settles on index. Without loop an out-of-range index is clamped;
// with loop it wraps.
func (h Handle) GoToIndex(index int, animated bool) {
	h.e.SettleTo(index, animated)
}

// CurrentIndex returns the current index. It never blocks.
func (h Handle) CurrentIndex() int {
	return h.e.CurrentIndex()
}

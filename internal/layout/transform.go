// Package layout computes per-item transforms from an item's offset relative
// to the carousel's progress. Every strategy is a pure function of its inputs.
package layout

import "math"

// zStep converts one unit of relative offset into z-index steps, so that
// fractional offsets still order deterministically.
const zStep = 100

// Transform describes how a single item is placed for the current frame.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64 // (0, 1]
	RotateZDeg float64
	Opacity    float64 // [0, 1], 0 means hidden
	ZIndex     int     // higher renders on top
}

// Identity returns the transform of an item resting at the centre.
func Identity() Transform {
	return Transform{Scale: 1, Opacity: 1}
}

// Hidden reports whether the item should not be drawn at all.
func (t Transform) Hidden() bool {
	return t.Opacity <= 0
}

// Strategy computes transforms for one layout mode.
type Strategy interface {
	// TransformFor returns the transform of an item whose logical position
	// minus the current progress is relativeOffset. containerSize is the
	// length of one item step along the scroll axis.
	TransformFor(relativeOffset, containerSize float64) Transform

	// WrapStart returns the lower bound of the relative offset range
	// [start, start+itemCount) that looped items are projected into.
	WrapStart(itemCount int) float64
}

// InWindow reports whether an item at relativeOffset falls inside a window
// of windowSize items centred on the current progress. A windowSize of 0
// means unbounded.
func InWindow(relativeOffset float64, windowSize int) bool {
	if windowSize <= 0 {
		return true
	}
	return math.Abs(relativeOffset) <= float64(windowSize)/2
}

// along places distance on the scroll axis.
func (t *Transform) along(vertical bool, distance float64) {
	if vertical {
		t.TranslateY = distance
		return
	}
	t.TranslateX = distance
}

func centredWrapStart(itemCount int) float64 {
	return -float64(itemCount) / 2
}

func distanceZIndex(relativeOffset float64) int {
	return -int(math.Round(math.Abs(relativeOffset) * zStep))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

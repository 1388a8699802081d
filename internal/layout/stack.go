package layout

import (
	"fmt"
	"math"
	"strings"
)

// Default stack parameters.
const (
	DefaultStackInterval = 30
	DefaultScaleInterval = 0.08
	DefaultRotateZDeg    = 135
	DefaultShowLength    = 3
)

// minStackScale keeps deep stack items at a positive scale.
const minStackScale = 0.05

// passedEpsilon nudges the stack wrap range open on its lower end.
const passedEpsilon = 1e-9

// Direction is the side the front card leaves toward.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection parses "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return DirectionRight, nil
	case "left":
		return DirectionLeft, nil
	default:
		return DirectionRight, fmt.Errorf("unknown snap direction %q", s)
	}
}

func (d Direction) factor() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Stack piles upcoming items behind the front item. Items that were already
// passed leave toward Direction and are hidden once a full step away.
// A leaving item travels MoveSize, or the container size when MoveSize is 0.
type Stack struct {
	Interval      float64 // translate per step behind the front item
	ScaleInterval float64 // scale lost per step behind the front item
	RotateZDeg    float64 // rotation of the front item once fully swiped away
	Direction     Direction
	ShowLength    int // items visible in the pile, 0 for all
	MoveSize      float64
}

// TransformFor implements Strategy.
func (s Stack) TransformFor(relativeOffset, containerSize float64) Transform {
	dir := s.Direction.factor()
	move := s.MoveSize
	if move <= 0 {
		move = containerSize
	}

	t := Identity()
	t.ZIndex = -int(math.Round(relativeOffset * zStep))

	switch {
	case relativeOffset <= -1:
		t.TranslateX = dir * move
		t.RotateZDeg = dir * s.RotateZDeg
		t.Opacity = 0
	case relativeOffset < 0:
		gone := -relativeOffset
		t.TranslateX = dir * gone * move
		t.RotateZDeg = dir * s.RotateZDeg * gone
		t.Opacity = 1 - gone
	default:
		t.TranslateX = dir * s.Interval * relativeOffset
		t.Scale = math.Max(1-s.ScaleInterval*relativeOffset, minStackScale)
		t.Opacity = s.pileOpacity(relativeOffset)
	}
	return t
}

// pileOpacity fades the item entering the back of the pile.
func (s Stack) pileOpacity(relativeOffset float64) float64 {
	if s.ShowLength <= 0 {
		return 1
	}
	last := float64(s.ShowLength - 1)
	if relativeOffset <= last {
		return 1
	}
	return math.Max(0, 1-(relativeOffset-last))
}

// WrapStart implements Strategy. Looped items wrap to the back of the pile
// as soon as they are a full step past the front, so the range is
// effectively (-1, itemCount-1].
func (Stack) WrapStart(int) float64 {
	return -1 + passedEpsilon
}

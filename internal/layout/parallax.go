package layout

import "math"

// Default parallax parameters.
const (
	DefaultParallaxOffset = 100
	DefaultParallaxScale  = 0.8
)

// Parallax shrinks neighbouring items and pulls them toward the centre so
// they peek into the viewport.
type Parallax struct {
	Vertical bool
	Offset   float64 // extra shift applied to the immediate neighbours
	Scale    float64 // scale of an item one step away, in (0, 1]
}

// TransformFor implements Strategy.
func (p Parallax) TransformFor(relativeOffset, containerSize float64) Transform {
	k := math.Min(math.Abs(relativeOffset), 1)

	t := Identity()
	t.Scale = 1 - (1-p.Scale)*k
	shift := -p.Offset * k * sign(relativeOffset)
	t.along(p.Vertical, relativeOffset*containerSize+shift)
	t.ZIndex = distanceZIndex(relativeOffset)
	return t
}

// WrapStart implements Strategy.
func (Parallax) WrapStart(itemCount int) float64 {
	return centredWrapStart(itemCount)
}

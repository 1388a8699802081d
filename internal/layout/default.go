package layout

// Default lays items side by side, one container length apart.
type Default struct {
	Vertical bool
}

// TransformFor implements Strategy.
func (d Default) TransformFor(relativeOffset, containerSize float64) Transform {
	t := Identity()
	t.along(d.Vertical, relativeOffset*containerSize)
	t.ZIndex = distanceZIndex(relativeOffset)
	return t
}

// WrapStart implements Strategy.
func (Default) WrapStart(itemCount int) float64 {
	return centredWrapStart(itemCount)
}

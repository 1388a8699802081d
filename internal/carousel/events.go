package carousel

// Callbacks are invoked synchronously from the engine's frame loop, after the
// engine state they describe is fully applied. Nil callbacks are skipped.
type Callbacks struct {
	// OnSnapToItem fires when the current index changes.
	OnSnapToItem func(index int)
	// OnScrollBegin fires once when a drag starts.
	OnScrollBegin func()
	// OnScrollEnd fires when the carousel comes to rest after a drag or an
	// animated transition.
	OnScrollEnd func(previous, current int)
	// OnProgressChange fires on every progress update. offset is progress
	// multiplied by the container size, absolute is progress itself.
	OnProgressChange func(offset, absolute float64)
}

// SnapChange is emitted when the current index changes.
type SnapChange struct {
	Previous int
	Index    int
}

// ProgressChange is emitted on every progress update.
type ProgressChange struct {
	Offset   float64
	Absolute float64
}

// ScrollEnd is emitted when the carousel comes to rest.
type ScrollEnd struct {
	Previous int
	Current  int
}

// PhaseChange is emitted when the interaction phase changes.
type PhaseChange struct {
	Previous Phase
	Current  Phase
}

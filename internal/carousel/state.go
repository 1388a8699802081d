package carousel

// Phase is the interaction phase of the engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSettling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDragging:
		return "Dragging"
	case PhaseSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// State is a read-only snapshot of the engine.
type State struct {
	Progress      float64
	CurrentIndex  int
	GestureActive bool
	AutoPlaying   bool
	Phase         Phase
}

// AtRest reports whether no gesture or transition is in progress.
func (s State) AtRest() bool {
	return s.Phase == PhaseIdle
}

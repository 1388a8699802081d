package carousel

const eventBufferSize = 16

// Subscription delivers engine events over channels, for observers living
// outside the frame loop. Sends never block: events are dropped when a
// buffer is full.
type Subscription struct {
	SnapChanged     <-chan SnapChange
	ProgressChanged <-chan ProgressChange
	ScrollEnded     <-chan ScrollEnd
	PhaseChanged    <-chan PhaseChange
	Done            <-chan struct{}

	snapCh     chan SnapChange
	progressCh chan ProgressChange
	scrollCh   chan ScrollEnd
	phaseCh    chan PhaseChange
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		snapCh:     make(chan SnapChange, eventBufferSize),
		progressCh: make(chan ProgressChange, eventBufferSize),
		scrollCh:   make(chan ScrollEnd, eventBufferSize),
		phaseCh:    make(chan PhaseChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.SnapChanged = s.snapCh
	s.ProgressChanged = s.progressCh
	s.ScrollEnded = s.scrollCh
	s.PhaseChanged = s.phaseCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendSnap(e SnapChange) {
	select {
	case s.snapCh <- e:
	default:
	}
}

func (s *Subscription) sendProgress(e ProgressChange) {
	select {
	case s.progressCh <- e:
	default:
	}
}

func (s *Subscription) sendScrollEnd(e ScrollEnd) {
	select {
	case s.scrollCh <- e:
	default:
	}
}

func (s *Subscription) sendPhase(e PhaseChange) {
	select {
	case s.phaseCh <- e:
	default:
	}
}

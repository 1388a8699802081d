package carousel

import "time"

// autoplayState is Running when running is set, Stopped otherwise. A running
// scheduler is paused while the engine is not at rest.
type autoplayState struct {
	running bool
	elapsed time.Duration
}

// StartAutoPlay starts timer-driven advancing. The first advance happens one
// interval after the engine is next at rest. The running state is kept in
// Config, so it survives Reconfigure.
func (e *Engine) StartAutoPlay() {
	if e.closed || e.autoplay.running {
		return
	}
	if e.cfg.AutoPlay.Interval <= 0 {
		e.cfg.AutoPlay.Interval = DefaultAutoPlayInterval
	}
	e.autoplay = autoplayState{running: true}
	e.cfg.AutoPlay.Enabled = true
	Logger().Debug("autoplay started", "interval", e.cfg.AutoPlay.Interval)
}

// StopAutoPlay stops timer-driven advancing. An in-flight transition is left
// to finish.
func (e *Engine) StopAutoPlay() {
	if !e.autoplay.running {
		return
	}
	e.autoplay = autoplayState{}
	e.cfg.AutoPlay.Enabled = false
	Logger().Debug("autoplay stopped")
}

// SetAutoPlayReverse sets the autoplay direction.
func (e *Engine) SetAutoPlayReverse(reverse bool) {
	e.cfg.AutoPlay.Reverse = reverse
}

// AutoPlaying reports whether the scheduler is running, paused or not.
func (e *Engine) AutoPlaying() bool {
	return e.autoplay.running
}

// AutoPlayPaused reports whether a running scheduler is currently held back
// by a gesture or a transition.
func (e *Engine) AutoPlayPaused() bool {
	return e.autoplay.running && (e.phase != PhaseIdle || e.transition != nil)
}

func (e *Engine) tickAutoPlay(dt time.Duration) {
	if !e.autoplay.running || e.phase != PhaseIdle {
		return
	}
	e.autoplay.elapsed += dt
	if e.autoplay.elapsed < e.cfg.AutoPlay.Interval {
		return
	}
	e.autoplay.elapsed = 0

	if e.cfg.ItemCount <= 1 {
		return
	}
	step := 1
	if e.cfg.AutoPlay.Reverse {
		step = -1
	}
	Logger().Debug("autoplay tick", "index", e.index, "step", step)
	e.SettleTo(e.index+step, true)
}

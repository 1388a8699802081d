package carouselview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// velocityWindow is how far back release velocity looks.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	col, row int
	at       time.Time
}

// tracker turns mouse cell positions into cumulative translation and a
// release velocity, both in points.
type tracker struct {
	active  bool
	origin  sample
	samples []sample
}

func (t *tracker) begin(s sample) {
	t.active = true
	t.origin = s
	t.samples = append(t.samples[:0], s)
}

func (t *tracker) add(s sample) {
	t.samples = append(t.samples, s)
	cutoff := s.at.Add(-velocityWindow)
	drop := 0
	for drop < len(t.samples)-1 && t.samples[drop].at.Before(cutoff) {
		drop++
	}
	t.samples = t.samples[drop:]
}

func (t *tracker) reset() {
	t.active = false
	t.samples = t.samples[:0]
}

func (t tracker) last() sample {
	if len(t.samples) == 0 {
		return t.origin
	}
	return t.samples[len(t.samples)-1]
}

func (t tracker) translation() (x, y float64) {
	last := t.last()
	return layout.ToPoints(last.col-t.origin.col, last.row-t.origin.row)
}

// velocity is the average speed across the samples inside the window, in
// points per second.
func (t tracker) velocity() (vx, vy float64) {
	if len(t.samples) < 2 {
		return 0, 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	x, y := layout.ToPoints(last.col-first.col, last.row-first.row)
	return x / dt, y / dt
}

// handleMouse maps a left-button drag onto the gesture protocol and the
// wheel onto Next and Prev. Coordinates are relative to the view.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := sample{col: msg.X, row: msg.Y, at: m.now()}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !m.contains(msg.X, msg.Y) {
				return nil
			}
			m.drag.begin(s)
			m.engine.HandleGesture(carousel.GestureEvent{State: carousel.GestureBegan})
			return nil
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return m.Next()
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return m.Prev()
		}

	case tea.MouseActionMotion:
		if !m.drag.active {
			return nil
		}
		m.drag.add(s)
		x, y := m.drag.translation()
		m.engine.HandleGesture(carousel.GestureEvent{
			TranslationX: x,
			TranslationY: y,
			State:        carousel.GestureChanged,
		})

	case tea.MouseActionRelease:
		if !m.drag.active {
			return nil
		}
		m.drag.add(s)
		x, y := m.drag.translation()
		vx, vy := m.drag.velocity()
		m.drag.reset()
		m.engine.HandleGesture(carousel.GestureEvent{
			TranslationX: x,
			TranslationY: y,
			VelocityX:    vx,
			VelocityY:    vy,
			State:        carousel.GestureEnded,
		})
		return m.settle()
	}
	return nil
}

func (m Model) contains(col, row int) bool {
	w, h := m.Size()
	return col >= 0 && col < w && row >= 0 && row < h
}

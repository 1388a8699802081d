package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
)

// handleKey routes a key press: popups first, then an active drag, then the
// key map.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	key := msg.String()
	if key == "esc" && m.Carousel.Dragging() {
		return m, m.Carousel.CancelDrag()
	}

	switch action := m.Keys.Resolve(key); action {
	case keymap.ActionQuit:
		m.SavePreferences()
		return m, tea.Quit

	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp()

	case keymap.ActionGoTo:
		count := m.Carousel.Engine().Config().ItemCount
		if count == 0 {
			return m, nil
		}
		return m, m.Popups.ShowGoTo(count, m.Carousel.Engine().CurrentIndex())

	case keymap.ActionPrev, keymap.ActionNext, keymap.ActionFirst, keymap.ActionLast:
		return m, m.navigate(action)

	case keymap.ActionToggleAutoPlay:
		return m, m.Carousel.ToggleAutoPlay()

	case keymap.ActionReverseAutoPlay:
		m.Carousel.ReverseAutoPlay()
		m.SavePreferences()
		return m, nil

	case keymap.ActionCycleMode:
		return m.cycleMode()

	case keymap.ActionToggleAnimation:
		m.Carousel.SetAnimated(!m.Carousel.Animated())
		m.SavePreferences()
		if m.Carousel.Animated() {
			return m, m.notify("Animation on")
		}
		return m, m.notify("Animation off")

	case keymap.ActionClearHistory:
		if m.StateMgr == nil {
			return m, m.notify("Visit history is not kept")
		}
		return m, m.Popups.ShowConfirm("Clear history", "Forget every recorded visit?", clearHistoryRequest{})
	}
	return m, nil
}

// navigate runs a navigation action. Instant moves never open a scroll
// session, so their visit is recorded here.
func (m *Model) navigate(action keymap.Action) tea.Cmd {
	before := m.Carousel.Engine().CurrentIndex()

	var cmd tea.Cmd
	switch action {
	case keymap.ActionPrev:
		cmd = m.Carousel.Prev()
	case keymap.ActionNext:
		cmd = m.Carousel.Next()
	case keymap.ActionFirst:
		cmd = m.Carousel.First()
	case keymap.ActionLast:
		cmd = m.Carousel.Last()
	}

	return tea.Batch(cmd, m.afterInstantMove(before))
}

// GoTo jumps to index, as the go-to prompt does.
func (m *Model) GoTo(index int) tea.Cmd {
	before := m.Carousel.Engine().CurrentIndex()
	cmd := m.Carousel.GoTo(index)
	return tea.Batch(cmd, m.afterInstantMove(before))
}

func (m *Model) afterInstantMove(before int) tea.Cmd {
	e := m.Carousel.Engine()
	if _, inFlight := e.InFlight(); inFlight || e.CurrentIndex() == before {
		return nil
	}
	return recordVisitCmd(m.StateMgr, e.CurrentIndex())
}

// cycleMode switches to the next mode preset, keeping the current index.
func (m Model) cycleMode() (tea.Model, tea.Cmd) {
	next := (m.preset + 1) % len(Presets)
	p := Presets[next]

	w, h := m.Carousel.StepSize()
	if err := m.Carousel.SetMode(p.Mode(w, h, m.stack)); err != nil {
		return m, m.notify(errmsg.Format(errmsg.OpReconfigure, err))
	}
	m.preset = next
	m.SavePreferences()
	return m, m.notify("Layout: " + p.Name)
}

// notify shows a transient message in the status line.
func (m *Model) notify(message string) tea.Cmd {
	m.nextNotifyID++
	m.notification = &Notification{ID: m.nextNotifyID, Message: message}
	return NotificationClearCmd(m.nextNotifyID)
}

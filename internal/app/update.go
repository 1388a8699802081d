package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/popupctl"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
	"github.com/llehouerou/carousel/internal/ui/confirm"
	"github.com/llehouerou/carousel/internal/ui/gotoprompt"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.Popups.ActivePopup() != popupctl.None {
			return m, nil
		}
		msg.Y -= ui.HeaderHeight
		var cmd tea.Cmd
		m.Carousel, cmd = m.Carousel.Update(msg)
		return m, cmd

	case carouselview.FrameMsg:
		var cmd tea.Cmd
		m.Carousel, cmd = m.Carousel.Update(msg)
		return m, cmd

	case action.Msg:
		return m.handleAction(msg)

	case SnapChangedMsg:
		slog.Debug("current item changed", "from", msg.Previous, "to", msg.Index)
		return m, m.WatchEngineEvents()

	case ScrollEndedMsg:
		cmds := []tea.Cmd{m.WatchEngineEvents()}
		if msg.Current != msg.Previous {
			cmds = append(cmds, recordVisitCmd(m.StateMgr, msg.Current))
		}
		return m, tea.Batch(cmds...)

	case VisitRecordedMsg:
		if msg.Err != nil {
			slog.Warn("visit not recorded", "index", msg.Stats.Index, "err", msg.Err)
			return m, m.notify(errmsg.Format(errmsg.OpStateSave, msg.Err))
		}
		m.visits = msg.Stats
		m.hasVisits = true
		return m, nil

	case HistoryClearedMsg:
		if msg.Err != nil {
			slog.Warn("visit history not cleared", "err", msg.Err)
			return m, m.notify(errmsg.Format(errmsg.OpStateSave, msg.Err))
		}
		m.visits = state.VisitStats{}
		m.hasVisits = false
		return m, m.notify("Visit history cleared")

	case EngineClosedMsg:
		return m, nil

	case NotificationClearMsg:
		if m.notification != nil && m.notification.ID == msg.ID {
			m.notification = nil
		}
		return m, nil
	}

	// Anything else (cursor blinks) belongs to the active popup.
	return m, m.Popups.Update(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width, m.Height = msg.Width, msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)

	cmd, err := m.Carousel.Resize(msg.Width, layout.ViewHeight(msg.Height))
	if err != nil {
		m.Popups.ShowError(errmsg.Format(errmsg.OpResize, err))
	}
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil

	case gotoprompt.Result:
		m.Popups.Hide(popupctl.GoTo)
		if a.Canceled {
			return m, nil
		}
		return m, m.GoTo(a.Index)

	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		if _, ok := a.Context.(clearHistoryRequest); ok && a.Confirmed {
			return m, clearVisitsCmd(m.StateMgr)
		}
	}
	return m, nil
}

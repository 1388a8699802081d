package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/state"
)

// SnapChangedMsg is sent when the engine's current index changes.
type SnapChangedMsg struct {
	Previous int
	Index    int
}

// ScrollEndedMsg is sent when the carousel comes to rest after a drag or an
// animated transition.
type ScrollEndedMsg struct {
	Previous int
	Current  int
}

// EngineClosedMsg is sent once the engine subscription is closed.
type EngineClosedMsg struct{}

// VisitRecordedMsg carries the visit stats of the item that came to rest.
type VisitRecordedMsg struct {
	Stats state.VisitStats
	Err   error
}

// HistoryClearedMsg is sent once the visit log has been emptied.
type HistoryClearedMsg struct {
	Err error
}

// clearHistoryRequest tags the confirmation guarding ClearVisits.
type clearHistoryRequest struct{}

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

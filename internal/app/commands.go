package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/state"
)

// stateTimeout bounds a single state database call.
const stateTimeout = 2 * time.Second

// WatchEngineEvents returns a command that waits for the next engine event.
// It listens on the subscription channels and converts events to tea.Msg;
// each handled event re-arms the watch.
func (m Model) WatchEngineEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.SnapChanged:
			return SnapChangedMsg{Previous: e.Previous, Index: e.Index}
		case e := <-sub.ScrollEnded:
			return ScrollEndedMsg{Previous: e.Previous, Current: e.Current}
		case <-sub.Done:
			return EngineClosedMsg{}
		}
	}
}

// recordVisitCmd logs that index came to rest.
func recordVisitCmd(mgr state.Interface, index int) tea.Cmd {
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
		defer cancel()
		stats, err := mgr.RecordVisit(ctx, index, time.Now())
		return VisitRecordedMsg{Stats: stats, Err: err}
	}
}

// loadVisitsCmd reads the stats of index without recording a visit.
func loadVisitsCmd(mgr state.Interface, index int) tea.Cmd {
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
		defer cancel()
		stats, err := mgr.VisitStats(ctx, index)
		return VisitRecordedMsg{Stats: stats, Err: err}
	}
}

// resetVisitsCmd empties a visit log recorded for another item set, then
// reports the (empty) stats of index.
func resetVisitsCmd(mgr state.Interface, index int) tea.Cmd {
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
		defer cancel()
		if err := mgr.ClearVisits(ctx); err != nil {
			return VisitRecordedMsg{Stats: state.VisitStats{Index: index}, Err: err}
		}
		stats, err := mgr.VisitStats(ctx, index)
		return VisitRecordedMsg{Stats: stats, Err: err}
	}
}

// clearVisitsCmd empties the visit log.
func clearVisitsCmd(mgr state.Interface) tea.Cmd {
	if mgr == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), stateTimeout)
		defer cancel()
		return HistoryClearedMsg{Err: mgr.ClearVisits(ctx)}
	}
}

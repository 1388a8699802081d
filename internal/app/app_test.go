package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/app/popupctl"
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui/gotoprompt"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func testConfig() *config.Config {
	instant := 0
	return &config.Config{
		Items:     8,
		Animation: config.AnimationConfig{DurationMS: &instant},
	}
}

func newTestApp(t *testing.T, cfg *config.Config, mgr state.Interface) Model {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	m, err := New(cfg, mgr)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key(s))
	return next.(Model), cmd
}

// collect runs cmd and flattens batches. Commands that do not answer
// quickly (ticks, idle watches) are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestApp_View(t *testing.T) {
	m := newTestApp(t, nil, nil)

	out := testutil.StripANSI(m.View())
	lines := testutil.SplitLines(out)
	require.Len(t, lines, 24)
	assert.Contains(t, lines[0], "carousel")
	assert.True(t, testutil.ContainsLine(out, "Item 1"))
	assert.Contains(t, lines[23], "1st of 8")
}

func TestApp_ViewBeforeSize(t *testing.T) {
	m, err := New(testConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	assert.Empty(t, m.View())
}

func TestApp_NextEmitsSnap(t *testing.T) {
	mock := state.NewMock()
	m := newTestApp(t, nil, mock)
	watch := m.WatchEngineEvents()

	m, cmd := press(t, m, "l")
	assert.Equal(t, 1, m.Carousel.Engine().CurrentIndex())

	visit, ok := findMsg[VisitRecordedMsg](collect(cmd))
	require.True(t, ok, "an instant move records a visit")
	assert.Equal(t, 1, visit.Stats.Index)
	assert.Equal(t, 1, visit.Stats.Count)

	snap, ok := watch().(SnapChangedMsg)
	require.True(t, ok)
	assert.Equal(t, SnapChangedMsg{Previous: 0, Index: 1}, snap)

	_, cmd = m.Update(snap)
	assert.NotNil(t, cmd, "the watch is re-armed")
	assert.Empty(t, mock.Saved(), "the position is never saved")
}

func TestApp_VisitNote(t *testing.T) {
	m := newTestApp(t, nil, state.NewMock())

	m, cmd := press(t, m, "l")
	visit, ok := findMsg[VisitRecordedMsg](collect(cmd))
	require.True(t, ok)

	next, _ := m.Update(visit)
	m = next.(Model)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "2nd of 8  seen once")
}

func TestApp_ScrollEndedRecordsVisit(t *testing.T) {
	mock := state.NewMock()
	m := newTestApp(t, nil, mock)

	_, cmd := m.Update(ScrollEndedMsg{Previous: 0, Current: 3})
	visit, ok := findMsg[VisitRecordedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, 3, visit.Stats.Index)

	_, cmd = m.Update(ScrollEndedMsg{Previous: 2, Current: 2})
	_, ok = findMsg[VisitRecordedMsg](collect(cmd))
	assert.False(t, ok, "a scroll back to the same item is not a visit")
}

func TestApp_CycleMode(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, "l")

	m, _ = press(t, m, "m")
	assert.Equal(t, "parallax", m.Preset().Name)
	assert.Equal(t, carousel.KindParallax, m.Carousel.Engine().Config().Mode.Kind())
	assert.Equal(t, 1, m.Carousel.Engine().CurrentIndex())
	assert.Contains(t, testutil.StripANSI(m.View()), "Layout: parallax")

	for range len(Presets) - 1 {
		m, _ = press(t, m, "m")
	}
	assert.Equal(t, "horizontal", m.Preset().Name)
}

func TestApp_CycleModeReachesVertical(t *testing.T) {
	m := newTestApp(t, nil, nil)
	for range 3 {
		m, _ = press(t, m, "m")
	}
	assert.Equal(t, "vertical", m.Preset().Name)
	assert.True(t, m.Carousel.Engine().Config().Mode.Vertical())
}

func TestApp_Help(t *testing.T) {
	m := newTestApp(t, nil, nil)

	m, _ = press(t, m, "?")
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())
	assert.Contains(t, testutil.StripANSI(m.View()), "Next item")

	m, cmd := press(t, m, "esc")
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	next, _ := m.Update(msgs[0])
	m = next.(Model)
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestApp_KeysBlockedByPopup(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, "?")

	m, _ = press(t, m, "l")
	assert.Equal(t, 0, m.Carousel.Engine().CurrentIndex())
}

func TestApp_GoTo(t *testing.T) {
	m := newTestApp(t, nil, state.NewMock())

	m, _ = press(t, m, ":")
	require.Equal(t, popupctl.GoTo, m.Popups.ActivePopup())

	next, cmd := m.Update(gotoprompt.ActionMsg(gotoprompt.Result{Index: 5}))
	m = next.(Model)
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, 5, m.Carousel.Engine().CurrentIndex())

	visit, ok := findMsg[VisitRecordedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, 5, visit.Stats.Index)
}

func TestApp_GoToCanceled(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, ":")

	next, _ := m.Update(gotoprompt.ActionMsg(gotoprompt.Result{Canceled: true}))
	m = next.(Model)
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, 0, m.Carousel.Engine().CurrentIndex())
}

func TestApp_AutoPlayToggle(t *testing.T) {
	mock := state.NewMock()
	m := newTestApp(t, nil, mock)

	m, cmd := press(t, m, " ")
	assert.True(t, m.Carousel.Engine().AutoPlaying())
	assert.NotNil(t, cmd, "autoplay needs frames")
	assert.Contains(t, testutil.StripANSI(m.View()), "▶")

	m, _ = press(t, m, "r")
	assert.True(t, m.Carousel.Engine().Config().AutoPlay.Reverse)
	assert.Contains(t, testutil.StripANSI(m.View()), "◀")

	saved := mock.Saved()
	require.NotEmpty(t, saved)
	assert.True(t, saved[len(saved)-1].Reverse)

	m, _ = press(t, m, " ")
	assert.False(t, m.Carousel.Engine().AutoPlaying())
}

func TestApp_ToggleAnimation(t *testing.T) {
	m := newTestApp(t, nil, nil)
	require.True(t, m.Carousel.Animated())

	m, _ = press(t, m, "a")
	assert.False(t, m.Carousel.Animated())
	assert.Contains(t, testutil.StripANSI(m.View()), "Animation off")

	next, _ := m.Update(NotificationClearMsg{ID: m.nextNotifyID})
	m = next.(Model)
	assert.Contains(t, testutil.StripANSI(m.View()), "1st of 8")
}

func TestApp_StaleNotificationClear(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, "a")
	m, _ = press(t, m, "a")

	next, _ := m.Update(NotificationClearMsg{ID: 1})
	m = next.(Model)
	assert.Contains(t, testutil.StripANSI(m.View()), "Animation on")
}

func TestApp_RestorePreferences(t *testing.T) {
	tests := []struct {
		name       string
		prefs      state.Preferences
		mode       string
		wantPreset string
		wantAnim   bool
	}{
		{
			name:       "saved layout",
			prefs:      state.Preferences{Mode: "stack", ItemCount: 8},
			wantPreset: "stack",
			wantAnim:   false,
		},
		{
			name:       "vertical layout",
			prefs:      state.Preferences{Mode: "vertical-parallax", ItemCount: 8, Animated: true},
			wantPreset: "vertical-parallax",
			wantAnim:   true,
		},
		{
			name:       "configured mode wins",
			prefs:      state.Preferences{Mode: "stack", ItemCount: 8, Animated: true},
			mode:       "parallax",
			wantPreset: "parallax",
			wantAnim:   true,
		},
		{
			name:       "unknown mode",
			prefs:      state.Preferences{Mode: "spiral", ItemCount: 8, Animated: true},
			wantPreset: "horizontal",
			wantAnim:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := state.NewMock()
			p := tt.prefs
			mock.SetPreferences(&p)
			cfg := testConfig()
			cfg.Mode = tt.mode

			m := newTestApp(t, cfg, mock)
			assert.Equal(t, 0, m.Carousel.Engine().CurrentIndex())
			assert.Equal(t, tt.wantPreset, m.Preset().Name)
			assert.Equal(t, tt.wantAnim, m.Carousel.Animated())
		})
	}
}

func TestApp_RestoreReverse(t *testing.T) {
	mock := state.NewMock()
	mock.SetPreferences(&state.Preferences{ItemCount: 8, Reverse: true, Animated: true})

	m := newTestApp(t, nil, mock)
	assert.True(t, m.Carousel.Engine().Config().AutoPlay.Reverse)
	assert.False(t, m.Carousel.Engine().AutoPlaying(), "autoplay follows the config only")
}

func TestApp_StaleVisitsReset(t *testing.T) {
	mock := state.NewMock()
	mock.SetPreferences(&state.Preferences{ItemCount: 5, Animated: true})
	_, err := mock.RecordVisit(t.Context(), 0, time.Now())
	require.NoError(t, err)

	m := newTestApp(t, nil, mock)
	visit, ok := findMsg[VisitRecordedMsg](collect(m.Init()))
	require.True(t, ok)
	assert.Zero(t, visit.Stats.Count)

	stats, err := mock.VisitStats(t.Context(), 0)
	require.NoError(t, err)
	assert.Zero(t, stats.Count, "visits of another item set are dropped")
}

func TestApp_InitLoadsVisits(t *testing.T) {
	mock := state.NewMock()
	mock.SetPreferences(&state.Preferences{ItemCount: 8, Animated: true})
	_, err := mock.RecordVisit(t.Context(), 0, time.Now())
	require.NoError(t, err)

	m := newTestApp(t, nil, mock)
	visit, ok := findMsg[VisitRecordedMsg](collect(m.Init()))
	require.True(t, ok)
	assert.Equal(t, 1, visit.Stats.Count)

	next, _ := m.Update(visit)
	m = next.(Model)
	assert.Contains(t, testutil.StripANSI(m.View()), "1st of 8  seen once")
}

func TestApp_WheelScrolls(t *testing.T) {
	m := newTestApp(t, nil, nil)

	next, _ := m.Update(tea.MouseMsg{
		X: 40, Y: 10,
		Button: tea.MouseButtonWheelDown,
		Action: tea.MouseActionPress,
	})
	m = next.(Model)
	assert.Equal(t, 1, m.Carousel.Engine().CurrentIndex())
}

func TestApp_MouseIgnoredUnderPopup(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, "?")

	next, _ := m.Update(tea.MouseMsg{
		X: 40, Y: 10,
		Button: tea.MouseButtonWheelDown,
		Action: tea.MouseActionPress,
	})
	m = next.(Model)
	assert.Equal(t, 0, m.Carousel.Engine().CurrentIndex())
}

func TestApp_Quit(t *testing.T) {
	mock := state.NewMock()
	m := newTestApp(t, nil, mock)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.NotEmpty(t, mock.Saved())
}

func TestApp_WithoutState(t *testing.T) {
	m := newTestApp(t, nil, nil)

	m, cmd := press(t, m, "l")
	assert.Equal(t, 1, m.Carousel.Engine().CurrentIndex())
	_, ok := findMsg[VisitRecordedMsg](collect(cmd))
	assert.False(t, ok)
	assert.Nil(t, loadVisitsCmd(nil, 0))
}

func TestApp_ClearHistory(t *testing.T) {
	mock := state.NewMock()
	m := newTestApp(t, nil, mock)

	m, cmd := press(t, m, "l")
	visit, ok := findMsg[VisitRecordedMsg](collect(cmd))
	require.True(t, ok)
	next, _ := m.Update(visit)
	m = next.(Model)

	m, _ = press(t, m, "X")
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())

	m, cmd = press(t, m, "y")
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	next, cmd = m.Update(msgs[0])
	m = next.(Model)
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())

	cleared, ok := findMsg[HistoryClearedMsg](collect(cmd))
	require.True(t, ok)
	require.NoError(t, cleared.Err)
	next, _ = m.Update(cleared)
	m = next.(Model)

	stats, err := mock.VisitStats(t.Context(), 1)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Visit history cleared")
	assert.NotContains(t, out, "seen once")
}

func TestApp_ClearHistoryDeclined(t *testing.T) {
	m := newTestApp(t, nil, state.NewMock())
	m, _ = press(t, m, "X")

	m, cmd := press(t, m, "n")
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	_, cmd = m.Update(msgs[0])
	assert.Nil(t, cmd)
}

func TestApp_ClearHistoryWithoutState(t *testing.T) {
	m := newTestApp(t, nil, nil)
	m, _ = press(t, m, "X")
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Contains(t, testutil.StripANSI(m.View()), "not kept")
}

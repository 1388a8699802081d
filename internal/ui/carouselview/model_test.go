package carouselview

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/carousel/internal/carousel"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func title(i int) string { return fmt.Sprintf("Item %d", i+1) }

// newTestView returns an 80x20 view over a five-item looping carousel.
func newTestView(t *testing.T, mutate func(*carousel.Config)) (Model, *fakeClock) {
	t.Helper()
	cfg := carousel.DefaultConfig()
	cfg.ItemCount = 5
	cfg.Mode = carousel.HorizontalMode{Width: 100, Height: 100}
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := carousel.New(cfg, carousel.Callbacks{})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(e, title)
	m.SetClock(clock.now)
	_, err = m.Resize(80, 20)
	require.NoError(t, err)
	return m, clock
}

// runFrames feeds frames until the tick chain stops.
func runFrames(t *testing.T, m Model, clock *fakeClock) Model {
	t.Helper()
	for range 500 {
		if !m.ticking {
			return m
		}
		clock.advance(FrameInterval)
		m, _ = m.Update(FrameMsg{ID: m.frameID, Time: clock.now()})
	}
	t.Fatalf("frames never stopped, phase %s", m.engine.Phase())
	return m
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestResize_SetsEngineStep(t *testing.T) {
	m, _ := newTestView(t, nil)

	// card 32x12 cells, step (32+2)*8 points
	assert.Equal(t, 32, m.Card().Width)
	assert.Equal(t, 12, m.Card().Height)
	assert.Equal(t, 272.0, m.engine.ContainerSize())
}

func TestResize_FixedSize(t *testing.T) {
	m, _ := newTestView(t, nil)
	m.SetFixedSize(400, 0)

	_, err := m.Resize(80, 20)
	require.NoError(t, err)

	w, h := m.StepSize()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 208.0, h)
	assert.Equal(t, 400.0, m.engine.ContainerSize())
}

func TestResize_DeferredWhileDragging(t *testing.T) {
	m, _ := newTestView(t, nil)

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	require.True(t, m.Dragging())

	_, err := m.Resize(100, 20)
	require.NoError(t, err)
	assert.Equal(t, 272.0, m.engine.ContainerSize(), "resize waits for rest")

	m, _ = m.Update(mouse(40, 10, tea.MouseActionRelease, tea.MouseButtonNone))
	assert.Equal(t, 336.0, m.engine.ContainerSize())
	assert.False(t, m.pendingResize)
}

func TestNext_AnimatesWithFrames(t *testing.T) {
	m, clock := newTestView(t, nil)

	cmd := m.Next()
	require.NotNil(t, cmd)
	assert.True(t, m.ticking)
	assert.Equal(t, 0, m.engine.CurrentIndex())

	m = runFrames(t, m, clock)
	assert.Equal(t, 1, m.engine.CurrentIndex())
	assert.Equal(t, 1.0, m.engine.Progress())
	assert.False(t, m.ticking)
}

func TestNext_ChainsWhileTicking(t *testing.T) {
	m, clock := newTestView(t, nil)

	require.NotNil(t, m.Next())
	assert.Nil(t, m.Next(), "one tick chain at a time")

	m = runFrames(t, m, clock)
	assert.Equal(t, 2, m.engine.CurrentIndex())
}

func TestFrame_StaleIDIgnored(t *testing.T) {
	m, clock := newTestView(t, nil)
	m.Next()

	clock.advance(FrameInterval)
	m, cmd := m.Update(FrameMsg{ID: m.frameID + 1, Time: clock.now()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, m.engine.Progress())
}

func TestFrame_DeltaIsCapped(t *testing.T) {
	m, clock := newTestView(t, nil)
	m.Next()

	clock.advance(10 * time.Second)
	m, cmd := m.Update(FrameMsg{ID: m.frameID, Time: clock.now()})
	assert.NotNil(t, cmd, "a long stall advances one capped frame")
	assert.Less(t, m.engine.Progress(), 1.0)
}

func TestNavigation_NotAnimated(t *testing.T) {
	m, _ := newTestView(t, nil)
	m.SetAnimated(false)

	assert.Nil(t, m.Next())
	assert.Equal(t, 1, m.engine.CurrentIndex())

	assert.Nil(t, m.Prev())
	assert.Nil(t, m.Prev())
	assert.Equal(t, 4, m.engine.CurrentIndex(), "loop wraps backwards")

	m.First()
	assert.Equal(t, 0, m.engine.CurrentIndex())
	m.Last()
	assert.Equal(t, 4, m.engine.CurrentIndex())
	m.GoTo(2)
	assert.Equal(t, 2, m.engine.CurrentIndex())
}

func TestDrag_FlingMovesOneItem(t *testing.T) {
	m, clock := newTestView(t, nil)

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.advance(50 * time.Millisecond)
	m, _ = m.Update(mouse(30, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.InDelta(t, 80.0/272.0, m.engine.Progress(), 1e-9)

	clock.advance(10 * time.Millisecond)
	m, cmd := m.Update(mouse(30, 10, tea.MouseActionRelease, tea.MouseButtonNone))
	require.NotNil(t, cmd)
	assert.False(t, m.Dragging())

	m = runFrames(t, m, clock)
	assert.Equal(t, 1, m.engine.CurrentIndex())
}

func TestDrag_SlowReleaseSettlesBack(t *testing.T) {
	m, clock := newTestView(t, nil)

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.advance(50 * time.Millisecond)
	m, _ = m.Update(mouse(30, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	clock.advance(time.Second)
	m, _ = m.Update(mouse(30, 10, tea.MouseActionRelease, tea.MouseButtonNone))

	m = runFrames(t, m, clock)
	assert.Equal(t, 0, m.engine.CurrentIndex())
	assert.Equal(t, 0.0, m.engine.Progress())
}

func TestDrag_PressOutsideIgnored(t *testing.T) {
	m, _ := newTestView(t, nil)

	m, _ = m.Update(mouse(90, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.False(t, m.Dragging())

	m, _ = m.Update(mouse(30, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.Equal(t, 0.0, m.engine.Progress())
}

func TestDrag_Cancel(t *testing.T) {
	m, clock := newTestView(t, nil)

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = m.Update(mouse(20, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	require.InDelta(t, 160.0/272.0, m.engine.Progress(), 1e-9)

	cmd := m.CancelDrag()
	require.NotNil(t, cmd)
	assert.False(t, m.Dragging())

	m = runFrames(t, m, clock)
	assert.Equal(t, 1, m.engine.CurrentIndex(), "settles on the nearest item")
	assert.Nil(t, m.CancelDrag())
}

func TestWheel(t *testing.T) {
	m, clock := newTestView(t, nil)

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonWheelDown))
	m = runFrames(t, m, clock)
	assert.Equal(t, 1, m.engine.CurrentIndex())

	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonWheelUp))
	m, _ = m.Update(mouse(40, 10, tea.MouseActionPress, tea.MouseButtonWheelUp))
	m = runFrames(t, m, clock)
	assert.Equal(t, 4, m.engine.CurrentIndex())
}

func TestAutoPlay_TicksUntilStopped(t *testing.T) {
	m, clock := newTestView(t, nil)

	require.NotNil(t, m.ToggleAutoPlay())
	for range 100 {
		clock.advance(FrameInterval)
		m, _ = m.Update(FrameMsg{ID: m.frameID, Time: clock.now()})
	}
	assert.Equal(t, 1, m.engine.CurrentIndex())
	assert.True(t, m.ticking)

	m.ReverseAutoPlay()
	assert.True(t, m.engine.Config().AutoPlay.Reverse)

	m.ToggleAutoPlay()
	m = runFrames(t, m, clock)
	assert.False(t, m.engine.AutoPlaying())
}

func TestSetMode_KeepsIndex(t *testing.T) {
	m, _ := newTestView(t, nil)
	m.SetAnimated(false)
	m.GoTo(3)

	w, h := m.StepSize()
	require.NoError(t, m.SetMode(carousel.StackMode{Width: w, Height: h, Animation: carousel.DefaultStackAnimation()}))
	assert.Equal(t, carousel.KindStack, m.engine.Config().Mode.Kind())
	assert.Equal(t, 3, m.engine.CurrentIndex())
}

func TestTracker_Velocity(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tr tracker
	tr.begin(sample{col: 10, row: 5, at: t0})
	tr.add(sample{col: 14, row: 5, at: t0.Add(20 * time.Millisecond)})
	tr.add(sample{col: 20, row: 4, at: t0.Add(50 * time.Millisecond)})

	x, y := tr.translation()
	assert.Equal(t, 80.0, x)
	assert.Equal(t, -16.0, y)

	vx, vy := tr.velocity()
	assert.InDelta(t, 1600.0, vx, 1e-6)
	assert.InDelta(t, -320.0, vy, 1e-6)

	tr.add(sample{col: 20, row: 4, at: t0.Add(500 * time.Millisecond)})
	vx, vy = tr.velocity()
	assert.Zero(t, vx, "samples older than the window are dropped")
	assert.Zero(t, vy)
}

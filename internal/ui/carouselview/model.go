// Package carouselview renders a carousel engine as a bubbletea component.
//
// The model owns the frame loop: while a transition is in flight or autoplay
// runs it schedules FrameMsg ticks and advances the engine by the measured
// frame delta. Mouse drags are translated into gesture events.
package carouselview

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

const (
	// FrameInterval is the delay between animation frames.
	FrameInterval = 16 * time.Millisecond

	// maxFrameDelta caps the time advanced by one frame, so a stalled
	// terminal does not make transitions jump.
	maxFrameDelta = 100 * time.Millisecond
)

// FrameMsg advances the engine by one frame. Frames whose ID does not match
// the running tick chain are dropped.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// Model is the carousel viewport.
type Model struct {
	ui.Base
	engine *carousel.Engine
	title  func(index int) string

	card           layout.Card
	fixedW, fixedH float64 // step size overrides in points, 0 follows the card
	pendingResize  bool

	animated  bool
	frameID   int
	ticking   bool
	lastFrame time.Time

	drag tracker
	now  func() time.Time
	help help.Model
}

// New creates a view over engine. title names an item for its card.
func New(engine *carousel.Engine, title func(index int) string) Model {
	h := help.New()
	h.ShortSeparator = " · "
	return Model{
		engine:   engine,
		title:    title,
		animated: true,
		now:      time.Now,
		help:     h,
	}
}

// SetClock replaces the clock used to timestamp mouse samples and the first
// frame of a tick chain.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetFixedSize pins the engine step size, in points. A zero side follows
// the card size derived from the terminal.
func (m *Model) SetFixedSize(width, height float64) {
	m.fixedW, m.fixedH = width, height
}

// Engine returns the driven engine.
func (m Model) Engine() *carousel.Engine {
	return m.engine
}

// Card returns the resting card size in cells.
func (m Model) Card() layout.Card {
	return m.card
}

// Animated reports whether keyboard navigation animates.
func (m Model) Animated() bool {
	return m.animated
}

// SetAnimated turns keyboard navigation animation on or off.
func (m *Model) SetAnimated(animated bool) {
	m.animated = animated
}

// StepSize returns the engine container width and height, in points.
func (m Model) StepSize() (width, height float64) {
	width, height = layout.ContainerSize(m.card)
	if m.fixedW > 0 {
		width = m.fixedW
	}
	if m.fixedH > 0 {
		height = m.fixedH
	}
	return width, height
}

// Resize sets the view to width x height cells and resizes the engine. While
// the engine is busy the engine resize is deferred until it comes to rest.
func (m *Model) Resize(width, height int) (tea.Cmd, error) {
	m.SetSize(width, height)
	m.help.Width = width
	m.card = layout.CardSize(width, height)
	if err := m.applyStepSize(); err != nil {
		return nil, err
	}
	return m.ensureTicking(), nil
}

func (m *Model) applyStepSize() error {
	w, h := m.StepSize()
	err := m.engine.SetContainerSize(w, h)
	if errors.Is(err, carousel.ErrNotAtRest) {
		m.pendingResize = true
		return nil
	}
	m.pendingResize = false
	return err
}

// SetMode switches the engine to mode while keeping the current index.
func (m *Model) SetMode(mode carousel.ModeConfig) error {
	cfg := m.engine.Config()
	cfg.Mode = mode
	return m.engine.Reconfigure(cfg)
}

// Next moves to the next item.
func (m *Model) Next() tea.Cmd {
	return m.step(1)
}

// Prev moves to the previous item.
func (m *Model) Prev() tea.Cmd {
	return m.step(-1)
}

func (m *Model) step(dir int) tea.Cmd {
	h := m.engine.Handle()
	switch {
	case !m.animated:
		h.GoToIndex(h.CurrentIndex()+dir, false)
	case dir > 0:
		h.Next()
	default:
		h.Prev()
	}
	return m.settle()
}

// GoTo moves to index.
func (m *Model) GoTo(index int) tea.Cmd {
	m.engine.Handle().GoToIndex(index, m.animated)
	return m.settle()
}

// First moves to the first item.
func (m *Model) First() tea.Cmd {
	return m.GoTo(0)
}

// Last moves to the last item.
func (m *Model) Last() tea.Cmd {
	return m.GoTo(m.engine.Config().ItemCount - 1)
}

// ToggleAutoPlay starts or stops autoplay.
func (m *Model) ToggleAutoPlay() tea.Cmd {
	if m.engine.AutoPlaying() {
		m.engine.StopAutoPlay()
	} else {
		m.engine.StartAutoPlay()
	}
	return m.settle()
}

// ReverseAutoPlay flips the autoplay direction.
func (m *Model) ReverseAutoPlay() {
	m.engine.SetAutoPlayReverse(!m.engine.Config().AutoPlay.Reverse)
}

// Dragging reports whether a mouse drag is in progress.
func (m Model) Dragging() bool {
	return m.drag.active
}

// CancelDrag abandons the current drag; the engine settles on the nearest
// item.
func (m *Model) CancelDrag() tea.Cmd {
	if !m.drag.active {
		return nil
	}
	m.drag.reset()
	m.engine.HandleGesture(carousel.GestureEvent{State: carousel.GestureCancelled})
	return m.settle()
}

// Update handles frames and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m, m.handleFrame(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleFrame(msg FrameMsg) tea.Cmd {
	if !m.ticking || msg.ID != m.frameID {
		return nil
	}
	dt := min(max(msg.Time.Sub(m.lastFrame), 0), maxFrameDelta)
	m.lastFrame = msg.Time
	m.engine.Advance(dt)
	m.flushResize()

	if !m.needsFrames() {
		m.ticking = false
		return nil
	}
	return m.frameCmd()
}

// settle runs after every engine intent: it applies a deferred resize once
// at rest and starts the tick chain when frames are needed.
func (m *Model) settle() tea.Cmd {
	m.flushResize()
	return m.ensureTicking()
}

func (m *Model) flushResize() {
	if !m.pendingResize || !m.engine.State().AtRest() {
		return
	}
	if _, inFlight := m.engine.InFlight(); inFlight {
		return
	}
	if err := m.applyStepSize(); err != nil {
		carousel.Logger().Warn("deferred resize failed", "err", err)
	}
}

func (m Model) needsFrames() bool {
	if _, inFlight := m.engine.InFlight(); inFlight {
		return true
	}
	if m.pendingResize && m.engine.State().AtRest() {
		return true
	}
	return m.engine.AutoPlaying() && m.engine.Phase() == carousel.PhaseIdle
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.needsFrames() {
		return nil
	}
	m.ticking = true
	m.frameID++
	m.lastFrame = m.now()
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	id := m.frameID
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// ShortHelp returns the key hints shown in the status line.
func (m Model) ShortHelp() string {
	return m.help.ShortHelpView(keymap.ShortHelp())
}

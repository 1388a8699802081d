// Package app is the root bubbletea model. It owns the carousel view, the
// popups, saved preferences and the visit log.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app/popupctl"
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Terminal size assumed until the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the root application model containing all state.
type Model struct {
	Carousel carouselview.Model
	Popups   *popupctl.Manager
	Keys     *keymap.Resolver
	StateMgr state.Interface // nil when persistence is disabled

	sub         *carousel.Subscription
	stack       carousel.StackAnimation
	preset      int
	staleVisits bool // the visit log belongs to another item set

	visits       state.VisitStats
	hasVisits    bool
	notification *Notification
	nextNotifyID int64

	Width  int
	Height int
}

// New creates the application model. stateMgr may be nil; when it holds saved
// preferences, the layout, animation and autoplay direction are restored. The
// position always starts at the configured default index.
func New(cfg *config.Config, stateMgr state.Interface) (Model, error) {
	stack, err := cfg.StackAnimation()
	if err != nil {
		return Model{}, err
	}

	var prefs *state.Preferences
	if stateMgr != nil {
		prefs, err = stateMgr.GetPreferences()
		if err != nil {
			slog.Warn(errmsg.Format(errmsg.OpStateLoad, err))
		}
	}

	effective := *cfg
	if prefs != nil {
		if p, ok := presetByName(prefs.Mode); ok && cfg.Mode == "" && !cfg.Vertical {
			effective.Mode = p.Kind.String()
			effective.Vertical = p.Vertical
		}
		if prefs.Reverse {
			effective.AutoPlay.Reverse = true
		}
	}

	w, h := layout.ContainerSize(layout.CardSize(defaultWidth, layout.ViewHeight(defaultHeight)))
	engineCfg, err := effective.ToCarousel(w, h)
	if err != nil {
		return Model{}, err
	}
	engine, err := carousel.New(engineCfg, carousel.Callbacks{})
	if err != nil {
		return Model{}, err
	}

	view := carouselview.New(engine, cfg.Title)
	view.SetFixedSize(cfg.Width, cfg.Height)
	if prefs != nil {
		view.SetAnimated(prefs.Animated)
	}

	return Model{
		Carousel:    view,
		Popups:      popupctl.New(),
		Keys:        keymap.NewResolver(keymap.Bindings),
		StateMgr:    stateMgr,
		sub:         engine.Subscribe(),
		stack:       stack,
		preset:      presetIndex(engineCfg.Mode.Kind(), engineCfg.Mode.Vertical()),
		staleVisits: prefs != nil && prefs.ItemCount != engineCfg.ItemCount,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	index := m.Carousel.Engine().CurrentIndex()
	visits := loadVisitsCmd(m.StateMgr, index)
	if m.staleVisits {
		visits = resetVisitsCmd(m.StateMgr, index)
	}
	return tea.Batch(m.WatchEngineEvents(), visits)
}

// Close stops the engine. The state manager is owned by the caller.
func (m Model) Close() {
	m.Carousel.Engine().Close()
}

// Preset returns the active mode preset.
func (m Model) Preset() ModePreset {
	return Presets[m.preset]
}

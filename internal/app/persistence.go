package app

import (
	"time"

	"github.com/llehouerou/carousel/internal/state"
)

// SavePreferences persists the layout preset, animation toggle and autoplay
// direction. The position is not saved.
func (m *Model) SavePreferences() {
	if m.StateMgr == nil {
		return
	}
	cfg := m.Carousel.Engine().Config()
	m.StateMgr.SavePreferences(state.Preferences{
		Mode:      m.Preset().Name,
		Reverse:   cfg.AutoPlay.Reverse,
		Animated:  m.Carousel.Animated(),
		ItemCount: cfg.ItemCount,
		UpdatedAt: time.Now(),
	})
}

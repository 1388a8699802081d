package state

import (
	"context"
	"sync"
	"time"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu      sync.Mutex
	prefs   *Preferences
	saved   []Preferences
	visits  map[int][]time.Time
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{visits: make(map[int][]time.Time)}
}

func (m *Mock) SavePreferences(p Preferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, p)
	m.prefs = &p
}

func (m *Mock) GetPreferences() (*Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs, nil
}

func (m *Mock) RecordVisit(_ context.Context, index int, at time.Time) (VisitStats, error) {
	m.mu.Lock()
	m.visits[index] = append(m.visits[index], at)
	m.mu.Unlock()
	return m.VisitStats(context.Background(), index)
}

func (m *Mock) VisitStats(_ context.Context, index int) (VisitStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	times := m.visits[index]
	stats := VisitStats{Index: index, Count: len(times)}
	if len(times) > 0 {
		first := times[0]
		stats.First = &first
	}
	return stats, nil
}

func (m *Mock) ClearVisits(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.visits)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPreferences(p *Preferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = p
}

// Saved returns every value passed to SavePreferences, oldest first.
func (m *Mock) Saved() []Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Preferences(nil), m.saved...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

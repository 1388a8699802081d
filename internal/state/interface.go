package state

import (
	"context"
	"time"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SavePreferences(p Preferences)
	GetPreferences() (*Preferences, error)
	RecordVisit(ctx context.Context, index int, at time.Time) (VisitStats, error)
	VisitStats(ctx context.Context, index int) (VisitStats, error)
	ClearVisits(ctx context.Context) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

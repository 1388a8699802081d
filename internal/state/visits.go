package state

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/carousel/internal/db"
)

// maxVisits bounds the visit log; older rows are trimmed on insert.
const maxVisits = 1000

// VisitStats summarizes how often an item came to rest as the current one.
type VisitStats struct {
	Index int
	Count int
	First *time.Time // nil when never visited
}

// RecordVisit logs that index came to rest at at and returns its updated
// stats.
func (m *Manager) RecordVisit(ctx context.Context, index int, at time.Time) (VisitStats, error) {
	var stats VisitStats
	err := dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO visits (item_index, visited_at) VALUES (?, ?)`,
			index, at.Unix(),
		); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM visits WHERE id <= (SELECT MAX(id) FROM visits) - ?
		`, maxVisits); err != nil {
			return err
		}

		var err error
		stats, err = queryVisitStats(ctx, tx, index)
		return err
	})
	return stats, err
}

// VisitStats returns the stats of index.
func (m *Manager) VisitStats(ctx context.Context, index int) (VisitStats, error) {
	return queryVisitStats(ctx, m.db, index)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryVisitStats(ctx context.Context, q queryer, index int) (VisitStats, error) {
	stats := VisitStats{Index: index}
	var first sql.NullInt64
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(visited_at) FROM visits WHERE item_index = ?`, index,
	).Scan(&stats.Count, &first)
	if err != nil {
		return VisitStats{}, err
	}
	stats.First = dbutil.NullUnixTime(first)
	return stats, nil
}

// ClearVisits drops the visit log. Indices are only meaningful for the item
// set they were recorded with.
func (m *Manager) ClearVisits(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM visits`)
	return err
}

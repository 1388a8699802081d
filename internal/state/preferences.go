package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/carousel/internal/db"
)

// Preferences are the viewing choices carried over to the next start. The
// carousel position itself is never saved.
type Preferences struct {
	Mode      string // mode preset name, empty when unknown
	Reverse   bool   // autoplay direction
	Animated  bool
	ItemCount int // item count the visit log refers to
	UpdatedAt time.Time
}

func getPreferences(db *sql.DB) (*Preferences, error) {
	row := db.QueryRow(`
		SELECT mode, reverse, animated, item_count, updated_at
		FROM preferences WHERE id = 1
	`)

	var p Preferences
	var mode sql.NullString
	var updatedAt int64

	err := row.Scan(&mode, &p.Reverse, &p.Animated, &p.ItemCount, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nothing saved yet on first run
	}
	if err != nil {
		return nil, err
	}

	p.Mode = dbutil.NullStringValue(mode)
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

func savePreferences(db *sql.DB, p Preferences) error {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := db.Exec(`
		INSERT INTO preferences (id, mode, reverse, animated, item_count, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			mode = excluded.mode,
			reverse = excluded.reverse,
			animated = excluded.animated,
			item_count = excluded.item_count,
			updated_at = excluded.updated_at
	`, dbutil.NullString(p.Mode), p.Reverse, p.Animated, p.ItemCount, updatedAt.Unix())

	return err
}

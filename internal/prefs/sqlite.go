package prefs

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// SQLStore keeps preferences in the preferences table created by the
// migrations package.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) LoadFinishScore(ctx context.Context) (int, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?
	`, finishScoreKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return decodeScore(raw)
}

func (s *SQLStore) SaveFinishScore(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, finishScoreKey, strconv.Itoa(score))
	return err
}

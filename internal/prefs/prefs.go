// Package prefs persists the board's finish-score preference.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/playperu/scoreboard/internal/scoring"
)

var ErrNotFound = errors.New("preference not found")

const finishScoreKey = "finish_score"

// Store loads and saves the finish score. LoadFinishScore returns
// ErrNotFound when nothing was saved yet.
type Store interface {
	LoadFinishScore(ctx context.Context) (int, error)
	SaveFinishScore(ctx context.Context, score int) error
}

// LoadFinishScore reads the saved finish score and falls back to fallback
// when it is absent, unreadable, or not a valid finish score. It never
// fails: a broken store only costs the saved preference.
func LoadFinishScore(ctx context.Context, store Store, logger *slog.Logger, fallback int) int {
	score, err := store.LoadFinishScore(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Debug("no saved finish score, using default", "finish_score", fallback)
		return fallback
	case err != nil:
		logger.Warn("loading finish score failed, using default", "finish_score", fallback, "error", err)
		return fallback
	case score < scoring.MinFinishScore:
		logger.Warn("saved finish score is invalid, using default", "saved", score, "finish_score", fallback)
		return fallback
	}
	return score
}

func decodeScore(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("decoding finish score %q: %w", raw, err)
	}
	return n, nil
}

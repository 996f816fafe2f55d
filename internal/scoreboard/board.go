// Package scoreboard owns the live match and serializes every event
// against it.
package scoreboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/scoreboard/internal/prefs"
	"github.com/playperu/scoreboard/internal/scoring"
)

// Notifier receives a snapshot after every event.
type Notifier interface {
	Notify(Snapshot)
}

// SideView is how one side should be rendered.
type SideView struct {
	Score int          `json:"score"`
	Tone  scoring.Tone `json:"tone"`
}

// Snapshot is an immutable view of the board at one point in time.
type Snapshot struct {
	MatchID     string        `json:"matchId"`
	StartedAt   time.Time     `json:"startedAt"`
	Phase       scoring.Phase `json:"phase"`
	FinishScore int           `json:"finishScore"`
	Winner      *scoring.Side `json:"winner"`
	A           SideView      `json:"a"`
	B           SideView      `json:"b"`
}

// Board serializes events against the live match. Subscribers are
// notified while mu is held so they see snapshots in event order; the
// Notifier must not block.
type Board struct {
	mu        sync.Mutex
	state     scoring.State
	matchID   uuid.UUID
	startedAt time.Time

	prefs    prefs.Store
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	// saveMu orders writes to prefs. It is never taken while mu is held.
	saveMu sync.Mutex
}

// New starts a board racing to finishScore. notifier may be nil.
func New(finishScore int, store prefs.Store, notifier Notifier, logger *slog.Logger) *Board {
	b := &Board{
		state:    scoring.NewState(finishScore),
		prefs:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	b.matchID = uuid.New()
	b.startedAt = b.now().UTC()
	return b
}

// Snapshot returns the current board without changing it.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) Increment(side scoring.Side) Snapshot {
	return b.apply(scoring.Event{Kind: scoring.EventIncrement, Side: side})
}

func (b *Board) Decrement(side scoring.Side) Snapshot {
	return b.apply(scoring.Event{Kind: scoring.EventDecrement, Side: side})
}

// Reset clears both scores and starts a new match id.
func (b *Board) Reset() Snapshot {
	return b.apply(scoring.Event{Kind: scoring.EventReset})
}

// SetFinishScore applies raw edit-field input. Invalid input leaves the
// board unchanged and reports applied=false. A valid value is saved after
// the board is updated; a failed save is logged and the in-memory value
// stays in effect.
func (b *Board) SetFinishScore(ctx context.Context, raw string) (snap Snapshot, applied bool) {
	b.mu.Lock()
	b.state, applied = scoring.ApplySetFinishScore(b.state, raw)
	snap = b.snapshotLocked()
	if applied {
		b.notify(snap)
	}
	b.mu.Unlock()

	if !applied {
		b.logger.Debug("finish score input discarded", "input", raw)
		return snap, false
	}

	b.logger.Info("finish score changed", "match_id", snap.MatchID, "finish_score", snap.FinishScore)
	b.saveFinishScore(ctx)
	return snap, true
}

// saveFinishScore writes the board's current finish score, not the one a
// caller applied, so the last save to land always matches the board.
func (b *Board) saveFinishScore(ctx context.Context) {
	if b.prefs == nil {
		return
	}
	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	score := b.Snapshot().FinishScore
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := b.prefs.SaveFinishScore(ctx, score); err != nil {
		b.logger.Warn("saving finish score failed", "finish_score", score, "error", err)
	}
}

func (b *Board) apply(e scoring.Event) Snapshot {
	b.mu.Lock()
	prev := b.state.Phase
	b.state = scoring.Apply(b.state, e)
	if e.Kind == scoring.EventReset {
		b.matchID = uuid.New()
		b.startedAt = b.now().UTC()
	}
	snap := b.snapshotLocked()
	b.notify(snap)
	b.mu.Unlock()

	if snap.Phase != prev {
		b.logger.Info("match phase changed",
			"match_id", snap.MatchID,
			"from", prev,
			"to", snap.Phase,
			"score_a", snap.A.Score,
			"score_b", snap.B.Score,
		)
	}
	return snap
}

func (b *Board) notify(snap Snapshot) {
	if b.notifier != nil {
		b.notifier.Notify(snap)
	}
}

func (b *Board) snapshotLocked() Snapshot {
	s := b.state
	snap := Snapshot{
		MatchID:     b.matchID.String(),
		StartedAt:   b.startedAt,
		Phase:       s.Phase,
		FinishScore: s.FinishScore,
		A:           SideView{Score: s.ScoreA, Tone: scoring.BackgroundTone(s, scoring.SideA)},
		B:           SideView{Score: s.ScoreB, Tone: scoring.BackgroundTone(s, scoring.SideB)},
	}
	if w, ok := scoring.Winner(s); ok {
		snap.Winner = &w
	}
	return snap
}

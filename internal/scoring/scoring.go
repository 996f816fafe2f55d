// Package scoring implements the race-to-N, win-by-two match rules.
// It has zero external dependencies and performs no I/O: every operation
// takes a State and returns the next one.
package scoring

// Phase is the stage a match is in.
type Phase string

const (
	PhaseOngoing  Phase = "ONGOING"
	PhaseDispute  Phase = "DISPUTE"
	PhaseFinished Phase = "FINISHED"
)

// Side identifies one of the two teams on the board.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Valid reports whether s names one of the two sides.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Opponent returns the other side. An invalid side has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return ""
}

// ParseSide maps a wire name to a Side.
func ParseSide(raw string) (Side, bool) {
	s := Side(raw)
	return s, s.Valid()
}

const (
	DefaultFinishScore = 15
	MinFinishScore     = 2
)

// State is a snapshot of one match. The zero value is not meaningful;
// use NewState.
type State struct {
	ScoreA      int   `json:"scoreA"`
	ScoreB      int   `json:"scoreB"`
	Phase       Phase `json:"phase"`
	FinishScore int   `json:"finishScore"`
}

// NewState returns a fresh match racing to finishScore. Values below
// MinFinishScore fall back to DefaultFinishScore.
func NewState(finishScore int) State {
	if finishScore < MinFinishScore {
		finishScore = DefaultFinishScore
	}
	return State{Phase: PhaseOngoing, FinishScore: finishScore}
}

// Score returns the points held by side.
func (s State) Score(side Side) int {
	if side == SideB {
		return s.ScoreB
	}
	return s.ScoreA
}

func (s State) withScore(side Side, score int) State {
	if side == SideB {
		s.ScoreB = score
	} else {
		s.ScoreA = score
	}
	return s
}

// Finished reports whether x against y meets the race-to-target,
// win-by-two condition.
func Finished(x, y, target int) bool {
	return (x >= target || y >= target) && gap(x, y) >= 2
}

// Disputed reports whether both sides are past game point and within one
// point of each other.
func Disputed(x, y, target int) bool {
	return x >= target-1 && y >= target-1 && gap(x, y) < 2
}

func gap(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

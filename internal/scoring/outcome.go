package scoring

// Tone is the presentation hint for one side of the board.
type Tone string

const (
	ToneNormal  Tone = "NORMAL"
	ToneDispute Tone = "DISPUTE"
	ToneWinner  Tone = "WINNER"
	ToneLoser   Tone = "LOSER"
)

// Winner returns the side with the strictly higher score once the match
// is finished. Unfinished or tied matches have no winner.
func Winner(s State) (Side, bool) {
	if s.Phase != PhaseFinished {
		return "", false
	}
	switch {
	case s.ScoreA > s.ScoreB:
		return SideA, true
	case s.ScoreB > s.ScoreA:
		return SideB, true
	}
	return "", false
}

// BackgroundTone derives how side should be rendered.
func BackgroundTone(s State, side Side) Tone {
	switch s.Phase {
	case PhaseDispute:
		return ToneDispute
	case PhaseFinished:
		if w, ok := Winner(s); ok && w == side {
			return ToneWinner
		}
		return ToneLoser
	}
	return ToneNormal
}

package scoring

// EventKind names something that can happen to a match.
type EventKind string

const (
	EventIncrement      EventKind = "increment"
	EventDecrement      EventKind = "decrement"
	EventReset          EventKind = "reset"
	EventSetFinishScore EventKind = "set_finish_score"
)

// Event is one user action. Side is used by increment and decrement,
// Raw by set_finish_score.
type Event struct {
	Kind EventKind
	Side Side
	Raw  string
}

// rule decides the next phase after the acting side's score has become
// self. other is the opponent's score and target the finish score.
type rule func(self, other, target int) Phase

type transitionKey struct {
	phase Phase
	kind  EventKind
}

// transitions holds every phase-changing rule. A missing entry keeps the
// current phase: decrementing an ongoing match is the only such case.
var transitions = map[transitionKey]rule{
	{PhaseOngoing, EventIncrement}:  incrementOngoing,
	{PhaseDispute, EventIncrement}:  incrementDispute,
	{PhaseFinished, EventIncrement}: incrementFinished,
	{PhaseDispute, EventDecrement}:  decrementDispute,
	{PhaseFinished, EventDecrement}: decrementFinished,
}

func incrementOngoing(self, other, target int) Phase {
	switch {
	case self >= target-1 && other >= target-1:
		return PhaseDispute
	case self == target:
		return PhaseFinished
	}
	return PhaseOngoing
}

func incrementDispute(self, other, _ int) Phase {
	if self >= other+2 {
		return PhaseFinished
	}
	return PhaseDispute
}

// incrementFinished re-evaluates a finished match from scratch. It is
// reached when points are added after the winner was decided.
func incrementFinished(self, other, target int) Phase {
	if self-other >= 2 {
		return PhaseFinished
	}
	return resolve(self, other, target, self >= target || other >= target)
}

func decrementDispute(self, other, target int) Phase {
	switch {
	case Finished(self, other, target):
		return PhaseFinished
	case self < target-1:
		return PhaseOngoing
	}
	return PhaseDispute
}

// decrementFinished lets a mis-tapped point be taken back after the match
// was called, reverting to dispute or ongoing when the win no longer holds.
func decrementFinished(self, other, target int) Phase {
	if self >= target && other < target-1 {
		return PhaseFinished
	}
	return resolve(self, other, target, gap(self, other) >= 2 && self >= target)
}

// resolve picks the phase for a score pair outside of the normal forward
// flow. Inside dispute range the two-point gap decides; below it the
// caller's won condition does.
func resolve(self, other, target int, won bool) Phase {
	if self >= target-1 && other >= target-1 {
		if gap(self, other) >= 2 {
			return PhaseFinished
		}
		return PhaseDispute
	}
	if won {
		return PhaseFinished
	}
	return PhaseOngoing
}

// Apply runs e against s and returns the resulting state. It never fails:
// events with an unknown kind or side return s unchanged.
func Apply(s State, e Event) State {
	switch e.Kind {
	case EventIncrement:
		return step(s, e.Kind, e.Side, s.Score(e.Side)+1)
	case EventDecrement:
		return step(s, e.Kind, e.Side, max(0, s.Score(e.Side)-1))
	case EventReset:
		return NewState(s.FinishScore)
	case EventSetFinishScore:
		next, _ := ApplySetFinishScore(s, e.Raw)
		return next
	}
	return s
}

func step(s State, kind EventKind, side Side, score int) State {
	if !side.Valid() {
		return s
	}
	next := s.withScore(side, score)
	if r, ok := transitions[transitionKey{s.Phase, kind}]; ok {
		next.Phase = r(score, s.Score(side.Opponent()), s.FinishScore)
	}
	return next
}

// ApplyIncrement adds a point to side. Increments are never rejected.
func ApplyIncrement(s State, side Side) State {
	return Apply(s, Event{Kind: EventIncrement, Side: side})
}

// ApplyDecrement takes a point from side, clamping at zero.
func ApplyDecrement(s State, side Side) State {
	return Apply(s, Event{Kind: EventDecrement, Side: side})
}

// ApplyReset starts a new match with the same finish score.
func ApplyReset(s State) State {
	return Apply(s, Event{Kind: EventReset})
}

// ApplySetFinishScore parses raw and, when valid, replaces the finish
// score. The phase is not re-evaluated against the new target. The
// boolean reports whether the value was applied.
func ApplySetFinishScore(s State, raw string) (State, bool) {
	n, err := ParseFinishScore(raw)
	if err != nil {
		return s, false
	}
	s.FinishScore = n
	return s, true
}

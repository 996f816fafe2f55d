package server

import (
	"net/http"
	"time"

	"github.com/playperu/scoreboard/internal/scoreboard"
	"github.com/playperu/scoreboard/internal/scoring"
)

type SideResponse struct {
	Score int          `json:"score"`
	Tone  scoring.Tone `json:"tone"`
	Color string       `json:"color"`
}

type BoardResponse struct {
	MatchID     string        `json:"matchId"`
	StartedAt   time.Time     `json:"startedAt"`
	Phase       scoring.Phase `json:"phase"`
	FinishScore int           `json:"finishScore"`
	Winner      *scoring.Side `json:"winner"`
	A           SideResponse  `json:"a"`
	B           SideResponse  `json:"b"`
}

// FinishScoreRequest carries the raw edit-field text; parsing happens in
// the engine so the drawer can send whatever the user typed.
type FinishScoreRequest struct {
	Value string `json:"value"`
}

type FinishScoreResponse struct {
	Applied bool          `json:"applied"`
	Board   BoardResponse `json:"board"`
}

func newBoardResponse(s scoreboard.Snapshot) BoardResponse {
	return BoardResponse{
		MatchID:     s.MatchID,
		StartedAt:   s.StartedAt,
		Phase:       s.Phase,
		FinishScore: s.FinishScore,
		Winner:      s.Winner,
		A:           newSideResponse(scoring.SideA, s.A),
		B:           newSideResponse(scoring.SideB, s.B),
	}
}

func newSideResponse(side scoring.Side, v scoreboard.SideView) SideResponse {
	return SideResponse{
		Score: v.Score,
		Tone:  v.Tone,
		Color: backgroundColor(side, v.Tone),
	}
}

func handleBoard(board *scoreboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newBoardResponse(board.Snapshot()))
	}
}

func handleIncrement(board *scoreboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newBoardResponse(board.Increment(sideFrom(r))))
	}
}

func handleDecrement(board *scoreboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newBoardResponse(board.Decrement(sideFrom(r))))
	}
}

func handleReset(board *scoreboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newBoardResponse(board.Reset()))
	}
}

// handleFinishScore answers 200 even when the value is discarded: invalid
// input is not an error, only "not applied".
func handleFinishScore(board *scoreboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FinishScoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		snap, applied := board.SetFinishScore(r.Context(), req.Value)
		writeJSON(w, http.StatusOK, FinishScoreResponse{
			Applied: applied,
			Board:   newBoardResponse(snap),
		})
	}
}

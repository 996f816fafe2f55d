package server

import "github.com/playperu/scoreboard/internal/scoring"

var sideColors = map[scoring.Side]string{
	scoring.SideA: "#D72638",
	scoring.SideB: "#1B6CA8",
}

const (
	disputeColor = "#FF8C00"
	winnerColor  = "#4CAF50"
	loserColor   = "#444444"
)

// backgroundColor maps a tone to the colour a display paints behind side.
func backgroundColor(side scoring.Side, tone scoring.Tone) string {
	switch tone {
	case scoring.ToneDispute:
		return disputeColor
	case scoring.ToneWinner:
		return winnerColor
	case scoring.ToneLoser:
		return loserColor
	}
	return sideColors[side]
}

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/playperu/scoreboard/internal/scoreboard"
)

// handleBoardFeed streams board snapshots as JSON text frames. Clients
// only listen; anything they send is discarded.
func handleBoardFeed(logger *slog.Logger, board *scoreboard.Board, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := conn.CloseRead(r.Context())

		ch := broker.Subscribe()
		defer broker.Unsubscribe(ch)

		current, _ := json.Marshal(newBoardResponse(board.Snapshot()))
		if err := conn.Write(ctx, websocket.MessageText, current); err != nil {
			logger.Debug("websocket write failed", "error", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				logger.Debug("websocket feed ended", "error", ctx.Err())
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}

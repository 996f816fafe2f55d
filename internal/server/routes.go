package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/scoreboard/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	board := deps.Board

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Scoreboard API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, deps.Checks).Routes())
	r.Get("/ws/board", handleBoardFeed(logger, board, deps.Broker))

	r.Route("/api/board", func(r chi.Router) {
		r.Get("/", handleBoard(board))
		r.Get("/events", handleEvents(board, deps.Broker))

		// Score changes — guarded by the operator PIN when one is configured.
		r.Group(func(r chi.Router) {
			r.Use(operatorMiddleware(deps.PINHash))
			r.Post("/reset", handleReset(board))
			r.Put("/finish-score", handleFinishScore(board))
			r.Route("/sides/{side}", func(r chi.Router) {
				r.Use(sideMiddleware)
				r.Post("/increment", handleIncrement(board))
				r.Post("/decrement", handleDecrement(board))
			})
		})
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}

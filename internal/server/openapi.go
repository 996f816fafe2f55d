package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse documents GET /healthz: one entry per dependency.
type HealthResponse map[string]struct {
	Status string `json:"status"`
}

type SidePath struct {
	Side string `path:"side" enum:"a,b"`
}

type PINHeader struct {
	PIN string `header:"X-Board-Pin" description:"Operator PIN, required when the board is PIN-protected."`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Scoreboard API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Live scoreboard: race to the finish score, win by two.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/board
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/board")
	getBoard.SetSummary("Get board")
	getBoard.SetDescription("Returns both scores, the match phase, the winner, and how to paint each side.")
	getBoard.AddRespStructure(BoardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// GET /api/board/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/board/events")
	getEvents.SetSummary("SSE board stream")
	getEvents.SetDescription("Server-Sent Events stream. Sends the current board, then every change as a state event.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/board
	getFeed, _ := r.NewOperationContext(http.MethodGet, "/ws/board")
	getFeed.SetSummary("WebSocket board stream")
	getFeed.SetDescription("Upgrades to a WebSocket that pushes the board as JSON text frames.")
	getFeed.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("application/json"))
	_ = r.AddOperation(getFeed)

	// POST /api/board/sides/{side}/increment
	postIncrement, _ := r.NewOperationContext(http.MethodPost, "/api/board/sides/{side}/increment")
	postIncrement.SetSummary("Add a point")
	postIncrement.SetDescription("Adds a point to the side. Never rejected.")
	postIncrement.AddReqStructure(struct {
		SidePath
		PINHeader
	}{})
	postIncrement.AddRespStructure(BoardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postIncrement.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postIncrement.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postIncrement)

	// POST /api/board/sides/{side}/decrement
	postDecrement, _ := r.NewOperationContext(http.MethodPost, "/api/board/sides/{side}/decrement")
	postDecrement.SetSummary("Take a point back")
	postDecrement.SetDescription("Removes a point from the side, never below zero. May reopen a finished match.")
	postDecrement.AddReqStructure(struct {
		SidePath
		PINHeader
	}{})
	postDecrement.AddRespStructure(BoardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postDecrement.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postDecrement.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postDecrement)

	// POST /api/board/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/board/reset")
	postReset.SetSummary("Reset match")
	postReset.SetDescription("Starts a new match at 0-0 with the same finish score.")
	postReset.AddReqStructure(PINHeader{})
	postReset.AddRespStructure(BoardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// PUT /api/board/finish-score
	putFinish, _ := r.NewOperationContext(http.MethodPut, "/api/board/finish-score")
	putFinish.SetSummary("Set finish score")
	putFinish.SetDescription("Applies the raw edit-field text. Values that are not integers above 1 are discarded and reported as applied=false.")
	putFinish.AddReqStructure(struct {
		PINHeader
		FinishScoreRequest
	}{})
	putFinish.AddRespStructure(FinishScoreResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putFinish.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putFinish.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(putFinish)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

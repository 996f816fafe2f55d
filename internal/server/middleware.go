package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/playperu/scoreboard/internal/scoring"
)

type ctxKey int

const ctxKeySide ctxKey = iota

const pinHeader = "X-Board-Pin"

// sideMiddleware resolves the {side} URL parameter.
func sideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		side, ok := scoring.ParseSide(chi.URLParam(r, "side"))
		if !ok {
			writeError(w, http.StatusNotFound, "side not found")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeySide, side)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// operatorMiddleware requires the X-Board-Pin header to match pinHash.
// An empty pinHash lets every request through.
func operatorMiddleware(pinHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if pinHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(pinHeader)
			if pin == "" {
				writeError(w, http.StatusUnauthorized, "operator pin required")
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(pinHash), []byte(pin)); err != nil {
				writeError(w, http.StatusUnauthorized, "invalid operator pin")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sideFrom(r *http.Request) scoring.Side {
	return r.Context().Value(ctxKeySide).(scoring.Side)
}

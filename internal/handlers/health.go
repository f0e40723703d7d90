package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger checks a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler reports whether the database answers within two seconds.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.healthResponse
// @Failure 503 {object} handlers.healthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// RegisterHealthHandler registers the health route
func RegisterHealthHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/healthz", h)
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
	"github.com/sbilibin2017/gw-family-wallet/internal/services"
)

//go:generate mockgen -source=trades.go -destination=mock_trades_test.go -package=handlers

// TradesLister defines the interface that the service must implement.
type TradesLister interface {
	RecentTrades(ctx context.Context, userID string, limit int) ([]models.Trade, error)
}

// NewGetTradesHandler returns an HTTP handler listing a user's recent completed trades.
// @Summary Get recent trades
// @Description Returns the most recent completed trades of a user, newest first
// @Tags trades
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Number of trades (default 10, max 100)"
// @Success 200 {object} models.TradesResponse "Trades"
// @Failure 400 {object} models.TradesErrorResponse "Invalid limit"
// @Failure 404 {object} models.TradesErrorResponse "User not found"
// @Failure 500 {object} models.TradesErrorResponse "Internal server error"
// @Router /users/{userID}/trades [get]
func NewGetTradesHandler(svc TradesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, models.TradesErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = n
		}

		trades, err := svc.RecentTrades(r.Context(), userID, limit)
		if errors.Is(err, services.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, models.TradesErrorResponse{Error: "User not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to list trades", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.TradesErrorResponse{Error: "Internal server error"})
			return
		}

		if trades == nil {
			trades = []models.Trade{}
		}
		writeJSON(w, http.StatusOK, models.TradesResponse{Trades: trades})
	}
}

// RegisterGetTradesHandler registers routes for listing trades
func RegisterGetTradesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/users/{userID}/trades", h)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
	"github.com/sbilibin2017/gw-family-wallet/internal/services"
)

//go:generate mockgen -source=rate.go -destination=mock_rate_test.go -package=handlers

// RateGetter defines the interface that the service must implement.
type RateGetter interface {
	GetRate(ctx context.Context, symbol, currency string) (*models.TokenRate, error)
}

// NewGetRateHandler returns an HTTP handler for reading the latest stored token rate.
// @Summary Get token rate
// @Description Returns the latest ingested price of one token in a fiat currency
// @Tags rates
// @Produce json
// @Param symbol path string true "Token symbol" example(USDC)
// @Param currency path string true "Fiat currency" example(EUR)
// @Success 200 {object} models.TokenRate "Rate"
// @Failure 404 {object} models.RateErrorResponse "Rate not found"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /rates/{symbol}/{currency} [get]
func NewGetRateHandler(svc RateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symbol := chi.URLParam(r, "symbol")
		currency := chi.URLParam(r, "currency")

		rate, err := svc.GetRate(r.Context(), symbol, currency)
		if errors.Is(err, services.ErrRateNotFound) {
			writeJSON(w, http.StatusNotFound, models.RateErrorResponse{Error: "Rate not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to get rate", "symbol", symbol, "currency", currency, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.RateErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, rate)
	}
}

// RegisterGetRateHandler registers routes for reading rates
func RegisterGetRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/{symbol}/{currency}", h)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=token_rate.go -destination=mock_token_rate_test.go -package=handlers

// RateIngester defines the interface that the service must implement.
type RateIngester interface {
	Trigger(ctx context.Context) models.IngestionResult
}

// NewTokenRateHandler returns an HTTP handler that runs one rate ingestion.
// @Summary Ingest token rates
// @Description Fetches token prices and fiat cross rates, stores them and returns the ingested rates. Only one ingestion runs at a time.
// @Tags rates
// @Produce json
// @Success 200 {object} models.TokenRateResponse "Ingested rates"
// @Failure 429 {object} models.TokenRateResponse "Ingestion already in progress or price source failure"
// @Failure 500 {object} models.TokenRateResponse "Internal error"
// @Router /tokenrate [get]
func NewTokenRateHandler(svc RateIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := svc.Trigger(r.Context())

		switch result.Status {
		case models.IngestionSuccess:
			writeJSON(w, http.StatusOK, models.TokenRateResponse{Success: true, Results: result.Results})
		case models.IngestionAlreadyInProgress:
			writeJSON(w, http.StatusTooManyRequests, models.TokenRateResponse{Message: "Rate ingestion already in progress"})
		case models.IngestionSourceFailure:
			writeJSON(w, http.StatusTooManyRequests, models.TokenRateResponse{Message: "Price source unavailable, try again later"})
		default:
			writeJSON(w, http.StatusInternalServerError, models.TokenRateResponse{Message: "Internal server error"})
		}
	}
}

// RegisterTokenRateHandler registers routes for rate ingestion
func RegisterTokenRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/tokenrate", h)
}

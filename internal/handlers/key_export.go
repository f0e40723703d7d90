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

//go:generate mockgen -source=key_export.go -destination=mock_key_export_test.go -package=handlers

// KeyExporter defines the interface that the service must implement.
type KeyExporter interface {
	Export(ctx context.Context, userID string) (string, error)
}

// NewKeyExportHandler returns an HTTP handler that hands a member their custodial private key once.
// @Summary Export private key
// @Description Returns the member's private key and permanently marks it as downloaded. Every later call is refused.
// @Tags keys
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.KeyExportResponse "Private key"
// @Failure 403 {object} models.KeyExportErrorResponse "Private key already exported"
// @Failure 404 {object} models.KeyExportErrorResponse "User not found"
// @Failure 422 {object} models.KeyExportErrorResponse "User has no custodial key"
// @Failure 500 {object} models.KeyExportErrorResponse "Internal server error"
// @Router /users/{userID}/private-key/export [post]
func NewKeyExportHandler(svc KeyExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		w.Header().Set("Cache-Control", "no-store")

		key, err := svc.Export(r.Context(), userID)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.KeyExportResponse{PrivateKey: key})
		case errors.Is(err, services.ErrKeyAlreadyExported):
			writeJSON(w, http.StatusForbidden, models.KeyExportErrorResponse{Error: "Private key already exported"})
		case errors.Is(err, services.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, models.KeyExportErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrKeyNotProvisioned):
			writeJSON(w, http.StatusUnprocessableEntity, models.KeyExportErrorResponse{Error: "User has no custodial key"})
		default:
			logger.Log.Errorw("failed to export private key", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.KeyExportErrorResponse{Error: "Internal server error"})
		}
	}
}

// RegisterKeyExportHandler registers routes for exporting private keys
func RegisterKeyExportHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/users/{userID}/private-key/export", h)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw_test.go -package=handlers

// Withdrawer defines the interface that the service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID, amount string) models.WithdrawalResult
}

// NewWithdrawHandler returns an HTTP handler that transfers family funds to a member's address.
// @Summary Withdraw funds
// @Description Transfers an amount of the family settlement token to the member's on-chain address and waits for confirmation. At most one transfer per request, never retried.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.WithdrawResponse "Transfer confirmed"
// @Failure 400 {object} models.WithdrawErrorResponse "Invalid request or amount"
// @Failure 404 {object} models.WithdrawErrorResponse "User not found"
// @Failure 409 {object} models.WithdrawErrorResponse "Another withdrawal for the family is in progress"
// @Failure 422 {object} models.WithdrawErrorResponse "Family or member not configured"
// @Failure 500 {object} models.WithdrawErrorResponse "Key, configuration or on-chain failure"
// @Failure 502 {object} models.WithdrawErrorResponse "RPC or contract call failure"
// @Failure 504 {object} models.WithdrawErrorResponse "Transaction not confirmed in time"
// @Router /wallet/withdraw [post]
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode withdraw request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.WithdrawErrorResponse{
				Error:   models.KindInvalidRequest,
				Message: "Invalid request body",
			})
			return
		}

		result := svc.Withdraw(r.Context(), req.UserID, req.Amount)
		if result.Succeeded() {
			writeJSON(w, http.StatusOK, models.WithdrawResponse{
				Success:     true,
				TxHash:      result.TxHash,
				BlockNumber: result.BlockNumber,
			})
			return
		}

		writeJSON(w, withdrawStatus(result.Kind), models.WithdrawErrorResponse{
			Error:   result.Kind,
			Message: result.Message,
			TxHash:  result.TxHash,
		})
	}
}

func withdrawStatus(kind models.FailureKind) int {
	switch kind {
	case models.KindInvalidRequest, models.KindInvalidAmount:
		return http.StatusBadRequest
	case models.KindUserNotFound:
		return http.StatusNotFound
	case models.KindWithdrawalInProgress:
		return http.StatusConflict
	case models.KindFamilyNotConfigured, models.KindRecipientAddressMissing:
		return http.StatusUnprocessableEntity
	case models.KindRPCError, models.KindContractCallError:
		return http.StatusBadGateway
	case models.KindTransactionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RegisterWithdrawHandler registers routes for withdrawing funds
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/withdraw", h)
}

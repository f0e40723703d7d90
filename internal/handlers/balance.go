package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=balance.go -destination=mock_balance_test.go -package=handlers

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalances(ctx context.Context, tokens []models.TokenDescriptor, owner common.Address) map[string]string
}

// TokenLister provides the registry tokens to report.
type TokenLister interface {
	List() []models.TokenDescriptor
}

// NewGetBalancesHandler returns an HTTP handler for fetching token balances of an address.
// @Summary Get token balances
// @Description Returns the balance of every registry token held by the address. Tokens whose lookup fails are reported as "0".
// @Tags wallet
// @Produce json
// @Param address path string true "EVM address"
// @Success 200 {object} models.BalanceResponse "Balances"
// @Failure 400 {object} models.BalanceErrorResponse "Invalid address"
// @Router /wallet/{address}/balances [get]
func NewGetBalancesHandler(svc BalanceGetter, registry TokenLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := chi.URLParam(r, "address")
		if !common.IsHexAddress(address) {
			logger.Log.Warnw("invalid balance address", "address", address)
			writeJSON(w, http.StatusBadRequest, models.BalanceErrorResponse{Error: "Invalid address"})
			return
		}

		owner := common.HexToAddress(address)
		balances := svc.GetBalances(r.Context(), registry.List(), owner)

		writeJSON(w, http.StatusOK, models.BalanceResponse{
			Address:  owner.Hex(),
			Balances: balances,
		})
	}
}

// RegisterGetBalancesHandler registers routes for fetching balances
func RegisterGetBalancesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet/{address}/balances", h)
}

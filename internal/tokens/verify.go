package tokens

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=verify.go -destination=mock_verify_test.go -package=tokens

// SymbolReader reads the ticker a token contract reports.
type SymbolReader interface {
	Symbol(ctx context.Context, contract common.Address) (string, error)
}

// Verify compares registry symbols with the ones reported on chain and returns
// the descriptors that disagree. Contracts that cannot be read are logged and skipped.
func (r *Registry) Verify(ctx context.Context, src SymbolReader) []models.TokenDescriptor {
	var mismatched []models.TokenDescriptor
	for _, d := range r.tokens {
		symbol, err := src.Symbol(ctx, common.HexToAddress(d.ContractAddress))
		if err != nil {
			logger.Log.Warnw("token symbol unavailable", "symbol", d.Symbol, "contract", d.ContractAddress, "error", err)
			continue
		}
		if !strings.EqualFold(symbol, d.Symbol) {
			logger.Log.Warnw("token symbol mismatch", "symbol", d.Symbol, "contract", d.ContractAddress, "onchain", symbol)
			mismatched = append(mismatched, d)
		}
	}
	return mismatched
}

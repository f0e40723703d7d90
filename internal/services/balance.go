package services

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
	"github.com/sbilibin2017/gw-family-wallet/internal/units"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=balance.go -destination=mock_balance_test.go -package=services

// DefaultBalanceFanout bounds concurrent balance calls per request.
const DefaultBalanceFanout = 8

// BalanceReader reads ERC-20 balances.
type BalanceReader interface {
	BalanceOf(ctx context.Context, contract, owner common.Address) (*big.Int, error)
}

// BalanceService aggregates token balances of one address.
type BalanceService struct {
	chain   BalanceReader
	fanout  int
	metrics *metrics.Wallet
}

// NewBalanceService creates a new BalanceService. A non-positive fanout uses DefaultBalanceFanout.
func NewBalanceService(chain BalanceReader, fanout int, m *metrics.Wallet) *BalanceService {
	if fanout <= 0 {
		fanout = DefaultBalanceFanout
	}
	return &BalanceService{chain: chain, fanout: fanout, metrics: m}
}

// GetBalances returns one decimal string per token symbol.
// A token whose lookup fails is reported as "0" and logged; the call itself never fails.
func (s *BalanceService) GetBalances(ctx context.Context, tokens []models.TokenDescriptor, owner common.Address) map[string]string {
	balances := make(map[string]string, len(tokens))
	for _, t := range tokens {
		balances[t.Symbol] = "0"
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(s.fanout)

	for _, token := range tokens {
		g.Go(func() error {
			balance, err := s.chain.BalanceOf(ctx, common.HexToAddress(token.ContractAddress), owner)
			if err != nil {
				logger.Log.Errorw("failed to fetch token balance",
					"symbol", token.Symbol,
					"contract", token.ContractAddress,
					"owner", owner.Hex(),
					"error", err,
				)
				s.metrics.BalanceLookup(token.Symbol, "error")
				return nil
			}

			formatted := units.Format(balance, token.Decimals)
			s.metrics.BalanceLookup(token.Symbol, "success")

			mu.Lock()
			balances[token.Symbol] = formatted
			mu.Unlock()
			return nil
		})
	}

	// Per-token failures are absorbed above, so Wait only acts as the join barrier.
	_ = g.Wait()

	return balances
}

package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

//go:generate mockgen -source=trades.go -destination=mock_trades_test.go -package=services

const (
	DefaultTradesLimit = 10
	MaxTradesLimit     = 100
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// TradeReader reads completed trades.
type TradeReader interface {
	ListCompleted(ctx context.Context, userID string, limit int) ([]models.Trade, error)
}

// TradeService exposes the read-only trade ledger.
type TradeService struct {
	users  UserReader
	trades TradeReader
}

func NewTradeService(users UserReader, trades TradeReader) *TradeService {
	return &TradeService{users: users, trades: trades}
}

// RecentTrades returns the user's most recent completed trades, newest first.
// limit defaults to DefaultTradesLimit and is capped at MaxTradesLimit.
func (s *TradeService) RecentTrades(ctx context.Context, userID string, limit int) ([]models.Trade, error) {
	if limit <= 0 {
		limit = DefaultTradesLimit
	}
	if limit > MaxTradesLimit {
		limit = MaxTradesLimit
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	trades, err := s.trades.ListCompleted(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list trades", "user_id", userID, "error", err)
		return nil, err
	}
	return trades, nil
}

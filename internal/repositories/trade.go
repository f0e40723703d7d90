package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

// TradeReadRepository reads the settled trade ledger. Trades are written elsewhere.
type TradeReadRepository struct {
	db *sqlx.DB
}

func NewTradeReadRepository(db *sqlx.DB) *TradeReadRepository {
	return &TradeReadRepository{db: db}
}

// ListCompleted returns up to limit completed trades of a user, newest first.
func (r *TradeReadRepository) ListCompleted(ctx context.Context, userID string, limit int) ([]models.Trade, error) {
	const query = `
		SELECT id, user_id, from_amount, from_token, to_amount, to_token, exchange_rate, tx_hash, created_at, completed_at
		FROM trades
		WHERE user_id = $1 AND completed_at IS NOT NULL
		ORDER BY completed_at DESC, id DESC
		LIMIT $2
	`

	trades := make([]models.Trade, 0)
	err := r.db.SelectContext(ctx, &trades, query, userID, limit)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(trades),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return trades, nil
}

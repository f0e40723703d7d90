package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

// ErrRateNotFound is returned when no rate is stored for a symbol/currency pair.
var ErrRateNotFound = errors.New("token rate not found")

// TokenRateWriteRepository persists ingested rates in PostgreSQL
type TokenRateWriteRepository struct {
	db *sqlx.DB
}

func NewTokenRateWriteRepository(db *sqlx.DB) *TokenRateWriteRepository {
	return &TokenRateWriteRepository{db: db}
}

// SaveAll upserts every rate in one transaction. Either all rates are stored or none.
func (r *TokenRateWriteRepository) SaveAll(ctx context.Context, rates []models.TokenRate) (err error) {
	const query = `
		INSERT INTO token_rates (symbol, currency, rate, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol, currency)
		DO UPDATE SET rate = EXCLUDED.rate, fetched_at = EXCLUDED.fetched_at
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, rate := range rates {
		args := []any{rate.Symbol, rate.Currency, rate.Rate, rate.FetchedAt}
		_, err = tx.ExecContext(ctx, query, args...)

		logger.Log.Infow(
			"db query",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// TokenRateReadRepository reads persisted rates
type TokenRateReadRepository struct {
	db *sqlx.DB
}

func NewTokenRateReadRepository(db *sqlx.DB) *TokenRateReadRepository {
	return &TokenRateReadRepository{db: db}
}

func (r *TokenRateReadRepository) Get(ctx context.Context, symbol, currency string) (*models.TokenRate, error) {
	const query = `
		SELECT symbol, currency, rate, fetched_at
		FROM token_rates
		WHERE symbol = $1 AND currency = $2
	`

	var rate models.TokenRate
	err := r.db.GetContext(ctx, &rate, query, symbol, currency)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{symbol, currency},
		"result", rate,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// TokenRateCacheRepository caches the latest rates in Redis
type TokenRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

func NewTokenRateCacheRepository(client *redis.Client, expiration time.Duration) *TokenRateCacheRepository {
	return &TokenRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tokenRateKey(symbol, currency string) string {
	return fmt.Sprintf("token_rate:%s:%s", strings.ToUpper(symbol), strings.ToUpper(currency))
}

// Get fetches a cached rate, ErrRateNotFound on a miss.
func (r *TokenRateCacheRepository) Get(ctx context.Context, symbol, currency string) (*models.TokenRate, error) {
	key := tokenRateKey(symbol, currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"redis command",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrRateNotFound
		}
		return nil, err
	}

	var rate models.TokenRate
	if err := json.Unmarshal([]byte(val), &rate); err != nil {
		logger.Log.Infow(
			"redis command",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"redis command",
		"key", key,
		"value", val,
		"error", nil,
	)

	return &rate, nil
}

// Set caches a rate with the repository expiration
func (r *TokenRateCacheRepository) Set(ctx context.Context, rate models.TokenRate) error {
	key := tokenRateKey(rate.Symbol, rate.Currency)

	data, err := json.Marshal(rate)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"rate", rate.Rate.String(),
		"result", "ok",
		"error", err,
	)

	return err
}

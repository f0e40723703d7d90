package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/gw-family-wallet/internal/facades"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
	"github.com/sbilibin2017/gw-family-wallet/internal/repositories"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=rates.go -destination=mock_rates_test.go -package=services

const baseCurrency = "USD"

var (
	// ErrRateNotFound is returned when no rate is known for a pair.
	ErrRateNotFound = errors.New("rate not found")
)

// TokenPriceReader reads USD token prices keyed by price id.
type TokenPriceReader interface {
	GetUSDPrices(ctx context.Context, priceIDs []string) (map[string]decimal.Decimal, error)
}

// FiatRateReader reads units of each fiat currency per one USD.
type FiatRateReader interface {
	GetFiatRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// TokenRateWriter persists a batch of rates atomically.
type TokenRateWriter interface {
	SaveAll(ctx context.Context, rates []models.TokenRate) error
}

// TokenRateReader reads one persisted rate.
type TokenRateReader interface {
	Get(ctx context.Context, symbol, currency string) (*models.TokenRate, error)
}

// TokenRateCache caches rates.
type TokenRateCache interface {
	Get(ctx context.Context, symbol, currency string) (*models.TokenRate, error)
	Set(ctx context.Context, rate models.TokenRate) error
}

// TokenLister lists registry tokens in order.
type TokenLister interface {
	List() []models.TokenDescriptor
}

// RateIngestionService fetches token prices and stores token/fiat rates.
//
// Only one ingestion runs at a time per service instance; overlapping calls
// return AlreadyInProgress immediately. The guard lives in process memory,
// so separate processes do not exclude each other.
type RateIngestionService struct {
	inProgress atomic.Bool

	tokens     TokenLister
	prices     TokenPriceReader
	fiat       FiatRateReader
	writer     TokenRateWriter
	cache      TokenRateCache
	currencies []string
	metrics    *metrics.Wallet
	now        func() time.Time
}

// NewRateIngestionService creates the ingestion job. fiat may be nil, in which case only USD
// rates are produced. An empty currencies list keeps every currency the exchanger reports.
func NewRateIngestionService(
	tokens TokenLister,
	prices TokenPriceReader,
	fiat FiatRateReader,
	writer TokenRateWriter,
	cache TokenRateCache,
	currencies []string,
	m *metrics.Wallet,
) *RateIngestionService {
	normalized := make([]string, 0, len(currencies))
	for _, c := range currencies {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			normalized = append(normalized, c)
		}
	}

	return &RateIngestionService{
		tokens:     tokens,
		prices:     prices,
		fiat:       fiat,
		writer:     writer,
		cache:      cache,
		currencies: normalized,
		metrics:    m,
		now:        time.Now,
	}
}

// Trigger runs one ingestion unless another is already running.
func (s *RateIngestionService) Trigger(ctx context.Context) (result models.IngestionResult) {
	if !s.inProgress.CompareAndSwap(false, true) {
		s.metrics.Ingestion(string(models.IngestionAlreadyInProgress))
		return models.IngestionResult{
			Status:  models.IngestionAlreadyInProgress,
			Message: "rate ingestion already in progress",
		}
	}
	defer s.inProgress.Store(false)

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("rate ingestion panicked", "panic", r)
			result = models.IngestionResult{
				Status:  models.IngestionInternalError,
				Message: "internal error during rate ingestion",
			}
		}
		s.metrics.Ingestion(string(result.Status))
	}()

	rates, err := s.ingest(ctx)
	switch {
	case errors.Is(err, facades.ErrSourceFailure):
		logger.Log.Warnw("rate source failure", "error", err)
		return models.IngestionResult{Status: models.IngestionSourceFailure, Message: err.Error()}
	case err != nil:
		logger.Log.Errorw("rate ingestion failed", "error", err)
		return models.IngestionResult{Status: models.IngestionInternalError, Message: "internal error during rate ingestion"}
	}

	logger.Log.Infow("rate ingestion completed", "rates", len(rates))
	return models.IngestionResult{Status: models.IngestionSuccess, Results: rates}
}

func (s *RateIngestionService) ingest(ctx context.Context) ([]models.TokenRate, error) {
	tokens := s.tokens.List()

	ids := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.PriceID != "" {
			ids = append(ids, t.PriceID)
		}
	}
	if len(ids) == 0 {
		return nil, errors.New("no token in the registry has a price id")
	}

	prices, err := s.prices.GetUSDPrices(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%w: price source returned no prices", facades.ErrSourceFailure)
	}

	fiat, err := s.fiatRates(ctx)
	if err != nil {
		return nil, err
	}

	fetchedAt := s.now().UTC()
	rates := make([]models.TokenRate, 0, len(prices)*len(fiat))
	for _, t := range tokens {
		usd, ok := prices[t.PriceID]
		if !ok || t.PriceID == "" {
			logger.Log.Warnw("no price for token", "symbol", t.Symbol, "price_id", t.PriceID)
			continue
		}
		for currency, perUSD := range fiat {
			rates = append(rates, models.TokenRate{
				Symbol:    t.Symbol,
				Currency:  currency,
				Rate:      usd.Mul(perUSD),
				FetchedAt: fetchedAt,
			})
		}
	}

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Symbol != rates[j].Symbol {
			return rates[i].Symbol < rates[j].Symbol
		}
		return rates[i].Currency < rates[j].Currency
	})

	if err := s.writer.SaveAll(ctx, rates); err != nil {
		return nil, fmt.Errorf("save rates: %w", err)
	}

	for _, r := range rates {
		if err := s.cache.Set(ctx, r); err != nil {
			logger.Log.Warnw("failed to cache rate", "symbol", r.Symbol, "currency", r.Currency, "error", err)
		}
	}

	return rates, nil
}

// fiatRates returns units per USD for every wanted currency. USD is always present.
func (s *RateIngestionService) fiatRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{baseCurrency: decimal.NewFromInt(1)}
	if s.fiat == nil {
		return out, nil
	}

	raw, err := s.fiat.GetFiatRates(ctx)
	if err != nil {
		return nil, err
	}

	// Rebase in case the exchanger quotes against something other than USD.
	base := decimal.NewFromInt(1)
	if usd, ok := raw[baseCurrency]; ok && usd.IsPositive() {
		base = usd
	}

	wanted := s.currencies
	if len(wanted) == 0 {
		for c := range raw {
			wanted = append(wanted, c)
		}
	}

	for _, c := range wanted {
		if c == baseCurrency {
			continue
		}
		rate, ok := raw[c]
		if !ok {
			logger.Log.Warnw("exchanger has no rate for currency", "currency", c)
			continue
		}
		out[c] = rate.Div(base)
	}
	return out, nil
}

// RateQueryService serves the latest stored rate for a pair.
type RateQueryService struct {
	cache  TokenRateCache
	reader TokenRateReader
}

func NewRateQueryService(cache TokenRateCache, reader TokenRateReader) *RateQueryService {
	return &RateQueryService{cache: cache, reader: reader}
}

// GetRate reads the cache first and falls back to the database, refilling the cache.
func (s *RateQueryService) GetRate(ctx context.Context, symbol, currency string) (*models.TokenRate, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	currency = strings.ToUpper(strings.TrimSpace(currency))

	rate, err := s.cache.Get(ctx, symbol, currency)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, repositories.ErrRateNotFound) {
		logger.Log.Warnw("rate cache read failed", "symbol", symbol, "currency", currency, "error", err)
	}

	rate, err = s.reader.Get(ctx, symbol, currency)
	if errors.Is(err, repositories.ErrRateNotFound) {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, *rate); err != nil {
		logger.Log.Warnw("failed to cache rate", "symbol", symbol, "currency", currency, "error", err)
	}
	return rate, nil
}

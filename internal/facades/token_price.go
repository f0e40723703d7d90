package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/shopspring/decimal"
)

const (
	DefaultPriceAPIURL = "https://api.coingecko.com/api/v3"
	priceAPIKeyHeader  = "x-cg-pro-api-key"
	maxPriceBody       = 1 << 20
)

// TokenPriceHTTPFacade reads token prices from a CoinGecko compatible /simple/price endpoint.
type TokenPriceHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewTokenPriceHTTPFacade(client *http.Client, baseURL, apiKey string) *TokenPriceHTTPFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultPriceAPIURL
	}
	return &TokenPriceHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type priceErrorBody struct {
	Error  string `json:"error"`
	Status *struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}

// GetUSDPrices returns the USD price per price id. Ids unknown to the source are absent from the map.
func (f *TokenPriceHTTPFacade) GetUSDPrices(ctx context.Context, priceIDs []string) (map[string]decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(priceIDs, ","))
	q.Set("vs_currencies", "usd")
	q.Set("precision", "full")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/simple/price?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set(priceAPIKeyHeader, f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("price request failed", "ids", priceIDs, "error", err)
		return nil, fmt.Errorf("price request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPriceBody))
	if err != nil {
		return nil, fmt.Errorf("read price response: %w", err)
	}

	logger.Log.Infow("price response",
		"status", resp.StatusCode,
		"ids", priceIDs,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: price api status %d: %s", ErrSourceFailure, resp.StatusCode, errorMessage(body))
	}

	var errBody priceErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Error != "" {
			return nil, fmt.Errorf("%w: price api: %s", ErrSourceFailure, errBody.Error)
		}
		if errBody.Status != nil && errBody.Status.ErrorCode != 0 {
			return nil, fmt.Errorf("%w: price api: %s", ErrSourceFailure, errBody.Status.ErrorMessage)
		}
	}

	var payload map[string]map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed price payload: %v", ErrSourceFailure, err)
	}

	prices := make(map[string]decimal.Decimal, len(payload))
	for id, quotes := range payload {
		raw, ok := quotes["usd"]
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(strings.Trim(string(raw), `"`))
		if err != nil {
			return nil, fmt.Errorf("%w: price for %s: %v", ErrSourceFailure, id, err)
		}
		prices[id] = price
	}

	return prices, nil
}

func errorMessage(body []byte) string {
	var errBody priceErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Error != "" {
			return errBody.Error
		}
		if errBody.Status != nil && errBody.Status.ErrorMessage != "" {
			return errBody.Status.ErrorMessage
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return strings.TrimSpace(string(body))
}

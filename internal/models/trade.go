package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a settled swap between two tokens. Trades are written by the
// trade execution flow and are only read by this service.
// swagger:model Trade
type Trade struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"userId" db:"user_id"`
	FromAmount   decimal.Decimal `json:"fromAmount" db:"from_amount" swaggertype:"string"`
	FromToken    string          `json:"fromToken" db:"from_token"`
	ToAmount     decimal.Decimal `json:"toAmount" db:"to_amount" swaggertype:"string"`
	ToToken      string          `json:"toToken" db:"to_token"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" db:"exchange_rate" swaggertype:"string"`
	TxHash       *string         `json:"txHash,omitempty" db:"tx_hash"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty" db:"completed_at"`
}

// TradesResponse represents a list of a user's recent trades
// swagger:model TradesResponse
type TradesResponse struct {
	// Most recent completed trades, newest first
	Trades []Trade `json:"trades"`
}

// TradesErrorResponse represents an error response when listing trades
// swagger:model TradesErrorResponse
type TradesErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

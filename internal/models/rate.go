package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenRate is the price of one whole token in a fiat currency.
// swagger:model TokenRate
type TokenRate struct {
	Symbol    string          `json:"symbol" db:"symbol"`                  // Token symbol, e.g. USDC
	Currency  string          `json:"currency" db:"currency"`              // Fiat currency, e.g. USD
	Rate      decimal.Decimal `json:"rate" db:"rate" swaggertype:"string"` // Fiat units per token
	FetchedAt time.Time       `json:"fetchedAt" db:"fetched_at"`           // When the price source was read
}

// IngestionStatus is the outcome of a rate ingestion run.
type IngestionStatus string

// Ingestion outcomes
const (
	IngestionSuccess           IngestionStatus = "Success"
	IngestionAlreadyInProgress IngestionStatus = "AlreadyInProgress"
	IngestionSourceFailure     IngestionStatus = "SourceFailure"
	IngestionInternalError     IngestionStatus = "InternalError"
)

// IngestionResult is returned by every rate ingestion trigger.
type IngestionResult struct {
	Status  IngestionStatus
	Results []TokenRate
	Message string
}

// TokenRateResponse represents the response of the rate ingestion endpoint
// swagger:model TokenRateResponse
type TokenRateResponse struct {
	// Whether the ingestion ran successfully
	Success bool `json:"success"`

	// Ingested rates, present on success
	Results []TokenRate `json:"results,omitempty"`

	// Failure message, present on failure
	// example: Rate ingestion already in progress
	Message string `json:"message,omitempty"`
}

// RateErrorResponse represents an error response when reading a cached rate
// swagger:model RateErrorResponse
type RateErrorResponse struct {
	// Error message
	// example: Rate not found
	Error string `json:"error"`
}

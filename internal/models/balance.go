package models

// BalanceResponse represents token balances of one address
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Owner address
	// example: 0x71C7656EC7ab88b098defB751B7401B5f6d8976F
	Address string `json:"address"`

	// Balance per token symbol in whole tokens
	// example: {"USDC":"12.34","DAI":"0"}
	Balances map[string]string `json:"balances"`
}

// BalanceErrorResponse represents an error response when fetching balances
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// example: Invalid address
	Error string `json:"error"`
}

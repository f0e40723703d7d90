package models

// KeyExportResponse carries a member's private key on its single permitted export
// swagger:model KeyExportResponse
type KeyExportResponse struct {
	// Hex encoded secp256k1 private key
	PrivateKey string `json:"privateKey"`
}

// KeyExportErrorResponse represents an error response for key export
// swagger:model KeyExportErrorResponse
type KeyExportErrorResponse struct {
	// Error message
	// example: Private key already exported
	Error string `json:"error"`
}

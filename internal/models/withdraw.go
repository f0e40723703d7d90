package models

// Outcome is the top-level result of a withdrawal.
type Outcome string

// Withdrawal outcomes
const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// FailureKind names the specific reason an operation did not succeed.
type FailureKind string

// Failure kinds shared by the wallet operations.
const (
	KindInvalidRequest          FailureKind = "InvalidRequest"
	KindUserNotFound            FailureKind = "UserNotFound"
	KindFamilyNotConfigured     FailureKind = "FamilyNotConfigured"
	KindRecipientAddressMissing FailureKind = "RecipientAddressMissing"
	KindRPCConfigurationError   FailureKind = "RpcConfigurationError"
	KindKeyUnavailable          FailureKind = "KeyUnavailable"
	KindDecryptionFailed        FailureKind = "DecryptionFailed"
	KindRPCError                FailureKind = "RpcError"
	KindContractCallError       FailureKind = "ContractCallError"
	KindTransactionTimeout      FailureKind = "TransactionTimeout"
	KindOnChainFailure          FailureKind = "OnChainFailure"
	KindInvalidAmount           FailureKind = "InvalidAmount"
	KindWithdrawalInProgress    FailureKind = "WithdrawalInProgress"
	KindInternalError           FailureKind = "InternalError"
)

// WithdrawalResult is the transient outcome of one withdrawal attempt.
// It is never persisted here; the ledger writer consumes the published event.
type WithdrawalResult struct {
	Outcome     Outcome     `json:"outcome"`
	Kind        FailureKind `json:"kind,omitempty"`
	TxHash      string      `json:"txHash,omitempty"`
	BlockNumber uint64      `json:"blockNumber,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// Succeeded reports whether the transfer was mined successfully.
func (r WithdrawalResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// WithdrawalSucceeded builds a successful result.
func WithdrawalSucceeded(txHash string, blockNumber uint64) WithdrawalResult {
	return WithdrawalResult{Outcome: OutcomeSuccess, TxHash: txHash, BlockNumber: blockNumber}
}

// WithdrawalFailed builds a failed result of the given kind.
func WithdrawalFailed(kind FailureKind, message string) WithdrawalResult {
	return WithdrawalResult{Outcome: OutcomeError, Kind: kind, Message: message}
}

// WithdrawRequest represents the JSON body for withdrawing funds to a member's address
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Member receiving the funds
	// required: true
	// example: ckx1family0member
	UserID string `json:"userId"`

	// Amount in whole tokens of the family currency
	// required: true
	// example: 1.5
	Amount string `json:"amount"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Always true
	Success bool `json:"success"`

	// Transaction hash
	// example: 0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060
	TxHash string `json:"txHash"`

	// Block the transfer was mined in
	// example: 19000000
	BlockNumber uint64 `json:"blockNumber"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Failure kind
	// example: InvalidAmount
	Error FailureKind `json:"error"`

	// Human readable message
	// example: amount has more fractional digits than the token supports
	Message string `json:"message"`

	// Transaction hash when the transfer was submitted
	TxHash string `json:"txHash,omitempty"`
}

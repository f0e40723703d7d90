package models

// WithdrawalEvent is published after every submitted withdrawal so the ledger
// service can record it. Amount is expressed in whole tokens.
type WithdrawalEvent struct {
	EventID     string      `json:"event_id"`     // Unique identifier of the event
	Timestamp   int64       `json:"timestamp"`    // Unix timestamp (seconds) of the outcome
	UserID      string      `json:"user_id"`      // Member who received the funds
	FamilyID    string      `json:"family_id"`    // Family wallet that paid
	Token       string      `json:"token"`        // Settlement token contract
	Amount      string      `json:"amount"`       // Requested amount in whole tokens
	Recipient   string      `json:"recipient"`    // Destination address
	TxHash      string      `json:"tx_hash"`      // Submitted transaction hash
	BlockNumber uint64      `json:"block_number"` // Block number, zero when not mined
	Outcome     Outcome     `json:"outcome"`      // success or error
	Kind        FailureKind `json:"kind,omitempty"`
}

package models

import (
	"time"
)

// UserDB represents a family member record in the database.
type UserDB struct {
	UserID               string    `json:"id" db:"id"`                                         // Primary key
	FamilyID             string    `json:"family_id" db:"family_id"`                           // Household the member belongs to
	Address              *string   `json:"address" db:"address"`                               // Public on-chain address, nil until onboarded
	EncryptedPrivateKey  *string   `json:"-" db:"encrypted_private_key"`                       // Custodial key blob, nil when not custodial
	DEK                  *string   `json:"-" db:"dek"`                                         // Wrapped data-encryption key for EncryptedPrivateKey
	PrivateKeyDownloaded bool      `json:"private_key_downloaded" db:"private_key_downloaded"` // One-way export latch
	CreatedAt            time.Time `json:"created_at" db:"created_at"`                         // Creation timestamp
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`                         // Last update timestamp
}

// HasKeyMaterial reports whether both halves of the custodial key are stored.
func (u *UserDB) HasKeyMaterial() bool {
	return u.EncryptedPrivateKey != nil && *u.EncryptedPrivateKey != "" &&
		u.DEK != nil && *u.DEK != ""
}

// HasAddress reports whether the member has an on-chain address to receive funds.
func (u *UserDB) HasAddress() bool {
	return u.Address != nil && *u.Address != ""
}

// Currency is the settlement currency configured for a family.
type Currency string

// Supported settlement currencies
const (
	CurrencyETH  Currency = "ETH"
	CurrencyUSDC Currency = "USDC"
	CurrencyUSDT Currency = "USDT"
	CurrencyDAI  Currency = "DAI"
)

// FamilyDB represents a household record in the database.
type FamilyDB struct {
	FamilyID        string    `json:"id" db:"id"`                             // Primary key
	Currency        Currency  `json:"currency" db:"currency"`                 // Settlement currency
	CurrencyAddress *string   `json:"currency_address" db:"currency_address"` // Token contract, nil for native currency
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// HasCurrencyAddress reports whether a token contract is configured for settlement.
func (f *FamilyDB) HasCurrencyAddress() bool {
	return f.CurrencyAddress != nil && *f.CurrencyAddress != ""
}

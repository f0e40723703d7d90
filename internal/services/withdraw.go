package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-family-wallet/internal/chain"
	"github.com/sbilibin2017/gw-family-wallet/internal/keyvault"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
	"github.com/sbilibin2017/gw-family-wallet/internal/units"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw_test.go -package=services

// UserReader loads users by id. A missing user is (nil, nil).
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.UserDB, error)
}

// FamilyReader loads families by id. A missing family is (nil, nil).
type FamilyReader interface {
	GetByID(ctx context.Context, familyID string) (*models.FamilyDB, error)
}

// KeyDecrypter opens stored key material.
type KeyDecrypter interface {
	Decrypt(ctx context.Context, encryptedBlob, wrappedDEK *string) (*keyvault.SecretKey, error)
}

// TokenLookup resolves registry tokens by contract address.
type TokenLookup interface {
	ByAddress(address string) (models.TokenDescriptor, bool)
}

// TransferExecutor signs, submits and confirms ERC-20 transfers.
type TransferExecutor interface {
	NewSigner(ctx context.Context, rawKey []byte) (*chain.Signer, error)
	Decimals(ctx context.Context, contract common.Address) (uint8, error)
	Transfer(ctx context.Context, s *chain.Signer, contract, recipient common.Address, amount *big.Int) (*chain.PendingTx, error)
	Confirm(ctx context.Context, p *chain.PendingTx) (*chain.Receipt, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WithdrawService moves the family settlement token to a member address.
//
// It performs at most one transfer per call and never retries. Callers must
// serialize calls per family, see SerializedWithdrawService.
type WithdrawService struct {
	users       UserReader
	families    FamilyReader
	vault       KeyDecrypter
	chain       TransferExecutor
	tokens      TokenLookup
	kafkaWriter KafkaWriter
	metrics     *metrics.Wallet
}

// NewWithdrawService creates a new WithdrawService. kafkaWriter and m may be nil.
func NewWithdrawService(
	users UserReader,
	families FamilyReader,
	vault KeyDecrypter,
	executor TransferExecutor,
	tokens TokenLookup,
	kafkaWriter KafkaWriter,
	m *metrics.Wallet,
) *WithdrawService {
	return &WithdrawService{
		users:       users,
		families:    families,
		vault:       vault,
		chain:       executor,
		tokens:      tokens,
		kafkaWriter: kafkaWriter,
		metrics:     m,
	}
}

// withdrawal carries the resolved state of one call.
type withdrawal struct {
	user      *models.UserDB
	family    *models.FamilyDB
	amount    string
	contract  common.Address
	recipient common.Address
}

// Withdraw validates the request, then transfers amount whole tokens to the user's address.
// Every failure is returned as a typed result.
func (s *WithdrawService) Withdraw(ctx context.Context, userID, amount string) models.WithdrawalResult {
	started := time.Now()

	w, result, ok := s.prepare(ctx, strings.TrimSpace(userID), strings.TrimSpace(amount))
	if ok {
		result = s.execute(ctx, w)
	}

	s.metrics.ObserveWithdrawal(string(result.Outcome), string(result.Kind), started)
	if w != nil && result.TxHash != "" {
		s.publishWithdrawal(ctx, w, result)
	}

	if result.Succeeded() {
		logger.Log.Infow("withdrawal confirmed", "user_id", userID, "tx_hash", result.TxHash, "block", result.BlockNumber)
	} else {
		logger.Log.Errorw("withdrawal failed", "user_id", userID, "kind", result.Kind, "tx_hash", result.TxHash, "message", result.Message)
	}
	return result
}

// prepare runs every check that needs no key material and no network call.
func (s *WithdrawService) prepare(ctx context.Context, userID, amount string) (*withdrawal, models.WithdrawalResult, bool) {
	if userID == "" || amount == "" {
		return nil, models.WithdrawalFailed(models.KindInvalidRequest, "userId and amount are required"), false
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, models.WithdrawalFailed(models.KindInternalError, "failed to load user"), false
	}
	if user == nil {
		return nil, models.WithdrawalFailed(models.KindUserNotFound, "user not found"), false
	}

	family, err := s.families.GetByID(ctx, user.FamilyID)
	if err != nil {
		logger.Log.Errorw("failed to load family", "family_id", user.FamilyID, "error", err)
		return nil, models.WithdrawalFailed(models.KindInternalError, "failed to load family"), false
	}
	if family == nil || !family.HasCurrencyAddress() || !user.HasKeyMaterial() {
		return nil, models.WithdrawalFailed(models.KindFamilyNotConfigured, "family wallet is not configured for withdrawals"), false
	}
	if !common.IsHexAddress(*family.CurrencyAddress) {
		return nil, models.WithdrawalFailed(models.KindFamilyNotConfigured, "family currency address is malformed"), false
	}

	if !user.HasAddress() {
		return nil, models.WithdrawalFailed(models.KindRecipientAddressMissing, "user has no on-chain address"), false
	}
	if !common.IsHexAddress(*user.Address) {
		return nil, models.WithdrawalFailed(models.KindRecipientAddressMissing, "user address is malformed"), false
	}

	if _, err := units.Validate(amount); err != nil {
		return nil, models.WithdrawalFailed(models.KindInvalidAmount, err.Error()), false
	}
	if token, ok := s.tokens.ByAddress(*family.CurrencyAddress); ok {
		if _, err := units.Parse(amount, token.Decimals); err != nil {
			return nil, models.WithdrawalFailed(models.KindInvalidAmount, err.Error()), false
		}
	}

	return &withdrawal{
		user:      user,
		family:    family,
		amount:    amount,
		contract:  common.HexToAddress(*family.CurrencyAddress),
		recipient: common.HexToAddress(*user.Address),
	}, models.WithdrawalResult{}, true
}

func (s *WithdrawService) execute(ctx context.Context, w *withdrawal) models.WithdrawalResult {
	signer, failed := s.newSigner(ctx, w.user)
	if failed != nil {
		return *failed
	}
	defer signer.Destroy()

	// Decimals are read from the contract on every call since the family currency can change.
	decimals, err := s.chain.Decimals(ctx, w.contract)
	if err != nil {
		return chainFailure(err)
	}

	value, err := units.Parse(w.amount, decimals)
	if err != nil {
		return models.WithdrawalFailed(models.KindInvalidAmount, err.Error())
	}

	pending, err := s.chain.Transfer(ctx, signer, w.contract, w.recipient, value)
	if err != nil {
		result := chainFailure(err)
		if pending != nil {
			result.TxHash = pending.Hash.Hex()
		}
		return result
	}

	receipt, err := s.chain.Confirm(ctx, pending)
	switch {
	case errors.Is(err, chain.ErrTransactionReverted):
		result := models.WithdrawalFailed(models.KindOnChainFailure, "transaction reverted on chain")
		result.TxHash = pending.Hash.Hex()
		if receipt != nil {
			result.BlockNumber = receipt.BlockNumber
		}
		return result
	case errors.Is(err, chain.ErrTransactionTimeout):
		result := models.WithdrawalFailed(models.KindTransactionTimeout, "transaction submitted but not confirmed in time")
		result.TxHash = pending.Hash.Hex()
		return result
	case err != nil:
		result := chainFailure(err)
		result.TxHash = pending.Hash.Hex()
		return result
	}

	return models.WithdrawalSucceeded(receipt.TxHash, receipt.BlockNumber)
}

// newSigner decrypts the key and builds a signer. The decrypted bytes are
// wiped before it returns on every path.
func (s *WithdrawService) newSigner(ctx context.Context, user *models.UserDB) (*chain.Signer, *models.WithdrawalResult) {
	key, err := s.vault.Decrypt(ctx, user.EncryptedPrivateKey, user.DEK)
	if err != nil {
		logger.Log.Errorw("failed to decrypt signer key", "user_id", user.UserID, "error", err)
		kind := models.KindDecryptionFailed
		if errors.Is(err, keyvault.ErrKeyUnavailable) {
			kind = models.KindKeyUnavailable
		}
		failed := models.WithdrawalFailed(kind, "signer key unavailable")
		return nil, &failed
	}
	defer key.Destroy()

	signer, err := s.chain.NewSigner(ctx, key.Bytes())
	key.Destroy()
	if err == nil {
		return signer, nil
	}

	var failed models.WithdrawalResult
	switch {
	case errors.Is(err, chain.ErrRPCNotConfigured):
		failed = models.WithdrawalFailed(models.KindRPCConfigurationError, "rpc endpoint is not configured")
	case errors.Is(err, chain.ErrInvalidKey):
		failed = models.WithdrawalFailed(models.KindDecryptionFailed, "decrypted key is not a valid signing key")
	default:
		failed = chainFailure(err)
	}
	return nil, &failed
}

func chainFailure(err error) models.WithdrawalResult {
	switch {
	case errors.Is(err, chain.ErrRPCNotConfigured):
		return models.WithdrawalFailed(models.KindRPCConfigurationError, "rpc endpoint is not configured")
	case errors.Is(err, chain.ErrContractCall):
		return models.WithdrawalFailed(models.KindContractCallError, err.Error())
	default:
		return models.WithdrawalFailed(models.KindRPCError, err.Error())
	}
}

// publishWithdrawal publishes a submitted withdrawal to Kafka for the ledger writer.
func (s *WithdrawService) publishWithdrawal(ctx context.Context, w *withdrawal, result models.WithdrawalResult) {
	event := models.WithdrawalEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      w.user.UserID,
		FamilyID:    w.family.FamilyID,
		Token:       w.contract.Hex(),
		Amount:      w.amount,
		Recipient:   w.recipient.Hex(),
		TxHash:      result.TxHash,
		BlockNumber: result.BlockNumber,
		Outcome:     result.Outcome,
		Kind:        result.Kind,
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "tx_hash", event.TxHash)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal withdrawal for Kafka", "tx_hash", event.TxHash, "error", err)
		return
	}

	// The request context may already be done once a long confirmation wait ends.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.FamilyID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(pubCtx, msg); err != nil {
		logger.Log.Errorw("Failed to publish withdrawal to Kafka", "tx_hash", event.TxHash, "error", err)
	} else {
		logger.Log.Infow("Withdrawal published to Kafka", "event_id", event.EventID, "tx_hash", event.TxHash, "outcome", event.Outcome)
	}
}


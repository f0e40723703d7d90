package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-family-wallet/internal/keyvault"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/metrics"
)

//go:generate mockgen -source=key_export.go -destination=mock_key_export_test.go -package=services

var (
	ErrKeyAlreadyExported = errors.New("private key was already exported")
	ErrKeyNotProvisioned  = errors.New("user has no custodial key")
	ErrKeyDecryption      = errors.New("private key could not be decrypted")
)

// KeyDownloadClaimer flips the one-way export latch. It reports false if the latch was already set.
type KeyDownloadClaimer interface {
	ClaimKeyDownload(ctx context.Context, userID string) (bool, error)
}

// KeyExportService hands a custodial key to its owner exactly once.
type KeyExportService struct {
	users   UserReader
	claimer KeyDownloadClaimer
	vault   KeyDecrypter
	metrics *metrics.Wallet
}

func NewKeyExportService(users UserReader, claimer KeyDownloadClaimer, vault KeyDecrypter, m *metrics.Wallet) *KeyExportService {
	return &KeyExportService{users: users, claimer: claimer, vault: vault, metrics: m}
}

// Export returns the hex encoded private key and sets the export latch.
// Nothing is decrypted for a user whose latch is already set. The latch is
// claimed with a conditional update, so of two concurrent exports only one
// returns the key.
func (s *KeyExportService) Export(ctx context.Context, userID string) (key string, err error) {
	defer func() {
		switch {
		case err == nil:
			s.metrics.KeyExport("exported")
		case errors.Is(err, ErrKeyAlreadyExported):
			s.metrics.KeyExport("refused")
		default:
			s.metrics.KeyExport("error")
		}
	}()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.PrivateKeyDownloaded {
		return "", ErrKeyAlreadyExported
	}
	if !user.HasKeyMaterial() {
		return "", ErrKeyNotProvisioned
	}

	secret, err := s.vault.Decrypt(ctx, user.EncryptedPrivateKey, user.DEK)
	if err != nil {
		logger.Log.Errorw("failed to decrypt key for export", "user_id", userID, "error", err)
		if errors.Is(err, keyvault.ErrKeyUnavailable) {
			return "", ErrKeyNotProvisioned
		}
		return "", fmt.Errorf("%w: %v", ErrKeyDecryption, err)
	}
	defer secret.Destroy()

	claimed, err := s.claimer.ClaimKeyDownload(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to claim key download", "user_id", userID, "error", err)
		return "", err
	}
	if !claimed {
		return "", ErrKeyAlreadyExported
	}

	logger.Log.Infow("private key exported", "user_id", userID)
	return "0x" + hex.EncodeToString(secret.Bytes()), nil
}

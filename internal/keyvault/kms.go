package keyvault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// DEKSize is the length of a data-encryption key.
const DEKSize = chacha20poly1305.KeySize

//go:generate mockgen -source=kms.go -destination=mock_kms_test.go -package=keyvault

// KMS unwraps data-encryption keys and decrypts records with them.
type KMS interface {
	Unwrap(ctx context.Context, wrappedDEK []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext, dek []byte) ([]byte, error)
}

var errCiphertextTooShort = errors.New("ciphertext too short")

// LocalKMS is an in-process KMS keyed by a 32-byte master key.
// DEKs are wrapped with AES-256-GCM, records are sealed with XChaCha20-Poly1305.
// Both envelopes are nonce||ciphertext.
type LocalKMS struct {
	master cipher.AEAD
}

// NewLocalKMS builds a LocalKMS from a base64 encoded 32-byte master key.
func NewLocalKMS(masterKeyB64 string) (*LocalKMS, error) {
	key, err := base64.StdEncoding.DecodeString(masterKeyB64)
	if err != nil {
		return nil, fmt.Errorf("decode master key: %w", err)
	}
	defer wipe(key)

	if len(key) != 32 {
		return nil, fmt.Errorf("invalid master key length: must be 32 bytes for AES-256, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &LocalKMS{master: gcm}, nil
}

// GenerateMasterKey returns a random base64 encoded master key.
func GenerateMasterKey() (string, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// GenerateDEK returns a fresh random data-encryption key.
func GenerateDEK() ([]byte, error) {
	dek := make([]byte, DEKSize)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, fmt.Errorf("failed to generate dek: %w", err)
	}
	return dek, nil
}

// WrapDEK encrypts dek under the master key.
func (k *LocalKMS) WrapDEK(_ context.Context, dek []byte) ([]byte, error) {
	nonce := make([]byte, k.master.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return k.master.Seal(nonce, nonce, dek, nil), nil
}

func (k *LocalKMS) Unwrap(_ context.Context, wrappedDEK []byte) ([]byte, error) {
	nonceSize := k.master.NonceSize()
	if len(wrappedDEK) < nonceSize {
		return nil, errCiphertextTooShort
	}

	nonce, ct := wrappedDEK[:nonceSize], wrappedDEK[nonceSize:]
	dek, err := k.master.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap dek: %w", err)
	}
	if len(dek) != DEKSize {
		wipe(dek)
		return nil, fmt.Errorf("unwrap dek: unexpected length %d", len(dek))
	}
	return dek, nil
}

// Seal encrypts plaintext with dek.
func (k *LocalKMS) Seal(_ context.Context, plaintext, dek []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(dek)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("rand nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (k *LocalKMS) Decrypt(_ context.Context, ciphertext, dek []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(dek)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	if len(ciphertext) < chacha20poly1305.NonceSizeX {
		return nil, errCiphertextTooShort
	}

	nonce, ct := ciphertext[:chacha20poly1305.NonceSizeX], ciphertext[chacha20poly1305.NonceSizeX:]
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	return plain, nil
}

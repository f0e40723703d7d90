// Package keyvault decrypts custodial private keys stored as DEK-encrypted blobs.
//
// The vault only decrypts. Export policy such as the one-way download latch is
// enforced by callers before they ask for a key.
package keyvault

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrKeyUnavailable is returned when the blob or the wrapped DEK is missing.
	ErrKeyUnavailable = errors.New("key material unavailable")
	// ErrDecryptionFailed is returned when the KMS unwrap or the record decrypt fails.
	ErrDecryptionFailed = errors.New("key decryption failed")
)

type Vault struct {
	kms KMS
}

func NewVault(kms KMS) *Vault {
	return &Vault{kms: kms}
}

// Decrypt unwraps the DEK and opens the key blob. Both values are base64 encoded.
// Nothing is sent to the KMS unless both are present.
func (v *Vault) Decrypt(ctx context.Context, encryptedBlob, wrappedDEK *string) (*SecretKey, error) {
	if encryptedBlob == nil || *encryptedBlob == "" || wrappedDEK == nil || *wrappedDEK == "" {
		return nil, ErrKeyUnavailable
	}

	blob, err := base64.StdEncoding.DecodeString(*encryptedBlob)
	if err != nil {
		return nil, fmt.Errorf("%w: decode key blob: %v", ErrDecryptionFailed, err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(*wrappedDEK)
	if err != nil {
		return nil, fmt.Errorf("%w: decode dek: %v", ErrDecryptionFailed, err)
	}

	dek, err := v.kms.Unwrap(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	defer wipe(dek)

	raw, err := v.kms.Decrypt(ctx, blob, dek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return NewSecretKey(raw), nil
}

// Sealer produces the stored form of a key. Implemented by LocalKMS.
type Sealer interface {
	WrapDEK(ctx context.Context, dek []byte) ([]byte, error)
	Seal(ctx context.Context, plaintext, dek []byte) ([]byte, error)
}

// Encrypt seals raw under a fresh DEK and returns the base64 blob and wrapped DEK.
func Encrypt(ctx context.Context, s Sealer, raw []byte) (blob, wrappedDEK string, err error) {
	dek, err := GenerateDEK()
	if err != nil {
		return "", "", err
	}
	defer wipe(dek)

	ct, err := s.Seal(ctx, raw, dek)
	if err != nil {
		return "", "", err
	}
	wrapped, err := s.WrapDEK(ctx, dek)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(ct), base64.StdEncoding.EncodeToString(wrapped), nil
}

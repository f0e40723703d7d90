package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs transactions for one account on one chain.
// Destroy must be called when the signer is no longer needed.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	signer  types.Signer
}

// NewSigner parses a raw secp256k1 key and binds it to the endpoint's chain id.
// The caller keeps ownership of rawKey and may wipe it as soon as this returns.
func (c *Client) NewSigner(ctx context.Context, rawKey []byte) (*Signer, error) {
	if c.backend == nil {
		return nil, ErrRPCNotConfigured
	}

	key, err := crypto.ToECDSA(rawKey)
	if err != nil {
		return nil, ErrInvalidKey
	}

	chainID, err := c.chainID(ctx)
	if err != nil {
		zeroKey(key)
		return nil, err
	}

	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
	}, nil
}

// Address is the account the signer controls.
func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) sign(tx *types.Transaction) (*types.Transaction, error) {
	if s.key == nil {
		return nil, fmt.Errorf("%w: signer destroyed", ErrInvalidKey)
	}
	return types.SignTx(tx, s.signer, s.key)
}

// Destroy zeroes the private scalar. Safe to call more than once.
func (s *Signer) Destroy() {
	if s == nil || s.key == nil {
		return
	}
	zeroKey(s.key)
	s.key = nil
}

func zeroKey(key *ecdsa.PrivateKey) {
	b := key.D.Bits()
	for i := range b {
		b[i] = 0
	}
	key.D.SetInt64(0)
}

// Package chain is a narrow adapter over an EVM JSON-RPC provider:
// ERC-20 reads, transfer submission and receipt confirmation.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
)

const (
	DefaultConfirmTimeout = 2 * time.Minute
	DefaultPollInterval   = 2 * time.Second
)

//go:generate mockgen -source=client.go -destination=mock_client_test.go -package=chain

// Backend is the subset of the JSON-RPC API the client uses. *ethclient.Client implements it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Config struct {
	URL            string
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Client talks to a single RPC endpoint. A Client without a backend
// reports ErrRPCNotConfigured from every operation.
type Client struct {
	backend Backend
	cfg     Config

	mu            sync.Mutex
	cachedChainID *big.Int
}

// Dial connects to cfg.URL. An empty URL yields an unconfigured client, not an error.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		logger.Log.Warnw("rpc endpoint not configured, chain operations are disabled")
		return NewClient(nil, cfg), nil
	}

	ec, err := ethclient.DialContext(ctx, cfg.URL)
	if err != nil {
		c := NewClient(nil, cfg)
		return nil, fmt.Errorf("dial rpc: %s", c.redact(err))
	}
	return NewClient(ec, cfg), nil
}

func NewClient(backend Backend, cfg Config) *Client {
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = DefaultConfirmTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &Client{backend: backend, cfg: cfg}
}

// Configured reports whether an endpoint is available.
func (c *Client) Configured() bool {
	return c.backend != nil
}

func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (c *Client) chainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cachedChainID != nil {
		return c.cachedChainID, nil
	}

	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, c.rpcError("chainId", err)
	}
	c.cachedChainID = id
	return id, nil
}

// PendingTx identifies a submitted transaction.
type PendingTx struct {
	Hash  common.Hash
	From  common.Address
	Nonce uint64
}

type Receipt struct {
	TxHash      string
	BlockNumber uint64
	Success     bool
}

// Transfer signs and submits an ERC-20 transfer. It sends at most once and never retries.
// When SendTransaction fails the signed transaction is still returned, since the node
// may have accepted it before the error surfaced.
func (c *Client) Transfer(ctx context.Context, s *Signer, contract, recipient common.Address, amount *big.Int) (*PendingTx, error) {
	if c.backend == nil {
		return nil, ErrRPCNotConfigured
	}
	if amount == nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: transfer amount must be non-negative", ErrContractCall)
	}
	// The ABI encoder would wrap a wider value modulo 2^256.
	if amount.BitLen() > 256 {
		return nil, fmt.Errorf("%w: transfer amount exceeds uint256", ErrContractCall)
	}

	data, err := packTransfer(recipient, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: pack transfer: %v", ErrContractCall, err)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, s.Address())
	if err != nil {
		return nil, c.rpcError("pendingNonce", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, c.rpcError("gasPrice", err)
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:     s.Address(),
		To:       &contract,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return nil, c.callError("estimateGas", err)
	}
	gas += gas / 10

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &contract,
		Value:    big.NewInt(0),
		Data:     data,
	})

	signed, err := s.sign(tx)
	if err != nil {
		return nil, err
	}

	pending := &PendingTx{Hash: signed.Hash(), From: s.Address(), Nonce: nonce}

	err = c.backend.SendTransaction(ctx, signed)
	logger.Log.Infow("transfer submitted",
		"tx_hash", pending.Hash.Hex(),
		"from", pending.From.Hex(),
		"contract", contract.Hex(),
		"recipient", recipient.Hex(),
		"amount", amount.String(),
		"nonce", nonce,
		"gas", gas,
		"error", err,
	)
	if err != nil {
		return pending, c.rpcError("sendTransaction", err)
	}

	return pending, nil
}

// Confirm polls for the receipt of p until it is mined or the confirm timeout elapses.
// Cancelling ctx abandons the wait only; the transaction stays submitted.
// A mined transaction with failed status is returned together with ErrTransactionReverted.
func (c *Client) Confirm(ctx context.Context, p *PendingTx) (*Receipt, error) {
	if c.backend == nil {
		return nil, ErrRPCNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		r, err := c.backend.TransactionReceipt(ctx, p.Hash)
		switch {
		case err == nil && r != nil:
			return c.receipt(p, r)
		case err != nil && !errors.Is(err, ethereum.NotFound):
			logger.Log.Debugw("receipt poll failed",
				"tx_hash", p.Hash.Hex(),
				"error", c.redact(err),
			)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s not mined: %v", ErrTransactionTimeout, p.Hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) receipt(p *PendingTx, r *types.Receipt) (*Receipt, error) {
	out := &Receipt{
		TxHash:  p.Hash.Hex(),
		Success: r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}

	logger.Log.Infow("transfer mined",
		"tx_hash", out.TxHash,
		"block", out.BlockNumber,
		"success", out.Success,
	)

	if !out.Success {
		return out, ErrTransactionReverted
	}
	return out, nil
}

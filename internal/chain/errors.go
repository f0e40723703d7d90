package chain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrRPCNotConfigured is returned when no RPC endpoint was configured.
	ErrRPCNotConfigured = errors.New("rpc endpoint not configured")
	// ErrRPC is a transport or provider failure.
	ErrRPC = errors.New("rpc error")
	// ErrContractCall is a revert, an empty return or an ABI mismatch.
	ErrContractCall = errors.New("contract call error")
	// ErrTransactionTimeout is returned when a submitted transaction was not mined in time.
	ErrTransactionTimeout = errors.New("transaction confirmation timed out")
	// ErrTransactionReverted is returned when a mined transaction has a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")
	// ErrInvalidKey is returned when key bytes are not a valid secp256k1 scalar.
	ErrInvalidKey = errors.New("invalid signing key")
)

const redactedEndpoint = "[rpc-endpoint]"

// redact renders err without the endpoint URL, which may embed an API key.
func (c *Client) redact(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}

	msg := err.Error()
	if c.cfg.URL != "" {
		msg = strings.ReplaceAll(msg, c.cfg.URL, redactedEndpoint)
	}
	return msg
}

func (c *Client) rpcError(op string, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrRPC, op, c.redact(err))
}

// callError classifies a failed eth_call or eth_estimateGas.
// A JSON-RPC error object means the node executed the call and rejected it.
func (c *Client) callError(op string, err error) error {
	var jsonErr rpc.Error
	if errors.As(err, &jsonErr) {
		return fmt.Errorf("%w: %s: %s", ErrContractCall, op, c.redact(err))
	}
	return c.rpcError(op, err)
}

package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{
		"constant": true,
		"inputs": [{"name": "_owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "balance", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [
			{"name": "_to", "type": "address"},
			{"name": "_value", "type": "uint256"}
		],
		"name": "transfer",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "decimals",
		"outputs": [{"name": "", "type": "uint8"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %v", err))
	}
	return parsed
}

// BalanceOf returns the token balance of owner in base units.
func (c *Client) BalanceOf(ctx context.Context, contract, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, contract, "balanceOf", owner)
	if err != nil {
		return nil, err
	}

	balance, ok := out[0].(*big.Int)
	if !ok || balance == nil {
		return nil, fmt.Errorf("%w: balanceOf: unexpected return type %T", ErrContractCall, out[0])
	}
	return balance, nil
}

// Decimals reads the token precision from the contract.
func (c *Client) Decimals(ctx context.Context, contract common.Address) (uint8, error) {
	out, err := c.call(ctx, contract, "decimals")
	if err != nil {
		return 0, err
	}

	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%w: decimals: unexpected return type %T", ErrContractCall, out[0])
	}
	return decimals, nil
}

// Symbol reads the token ticker from the contract.
func (c *Client) Symbol(ctx context.Context, contract common.Address) (string, error) {
	out, err := c.call(ctx, contract, "symbol")
	if err != nil {
		return "", err
	}

	symbol, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: symbol: unexpected return type %T", ErrContractCall, out[0])
	}
	return symbol, nil
}

func (c *Client) call(ctx context.Context, contract common.Address, method string, args ...any) ([]any, error) {
	if c.backend == nil {
		return nil, ErrRPCNotConfigured
	}

	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: pack %s: %v", ErrContractCall, method, err)
	}

	res, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, c.callError(method, err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %s: empty return from %s", ErrContractCall, method, contract.Hex())
	}

	out, err := erc20ABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %v", ErrContractCall, method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s: no outputs", ErrContractCall, method)
	}
	return out, nil
}

func packTransfer(recipient common.Address, amount *big.Int) ([]byte, error) {
	return erc20ABI.Pack("transfer", recipient, amount)
}

// Package units converts between whole-token decimal strings and integer base units.
package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amounts that are not valid non-negative decimals
// or that cannot be represented with the token's decimals.
var ErrInvalidAmount = errors.New("invalid amount")

const (
	// maxIntegerDigits is the digit count of the largest uint256.
	maxIntegerDigits = 78
	// maxFractionDigits is the largest precision a token can declare.
	maxFractionDigits = math.MaxUint8
	// maxBaseUnitBits is the width of an ERC-20 amount.
	maxBaseUnitBits = 256
)

// Format renders a base-unit amount as a whole-token decimal string.
// Trailing fractional zeros are dropped, so 1500000 with 6 decimals is "1.5".
func Format(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// Validate checks that amount is a well-formed non-negative decimal.
func Validate(amount string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative", ErrInvalidAmount)
	}
	// Bounded before any shift: an exponent like 1e30000000 must not be expanded.
	if int64(d.NumDigits())+int64(d.Exponent()) > maxIntegerDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: more than %d integer digits", ErrInvalidAmount, maxIntegerDigits)
	}
	if -int64(d.Exponent()) > maxFractionDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, maxFractionDigits)
	}
	return d, nil
}

// Parse converts a whole-token decimal string to base units.
// Trailing zeros beyond the token precision are accepted ("1.50" with 1 decimal),
// any other digit beyond it is rejected rather than rounded.
func Parse(amount string, decimals uint8) (*big.Int, error) {
	d, err := Validate(amount)
	if err != nil {
		return nil, err
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, decimals)
	}
	value := shifted.BigInt()
	if value.BitLen() > maxBaseUnitBits {
		return nil, fmt.Errorf("%w: exceeds uint256 with %d decimals", ErrInvalidAmount, decimals)
	}
	return value, nil
}

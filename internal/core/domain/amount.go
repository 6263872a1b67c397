package domain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the precision of the stablecoin every campaign is
// denominated in.
const TokenDecimals = 6

// BasisPoints is the denominator of every fee and progress ratio.
const BasisPoints = 10_000

// InitialTokenSupply is minted to the token owner when a ledger is created.
var InitialTokenSupply = MustParseUnits("1000000")

// Amount is a quantity of token base units (1 USDC = 1_000_000).
type Amount int64

// MaxAmount is the largest balance, supply or total the ledger can hold.
const MaxAmount Amount = math.MaxInt64

// AddAmounts returns a+b for non-negative operands, or ErrAmountOverflow
// when the sum does not fit.
func AddAmounts(a, b Amount) (Amount, error) {
	if b > MaxAmount-a {
		return a, ErrAmountOverflow
	}
	return a + b, nil
}

// ParseUnits converts a human-readable token quantity such as "100.5" into
// base units. More than TokenDecimals fractional digits is an error.
func ParseUnits(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	scaled := d.Shift(TokenDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("%w: more than %d decimals", ErrInvalidAmount, TokenDecimals)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	return Amount(scaled.IntPart()), nil
}

// MustParseUnits is ParseUnits for constants and tests.
func MustParseUnits(s string) Amount {
	a, err := ParseUnits(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FormatUnits renders a with exactly TokenDecimals fractional digits.
func FormatUnits(a Amount) string {
	return decimal.New(int64(a), -TokenDecimals).StringFixed(TokenDecimals)
}

// MulDivBps returns a*bps/BasisPoints rounded down, computed without
// intermediate overflow.
func MulDivBps(a Amount, bps int64) Amount {
	return Amount(mulDiv(int64(a), bps, BasisPoints))
}

// mulDiv returns x*y/z rounded toward zero. z must be positive.
func mulDiv(x, y, z int64) int64 {
	p := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
	p.Quo(p, big.NewInt(z))
	if !p.IsInt64() {
		if p.Sign() > 0 {
			return int64(^uint64(0) >> 1)
		}
		return -int64(^uint64(0)>>1) - 1
	}
	return p.Int64()
}

package mathutil

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places of the escrowed token.
const DefaultPrecision = 8

var maxUint64 = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ToSmallestUnit converts a decimal amount like "1.5" to the integer amount
// in the token's smallest unit for the given precision.
func ToSmallestUnit(amount string, precision int32) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative")
	}

	units := d.Shift(precision)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf(
			"amount %s has more than %d decimal places", amount, precision,
		)
	}
	if units.GreaterThan(maxUint64) {
		return 0, fmt.Errorf("amount %s overflows", amount)
	}
	return units.BigInt().Uint64(), nil
}

// FromSmallestUnit is the inverse of ToSmallestUnit.
func FromSmallestUnit(units uint64, precision int32) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(units), -precision)
	return d.StringFixed(precision)
}

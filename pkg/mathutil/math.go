package mathutil

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimals of coin amounts and of divisible
// asset quantities.
const Precision = 8

// MaxWatanabe is the total coin supply, in watanabe. No output can be
// worth more.
const MaxWatanabe = int64(105120000 * 100000000)

var (
	// BigOne represents a single unit of a coin with precision 8
	BigOne = uint64(math.Pow10(Precision))
	// BigOneDecimal represents a single unit of a coin with precision 8 as
	// decimal.Decimal
	BigOneDecimal = decimal.NewFromInt(int64(BigOne))

	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a non negative decimal")
	// ErrAmountTooPrecise ...
	ErrAmountTooPrecise = fmt.Errorf(
		"amount must have at most %d decimals", Precision,
	)
)

// ToWatanabe converts a decimal coin amount like "1.5" into its value in
// base units. It fails instead of rounding if the amount has more than 8
// decimals.
func ToWatanabe(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return DecimalToWatanabe(d)
}

// DecimalToWatanabe converts a decimal coin amount into base units.
func DecimalToWatanabe(amount decimal.Decimal) (uint64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	units := amount.Mul(BigOneDecimal)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s", ErrAmountTooPrecise, amount)
	}
	if !units.BigInt().IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return units.BigInt().Uint64(), nil
}

// FromWatanabe converts an amount in base units to a decimal coin amount.
func FromWatanabe(value uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(value), -Precision)
}

// NormalizeQuantity returns the human readable quantity of an asset: 8
// implied decimals for divisible assets, integer units otherwise.
func NormalizeQuantity(quantity uint64, divisible bool) decimal.Decimal {
	if divisible {
		return FromWatanabe(quantity)
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(quantity), 0)
}

// DenormalizeQuantity is the inverse of NormalizeQuantity.
func DenormalizeQuantity(quantity string, divisible bool) (uint64, error) {
	if divisible {
		return ToWatanabe(quantity)
	}
	d, err := decimal.NewFromString(quantity)
	if err != nil || d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, quantity)
	}
	if !d.BigInt().IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, quantity)
	}
	return d.BigInt().Uint64(), nil
}

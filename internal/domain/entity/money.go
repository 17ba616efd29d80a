package entity

import (
	"fmt"
	"math"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/shopspring/decimal"
)

// SettlementTokenDecimals is the fixed decimal exponent of the settlement token (USDC)
const SettlementTokenDecimals = 6

// ShareDecimals is the share increment accepted by the exchange
const ShareDecimals = 2

// centsExponent converts whole currency units to cents
const centsExponent = 2

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	one      = decimal.NewFromInt(1)
)

// CostInCents computes round(size * price * 100), rounding half away from zero
func CostInCents(size, price decimal.Decimal) (int64, error) {
	if err := ValidatePrice(price); err != nil {
		return 0, err
	}
	if err := ValidateSize(size); err != nil {
		return 0, err
	}

	cents := size.Mul(price).Shift(centsExponent).Round(0)
	if cents.GreaterThan(maxInt64) {
		return 0, errs.ErrAmountOverflow
	}
	return cents.IntPart(), nil
}

// ToBaseUnits converts a currency amount into integer settlement token base units
func ToBaseUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %s", errs.ErrInvalidAmount, amount.String())
	}

	units := amount.Shift(SettlementTokenDecimals).Round(0)
	if units.GreaterThan(maxInt64) {
		return 0, errs.ErrAmountOverflow
	}
	return units.IntPart(), nil
}

// CentsToBaseUnits converts integer cents into settlement token base units
func CentsToBaseUnits(cents int64) (int64, error) {
	if cents < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", errs.ErrInvalidAmount, cents)
	}
	factor := int64(math.Pow10(SettlementTokenDecimals - centsExponent))
	if cents > math.MaxInt64/factor {
		return 0, errs.ErrAmountOverflow
	}
	return cents * factor, nil
}

// BaseUnitsToDecimal converts settlement token base units back into a currency amount
func BaseUnitsToDecimal(units int64) decimal.Decimal {
	return decimal.New(units, -SettlementTokenDecimals)
}

// AmountInCentsToString converts integer cents to a decimal string
// For example:
// - 1015 becomes "10.15"
// - -5 becomes "-0.05"
func AmountInCentsToString(amountInCents int64) string {
	return decimal.New(amountInCents, -centsExponent).StringFixed(centsExponent)
}

// ValidatePrice checks that a price is a probability within [0,1]
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThan(one) {
		return fmt.Errorf("%w: got %s", errs.ErrInvalidPrice, price.String())
	}
	return nil
}

// ValidateSize checks that an order size is strictly positive
func ValidateSize(size decimal.Decimal) error {
	if !size.IsPositive() {
		return fmt.Errorf("%w: size must be positive, got %s", errs.ErrInvalidAmount, size.String())
	}
	return nil
}

// QuantizePrice snaps a price to the nearest multiple of the market tick size
func QuantizePrice(price, tickSize decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidatePrice(price); err != nil {
		return decimal.Zero, err
	}
	if !tickSize.IsPositive() || tickSize.GreaterThan(one) {
		return decimal.Zero, fmt.Errorf("%w: invalid tick size %s", errs.ErrInvalidPrice, tickSize.String())
	}

	quantized := price.Div(tickSize).Round(0).Mul(tickSize)
	if err := ValidatePrice(quantized); err != nil {
		return decimal.Zero, err
	}
	return quantized, nil
}

// TruncateShares drops size digits below the exchange share increment
func TruncateShares(size decimal.Decimal) (decimal.Decimal, error) {
	shares := size.Truncate(ShareDecimals)
	if !shares.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: size %s is below the minimum share increment", errs.ErrInvalidAmount, size.String())
	}
	return shares, nil
}

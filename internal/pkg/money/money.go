package money

import (
	"math"
	"strings"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const minorUnitExponent = 2

const DefaultCurrency = "EUR"

var (
	ErrInexactMinorUnits = errs.Sentinel("amount is not representable in whole minor units", errs.ErrValidation)
	ErrAmountOutOfRange  = errs.Sentinel("amount is out of range", errs.ErrValidation)
	ErrInvalidAmount     = errs.Sentinel("invalid amount", errs.ErrValidation)
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ToMinorUnits converts a major-unit amount (200.00) into integer cents (20000).
// Amounts with sub-cent precision are rejected instead of truncated.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	scaled := amount.Shift(minorUnitExponent)
	if !scaled.IsInteger() {
		return 0, errs.Wrapf(ErrInexactMinorUnits, "amount %s", amount.String())
	}
	if scaled.Abs().GreaterThan(maxMinorUnits) {
		return 0, ErrAmountOutOfRange
	}
	return scaled.IntPart(), nil
}

func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -minorUnitExponent)
}

// Parse accepts a plain decimal string such as "120.50".
func Parse(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errs.Wrap(ErrInvalidAmount, err.Error())
	}
	return d, nil
}

// NormalizeCurrency upper-cases the first non-blank code, falling back to EUR.
func NormalizeCurrency(codes ...string) string {
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			return strings.ToUpper(c)
		}
	}
	return DefaultCurrency
}

// Format renders an amount with exactly two fractional digits.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(minorUnitExponent)
}

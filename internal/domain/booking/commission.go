package booking

import (
	"strings"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const CommissionRateKey = "commission_rate"

var (
	DefaultCommissionRate = decimal.NewFromInt(20)

	hundred = decimal.NewFromInt(100)

	ErrMalformedCommissionRate = errs.New("stored commission rate is not a valid decimal")
	ErrCommissionRateRange     = errs.Sentinel("commission rate must be between 0 and 100", errs.ErrValidation)
	ErrCommissionRateScale     = errs.Sentinel("commission rate allows at most 2 decimal places", errs.ErrValidation)
)

// commissionRateScale matches bookings.commission_rate NUMERIC(5,2).
const commissionRateScale = 2

// ComputeCommission returns total × rate / 100 rounded to cents, half away
// from zero. It is the single place a commission amount is derived.
func ComputeCommission(total, ratePercent decimal.Decimal) decimal.Decimal {
	return total.Mul(ratePercent).Div(hundred).Round(2)
}

// ResolveCommissionRate turns the platform setting into a rate snapshot.
// A missing setting yields the default. A malformed one also yields the
// default, together with an error the caller must report.
func ResolveCommissionRate(stored *string) (decimal.Decimal, error) {
	if stored == nil {
		return DefaultCommissionRate, nil
	}
	rate, err := ParseCommissionRate(*stored)
	if err != nil {
		// never surfaces as a client error
		return DefaultCommissionRate, errs.Wrapf(ErrMalformedCommissionRate, "stored value %q", *stored)
	}
	return rate, nil
}

// ParseCommissionRate accepts only rates the bookings table stores verbatim,
// so the snapshot used for commission_amount is the rate persisted with it.
func ParseCommissionRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errs.Wrapf(ErrMalformedCommissionRate, "value %q", raw)
	}
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return decimal.Zero, ErrCommissionRateRange
	}
	if !rate.Equal(rate.Round(commissionRateScale)) {
		return decimal.Zero, ErrCommissionRateScale
	}
	return rate, nil
}

// Settlement splits a gross amount into platform fee and vendor share.
type Settlement struct {
	Gross decimal.Decimal
	Fee   decimal.Decimal
	Net   decimal.Decimal
}

func Settle(gross, ratePercent decimal.Decimal) Settlement {
	fee := ComputeCommission(gross, ratePercent)
	return Settlement{Gross: gross, Fee: fee, Net: gross.Sub(fee)}
}

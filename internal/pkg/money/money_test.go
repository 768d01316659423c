//go:build unit

package money_test

import (
	"testing"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	testCases := []struct {
		name      string
		amount    string
		expected  int64
		expectErr error
	}{
		{name: "whole amount", amount: "200", expected: 20000},
		{name: "two decimals", amount: "40.05", expected: 4005},
		{name: "trailing zeros", amount: "160.000", expected: 16000},
		{name: "zero", amount: "0", expected: 0},
		{name: "fractional cent rejected", amount: "10.005", expectErr: money.ErrInexactMinorUnits},
		{name: "tiny fraction rejected", amount: "0.001", expectErr: money.ErrInexactMinorUnits},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.ToMinorUnits(decimal.RequireFromString(tc.amount))
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFromMinorUnits_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 20000, 123456789} {
		back, err := money.ToMinorUnits(money.FromMinorUnits(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, back)
	}
	assert.Equal(t, "200.00", money.Format(money.FromMinorUnits(20000)))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "EUR", money.NormalizeCurrency("eur"))
	assert.Equal(t, "USD", money.NormalizeCurrency("", " usd "))
	assert.Equal(t, "EUR", money.NormalizeCurrency("", ""))
}

func TestParse(t *testing.T) {
	d, err := money.Parse(" 12.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	_, err = money.Parse("12,50")
	require.Error(t, err)
	assert.True(t, errs.Is(err, money.ErrInvalidAmount))
}

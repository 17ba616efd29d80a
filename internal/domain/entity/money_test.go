package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostInCents(t *testing.T) {
	t.Run("Valid costs", func(t *testing.T) {
		testCases := []struct {
			size     string
			price    string
			expected int64
		}{
			{"10", "0.44", 440},
			{"10", "0.70", 700},
			{"1", "0.005", 1},   // 0.5 cents rounds away from zero
			{"1", "0.004", 0},   // 0.4 cents rounds down
			{"3", "0.335", 101}, // 100.5 cents rounds up
			{"2.5", "1", 250},
			{"0.01", "0.01", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.size+"@"+tc.price, func(t *testing.T) {
				cents, err := CostInCents(d(tc.size), d(tc.price))
				require.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name  string
			size  string
			price string
			err   error
		}{
			{"price above one", "10", "1.01", errs.ErrInvalidPrice},
			{"negative price", "10", "-0.1", errs.ErrInvalidPrice},
			{"zero size", "0", "0.5", errs.ErrInvalidAmount},
			{"negative size", "-1", "0.5", errs.ErrInvalidAmount},
			{"overflow", "1000000000000000000000", "1", errs.ErrAmountOverflow},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := CostInCents(d(tc.size), d(tc.price))
				assert.ErrorIs(t, err, tc.err)
			})
		}
	})
}

func TestToBaseUnits(t *testing.T) {
	units, err := ToBaseUnits(d("10").Mul(d("0.44")))
	require.NoError(t, err)
	assert.Equal(t, int64(4_400_000), units)

	units, err = ToBaseUnits(d("0.0000005"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), units)

	_, err = ToBaseUnits(d("-1"))
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = ToBaseUnits(d("100000000000000"))
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func TestCentsToBaseUnits(t *testing.T) {
	units, err := CentsToBaseUnits(440)
	require.NoError(t, err)
	assert.Equal(t, int64(4_400_000), units)

	_, err = CentsToBaseUnits(-1)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	assert.True(t, BaseUnitsToDecimal(4_400_000).Equal(d("4.4")))
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1015, "10.15"},
		{100000, "1000.00"},
		{-5, "-0.05"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.input))
		})
	}
}

func TestQuantizePrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    string
		tick     string
		expected string
		err      error
	}{
		{"already on grid", "0.44", "0.01", "0.44", nil},
		{"rounds to nearest tick", "0.443", "0.01", "0.44", nil},
		{"rounds half up", "0.445", "0.01", "0.45", nil},
		{"coarse tick", "0.47", "0.1", "0.5", nil},
		{"fine tick", "0.4437", "0.001", "0.444", nil},
		{"zero tick", "0.44", "0", "", errs.ErrInvalidPrice},
		{"price out of range", "1.2", "0.01", "", errs.ErrInvalidPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := QuantizePrice(d(tc.price), d(tc.tick))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tc.expected)), "got %s", got)
		})
	}
}

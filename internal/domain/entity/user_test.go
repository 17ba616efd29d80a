package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUserID(t *testing.T) {
	t.Run("Valid addresses are lowercased", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"0x52908400098527886E0F7030069857D2E4169EE7", "0x52908400098527886e0f7030069857d2e4169ee7"},
			{"0x52908400098527886e0f7030069857d2e4169ee7", "0x52908400098527886e0f7030069857d2e4169ee7"},
			{"  0X52908400098527886E0F7030069857D2E4169EE7 ", "0x52908400098527886e0f7030069857d2e4169ee7"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				got, err := NormalizeUserID(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			})
		}
	})

	t.Run("Invalid addresses", func(t *testing.T) {
		testCases := []string{
			"",
			"0x",
			"52908400098527886E0F7030069857D2E4169EE7",
			"0x52908400098527886E0F7030069857D2E4169EE",
			"0xZZ908400098527886E0F7030069857D2E4169EE7",
			"123",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := NormalizeUserID(tc)
				assert.ErrorIs(t, err, errs.ErrInvalidUserID)
			})
		}
	})
}

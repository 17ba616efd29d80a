package entity

import (
	"net/http"
	"testing"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	testCases := []struct {
		input    string
		expected Side
		err      error
	}{
		{"yes", SideYes, nil},
		{"NO", SideNo, nil},
		{" Yes ", SideYes, nil},
		{"maybe", "", errs.ErrInvalidSide},
		{"", "", errs.ErrInvalidSide},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			side, err := ParseSide(tc.input)
			assert.Equal(t, tc.expected, side)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.Equal(t, SideNo, SideYes.Opposite())
	assert.Equal(t, SideYes, SideNo.Opposite())
}

func TestTradeIntentValidate(t *testing.T) {
	valid := func() TradeIntent {
		return TradeIntent{
			UserID:   "0x52908400098527886E0F7030069857D2E4169EE7",
			MarketID: "marketA",
			TokenID:  "123",
			Side:     SideYes,
			Price:    d("0.44"),
			Size:     d("10"),
		}
	}

	t.Run("Valid intent is normalized", func(t *testing.T) {
		intent := valid()

		require.NoError(t, intent.Validate())
		assert.Equal(t, testUserID, intent.UserID)
		assert.True(t, intent.TickSize.Equal(DefaultTickSize))
	})

	t.Run("Price and size are snapped to what the exchange signs", func(t *testing.T) {
		testCases := []struct {
			name      string
			price     string
			size      string
			tick      string
			wantPrice string
			wantSize  string
		}{
			{"half tick rounds up", "0.445", "10.005", "0.01", "0.45", "10"},
			{"coarse tick", "0.52", "3.999", "0.1", "0.5", "3.99"},
			{"fine tick keeps price", "0.4455", "2", "0.001", "0.446", "2"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Arrange
				intent := valid()
				intent.Price = d(tc.price)
				intent.Size = d(tc.size)
				intent.TickSize = d(tc.tick)

				// Act
				err := intent.Validate()

				// Assert
				require.NoError(t, err)
				assert.True(t, intent.Price.Equal(d(tc.wantPrice)), "price %s", intent.Price)
				assert.True(t, intent.Size.Equal(d(tc.wantSize)), "size %s", intent.Size)
			})
		}
	})

	t.Run("Invalid intents", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(i *TradeIntent)
			err    error
		}{
			{"bad user", func(i *TradeIntent) { i.UserID = "x" }, errs.ErrInvalidUserID},
			{"missing market", func(i *TradeIntent) { i.MarketID = " " }, errs.ErrMissingParams},
			{"missing token", func(i *TradeIntent) { i.TokenID = "" }, errs.ErrMissingParams},
			{"bad side", func(i *TradeIntent) { i.Side = "up" }, errs.ErrInvalidSide},
			{"zero size", func(i *TradeIntent) { i.Size = decimal.Zero }, errs.ErrInvalidAmount},
			{"zero price", func(i *TradeIntent) { i.Price = decimal.Zero }, errs.ErrInvalidPrice},
			{"price above one", func(i *TradeIntent) { i.Price = d("1.5") }, errs.ErrInvalidPrice},
			{"negative fee", func(i *TradeIntent) { i.FeeRateBps = -1 }, errs.ErrMissingParams},
			{"price below one tick", func(i *TradeIntent) { i.Price = d("0.004") }, errs.ErrInvalidPrice},
			{"size below share increment", func(i *TradeIntent) { i.Size = d("0.004") }, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				intent := valid()
				tc.mutate(&intent)

				err := intent.Validate()

				assert.ErrorIs(t, err, tc.err)
				assert.Equal(t, http.StatusBadRequest, errs.HTTPStatus(err))
			})
		}
	})
}

func TestSellIntentValidate(t *testing.T) {
	intent := SellIntent{UserID: testUserID, MarketID: "marketA", Side: SideYes, Size: d("10")}
	require.NoError(t, intent.Validate())

	intent.Size = d("-1")
	assert.ErrorIs(t, intent.Validate(), errs.ErrInvalidAmount)

	intent = SellIntent{UserID: testUserID, Side: SideYes, Size: d("1")}
	assert.ErrorIs(t, intent.Validate(), errs.ErrMissingParams)

	intent = SellIntent{UserID: testUserID, MarketID: "marketA", Side: SideNo, Size: d("4.567")}
	require.NoError(t, intent.Validate())
	assert.True(t, intent.Size.Equal(d("4.56")))

	intent.Size = d("0.001")
	assert.ErrorIs(t, intent.Validate(), errs.ErrInvalidAmount)
}

package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAdd(t *testing.T) {
	// Arrange
	base := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	orders := []*Order{
		{ID: "o1", ExchangeOrderID: "x1", Size: d("10"), Price: d("0.40"), CreatedAt: base},
		{ID: "o2", ExchangeOrderID: "x2", Size: d("5"), Price: d("0.60"), CreatedAt: base.Add(time.Minute)},
		{ID: "o3", ExchangeOrderID: "x3", Size: d("5"), Price: d("0.50"), CreatedAt: base.Add(2 * time.Minute)},
	}
	position := NewPosition(testUserID, PositionKey{MarketID: "marketA", Side: SideYes})

	// Act
	for _, o := range orders {
		position.Add(o)
	}

	// Assert
	assert.True(t, position.TotalSize.Equal(d("20")))
	assert.True(t, position.AvgPrice.Equal(d("0.475")), "avg %s", position.AvgPrice)
	assert.Equal(t, 3, position.OrderCount)
	assert.Equal(t, "o3", position.LatestOrderID)
	assert.Equal(t, "x3", position.LatestExchangeOrderID)
	assert.Equal(t, base.Add(2*time.Minute), position.LatestCreatedAt)
}

func TestPositionAddKeepsLatestByTime(t *testing.T) {
	base := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	position := NewPosition(testUserID, PositionKey{MarketID: "m", Side: SideNo})

	position.Add(&Order{ID: "new", Size: d("1"), Price: d("0.5"), CreatedAt: base.Add(time.Hour)})
	position.Add(&Order{ID: "old", Size: d("1"), Price: d("0.5"), CreatedAt: base})

	assert.Equal(t, "new", position.LatestOrderID)
}

func TestMarketMetadataTokenFor(t *testing.T) {
	market := &MarketMetadata{ConditionID: "0xc", YesTokenID: "111", NoTokenID: "222"}

	yes, err := market.TokenFor(SideYes)
	require.NoError(t, err)
	assert.Equal(t, "111", yes)

	no, err := market.TokenFor(SideNo)
	require.NoError(t, err)
	assert.Equal(t, "222", no)

	_, err = market.TokenFor("maybe")
	assert.ErrorIs(t, err, errs.ErrInvalidSide)

	market.NoTokenID = ""
	_, err = market.TokenFor(SideNo)
	assert.ErrorIs(t, err, errs.ErrMarketNotFound)
}

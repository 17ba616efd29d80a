package gateway

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// ExchangeOrderClient places and reads orders on the CLOB exchange
type ExchangeOrderClient interface {
	// PlaceOrder signs and posts a fill-or-kill BUY order
	//
	// Possible errors:
	// - ErrOrderRejected: If the exchange refuses or cannot fill the order
	PlaceOrder(ctx context.Context, req entity.OrderRequest) (*entity.PlacedOrder, error)

	// PlaceMarketSell signs and posts a fill-or-kill SELL order at a floor price
	PlaceMarketSell(ctx context.Context, req entity.MarketSellRequest) (*entity.PlacedOrder, error)

	// GetOrder returns the live state of an order
	GetOrder(ctx context.Context, orderID string) (*entity.OrderDetail, error)
}

// MarketMetadataProvider resolves market metadata and outcome tokens
type MarketMetadataProvider interface {
	// GetMarket returns the market with the given condition ID
	//
	// Possible errors:
	// - ErrMarketNotFound: If no such market exists
	GetMarket(ctx context.Context, marketID string) (*entity.MarketMetadata, error)
}

// PositionCache holds aggregated positions per user
type PositionCache interface {
	// Get returns cached positions and whether there was a hit
	Get(ctx context.Context, userID string) ([]*entity.Position, bool, error)
	// Set stores positions for a user
	Set(ctx context.Context, userID string, positions []*entity.Position) error
	// Invalidate drops the cached positions of a user
	Invalidate(ctx context.Context, userID string) error
}

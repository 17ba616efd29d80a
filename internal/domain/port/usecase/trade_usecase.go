package usecase

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TradeUseCase defines the trade and sell flows
type TradeUseCase interface {
	// ExecuteTrade reserves budget, pulls funds and places a BUY order.
	// Partial failures are compensated before an error is returned.
	ExecuteTrade(ctx context.Context, intent entity.TradeIntent) (*entity.TradeResult, error)

	// SellPosition closes a position and records the closing leg
	SellPosition(ctx context.Context, intent entity.SellIntent) (*entity.SellResult, error)
}

// PositionUseCase derives positions from the order ledger
type PositionUseCase interface {
	// Build returns the user's positions, newest first
	Build(ctx context.Context, userID string) ([]*entity.Position, error)

	// NetExposure returns yes size minus no size per market
	NetExposure(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}

// ReconciliationUseCase manages the liability ledger
type ReconciliationUseCase interface {
	// ListOpen returns open items, optionally for a single user
	ListOpen(ctx context.Context, userID string) ([]*entity.ReconciliationItem, error)

	// Resolve closes an open item with a resolution note
	Resolve(ctx context.Context, id, resolution string) (*entity.ReconciliationItem, error)
}

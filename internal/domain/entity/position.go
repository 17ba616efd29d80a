package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MarketMetadata describes a binary market and its two outcome tokens
type MarketMetadata struct {
	ConditionID string
	Question    string
	Slug        string
	EndDate     string
	YesTokenID  string
	NoTokenID   string
	NegRisk     bool
	TickSize    decimal.Decimal
	Closed      bool
}

// TokenFor returns the outcome token of side
func (m *MarketMetadata) TokenFor(side Side) (string, error) {
	var token string
	switch side {
	case SideYes:
		token = m.YesTokenID
	case SideNo:
		token = m.NoTokenID
	default:
		return "", errs.ErrInvalidSide
	}
	if token == "" {
		return "", fmt.Errorf("%w: no %s token for %s", errs.ErrMarketNotFound, side, m.ConditionID)
	}
	return token, nil
}

// PositionKey groups orders by market and side
type PositionKey struct {
	MarketID string
	Side     Side
}

// Position is a user's derived exposure on one side of a market
type Position struct {
	UserID                string
	MarketID              string
	Side                  Side
	TotalSize             decimal.Decimal
	AvgPrice              decimal.Decimal
	Notional              decimal.Decimal
	OrderCount            int
	LatestOrderID         string
	LatestExchangeOrderID string
	LatestCreatedAt       time.Time
	Market                *MarketMetadata
	Live                  *OrderDetail
}

// NewPosition starts an empty position for key
func NewPosition(userID string, key PositionKey) *Position {
	return &Position{
		UserID:    userID,
		MarketID:  key.MarketID,
		Side:      key.Side,
		TotalSize: decimal.Zero,
		AvgPrice:  decimal.Zero,
		Notional:  decimal.Zero,
	}
}

// Add folds an order into the position. AvgPrice is weighted by size.
func (p *Position) Add(order *Order) {
	p.TotalSize = p.TotalSize.Add(order.Size)
	p.Notional = p.Notional.Add(order.Notional())
	p.OrderCount++
	if p.TotalSize.IsPositive() {
		p.AvgPrice = p.Notional.Div(p.TotalSize)
	}
	if p.LatestOrderID == "" || !order.CreatedAt.Before(p.LatestCreatedAt) {
		p.LatestOrderID = order.ID
		p.LatestExchangeOrderID = order.ExchangeOrderID
		p.LatestCreatedAt = order.CreatedAt
	}
}

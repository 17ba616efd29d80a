package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TradeRequest represents the API request for executing a trade
type TradeRequest struct {
	UserID         string          `json:"userId"`
	MarketID       string          `json:"marketId"`
	TokenID        string          `json:"tokenId"`
	Side           string          `json:"side"`
	Price          decimal.Decimal `json:"price"`
	Size           decimal.Decimal `json:"size"`
	TickSize       decimal.Decimal `json:"tickSize"`
	NegRisk        bool            `json:"negRisk"`
	FeeRateBps     int64           `json:"feeRateBps"`
	IdempotencyKey string          `json:"idempotencyKey"`
}

// ToIntent maps the request to a domain intent. Validation happens in the domain.
func (r TradeRequest) ToIntent() entity.TradeIntent {
	return entity.TradeIntent{
		UserID:         r.UserID,
		MarketID:       r.MarketID,
		TokenID:        r.TokenID,
		Side:           entity.Side(r.Side),
		Price:          r.Price,
		Size:           r.Size,
		TickSize:       r.TickSize,
		NegRisk:        r.NegRisk,
		FeeRateBps:     r.FeeRateBps,
		IdempotencyKey: r.IdempotencyKey,
	}
}

// SellRequest represents the API request for selling a position
type SellRequest struct {
	UserID         string          `json:"userId"`
	MarketID       string          `json:"marketId"`
	Side           string          `json:"side"`
	Size           decimal.Decimal `json:"size"`
	IdempotencyKey string          `json:"idempotencyKey"`
}

// ToIntent maps the request to a domain intent
func (r SellRequest) ToIntent() entity.SellIntent {
	return entity.SellIntent{
		UserID:         r.UserID,
		MarketID:       r.MarketID,
		Side:           entity.Side(r.Side),
		Size:           r.Size,
		IdempotencyKey: r.IdempotencyKey,
	}
}

// OrderResponse is one row of the order ledger
type OrderResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	MarketID        string    `json:"marketId"`
	TokenID         string    `json:"tokenId"`
	Side            string    `json:"side"`
	Price           string    `json:"price"`
	Size            string    `json:"size"`
	ExchangeOrderID string    `json:"exchangeOrderId"`
	Status          string    `json:"status"`
	ReservationID   string    `json:"reservationId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewOrderResponse maps a ledger order
func NewOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		MarketID:        o.MarketID,
		TokenID:         o.TokenID,
		Side:            string(o.Side),
		Price:           o.Price.String(),
		Size:            o.Size.String(),
		ExchangeOrderID: o.ExchangeOrderID,
		Status:          o.Status,
		ReservationID:   o.ReservationID,
		CreatedAt:       o.CreatedAt,
	}
}

// TradeResponse represents the API response for an executed trade
type TradeResponse struct {
	OK            bool           `json:"ok"`
	Order         *OrderResponse `json:"order"`
	ReservationID string         `json:"reservationId"`
	CostCents     int64          `json:"costCents"`
	TxIDs         []string       `json:"txIds"`
}

// SellResponse represents the API response for a sold position
type SellResponse struct {
	OK            bool           `json:"ok"`
	Order         *OrderResponse `json:"order"`
	LedgerOrderID string         `json:"ledgerOrderId"`
}

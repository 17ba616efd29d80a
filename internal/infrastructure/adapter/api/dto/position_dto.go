package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MarketResponse is the metadata attached to a position
type MarketResponse struct {
	ConditionID string `json:"conditionId"`
	Question    string `json:"question"`
	Slug        string `json:"slug"`
	EndDate     string `json:"endDate,omitempty"`
	NegRisk     bool   `json:"negRisk"`
	TickSize    string `json:"tickSize"`
	Closed      bool   `json:"closed"`
}

// LiveOrderResponse is the exchange view of a position's latest order
type LiveOrderResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Outcome      string `json:"outcome"`
	Price        string `json:"price"`
	OriginalSize string `json:"originalSize"`
	SizeMatched  string `json:"sizeMatched"`
	Expiration   int64  `json:"expiration"`
}

// PositionResponse is one aggregated position
type PositionResponse struct {
	MarketID        string             `json:"marketId"`
	Side            string             `json:"side"`
	TotalSize       string             `json:"totalSize"`
	AvgPrice        string             `json:"avgPrice"`
	OrderCount      int                `json:"orderCount"`
	LatestOrderID   string             `json:"latestOrderId"`
	LatestCreatedAt time.Time          `json:"latestCreatedAt"`
	Market          *MarketResponse    `json:"market,omitempty"`
	Live            *LiveOrderResponse `json:"live,omitempty"`
}

// PositionsResponse represents the API response for a user's positions
type PositionsResponse struct {
	OK          bool               `json:"ok"`
	Positions   []PositionResponse `json:"positions"`
	NetExposure map[string]string  `json:"netExposure"`
}

// NewPositionsResponse maps positions and net exposure
func NewPositionsResponse(positions []*entity.Position, exposure map[string]decimal.Decimal) PositionsResponse {
	resp := PositionsResponse{
		OK:          true,
		Positions:   make([]PositionResponse, 0, len(positions)),
		NetExposure: make(map[string]string, len(exposure)),
	}

	for _, p := range positions {
		item := PositionResponse{
			MarketID:        p.MarketID,
			Side:            string(p.Side),
			TotalSize:       p.TotalSize.String(),
			AvgPrice:        p.AvgPrice.String(),
			OrderCount:      p.OrderCount,
			LatestOrderID:   p.LatestOrderID,
			LatestCreatedAt: p.LatestCreatedAt,
		}
		if m := p.Market; m != nil {
			item.Market = &MarketResponse{
				ConditionID: m.ConditionID,
				Question:    m.Question,
				Slug:        m.Slug,
				EndDate:     m.EndDate,
				NegRisk:     m.NegRisk,
				TickSize:    m.TickSize.String(),
				Closed:      m.Closed,
			}
		}
		if l := p.Live; l != nil {
			item.Live = &LiveOrderResponse{
				ID:           l.ID,
				Status:       l.Status,
				Outcome:      l.Outcome,
				Price:        l.Price.String(),
				OriginalSize: l.OriginalSize.String(),
				SizeMatched:  l.SizeMatched.String(),
				Expiration:   l.Expiration,
			}
		}
		resp.Positions = append(resp.Positions, item)
	}

	for market, size := range exposure {
		resp.NetExposure[market] = size.String()
	}
	return resp
}

package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// ResolveRequest represents the API request for resolving a liability item
type ResolveRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}

// ReconciliationResponse is one liability item
type ReconciliationResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	ReservationID   string     `json:"reservationId"`
	AmountUnits     int64      `json:"amountUnits"`
	PermissionHash  string     `json:"permissionHash,omitempty"`
	TxIDs           []string   `json:"txIds"`
	ExchangeOrderID string     `json:"exchangeOrderId,omitempty"`
	Reason          string     `json:"reason"`
	Detail          string     `json:"detail,omitempty"`
	Status          string     `json:"status"`
	Resolution      string     `json:"resolution,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

// NewReconciliationResponse maps a liability item
func NewReconciliationResponse(item *entity.ReconciliationItem) ReconciliationResponse {
	txIDs := item.TxIDs
	if txIDs == nil {
		txIDs = []string{}
	}
	return ReconciliationResponse{
		ID:              item.ID,
		UserID:          item.UserID,
		ReservationID:   item.ReservationID,
		AmountUnits:     item.AmountUnits,
		PermissionHash:  item.PermissionHash,
		TxIDs:           txIDs,
		ExchangeOrderID: item.ExchangeOrderID,
		Reason:          string(item.Reason),
		Detail:          item.Detail,
		Status:          string(item.Status),
		Resolution:      item.Resolution,
		CreatedAt:       item.CreatedAt,
		ResolvedAt:      item.ResolvedAt,
	}
}

// ReconciliationListResponse represents the API response for open items
type ReconciliationListResponse struct {
	OK    bool                     `json:"ok"`
	Items []ReconciliationResponse `json:"items"`
}

// ReconciliationEnvelope wraps a single item in a success response
type ReconciliationEnvelope struct {
	OK   bool                   `json:"ok"`
	Item ReconciliationResponse `json:"item"`
}

package model

import (
	"time"
)

// ReconciliationItem represents an entry of the liability ledger
type ReconciliationItem struct {
	ID              string    `gorm:"primaryKey;size:64"`
	UserID          string    `gorm:"not null;size:42;index"`
	ReservationID   string    `gorm:"size:128"`
	AmountUnits     int64     `gorm:"not null;default:0"`
	PermissionHash  string    `gorm:"size:66"`
	TxIDs           []string  `gorm:"type:jsonb;serializer:json"`
	ExchangeOrderID string    `gorm:"size:128"`
	Reason          string    `gorm:"not null;size:32"`
	Detail          string    `gorm:"type:text"`
	Status          string    `gorm:"not null;size:16;index"`
	Resolution      string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	ResolvedAt      *time.Time
}

// TableName specifies the table name for ReconciliationItem
func (ReconciliationItem) TableName() string {
	return "reconciliation_items"
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one append-only row of the order ledger
type Order struct {
	ID              string          `gorm:"primaryKey;size:64"`
	UserID          string          `gorm:"not null;size:42;index:idx_orders_user_created,priority:1"`
	MarketID        string          `gorm:"not null;size:128"`
	TokenID         string          `gorm:"not null;size:128"`
	Side            string          `gorm:"not null;size:8"`
	Price           decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Size            decimal.Decimal `gorm:"type:numeric(30,6);not null"`
	ExchangeOrderID string          `gorm:"size:128;index"`
	Status          string          `gorm:"size:32"`
	ReservationID   string          `gorm:"size:128"`
	IdempotencyKey  string          `gorm:"size:128"`
	CreatedAt       time.Time       `gorm:"not null;index:idx_orders_user_created,priority:2"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

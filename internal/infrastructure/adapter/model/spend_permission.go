package model

import (
	"time"
)

// SpendPermission represents a stored signed spend permission
type SpendPermission struct {
	PermissionHash    string    `gorm:"primaryKey;size:66"`
	UserID            string    `gorm:"not null;size:42;index"`
	TokenAddress      string    `gorm:"not null;size:42"`
	AllowanceUnits    int64     `gorm:"not null"`
	PeriodSeconds     int64     `gorm:"not null"`
	StartUnix         int64     `gorm:"not null"`
	EndUnix           int64     `gorm:"not null;default:0"`
	PermissionPayload string    `gorm:"type:jsonb;not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for SpendPermission
func (SpendPermission) TableName() string {
	return "spend_permissions"
}

// ActiveSpendPermission points each user at their current permission
type ActiveSpendPermission struct {
	UserID         string    `gorm:"primaryKey;size:42"`
	PermissionHash string    `gorm:"not null;size:66"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for ActiveSpendPermission
func (ActiveSpendPermission) TableName() string {
	return "active_spend_permissions"
}

// SpendPull records an on-chain pull by idempotency key
type SpendPull struct {
	IdempotencyKey string    `gorm:"primaryKey;size:128"`
	UserID         string    `gorm:"not null;size:42;index"`
	AmountUnits    int64     `gorm:"not null"`
	PermissionHash string    `gorm:"size:66"`
	TxIDs          []string  `gorm:"type:jsonb;serializer:json"`
	Status         string    `gorm:"not null;size:16"`
	Error          string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for SpendPull
func (SpendPull) TableName() string {
	return "spend_pulls"
}

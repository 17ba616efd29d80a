package model

import (
	"time"
)

// Budget represents the database model for a user's weekly budget.
// remaining_cents is guarded by a check constraint so it can never go negative.
type Budget struct {
	UserID              string    `gorm:"primaryKey;size:42"`
	WeeklyLimitCents    int64     `gorm:"not null;check:chk_budgets_weekly_limit,weekly_limit_cents >= 0"`
	RemainingCents      int64     `gorm:"not null;check:chk_budgets_remaining,remaining_cents >= 0 AND remaining_cents <= weekly_limit_cents"`
	PeriodStart         time.Time `gorm:"not null"`
	PermissionExpiresAt *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}

// Reservation represents a hold on a budget
type Reservation struct {
	ID          string    `gorm:"primaryKey;size:128"`
	UserID      string    `gorm:"not null;size:42;index"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"not null;size:16;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

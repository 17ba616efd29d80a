package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
)

// Budget is a user's weekly spending cap and what is left of it, in cents
type Budget struct {
	UserID              string
	WeeklyLimitCents    int64
	RemainingCents      int64
	PeriodStart         time.Time
	PermissionExpiresAt *time.Time // informational projection of the active permission end
	UpdatedAt           time.Time
}

// NewBudget creates a budget whose cap and remaining amount are both set to amountCents
func NewBudget(userID string, amountCents int64, permissionExpiresAt *time.Time, timeProvider coreport.TimeProvider) (*Budget, error) {
	normalized, err := NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", errs.ErrInvalidAmount)
	}

	now := timeProvider.Now()
	return &Budget{
		UserID:              normalized,
		WeeklyLimitCents:    amountCents,
		RemainingCents:      amountCents,
		PeriodStart:         now,
		PermissionExpiresAt: permissionExpiresAt,
		UpdatedAt:           now,
	}, nil
}

// CanReserve checks if the remaining budget covers amountCents
func (b *Budget) CanReserve(amountCents int64) bool {
	return amountCents >= 0 && b.RemainingCents >= amountCents
}

// SpentCents returns how much of the weekly cap is currently reserved or committed
func (b *Budget) SpentCents() int64 {
	return b.WeeklyLimitCents - b.RemainingCents
}

// GetRemaining returns the remaining budget as a string with 2 decimal places
func (b *Budget) GetRemaining() string {
	return AmountInCentsToString(b.RemainingCents)
}

// GetWeeklyLimit returns the weekly cap as a string with 2 decimal places
func (b *Budget) GetWeeklyLimit() string {
	return AmountInCentsToString(b.WeeklyLimitCents)
}

// Validate checks 0 <= remaining <= weekly limit
func (b *Budget) Validate() error {
	if b.RemainingCents < 0 || b.RemainingCents > b.WeeklyLimitCents {
		return fmt.Errorf("%w: remaining %d outside [0, %d]", errs.ErrInvalidAmount, b.RemainingCents, b.WeeklyLimitCents)
	}
	return nil
}

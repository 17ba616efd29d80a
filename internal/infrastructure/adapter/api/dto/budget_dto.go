package dto

import (
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// SetBudgetRequest represents the API request for overwriting a weekly budget
type SetBudgetRequest struct {
	AmountCents         *int64     `json:"amountCents" binding:"required"`
	PermissionExpiresAt *time.Time `json:"permissionExpiresAt"`
}

// BudgetResponse is the budget view
type BudgetResponse struct {
	OK                  bool       `json:"ok"`
	UserID              string     `json:"userId"`
	WeeklyLimitCents    int64      `json:"weeklyLimitCents"`
	RemainingCents      int64      `json:"remainingCents"`
	WeeklyLimit         string     `json:"weeklyLimit"`
	Remaining           string     `json:"remaining"`
	PeriodStart         time.Time  `json:"periodStart"`
	PermissionExpiresAt *time.Time `json:"permissionExpiresAt,omitempty"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// NewBudgetResponse maps a budget
func NewBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		OK:                  true,
		UserID:              b.UserID,
		WeeklyLimitCents:    b.WeeklyLimitCents,
		RemainingCents:      b.RemainingCents,
		WeeklyLimit:         b.GetWeeklyLimit(),
		Remaining:           b.GetRemaining(),
		PeriodStart:         b.PeriodStart,
		PermissionExpiresAt: b.PermissionExpiresAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

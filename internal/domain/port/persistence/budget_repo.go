package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// BudgetRepository stores weekly budgets and the reservations held against them
type BudgetRepository interface {
	// Get retrieves the budget of a user
	//
	// Possible errors:
	// - ErrBudgetNotFound: If no budget has been set for the user
	// - ErrStore: If the database fails
	Get(ctx context.Context, userID string) (*entity.Budget, error)

	// Upsert overwrites the cap and remaining amount together.
	// A nil PermissionExpiresAt keeps the stored value.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// Reserve atomically debits the remaining budget with a guarded conditional update
	// and records the reservation
	//
	// Possible errors:
	// - ErrInsufficientBudget: If remaining is below the reservation amount
	// - ErrBudgetNotFound: If no budget has been set for the user
	// - ErrDuplicateTrade: If a reservation with the same ID exists
	// - ErrStore: If the database fails
	Reserve(ctx context.Context, reservation *entity.Reservation) (*entity.Budget, error)

	// Release returns a reserved amount to the budget, capped at the weekly limit.
	// It reports false without error when the reservation is already released or committed.
	//
	// Possible errors:
	// - ErrReservationNotFound: If the reservation does not exist
	// - ErrStore: If the database fails
	Release(ctx context.Context, reservationID string) (bool, error)

	// Commit marks a reservation as committed so it can no longer be released
	//
	// Possible errors:
	// - ErrReservationNotFound: If the reservation does not exist
	// - ErrReservationClosed: If the reservation was already released
	// - ErrStore: If the database fails
	Commit(ctx context.Context, reservationID string) error

	// GetReservation retrieves a reservation by ID
	GetReservation(ctx context.Context, reservationID string) (*entity.Reservation, error)

	// SetPermissionExpiry projects the active permission end onto the budget.
	// It reports false when the user has no budget.
	SetPermissionExpiry(ctx context.Context, userID string, expiresAt *time.Time) (bool, error)
}

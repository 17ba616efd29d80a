package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// BudgetLedger defines the per-user weekly budget operations
type BudgetLedger interface {
	// SetBudget overwrites the cap and remaining amount with amountCents and restarts the period
	SetBudget(ctx context.Context, userID string, amountCents int64, permissionExpiresAt *time.Time) (*entity.Budget, error)

	// GetBudget returns the current budget view
	GetBudget(ctx context.Context, userID string) (*entity.Budget, error)

	// Reserve holds amountCents of the user's budget under reservationID
	Reserve(ctx context.Context, userID, reservationID string, amountCents int64) (*entity.Reservation, error)

	// Release returns a reservation to the budget. It reports false when nothing was released.
	Release(ctx context.Context, reservationID string) (bool, error)

	// Commit finalizes a reservation once its order is on the ledger
	Commit(ctx context.Context, reservationID string) error
}

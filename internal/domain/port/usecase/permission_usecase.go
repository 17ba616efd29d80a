package usecase

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// SpendPermissionStore defines operations on delegated spend permissions
type SpendPermissionStore interface {
	// Store validates and saves a permission and makes it the user's active one
	Store(ctx context.Context, permission *entity.SpendPermission) (*entity.SpendPermission, error)

	// GetLatest returns the user's active permission
	GetLatest(ctx context.Context, userID string) (*entity.SpendPermission, error)
}

// SpendExecutor pulls funds from a user's wallet under the active permission
type SpendExecutor interface {
	// Pull moves amountUnits to the operator and returns the transaction IDs.
	// A given idempotencyKey is pulled at most once.
	Pull(ctx context.Context, userID string, amountUnits int64, idempotencyKey string) ([]string, error)
}

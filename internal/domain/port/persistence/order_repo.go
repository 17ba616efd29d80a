package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// OrderRepository is the append-only order ledger. There is no update path.
type OrderRepository interface {
	// Append inserts a new order row
	Append(ctx context.Context, order *entity.Order) error

	// FindByIdempotencyKey returns the user's order recorded under key
	//
	// Possible errors:
	// - ErrOrderNotFound: If no order carries the key
	// - ErrStore: If database connection fails
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Order, error)

	// ListByUser returns the user's orders, oldest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}

package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// ReconciliationRepository is the liability ledger of funds held by the operator
type ReconciliationRepository interface {
	// Record inserts an open item
	Record(ctx context.Context, item *entity.ReconciliationItem) error

	// ListOpen returns open items, newest first. An empty userID lists every user.
	ListOpen(ctx context.Context, userID string) ([]*entity.ReconciliationItem, error)

	// Resolve closes an open item
	//
	// Possible errors:
	// - ErrReconciliationNotFound: If no open item has this ID
	Resolve(ctx context.Context, id, resolution string, resolvedAt time.Time) (*entity.ReconciliationItem, error)
}

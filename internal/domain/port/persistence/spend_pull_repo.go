package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// SpendPullRepository records on-chain pulls by idempotency key
type SpendPullRepository interface {
	// Claim inserts a pending pull. When the key is already taken it returns the stored
	// pull and false.
	Claim(ctx context.Context, pull *entity.SpendPull) (*entity.SpendPull, bool, error)

	// Finish stores the final status, tx IDs and error of a claimed pull
	Finish(ctx context.Context, pull *entity.SpendPull) error
}

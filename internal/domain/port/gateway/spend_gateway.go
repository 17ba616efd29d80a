package gateway

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// SpendGateway submits SpendPermissionManager calls through the operator signer
type SpendGateway interface {
	// IsApproved reports whether the permission is already approved on chain
	IsApproved(ctx context.Context, permission *entity.SignedSpendPermission) (bool, error)

	// Submit signs and broadcasts a call and returns its transaction hash
	Submit(ctx context.Context, call entity.SpendCall) (string, error)

	// WaitMined blocks until the transaction is mined. A reverted receipt is an error.
	WaitMined(ctx context.Context, txID string) error
}

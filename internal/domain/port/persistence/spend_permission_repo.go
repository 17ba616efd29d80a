package persistence

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
)

// SpendPermissionRepository stores signed spend permissions and the active pointer per user
type SpendPermissionRepository interface {
	// Upsert inserts the permission or refreshes the row with the same hash
	Upsert(ctx context.Context, permission *entity.SpendPermission) error

	// GetByHash retrieves a permission by its hash
	//
	// Possible errors:
	// - ErrNoPermission: If no permission has this hash
	GetByHash(ctx context.Context, permissionHash string) (*entity.SpendPermission, error)

	// GetActive retrieves the permission named by the user's active pointer
	//
	// Possible errors:
	// - ErrNoPermission: If the user has no active permission
	// - ErrStore: If the database fails
	GetActive(ctx context.Context, userID string) (*entity.SpendPermission, error)

	// SetActive moves the user's active pointer to permissionHash
	SetActive(ctx context.Context, userID, permissionHash string) error
}

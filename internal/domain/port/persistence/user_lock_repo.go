package persistence

import (
	"context"
	"time"
)

// UserLockRepository defines methods for managing user locks across instances
type UserLockRepository interface {
	// AcquireLock attempts to lock the user for owner
	// The lock expires after the given duration
	//
	// Possible errors:
	// - ErrUserLocked: If user is already locked by another owner
	// - ErrStore: If database connection fails
	AcquireLock(ctx context.Context, userID, owner string, duration time.Duration) error

	// ReleaseLock releases a lock held by owner
	// A missing or expired lock is not an error
	ReleaseLock(ctx context.Context, userID, owner string) error

	// CleanupExpiredLocks removes all expired locks
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

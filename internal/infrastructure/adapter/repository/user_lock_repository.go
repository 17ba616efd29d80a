package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserLockRepository implements cross-instance user locking using GORM
type UserLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserLockRepository creates a new UserLockRepository instance
func NewUserLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserLockRepository {
	return &UserLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the user's lock for owner. An expired lock is taken over in the same
// statement; a live one leaves the row untouched and no row is reported as affected.
func (r *UserLockRepository) AcquireLock(ctx context.Context, userID, owner string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_locks (user_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE user_locks.expires_at <= ?`,
		userID, owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsLockError(err) {
			r.logger.Warn("User is already locked", map[string]any{
				"user_id": userID,
			})
			return errs.ErrUserLocked
		}
		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring lock", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}
		r.logger.Error("Database error acquiring lock", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return storeError(err)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User is already locked", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"user_id":    userID,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lock when owner still holds it
func (r *UserLockRepository) ReleaseLock(ctx context.Context, userID, owner string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND owner = ?", userID, owner).
		Delete(&model.UserLock{})

	if result.Error != nil {
		// the lock expires on its own
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout when releasing lock, lock will expire automatically", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return nil
		}
		r.logger.Error("Failed to release lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return storeError(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release - may have already expired", map[string]any{
			"user_id": userID,
			"owner":   owner,
		})
		return nil
	}

	r.logger.Debug("Lock released", map[string]any{
		"user_id": userID,
	})
	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *UserLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.UserLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, storeError(result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired locks cleanup completed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}

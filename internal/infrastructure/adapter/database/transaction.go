package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	retryConfig  RetryConfig
	classifier   *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *UnitOfWork {
	return NewUnitOfWorkWithRetry(db, logger, timeProvider, DefaultRetryConfig())
}

// NewUnitOfWorkWithRetry creates a UnitOfWork that replays Execute blocks with the given policy
func NewUnitOfWorkWithRetry(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, retryConfig RetryConfig) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		retryConfig:  retryConfig,
		classifier:   repository.NewErrorClassifier(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction with SERIALIZABLE isolation", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Execute runs fn inside a SERIALIZABLE transaction. Serialization failures, deadlocks
// and dropped connections replay the whole block. A transaction already carried by ctx
// is joined instead of nested.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retryConfig, func() error {
		txCtx, err := u.Begin(ctx)
		if err != nil {
			return err
		}

		if err := fn(txCtx); err != nil {
			if rbErr := u.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Rollback after failed unit of work also failed", map[string]any{
					"error":          err.Error(),
					"rollback_error": rbErr.Error(),
				})
			}
			return err
		}

		return u.Commit(txCtx)
	}, u.classifier, u.logger)
}

// GetBudgetRepository returns a budget repository in the current transaction
func (u *UnitOfWork) GetBudgetRepository(ctx context.Context) persistence.BudgetRepository {
	return repository.NewBudgetRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetSpendPermissionRepository returns a spend permission repository in the current transaction
func (u *UnitOfWork) GetSpendPermissionRepository(ctx context.Context) persistence.SpendPermissionRepository {
	return repository.NewSpendPermissionRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetOrderRepository returns an order repository in the current transaction
func (u *UnitOfWork) GetOrderRepository(ctx context.Context) persistence.OrderRepository {
	return repository.NewOrderRepository(u.getDbFromContext(ctx), u.logger)
}

// GetSpendPullRepository returns a spend pull repository in the current transaction
func (u *UnitOfWork) GetSpendPullRepository(ctx context.Context) persistence.SpendPullRepository {
	return repository.NewSpendPullRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetReconciliationRepository returns a reconciliation repository in the current transaction
func (u *UnitOfWork) GetReconciliationRepository(ctx context.Context) persistence.ReconciliationRepository {
	return repository.NewReconciliationRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

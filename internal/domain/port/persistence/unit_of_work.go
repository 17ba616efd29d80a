package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction, committing on success and rolling back on error.
	// Transient database errors restart the whole block.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetBudgetRepository returns a budget repository bound to the current transaction
	GetBudgetRepository(ctx context.Context) BudgetRepository

	// GetSpendPermissionRepository returns a permission repository bound to the current transaction
	GetSpendPermissionRepository(ctx context.Context) SpendPermissionRepository

	// GetOrderRepository returns an order repository bound to the current transaction
	GetOrderRepository(ctx context.Context) OrderRepository

	// GetSpendPullRepository returns a pull repository bound to the current transaction
	GetSpendPullRepository(ctx context.Context) SpendPullRepository

	// GetReconciliationRepository returns a reconciliation repository bound to the current transaction
	GetReconciliationRepository(ctx context.Context) ReconciliationRepository
}

package spend

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
)

// Executor pulls funds from a user's smart wallet under the active spend permission
type Executor struct {
	uow          persistence.UnitOfWork
	gateway      gateway.SpendGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExecutor creates a new spend executor
func NewExecutor(
	uow persistence.UnitOfWork,
	spendGateway gateway.SpendGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Executor {
	return &Executor{
		uow:          uow,
		gateway:      spendGateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Pull moves amountUnits of the settlement token to the operator.
// The idempotency key is claimed first, so a key that already succeeded returns its
// transaction IDs and a key that is pending or failed is never pulled again.
func (e *Executor) Pull(ctx context.Context, userID string, amountUnits int64, idempotencyKey string) ([]string, error) {
	if idempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", errs.ErrMissingParams)
	}
	if amountUnits <= 0 {
		return nil, fmt.Errorf("%w: pull amount must be positive", errs.ErrInvalidAmount)
	}

	now := e.timeProvider.Now()
	pull := &entity.SpendPull{
		IdempotencyKey: idempotencyKey,
		UserID:         userID,
		AmountUnits:    amountUnits,
		Status:         entity.SpendPullPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	pulls := e.uow.GetSpendPullRepository(ctx)
	stored, claimed, err := pulls.Claim(ctx, pull)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return e.replay(stored, userID, amountUnits)
	}

	txIDs, permissionHash, pullErr := e.execute(ctx, userID, amountUnits)

	pull.TxIDs = txIDs
	pull.PermissionHash = permissionHash
	pull.UpdatedAt = e.timeProvider.Now()
	pull.Status = entity.SpendPullSucceeded
	if pullErr != nil {
		pull.Status = entity.SpendPullFailed
		pull.Error = pullErr.Error()
	}

	if err := pulls.Finish(ctx, pull); err != nil {
		// the pending record still blocks a second pull for this key
		e.logger.Error("Failed to record spend pull outcome", map[string]any{
			"user_id":         userID,
			"idempotency_key": idempotencyKey,
			"status":          string(pull.Status),
			"tx_ids":          txIDs,
			"error":           err.Error(),
		})
	}

	if pullErr != nil {
		spendErr := errs.NewSpendError(userID, amountUnits, permissionHash, txIDs, pullErr)
		e.logger.Error("Spend pull failed", errs.LogFields(spendErr))
		return nil, spendErr
	}

	e.logger.Info("Spend pull succeeded", map[string]any{
		"user_id":         userID,
		"amount_units":    amountUnits,
		"permission_hash": permissionHash,
		"tx_ids":          txIDs,
	})
	return txIDs, nil
}

// replay answers a pull whose key was already claimed
func (e *Executor) replay(stored *entity.SpendPull, userID string, amountUnits int64) ([]string, error) {
	if stored.Status == entity.SpendPullSucceeded && stored.UserID == userID && stored.AmountUnits == amountUnits {
		e.logger.Info("Spend pull already succeeded, returning recorded transactions", map[string]any{
			"user_id":         userID,
			"idempotency_key": stored.IdempotencyKey,
			"tx_ids":          stored.TxIDs,
		})
		return stored.TxIDs, nil
	}

	err := errs.NewSpendError(userID, amountUnits, stored.PermissionHash, stored.TxIDs,
		fmt.Errorf("%w: key %s is %s", errs.ErrDuplicatePull, stored.IdempotencyKey, stored.Status))
	e.logger.Warn("Refusing to repeat spend pull", errs.LogFields(err))
	return nil, err
}

// execute loads the active permission, derives the calls and submits them in order.
// The returned tx IDs include those sent before a failure.
func (e *Executor) execute(ctx context.Context, userID string, amountUnits int64) ([]string, string, error) {
	permission, err := e.uow.GetSpendPermissionRepository(ctx).GetActive(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	now := e.timeProvider.Now()
	if !permission.IsStarted(now) || permission.IsExpired(now) {
		return nil, permission.PermissionHash, fmt.Errorf("%w: window %d-%d", errs.ErrPermissionExpired, permission.StartUnix, permission.EndUnix)
	}
	if !permission.Covers(amountUnits) {
		return nil, permission.PermissionHash, fmt.Errorf("%w: %d > %d", errs.ErrAllowanceExceeded, amountUnits, permission.AllowanceUnits)
	}

	signed, err := entity.ParseSignedSpendPermission(permission.PermissionPayload)
	if err != nil {
		return nil, permission.PermissionHash, err
	}
	if !strings.EqualFold(signed.Permission.Token, permission.TokenAddress) {
		return nil, permission.PermissionHash, fmt.Errorf("%w: payload token does not match", errs.ErrInvalidPermission)
	}

	calls, err := e.buildCalls(ctx, signed, amountUnits)
	if err != nil {
		return nil, permission.PermissionHash, err
	}

	txIDs := make([]string, 0, len(calls))
	for _, call := range calls {
		txID, err := e.gateway.Submit(ctx, call)
		if err != nil {
			return txIDs, permission.PermissionHash, fmt.Errorf("submit %s: %w", call.Kind, err)
		}
		txIDs = append(txIDs, txID)

		e.logger.Debug("Spend call submitted", map[string]any{
			"user_id": userID,
			"call":    string(call.Kind),
			"tx_id":   txID,
		})

		if err := e.gateway.WaitMined(ctx, txID); err != nil {
			return txIDs, permission.PermissionHash, fmt.Errorf("%s %s: %w", call.Kind, txID, err)
		}
	}

	return txIDs, permission.PermissionHash, nil
}

// buildCalls returns approveWithSignature followed by spend, dropping the approval
// when the chain already knows the permission
func (e *Executor) buildCalls(ctx context.Context, signed *entity.SignedSpendPermission, amountUnits int64) ([]entity.SpendCall, error) {
	approved, err := e.gateway.IsApproved(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("check approval: %w", err)
	}

	calls := make([]entity.SpendCall, 0, 2)
	if !approved {
		calls = append(calls, entity.SpendCall{Kind: entity.SpendCallApprove, Permission: signed})
	}
	calls = append(calls, entity.SpendCall{Kind: entity.SpendCallSpend, Permission: signed, AmountUnits: amountUnits})
	return calls, nil
}

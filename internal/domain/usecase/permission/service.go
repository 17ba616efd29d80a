package permission

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
)

// Service stores delegated spend permissions and tracks the active one per user
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new spend permission store
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Store validates the permission, upserts it by hash and makes it the active one.
// The permission end is projected onto the user's budget when a budget exists.
func (s *Service) Store(ctx context.Context, permission *entity.SpendPermission) (*entity.SpendPermission, error) {
	now := s.timeProvider.Now()
	if err := permission.Normalize(now); err != nil {
		s.logger.Warn("Rejected spend permission", map[string]any{
			"user_id": permission.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}
	permission.CreatedAt = now

	var budgetUpdated bool
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		permissions := s.uow.GetSpendPermissionRepository(txCtx)
		if err := permissions.Upsert(txCtx, permission); err != nil {
			return err
		}
		if err := permissions.SetActive(txCtx, permission.UserID, permission.PermissionHash); err != nil {
			return err
		}

		updated, err := s.uow.GetBudgetRepository(txCtx).SetPermissionExpiry(txCtx, permission.UserID, permission.ExpiresAt())
		if err != nil {
			return err
		}
		budgetUpdated = updated
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to store spend permission", map[string]any{
			"user_id":         permission.UserID,
			"permission_hash": permission.PermissionHash,
			"error":           err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Spend permission stored", map[string]any{
		"user_id":         permission.UserID,
		"permission_hash": permission.PermissionHash,
		"allowance_units": permission.AllowanceUnits,
		"end_unix":        permission.EndUnix,
		"budget_updated":  budgetUpdated,
	})
	return permission, nil
}

// GetLatest returns the user's active permission
func (s *Service) GetLatest(ctx context.Context, userID string) (*entity.SpendPermission, error) {
	normalized, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.uow.GetSpendPermissionRepository(ctx).GetActive(ctx, normalized)
}

package repository

import (
	"context"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpendPullRepository records on-chain pulls by idempotency key
type SpendPullRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSpendPullRepository creates a new SpendPullRepository instance
func NewSpendPullRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SpendPullRepository {
	return &SpendPullRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Claim inserts a pending pull, or returns the stored one when the key is taken
func (r *SpendPullRepository) Claim(ctx context.Context, pull *entity.SpendPull) (*entity.SpendPull, bool, error) {
	now := r.timeProvider.Now()
	row := model.SpendPull{
		IdempotencyKey: pull.IdempotencyKey,
		UserID:         pull.UserID,
		AmountUnits:    pull.AmountUnits,
		PermissionHash: pull.PermissionHash,
		TxIDs:          pull.TxIDs,
		Status:         string(entity.SpendPullPending),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return nil, false, storeError(result.Error)
	}
	if result.RowsAffected == 1 {
		claimed := *pull
		claimed.Status = entity.SpendPullPending
		claimed.CreatedAt = now
		claimed.UpdatedAt = now
		return &claimed, true, nil
	}

	var existing model.SpendPull
	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", pull.IdempotencyKey).First(&existing).Error; err != nil {
		return nil, false, storeError(err)
	}

	r.logger.Warn("Spend pull key already claimed", map[string]any{
		"idempotency_key": pull.IdempotencyKey,
		"status":          existing.Status,
	})
	return &entity.SpendPull{
		IdempotencyKey: existing.IdempotencyKey,
		UserID:         existing.UserID,
		AmountUnits:    existing.AmountUnits,
		PermissionHash: existing.PermissionHash,
		TxIDs:          existing.TxIDs,
		Status:         entity.SpendPullStatus(existing.Status),
		Error:          existing.Error,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      existing.UpdatedAt,
	}, false, nil
}

// Finish stores the final outcome of a claimed pull
func (r *SpendPullRepository) Finish(ctx context.Context, pull *entity.SpendPull) error {
	err := r.db.WithContext(ctx).Model(&model.SpendPull{}).
		Where("idempotency_key = ?", pull.IdempotencyKey).
		Updates(map[string]any{
			"status":          string(pull.Status),
			"tx_ids":          gorm.Expr("?::jsonb", marshalTxIDs(pull.TxIDs)),
			"permission_hash": pull.PermissionHash,
			"error":           pull.Error,
			"updated_at":      r.timeProvider.Now(),
		}).Error
	if err != nil {
		r.logger.Error("Database error when finishing spend pull", map[string]any{
			"idempotency_key": pull.IdempotencyKey,
			"tx_ids":          pull.TxIDs,
			"error":           err.Error(),
		})
		return storeError(err)
	}
	return nil
}

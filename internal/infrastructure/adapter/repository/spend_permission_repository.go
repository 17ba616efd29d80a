package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpendPermissionRepository stores signed permissions and the active pointer per user
type SpendPermissionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSpendPermissionRepository creates a new SpendPermissionRepository instance
func NewSpendPermissionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SpendPermissionRepository {
	return &SpendPermissionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func permissionToEntity(m *model.SpendPermission) *entity.SpendPermission {
	return &entity.SpendPermission{
		UserID:            m.UserID,
		PermissionHash:    m.PermissionHash,
		TokenAddress:      m.TokenAddress,
		AllowanceUnits:    m.AllowanceUnits,
		PeriodSeconds:     m.PeriodSeconds,
		StartUnix:         m.StartUnix,
		EndUnix:           m.EndUnix,
		PermissionPayload: m.PermissionPayload,
		CreatedAt:         m.CreatedAt,
	}
}

// Upsert inserts the permission or refreshes the row with the same hash
func (r *SpendPermissionRepository) Upsert(ctx context.Context, permission *entity.SpendPermission) error {
	now := r.timeProvider.Now()
	createdAt := permission.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	row := model.SpendPermission{
		PermissionHash:    permission.PermissionHash,
		UserID:            permission.UserID,
		TokenAddress:      permission.TokenAddress,
		AllowanceUnits:    permission.AllowanceUnits,
		PeriodSeconds:     permission.PeriodSeconds,
		StartUnix:         permission.StartUnix,
		EndUnix:           permission.EndUnix,
		PermissionPayload: permission.PermissionPayload,
		CreatedAt:         createdAt,
		UpdatedAt:         now,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "permission_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "token_address", "allowance_units", "period_seconds",
			"start_unix", "end_unix", "permission_payload", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Database error when storing spend permission", map[string]any{
			"user_id":         permission.UserID,
			"permission_hash": permission.PermissionHash,
			"error":           err.Error(),
		})
		return storeError(err)
	}
	return nil
}

// GetByHash retrieves a permission by its hash
func (r *SpendPermissionRepository) GetByHash(ctx context.Context, permissionHash string) (*entity.SpendPermission, error) {
	var row model.SpendPermission
	if err := r.db.WithContext(ctx).Where("permission_hash = ?", permissionHash).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoPermission
		}
		return nil, storeError(err)
	}
	return permissionToEntity(&row), nil
}

// GetActive retrieves the permission named by the user's active pointer
func (r *SpendPermissionRepository) GetActive(ctx context.Context, userID string) (*entity.SpendPermission, error) {
	var row model.SpendPermission
	err := r.db.WithContext(ctx).
		Joins("JOIN active_spend_permissions a ON a.permission_hash = spend_permissions.permission_hash").
		Where("a.user_id = ?", userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoPermission
		}
		r.logger.Error("Database error when getting active permission", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, storeError(err)
	}
	return permissionToEntity(&row), nil
}

// SetActive moves the user's active pointer
func (r *SpendPermissionRepository) SetActive(ctx context.Context, userID, permissionHash string) error {
	row := model.ActiveSpendPermission{
		UserID:         userID,
		PermissionHash: permissionHash,
		UpdatedAt:      r.timeProvider.Now(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"permission_hash", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return storeError(err)
	}

	r.logger.Debug("Active spend permission updated", map[string]any{
		"user_id":         userID,
		"permission_hash": permissionHash,
	})
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReconciliationRepository stores the liability ledger
type ReconciliationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReconciliationRepository creates a new ReconciliationRepository instance
func NewReconciliationRepository(db *gorm.DB, logger coreport.Logger) *ReconciliationRepository {
	return &ReconciliationRepository{
		db:     db,
		logger: logger,
	}
}

func reconciliationToEntity(m *model.ReconciliationItem) *entity.ReconciliationItem {
	return &entity.ReconciliationItem{
		ID:              m.ID,
		UserID:          m.UserID,
		ReservationID:   m.ReservationID,
		AmountUnits:     m.AmountUnits,
		PermissionHash:  m.PermissionHash,
		TxIDs:           m.TxIDs,
		ExchangeOrderID: m.ExchangeOrderID,
		Reason:          entity.ReconciliationReason(m.Reason),
		Detail:          m.Detail,
		Status:          entity.ReconciliationStatus(m.Status),
		Resolution:      m.Resolution,
		CreatedAt:       m.CreatedAt,
		ResolvedAt:      m.ResolvedAt,
	}
}

// Record inserts an open item
func (r *ReconciliationRepository) Record(ctx context.Context, item *entity.ReconciliationItem) error {
	row := model.ReconciliationItem{
		ID:              item.ID,
		UserID:          item.UserID,
		ReservationID:   item.ReservationID,
		AmountUnits:     item.AmountUnits,
		PermissionHash:  item.PermissionHash,
		TxIDs:           item.TxIDs,
		ExchangeOrderID: item.ExchangeOrderID,
		Reason:          string(item.Reason),
		Detail:          item.Detail,
		Status:          string(entity.ReconciliationOpen),
		CreatedAt:       item.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return storeError(err)
	}
	return nil
}

// ListOpen returns open items, newest first
func (r *ReconciliationRepository) ListOpen(ctx context.Context, userID string) ([]*entity.ReconciliationItem, error) {
	query := r.db.WithContext(ctx).Where("status = ?", string(entity.ReconciliationOpen))
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var rows []model.ReconciliationItem
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, storeError(err)
	}

	items := make([]*entity.ReconciliationItem, 0, len(rows))
	for i := range rows {
		items = append(items, reconciliationToEntity(&rows[i]))
	}
	return items, nil
}

// Resolve closes an open item. Only open items match, so a second resolve finds nothing.
func (r *ReconciliationRepository) Resolve(ctx context.Context, id, resolution string, resolvedAt time.Time) (*entity.ReconciliationItem, error) {
	var row model.ReconciliationItem
	result := r.db.WithContext(ctx).Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(entity.ReconciliationOpen)).
		Updates(map[string]any{
			"status":      string(entity.ReconciliationResolved),
			"resolution":  resolution,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return nil, storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrReconciliationNotFound
	}
	return reconciliationToEntity(&row), nil
}

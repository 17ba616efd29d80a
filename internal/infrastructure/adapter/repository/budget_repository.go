package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func budgetToEntity(m *model.Budget) *entity.Budget {
	return &entity.Budget{
		UserID:              m.UserID,
		WeeklyLimitCents:    m.WeeklyLimitCents,
		RemainingCents:      m.RemainingCents,
		PeriodStart:         m.PeriodStart,
		PermissionExpiresAt: m.PermissionExpiresAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func reservationToEntity(m *model.Reservation) *entity.Reservation {
	return &entity.Reservation{
		ID:          m.ID,
		UserID:      m.UserID,
		AmountCents: m.AmountCents,
		Status:      entity.ReservationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Get retrieves the budget of a user
func (r *BudgetRepository) Get(ctx context.Context, userID string) (*entity.Budget, error) {
	var budget model.Budget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBudgetNotFound
		}
		r.logger.Error("Database error when getting budget", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, storeError(err)
	}
	return budgetToEntity(&budget), nil
}

// Upsert overwrites the cap and the remaining amount in one statement
func (r *BudgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	now := r.timeProvider.Now()
	row := model.Budget{
		UserID:              budget.UserID,
		WeeklyLimitCents:    budget.WeeklyLimitCents,
		RemainingCents:      budget.RemainingCents,
		PeriodStart:         budget.PeriodStart,
		PermissionExpiresAt: budget.PermissionExpiresAt,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	columns := []string{"weekly_limit_cents", "remaining_cents", "period_start", "updated_at"}
	if budget.PermissionExpiresAt != nil {
		columns = append(columns, "permission_expires_at")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&row).Error
	if err != nil {
		r.logger.Error("Database error when setting budget", map[string]any{
			"user_id": budget.UserID,
			"error":   err.Error(),
		})
		return storeError(err)
	}

	r.logger.Debug("Budget upserted", map[string]any{
		"user_id":            budget.UserID,
		"weekly_limit_cents": budget.WeeklyLimitCents,
	})
	return nil
}

// Reserve debits the budget with a conditional update and records the reservation.
// Two concurrent reserves can never both succeed past the remaining amount.
func (r *BudgetRepository) Reserve(ctx context.Context, reservation *entity.Reservation) (*entity.Budget, error) {
	var budget model.Budget

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.Reservation{
			ID:          reservation.ID,
			UserID:      reservation.UserID,
			AmountCents: reservation.AmountCents,
			Status:      string(entity.ReservationReserved),
			CreatedAt:   reservation.CreatedAt,
			UpdatedAt:   reservation.UpdatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		result := tx.Model(&budget).
			Clauses(clause.Returning{}).
			Where("user_id = ? AND remaining_cents >= ?", reservation.UserID, reservation.AmountCents).
			Updates(map[string]any{
				"remaining_cents": gorm.Expr("remaining_cents - ?", reservation.AmountCents),
				"updated_at":      r.timeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			return nil
		}

		// Nothing was debited: tell a missing budget apart from an exhausted one
		var current model.Budget
		if err := tx.Where("user_id = ?", reservation.UserID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrBudgetNotFound
			}
			return err
		}
		return errs.NewInsufficientBudgetError(reservation.UserID, reservation.AmountCents, current.RemainingCents)
	})

	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBudgetNotFound), errs.IsInsufficientBudgetError(err):
			return nil, err
		case r.errorClassifier.IsDuplicateKeyError(err):
			r.logger.Warn("Duplicate reservation", map[string]any{
				"user_id":        reservation.UserID,
				"reservation_id": reservation.ID,
			})
			return nil, errs.ErrDuplicateTrade
		default:
			r.logger.Error("Database error when reserving budget", map[string]any{
				"user_id":        reservation.UserID,
				"reservation_id": reservation.ID,
				"error":          err.Error(),
			})
			return nil, storeError(err)
		}
	}

	return budgetToEntity(&budget), nil
}

// Release flips an open reservation to released and credits its amount back, capped at the limit
func (r *BudgetRepository) Release(ctx context.Context, reservationID string) (bool, error) {
	released := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation model.Reservation
		result := tx.Model(&reservation).
			Clauses(clause.Returning{}).
			Where("id = ? AND status = ?", reservationID, string(entity.ReservationReserved)).
			Updates(map[string]any{
				"status":     string(entity.ReservationReleased),
				"updated_at": r.timeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.ensureReservationExists(tx, reservationID)
		}

		err := tx.Model(&model.Budget{}).
			Where("user_id = ?", reservation.UserID).
			Updates(map[string]any{
				"remaining_cents": gorm.Expr("LEAST(remaining_cents + ?, weekly_limit_cents)", reservation.AmountCents),
				"updated_at":      r.timeProvider.Now(),
			}).Error
		if err != nil {
			return err
		}
		released = true
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			return false, err
		}
		r.logger.Error("Database error when releasing reservation", map[string]any{
			"reservation_id": reservationID,
			"error":          err.Error(),
		})
		return false, storeError(err)
	}
	return released, nil
}

// Commit marks an open reservation as committed. Committing twice is a no-op.
func (r *BudgetRepository) Commit(ctx context.Context, reservationID string) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.Reservation{}).
		Where("id = ? AND status = ?", reservationID, string(entity.ReservationReserved)).
		Updates(map[string]any{
			"status":     string(entity.ReservationCommitted),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	reservation, err := r.GetReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.Status == entity.ReservationCommitted {
		return nil
	}
	return errs.ErrReservationClosed
}

// GetReservation retrieves a reservation by ID
func (r *BudgetRepository) GetReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", reservationID).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, storeError(err)
	}
	return reservationToEntity(&reservation), nil
}

// SetPermissionExpiry projects the active permission end onto the budget
func (r *BudgetRepository) SetPermissionExpiry(ctx context.Context, userID string, expiresAt *time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"permission_expires_at": expiresAt,
			"updated_at":            r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, storeError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *BudgetRepository) ensureReservationExists(tx *gorm.DB, reservationID string) error {
	var count int64
	if err := tx.Model(&model.Reservation{}).Where("id = ?", reservationID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrReservationNotFound
	}
	return nil
}

package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
)

// Service implements the weekly budget ledger
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new budget ledger service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SetBudget overwrites the cap and remaining amount together and restarts the period.
// Calling it twice with the same amount leaves the same state.
func (s *Service) SetBudget(ctx context.Context, userID string, amountCents int64, permissionExpiresAt *time.Time) (*entity.Budget, error) {
	budget, err := entity.NewBudget(userID, amountCents, permissionExpiresAt, s.timeProvider)
	if err != nil {
		return nil, err
	}

	repo := s.uow.GetBudgetRepository(ctx)
	if err := repo.Upsert(ctx, budget); err != nil {
		return nil, err
	}

	stored, err := repo.Get(ctx, budget.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Budget set", map[string]any{
		"user_id":      stored.UserID,
		"weekly_limit": stored.GetWeeklyLimit(),
		"remaining":    stored.GetRemaining(),
	})
	return stored, nil
}

// GetBudget returns the current budget of a user
func (s *Service) GetBudget(ctx context.Context, userID string) (*entity.Budget, error) {
	normalized, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.uow.GetBudgetRepository(ctx).Get(ctx, normalized)
}

// Reserve holds amountCents of the user's remaining budget
func (s *Service) Reserve(ctx context.Context, userID, reservationID string, amountCents int64) (*entity.Reservation, error) {
	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservation ID is required", errs.ErrMissingParams)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: reservation amount must be positive", errs.ErrInvalidAmount)
	}

	now := s.timeProvider.Now()
	reservation := &entity.Reservation{
		ID:          reservationID,
		UserID:      userID,
		AmountCents: amountCents,
		Status:      entity.ReservationReserved,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	budget, err := s.uow.GetBudgetRepository(ctx).Reserve(ctx, reservation)
	if err != nil {
		var insufficient *errs.InsufficientBudgetError
		if errors.As(err, &insufficient) {
			s.logger.Warn("Reservation refused", insufficient.LogFields())
		}
		return nil, err
	}

	s.logger.Info("Budget reserved", map[string]any{
		"user_id":         userID,
		"reservation_id":  reservationID,
		"amount":          entity.AmountInCentsToString(amountCents),
		"remaining_cents": budget.RemainingCents,
	})
	return reservation, nil
}

// Release returns a reservation to the budget. A reservation is never credited twice.
func (s *Service) Release(ctx context.Context, reservationID string) (bool, error) {
	released, err := s.uow.GetBudgetRepository(ctx).Release(ctx, reservationID)
	if err != nil {
		s.logger.Error("Failed to release reservation", map[string]any{
			"reservation_id": reservationID,
			"error":          err.Error(),
		})
		return false, err
	}

	if !released {
		s.logger.Debug("Reservation already closed, nothing released", map[string]any{
			"reservation_id": reservationID,
		})
		return false, nil
	}

	s.logger.Info("Reservation released", map[string]any{
		"reservation_id": reservationID,
	})
	return true, nil
}

// Commit finalizes a reservation once its order is recorded
func (s *Service) Commit(ctx context.Context, reservationID string) error {
	if err := s.uow.GetBudgetRepository(ctx).Commit(ctx, reservationID); err != nil {
		return err
	}

	s.logger.Debug("Reservation committed", map[string]any{
		"reservation_id": reservationID,
	})
	return nil
}

package reconciliation

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
)

// Service manages the liability ledger of funds pulled without a recorded order
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new reconciliation service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListOpen returns open items, for every user when userID is empty
func (s *Service) ListOpen(ctx context.Context, userID string) ([]*entity.ReconciliationItem, error) {
	if userID != "" {
		normalized, err := entity.NormalizeUserID(userID)
		if err != nil {
			return nil, err
		}
		userID = normalized
	}

	return s.uow.GetReconciliationRepository(ctx).ListOpen(ctx, userID)
}

// Resolve closes an open item. Resolving an item twice returns ErrReconciliationNotFound.
func (s *Service) Resolve(ctx context.Context, id, resolution string) (*entity.ReconciliationItem, error) {
	id = strings.TrimSpace(id)
	resolution = strings.TrimSpace(resolution)
	if id == "" || resolution == "" {
		return nil, fmt.Errorf("%w: id and resolution are required", errs.ErrMissingParams)
	}

	item, err := s.uow.GetReconciliationRepository(ctx).Resolve(ctx, id, resolution, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation item resolved", map[string]any{
		"reconciliation_id": item.ID,
		"user_id":           item.UserID,
		"reason":            string(item.Reason),
		"amount_units":      item.AmountUnits,
		"resolution":        resolution,
	})
	return item, nil
}

package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
)

// Saga step names used in errors, logs and metrics
const (
	StepReserve = "reserve"
	StepPull    = "pull"
	StepOrder   = "order"
	StepAppend  = "append"
	StepSell    = "sell"
)

// Trade kinds used in metrics
const (
	kindBuy  = "buy"
	kindSell = "sell"
)

// Dependencies groups the collaborators of the saga
type Dependencies struct {
	Budget       usecase.BudgetLedger
	Executor     usecase.SpendExecutor
	Exchange     gateway.ExchangeOrderClient
	Markets      gateway.MarketMetadataProvider
	Positions    gateway.PositionCache // optional
	UnitOfWork   persistence.UnitOfWork
	UserLocks    persistence.UserLockRepository
	IDGenerator  coreport.IDGenerator
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
	Metrics      coreport.Metrics
}

// Saga orchestrates reserve, pull, order and ledger append, compensating on failure
type Saga struct {
	Dependencies
	config Config
	queue  *UserQueue
}

// NewSaga creates a new trade saga
func NewSaga(deps Dependencies, config Config) *Saga {
	return &Saga{
		Dependencies: deps,
		config:       config,
		queue:        NewUserQueue(deps.Logger, config.QueueSize, config.QueueIdleTimeout),
	}
}

// ExecuteTrade runs the buy saga for a validated intent
func (s *Saga) ExecuteTrade(ctx context.Context, intent entity.TradeIntent) (*entity.TradeResult, error) {
	result, err := s.executeTrade(ctx, intent)
	s.Metrics.IncTrade(kindBuy, resultCode(err))
	return result, err
}

func (s *Saga) executeTrade(ctx context.Context, intent entity.TradeIntent) (*entity.TradeResult, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	costCents, err := entity.CostInCents(intent.Size, intent.Price)
	if err != nil {
		return nil, err
	}
	if costCents == 0 {
		return nil, fmt.Errorf("%w: trade cost rounds to zero cents", errs.ErrInvalidAmount)
	}
	amountUnits, err := entity.ToBaseUnits(intent.Size.Mul(intent.Price))
	if err != nil {
		return nil, err
	}

	reservationID := intent.IdempotencyKey
	if reservationID == "" {
		reservationID = s.IDGenerator.NewID()
	}

	var result *entity.TradeResult
	err = s.queue.Do(ctx, intent.UserID, func(ctx context.Context) error {
		return s.withUserLock(ctx, intent.UserID, func(ctx context.Context) error {
			var runErr error
			result, runErr = s.runTrade(ctx, intent, reservationID, costCents, amountUnits)
			return runErr
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// runTrade executes steps 2 to 5 while the user is serialized
func (s *Saga) runTrade(ctx context.Context, intent entity.TradeIntent, reservationID string, costCents, amountUnits int64) (*entity.TradeResult, error) {
	userID := intent.UserID

	// 2. reserve
	start := s.TimeProvider.Now()
	if _, err := s.Budget.Reserve(ctx, userID, reservationID, costCents); err != nil {
		s.observe(StepReserve, start, err)
		return nil, errs.NewSagaError(StepReserve, userID, reservationID, false, err)
	}
	s.observe(StepReserve, start, nil)

	// once funds may move, the request's cancellation no longer applies
	detached := context.WithoutCancel(ctx)

	// 3. pull
	start = s.TimeProvider.Now()
	pullCtx, cancel := context.WithTimeout(detached, s.config.PullTimeout)
	txIDs, err := s.Executor.Pull(pullCtx, userID, amountUnits, reservationID)
	cancel()
	s.observe(StepPull, start, err)
	if err != nil {
		if !errors.Is(err, errs.ErrSpendFailed) && !errors.Is(err, errs.ErrNoPermission) {
			err = errs.NewSpendError(userID, amountUnits, "", nil, err)
		}
		compensated := s.release(detached, StepPull, reservationID)

		// transactions were broadcast, so funds may still land with the operator
		var spendErr *errs.SpendError
		if errors.As(err, &spendErr) && len(spendErr.TxIDs) > 0 {
			s.recordLiability(detached, &entity.ReconciliationItem{
				UserID:         userID,
				ReservationID:  reservationID,
				AmountUnits:    amountUnits,
				PermissionHash: spendErr.PermissionHash,
				TxIDs:          spendErr.TxIDs,
				Reason:         entity.ReasonPullOutcomeUnknown,
				Detail:         err.Error(),
			})
		}

		code := errs.CodeSpendFailed
		if errs.IsNoPermissionError(err) {
			code = errs.CodeNoPermission
		}
		sagaErr := errs.NewSagaStepError(StepPull, code, userID, reservationID, compensated, err)
		s.Logger.Error("Trade saga failed", errs.LogFields(sagaErr))
		return nil, sagaErr
	}

	// 4. order
	start = s.TimeProvider.Now()
	orderCtx, cancel := context.WithTimeout(detached, s.config.OrderTimeout)
	placed, err := s.Exchange.PlaceOrder(orderCtx, entity.OrderRequest{
		TokenID:    intent.TokenID,
		Side:       intent.Side,
		Price:      intent.Price,
		Size:       intent.Size,
		TickSize:   intent.TickSize,
		NegRisk:    intent.NegRisk,
		FeeRateBps: intent.FeeRateBps,
	})
	cancel()
	s.observe(StepOrder, start, err)
	if err != nil {
		if !errors.Is(err, errs.ErrOrderRejected) {
			err = fmt.Errorf("%w: %w", errs.ErrOrderRejected, err)
		}
		compensated := s.release(detached, StepOrder, reservationID)
		s.recordLiability(detached, &entity.ReconciliationItem{
			UserID:        userID,
			ReservationID: reservationID,
			AmountUnits:   amountUnits,
			TxIDs:         txIDs,
			Reason:        entity.ReasonOrderFailedAfterPull,
			Detail:        err.Error(),
		})
		sagaErr := errs.NewSagaStepError(StepOrder, errs.CodeOrderFailed, userID, reservationID, compensated, err)
		s.Logger.Error("Trade saga failed", mergeFields(errs.LogFields(sagaErr), map[string]any{
			"tx_ids":       txIDs,
			"amount_units": amountUnits,
		}))
		return nil, sagaErr
	}

	// 5. append and commit
	order := &entity.Order{
		ID:              s.IDGenerator.NewID(),
		UserID:          userID,
		MarketID:        intent.MarketID,
		TokenID:         intent.TokenID,
		Side:            intent.Side,
		Price:           intent.Price,
		Size:            intent.Size,
		ExchangeOrderID: placed.ExchangeOrderID,
		Status:          placed.Status,
		ReservationID:   reservationID,
		CreatedAt:       s.TimeProvider.Now(),
	}

	start = s.TimeProvider.Now()
	err = s.UnitOfWork.Execute(detached, func(txCtx context.Context) error {
		if err := s.UnitOfWork.GetOrderRepository(txCtx).Append(txCtx, order); err != nil {
			return err
		}
		return s.Budget.Commit(txCtx, reservationID)
	})
	s.observe(StepAppend, start, err)
	if err != nil {
		if !errors.Is(err, errs.ErrStore) {
			err = fmt.Errorf("%w: %w", errs.ErrStore, err)
		}
		// the order exists on the exchange, so the budget stays spent
		s.recordLiability(detached, &entity.ReconciliationItem{
			UserID:          userID,
			ReservationID:   reservationID,
			AmountUnits:     amountUnits,
			TxIDs:           txIDs,
			ExchangeOrderID: placed.ExchangeOrderID,
			Reason:          entity.ReasonLedgerAppendFailed,
			Detail:          err.Error(),
		})
		sagaErr := errs.NewSagaStepError(StepAppend, errs.CodeStoreError, userID, reservationID, false, err)
		s.Logger.Error("Order accepted by exchange but not recorded", mergeFields(errs.LogFields(sagaErr), map[string]any{
			"exchange_order_id": placed.ExchangeOrderID,
			"market_id":         intent.MarketID,
			"side":              string(intent.Side),
			"price":             intent.Price.String(),
			"size":              intent.Size.String(),
			"tx_ids":            txIDs,
		}))
		return nil, sagaErr
	}

	s.invalidatePositions(detached, userID)

	s.Logger.Info("Trade executed", map[string]any{
		"user_id":           userID,
		"reservation_id":    reservationID,
		"order_id":          order.ID,
		"exchange_order_id": order.ExchangeOrderID,
		"market_id":         order.MarketID,
		"side":              string(order.Side),
		"cost":              entity.AmountInCentsToString(costCents),
		"tx_ids":            txIDs,
	})

	return &entity.TradeResult{
		Order:         order,
		ReservationID: reservationID,
		CostCents:     costCents,
		TxIDs:         txIDs,
	}, nil
}

// SellPosition closes size shares of a held side. Reserve and pull are skipped since
// closing returns funds; the closing leg is recorded with the opposite side.
func (s *Saga) SellPosition(ctx context.Context, intent entity.SellIntent) (*entity.SellResult, error) {
	result, err := s.sellPosition(ctx, intent)
	s.Metrics.IncTrade(kindSell, resultCode(err))
	return result, err
}

func (s *Saga) sellPosition(ctx context.Context, intent entity.SellIntent) (*entity.SellResult, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}

	market, err := s.Markets.GetMarket(ctx, intent.MarketID)
	if err != nil {
		return nil, err
	}
	tokenID, err := market.TokenFor(intent.Side)
	if err != nil {
		return nil, err
	}
	closingSide := intent.Side.Opposite()

	var result *entity.SellResult
	err = s.queue.Do(ctx, intent.UserID, func(ctx context.Context) error {
		return s.withUserLock(ctx, intent.UserID, func(ctx context.Context) error {
			detached := context.WithoutCancel(ctx)

			if err := s.claimSellKey(ctx, intent); err != nil {
				return err
			}

			start := s.TimeProvider.Now()
			orderCtx, cancel := context.WithTimeout(detached, s.config.OrderTimeout)
			placed, err := s.Exchange.PlaceMarketSell(orderCtx, entity.MarketSellRequest{
				TokenID:    tokenID,
				Side:       closingSide,
				Size:       intent.Size,
				FloorPrice: s.config.SellFloorPrice,
				NegRisk:    market.NegRisk,
			})
			cancel()
			s.observe(StepSell, start, err)
			if err != nil {
				if !errors.Is(err, errs.ErrOrderRejected) {
					err = fmt.Errorf("%w: %w", errs.ErrOrderRejected, err)
				}
				return errs.NewSagaStepError(StepSell, errs.CodeOrderFailed, intent.UserID, "", false, err)
			}

			order := &entity.Order{
				ID:              s.IDGenerator.NewID(),
				UserID:          intent.UserID,
				MarketID:        intent.MarketID,
				TokenID:         tokenID,
				Side:            closingSide,
				Price:           s.config.SellFloorPrice,
				Size:            intent.Size,
				ExchangeOrderID: placed.ExchangeOrderID,
				Status:          placed.Status,
				IdempotencyKey:  intent.IdempotencyKey,
				CreatedAt:       s.TimeProvider.Now(),
			}

			if err := s.UnitOfWork.GetOrderRepository(detached).Append(detached, order); err != nil {
				if !errors.Is(err, errs.ErrStore) {
					err = fmt.Errorf("%w: %w", errs.ErrStore, err)
				}
				s.recordLiability(detached, &entity.ReconciliationItem{
					UserID:          intent.UserID,
					ExchangeOrderID: placed.ExchangeOrderID,
					Reason:          entity.ReasonLedgerAppendFailed,
					Detail:          err.Error(),
				})
				sagaErr := errs.NewSagaStepError(StepAppend, errs.CodeStoreError, intent.UserID, "", false, err)
				s.Logger.Error("Sell accepted by exchange but not recorded", mergeFields(errs.LogFields(sagaErr), map[string]any{
					"exchange_order_id": placed.ExchangeOrderID,
					"market_id":         intent.MarketID,
					"side":              string(closingSide),
				}))
				return sagaErr
			}

			s.invalidatePositions(detached, intent.UserID)

			s.Logger.Info("Position sold", map[string]any{
				"user_id":           intent.UserID,
				"order_id":          order.ID,
				"exchange_order_id": order.ExchangeOrderID,
				"market_id":         order.MarketID,
				"closing_side":      string(closingSide),
				"size":              order.Size.String(),
			})
			result = &entity.SellResult{Order: order, LedgerOrderID: order.ID}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Shutdown stops the user queue workers
func (s *Saga) Shutdown() {
	s.queue.Shutdown()
}

// claimSellKey refuses a sell whose idempotency key is already on the ledger. The caller
// holds the user lock, so the check cannot race another sell for the same user.
func (s *Saga) claimSellKey(ctx context.Context, intent entity.SellIntent) error {
	if intent.IdempotencyKey == "" {
		return nil
	}

	existing, err := s.UnitOfWork.GetOrderRepository(ctx).FindByIdempotencyKey(ctx, intent.UserID, intent.IdempotencyKey)
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		return nil
	case err != nil:
		return err
	}

	s.Logger.Warn("Sell already recorded for idempotency key", map[string]any{
		"user_id":         intent.UserID,
		"idempotency_key": intent.IdempotencyKey,
		"order_id":        existing.ID,
	})
	return fmt.Errorf("%w: order %s", errs.ErrDuplicateTrade, existing.ID)
}

// withUserLock holds the cross-instance user lock around fn
func (s *Saga) withUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	owner := s.IDGenerator.NewID()
	if err := s.UserLocks.AcquireLock(ctx, userID, owner, s.config.LockTTL); err != nil {
		return err
	}
	defer func() {
		if err := s.UserLocks.ReleaseLock(context.WithoutCancel(ctx), userID, owner); err != nil {
			s.Logger.Warn("Failed to release user lock, it will expire", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}()

	return fn(ctx)
}

// release compensates a failed step and reports whether budget was returned
func (s *Saga) release(ctx context.Context, step, reservationID string) bool {
	released, err := s.Budget.Release(ctx, reservationID)
	if err != nil {
		s.Logger.Error("Compensation failed, reservation still held", map[string]any{
			"step":           step,
			"reservation_id": reservationID,
			"error":          err.Error(),
		})
		return false
	}
	if released {
		s.Metrics.IncCompensation(step)
	}
	return released
}

// recordLiability writes a reconciliation item for funds the operator holds
func (s *Saga) recordLiability(ctx context.Context, item *entity.ReconciliationItem) {
	item.ID = s.IDGenerator.NewID()
	item.Status = entity.ReconciliationOpen
	item.CreatedAt = s.TimeProvider.Now()

	if err := s.UnitOfWork.GetReconciliationRepository(ctx).Record(ctx, item); err != nil {
		s.Logger.Error("Failed to record reconciliation item", map[string]any{
			"user_id":           item.UserID,
			"reservation_id":    item.ReservationID,
			"reason":            string(item.Reason),
			"amount_units":      item.AmountUnits,
			"tx_ids":            item.TxIDs,
			"exchange_order_id": item.ExchangeOrderID,
			"error":             err.Error(),
		})
		return
	}
	s.Metrics.IncReconciliation(string(item.Reason))
	s.Logger.Warn("Reconciliation item recorded", map[string]any{
		"reconciliation_id": item.ID,
		"user_id":           item.UserID,
		"reason":            string(item.Reason),
		"amount_units":      item.AmountUnits,
	})
}

func (s *Saga) invalidatePositions(ctx context.Context, userID string) {
	if s.Positions == nil {
		return
	}
	if err := s.Positions.Invalidate(ctx, userID); err != nil {
		s.Logger.Warn("Failed to invalidate cached positions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func (s *Saga) observe(step string, start time.Time, err error) {
	outcome := coreport.OutcomeSuccess
	if err != nil {
		outcome = coreport.OutcomeFailure
	}
	s.Metrics.ObserveStep(step, outcome, s.TimeProvider.Since(start).Std())
}

func resultCode(err error) string {
	if err == nil {
		return "ok"
	}
	return errs.Code(err)
}

func mergeFields(base, extra map[string]any) map[string]any {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

package trade

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/trade-saga/mocks/port/gateway"
	usecasemocks "github.com/amirhossein-jamali/trade-saga/mocks/port/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUser   = "0x52908400098527886e0f7030069857d2e4169ee7"
	testMarket = "0xmarket"
	yesToken   = "111"
	noToken    = "222"
)

var testNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

type sagaFixture struct {
	budget   *memBudget
	ledger   *memLedger
	locks    *memLocks
	executor *usecasemocks.MockSpendExecutor
	exchange *gatewaymocks.MockExchangeOrderClient
	markets  *gatewaymocks.MockMarketMetadataProvider
	cache    *gatewaymocks.MockPositionCache
	metrics  *coremocks.MockMetrics
	saga     *Saga
}

func newSagaFixture(t *testing.T, limitCents int64) *sagaFixture {
	f := &sagaFixture{
		budget:   newMemBudget(limitCents),
		ledger:   &memLedger{},
		locks:    newMemLocks(),
		executor: usecasemocks.NewMockSpendExecutor(t),
		exchange: gatewaymocks.NewMockExchangeOrderClient(t),
		markets:  gatewaymocks.NewMockMarketMetadataProvider(t),
		cache:    gatewaymocks.NewMockPositionCache(t),
		metrics:  coremocks.NewMockMetrics(t),
	}

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(testNow).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Millisecond).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.metrics.EXPECT().ObserveStep(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().IncTrade(mock.Anything, mock.Anything).Maybe()
	f.cache.EXPECT().Invalidate(mock.Anything, testUser).Return(nil).Maybe()

	f.saga = NewSaga(Dependencies{
		Budget:       f.budget,
		Executor:     f.executor,
		Exchange:     f.exchange,
		Markets:      f.markets,
		Positions:    f.cache,
		UnitOfWork:   f.ledger,
		UserLocks:    f.locks,
		IDGenerator:  &seqIDs{},
		TimeProvider: timeProvider,
		Logger:       logger,
		Metrics:      f.metrics,
	}, DefaultConfig())
	t.Cleanup(f.saga.Shutdown)

	return f
}

func buyIntent(price, size, key string) entity.TradeIntent {
	return entity.TradeIntent{
		UserID:         testUser,
		MarketID:       testMarket,
		TokenID:        yesToken,
		Side:           entity.SideYes,
		Price:          decimal.RequireFromString(price),
		Size:           decimal.RequireFromString(size),
		IdempotencyKey: key,
	}
}

func TestSaga_ExecuteTrade(t *testing.T) {
	t.Run("Successful trade debits the budget and appends the order", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, int64(4_400_000), "trade-1").
			Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
			return req.TokenID == yesToken && req.Side == entity.SideYes && req.TickSize.Equal(entity.DefaultTickSize)
		})).Return(&entity.PlacedOrder{ExchangeOrderID: "ex-1", Status: "matched"}, nil).Once()

		// Act
		result, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(440), result.CostCents)
		assert.Equal(t, "trade-1", result.ReservationID)
		assert.Equal(t, []string{"0xtx1"}, result.TxIDs)
		assert.Equal(t, "ex-1", result.Order.ExchangeOrderID)
		assert.Equal(t, int64(560), f.budget.remainingCents())
		assert.Equal(t, entity.ReservationCommitted, f.budget.status("trade-1"))
		require.Len(t, f.ledger.orderRows(), 1)
		assert.Empty(t, f.ledger.openItems())
		assert.Zero(t, f.locks.held())
	})

	t.Run("Trade over the remaining budget is refused before any pull", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, "trade-1").Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(&entity.PlacedOrder{ExchangeOrderID: "ex-1", Status: "matched"}, nil).Once()
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))
		require.NoError(t, err)

		// Act
		_, err = f.saga.ExecuteTrade(context.Background(), buyIntent("0.70", "10", "trade-2"))

		// Assert
		require.Error(t, err)
		assert.True(t, errs.IsInsufficientBudgetError(err))
		assert.Equal(t, errs.CodeInsufficientBudget, errs.Code(err))
		var sagaErr *errs.SagaError
		require.ErrorAs(t, err, &sagaErr)
		assert.Equal(t, StepReserve, sagaErr.Step)
		assert.Equal(t, int64(560), f.budget.remainingCents())
		assert.Len(t, f.ledger.orderRows(), 1)
	})

	t.Run("Failed pull releases the reservation", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, int64(4_400_000), "trade-1").
			Return(nil, errs.NewSpendError(testUser, 4_400_000, "0xhash", nil, errors.New("execution reverted"))).Once()
		f.metrics.EXPECT().IncCompensation(StepPull).Once()

		// Act
		result, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, errs.CodeSpendFailed, errs.Code(err))
		var sagaErr *errs.SagaError
		require.ErrorAs(t, err, &sagaErr)
		assert.True(t, sagaErr.Compensated)
		assert.Equal(t, int64(1000), f.budget.remainingCents())
		assert.Equal(t, entity.ReservationReleased, f.budget.status("trade-1"))
		assert.Empty(t, f.ledger.orderRows())
		assert.Empty(t, f.ledger.openItems())
	})

	t.Run("Off-tick intent is charged at the price and size the exchange signs", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, int64(4_500_000), "trade-q").
			Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
			return req.Price.Equal(decimal.RequireFromString("0.45")) && req.Size.Equal(decimal.NewFromInt(10))
		})).Return(&entity.PlacedOrder{ExchangeOrderID: "ex-1", Status: "matched"}, nil).Once()

		// Act
		result, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.445", "10.005", "trade-q"))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(450), result.CostCents)
		assert.Equal(t, int64(550), f.budget.remainingCents())
		rows := f.ledger.orderRows()
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Price.Equal(decimal.RequireFromString("0.45")))
		assert.True(t, rows[0].Size.Equal(decimal.NewFromInt(10)))
	})

	t.Run("Step failures report the step code whatever the cause", func(t *testing.T) {
		tests := []struct {
			name       string
			arrange    func(f *sagaFixture)
			wantCode   string
			wantStatus int
			wantItems  int
		}{
			{
				name: "order rejected for an invalid amount after the pull",
				arrange: func(f *sagaFixture) {
					f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, "trade-1").Return([]string{"0xtx1"}, nil).Once()
					f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
						Return(nil, fmt.Errorf("%w: size below increment", errs.ErrInvalidAmount)).Once()
					f.metrics.EXPECT().IncCompensation(StepOrder).Once()
					f.metrics.EXPECT().IncReconciliation(string(entity.ReasonOrderFailedAfterPull)).Once()
				},
				wantCode:   errs.CodeOrderFailed,
				wantStatus: 500,
				wantItems:  1,
			},
			{
				name: "pull failed on an invalid permission",
				arrange: func(f *sagaFixture) {
					f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, "trade-1").
						Return(nil, errs.NewSpendError(testUser, 4_400_000, "0xhash", nil, errs.ErrInvalidPermission)).Once()
					f.metrics.EXPECT().IncCompensation(StepPull).Once()
				},
				wantCode:   errs.CodeSpendFailed,
				wantStatus: 500,
				wantItems:  0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Arrange
				f := newSagaFixture(t, 1000)
				tt.arrange(f)

				// Act
				_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

				// Assert
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errs.Code(err))
				assert.Equal(t, tt.wantStatus, errs.HTTPStatus(err))
				assert.Equal(t, int64(1000), f.budget.remainingCents())
				assert.Len(t, f.ledger.openItems(), tt.wantItems)
			})
		}
	})

	t.Run("Pull that broadcast transactions before failing records a liability", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, int64(4_400_000), "trade-1").
			Return(nil, errs.NewSpendError(testUser, 4_400_000, "0xhash", []string{"0xtx1"}, context.DeadlineExceeded)).Once()
		f.metrics.EXPECT().IncCompensation(StepPull).Once()
		f.metrics.EXPECT().IncReconciliation(string(entity.ReasonPullOutcomeUnknown)).Once()

		// Act
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		require.Error(t, err)
		assert.Equal(t, errs.CodeSpendFailed, errs.Code(err))
		assert.Equal(t, int64(1000), f.budget.remainingCents())
		assert.Empty(t, f.ledger.orderRows())

		items := f.ledger.openItems()
		require.Len(t, items, 1)
		assert.Equal(t, entity.ReasonPullOutcomeUnknown, items[0].Reason)
		assert.Equal(t, []string{"0xtx1"}, items[0].TxIDs)
		assert.Equal(t, "0xhash", items[0].PermissionHash)
		assert.Equal(t, int64(4_400_000), items[0].AmountUnits)
		assert.Equal(t, "trade-1", items[0].ReservationID)
	})

	t.Run("Missing permission keeps its own code", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, mock.Anything).
			Return(nil, errs.NewSpendError(testUser, 4_400_000, "", nil, errs.ErrNoPermission)).Once()
		f.metrics.EXPECT().IncCompensation(StepPull).Once()

		// Act
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		assert.Equal(t, errs.CodeNoPermission, errs.Code(err))
		assert.Equal(t, int64(1000), f.budget.remainingCents())
	})

	t.Run("Rejected order releases the budget and records the pulled funds", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, int64(4_400_000), "trade-1").
			Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(nil, errors.New("not enough liquidity")).Once()
		f.metrics.EXPECT().IncCompensation(StepOrder).Once()
		f.metrics.EXPECT().IncReconciliation(string(entity.ReasonOrderFailedAfterPull)).Once()

		// Act
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrOrderRejected))
		assert.Equal(t, errs.CodeOrderFailed, errs.Code(err))
		assert.Equal(t, int64(1000), f.budget.remainingCents())
		assert.Empty(t, f.ledger.orderRows())

		items := f.ledger.openItems()
		require.Len(t, items, 1)
		assert.Equal(t, entity.ReasonOrderFailedAfterPull, items[0].Reason)
		assert.Equal(t, entity.ReconciliationOpen, items[0].Status)
		assert.Equal(t, int64(4_400_000), items[0].AmountUnits)
		assert.Equal(t, []string{"0xtx1"}, items[0].TxIDs)
		assert.Equal(t, "trade-1", items[0].ReservationID)
		assert.Zero(t, f.locks.held())
	})

	t.Run("Ledger append failure keeps the budget spent and records a liability", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.ledger.appendErr = errors.New("connection reset")
		f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, "trade-1").Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(&entity.PlacedOrder{ExchangeOrderID: "ex-1", Status: "matched"}, nil).Once()
		f.metrics.EXPECT().IncReconciliation(string(entity.ReasonLedgerAppendFailed)).Once()

		// Act
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		require.Error(t, err)
		assert.Equal(t, errs.CodeStoreError, errs.Code(err))
		assert.Equal(t, int64(560), f.budget.remainingCents())
		assert.Equal(t, entity.ReservationReserved, f.budget.status("trade-1"))

		items := f.ledger.openItems()
		require.Len(t, items, 1)
		assert.Equal(t, entity.ReasonLedgerAppendFailed, items[0].Reason)
		assert.Equal(t, "ex-1", items[0].ExchangeOrderID)
	})

	t.Run("Reused idempotency key is a duplicate trade", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, "trade-1").Return([]string{"0xtx1"}, nil).Once()
		f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
			Return(&entity.PlacedOrder{ExchangeOrderID: "ex-1", Status: "matched"}, nil).Once()
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))
		require.NoError(t, err)

		// Act
		_, err = f.saga.ExecuteTrade(context.Background(), buyIntent("0.10", "1", "trade-1"))

		// Assert
		assert.Equal(t, errs.CodeDuplicateTrade, errs.Code(err))
		assert.Equal(t, int64(560), f.budget.remainingCents())
	})

	t.Run("Invalid intents are rejected before reserving", func(t *testing.T) {
		tests := []struct {
			name     string
			intent   entity.TradeIntent
			wantCode string
		}{
			{"bad user", func() entity.TradeIntent { i := buyIntent("0.44", "10", "k"); i.UserID = "alice"; return i }(), errs.CodeInvalidUserID},
			{"price above one", buyIntent("1.2", "10", "k"), errs.CodeMissingParams},
			{"zero size", buyIntent("0.44", "0", "k"), errs.CodeMissingParams},
			{"price below one tick", buyIntent("0.004", "10", "k"), errs.CodeMissingParams},
			{"size below share increment", buyIntent("0.44", "0.004", "k"), errs.CodeMissingParams},
			{"cost rounds to zero", buyIntent("0.01", "0.4", "k"), errs.CodeMissingParams},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Arrange
				f := newSagaFixture(t, 1000)

				// Act
				_, err := f.saga.ExecuteTrade(context.Background(), tt.intent)

				// Assert
				assert.Equal(t, tt.wantCode, errs.Code(err))
				assert.Equal(t, int64(1000), f.budget.remainingCents())
			})
		}
	})

	t.Run("Lock held by another instance is reported", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		require.NoError(t, f.locks.AcquireLock(context.Background(), testUser, "other-instance", time.Minute))

		// Act
		_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.44", "10", "trade-1"))

		// Assert
		assert.True(t, errs.IsUserLockedError(err))
		assert.Equal(t, int64(1000), f.budget.remainingCents())
	})
}

func TestSaga_SellPosition(t *testing.T) {
	market := &entity.MarketMetadata{ConditionID: testMarket, YesTokenID: yesToken, NoTokenID: noToken}

	t.Run("Sell posts the held token and records the closing side", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.markets.EXPECT().GetMarket(mock.Anything, testMarket).Return(market, nil).Once()
		f.exchange.EXPECT().PlaceMarketSell(mock.Anything, mock.MatchedBy(func(req entity.MarketSellRequest) bool {
			return req.TokenID == yesToken && req.Side == entity.SideNo && req.FloorPrice.Equal(decimal.RequireFromString("0.01"))
		})).Return(&entity.PlacedOrder{ExchangeOrderID: "ex-sell", Status: "matched"}, nil).Once()

		// Act
		result, err := f.saga.SellPosition(context.Background(), entity.SellIntent{
			UserID:   testUser,
			MarketID: testMarket,
			Side:     entity.SideYes,
			Size:     decimal.NewFromInt(10),
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.SideNo, result.Order.Side)
		assert.Equal(t, yesToken, result.Order.TokenID)
		assert.Equal(t, result.Order.ID, result.LedgerOrderID)
		require.Len(t, f.ledger.orderRows(), 1)
		assert.Equal(t, int64(1000), f.budget.remainingCents())
	})

	t.Run("Unknown market fails before any order", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.markets.EXPECT().GetMarket(mock.Anything, testMarket).Return(nil, errs.ErrMarketNotFound).Once()

		// Act
		_, err := f.saga.SellPosition(context.Background(), entity.SellIntent{
			UserID:   testUser,
			MarketID: testMarket,
			Side:     entity.SideNo,
			Size:     decimal.NewFromInt(1),
		})

		// Assert
		assert.Equal(t, errs.CodeNotFound, errs.Code(err))
		assert.Empty(t, f.ledger.orderRows())
	})

	t.Run("Rejected sell appends nothing", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.markets.EXPECT().GetMarket(mock.Anything, testMarket).Return(market, nil).Once()
		f.exchange.EXPECT().PlaceMarketSell(mock.Anything, mock.Anything).Return(nil, errors.New("no bids")).Once()

		// Act
		_, err := f.saga.SellPosition(context.Background(), entity.SellIntent{
			UserID:   testUser,
			MarketID: testMarket,
			Side:     entity.SideNo,
			Size:     decimal.NewFromInt(1),
		})

		// Assert
		assert.Equal(t, errs.CodeOrderFailed, errs.Code(err))
		assert.Empty(t, f.ledger.orderRows())
		assert.Zero(t, f.locks.held())
	})
}

func TestSaga_SellIdempotency(t *testing.T) {
	market := &entity.MarketMetadata{ConditionID: testMarket, YesTokenID: yesToken, NoTokenID: noToken}
	sell := entity.SellIntent{
		UserID:         testUser,
		MarketID:       testMarket,
		Side:           entity.SideYes,
		Size:           decimal.NewFromInt(5),
		IdempotencyKey: "sell-1",
	}

	t.Run("Replayed sell key is a duplicate and posts nothing", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.markets.EXPECT().GetMarket(mock.Anything, testMarket).Return(market, nil).Twice()
		f.exchange.EXPECT().PlaceMarketSell(mock.Anything, mock.Anything).
			Return(&entity.PlacedOrder{ExchangeOrderID: "ex-sell", Status: "matched"}, nil).Once()
		first, err := f.saga.SellPosition(context.Background(), sell)
		require.NoError(t, err)

		// Act
		_, err = f.saga.SellPosition(context.Background(), sell)

		// Assert
		require.Error(t, err)
		assert.Equal(t, errs.CodeDuplicateTrade, errs.Code(err))
		rows := f.ledger.orderRows()
		require.Len(t, rows, 1)
		assert.Equal(t, "sell-1", rows[0].IdempotencyKey)
		assert.Equal(t, first.LedgerOrderID, rows[0].ID)
		assert.Zero(t, f.locks.held())
	})

	t.Run("Distinct keys both sell", func(t *testing.T) {
		// Arrange
		f := newSagaFixture(t, 1000)
		f.markets.EXPECT().GetMarket(mock.Anything, testMarket).Return(market, nil).Twice()
		f.exchange.EXPECT().PlaceMarketSell(mock.Anything, mock.Anything).
			Return(&entity.PlacedOrder{ExchangeOrderID: "ex-sell", Status: "matched"}, nil).Twice()
		_, err := f.saga.SellPosition(context.Background(), sell)
		require.NoError(t, err)
		second := sell
		second.IdempotencyKey = "sell-2"

		// Act
		_, err = f.saga.SellPosition(context.Background(), second)

		// Assert
		require.NoError(t, err)
		assert.Len(t, f.ledger.orderRows(), 2)
	})
}

func TestSaga_ConcurrentTradesNeverOverspend(t *testing.T) {
	// Arrange
	f := newSagaFixture(t, 1000)
	f.executor.EXPECT().Pull(mock.Anything, testUser, mock.Anything, mock.Anything).Return([]string{"0xtx"}, nil)
	f.exchange.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
		Return(&entity.PlacedOrder{ExchangeOrderID: "ex", Status: "matched"}, nil)

	// Act
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		key := []string{"a", "b", "c", "d", "e"}[i]
		go func() {
			_, err := f.saga.ExecuteTrade(context.Background(), buyIntent("0.30", "10", key))
			results <- err
		}()
	}

	var succeeded, refused int
	for i := 0; i < 5; i++ {
		err := <-results
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientBudgetError(err):
			refused++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Assert
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 2, refused)
	assert.Equal(t, int64(100), f.budget.remainingCents())
	assert.Len(t, f.ledger.orderRows(), 3)
}

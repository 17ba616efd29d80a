package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/budget"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const pgUser = "0x52908400098527886e0f7030069857d2e4169ee7"

// openTestDB connects to TS_TEST_DATABASE_URL, migrates and empties every table.
// Tests that need it are skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TS_TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migration.NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider()).MigrateAll())
	require.NoError(t, db.Exec(`TRUNCATE budgets, reservations, orders, user_locks,
		reconciliation_items, spend_pulls, spend_permissions, active_spend_permissions`).Error)
	return db
}

func newBudgetService(db *gorm.DB) *budget.Service {
	tp := timeprovider.NewRealTimeProvider()
	return budget.NewService(database.NewUnitOfWork(db, logger.NewNoopLogger(), tp), tp, logger.NewNoopLogger())
}

func TestBudgetRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	t.Run("Setting the same budget twice leaves the same state", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)
		_, err := svc.SetBudget(ctx, pgUser, 1000, nil)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, pgUser, "r-1", 300)
		require.NoError(t, err)

		// Act
		first, err1 := svc.SetBudget(ctx, pgUser, 1000, nil)
		second, err2 := svc.SetBudget(ctx, pgUser, 1000, nil)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, int64(1000), first.WeeklyLimitCents)
		assert.Equal(t, int64(1000), second.WeeklyLimitCents)
		assert.Equal(t, int64(1000), second.RemainingCents)
		var rows int64
		require.NoError(t, db.Table("budgets").Where("user_id = ?", pgUser).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("Concurrent reserves never debit past the remaining amount", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)
		_, err := svc.SetBudget(ctx, pgUser, 1000, nil)
		require.NoError(t, err)

		const attempts = 20
		var (
			wg           sync.WaitGroup
			mu           sync.Mutex
			succeeded    int
			insufficient int
			other        []error
		)

		// Act
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := svc.Reserve(ctx, pgUser, fmt.Sprintf("r-%d", i), 100)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errs.IsInsufficientBudgetError(err):
					insufficient++
				default:
					other = append(other, err)
				}
			}(i)
		}
		wg.Wait()

		// Assert
		assert.Empty(t, other)
		assert.Equal(t, 10, succeeded)
		assert.Equal(t, attempts-10, insufficient)
		stored, err := svc.GetBudget(ctx, pgUser)
		require.NoError(t, err)
		assert.Zero(t, stored.RemainingCents)
		var reserved int64
		require.NoError(t, db.Table("reservations").Where("status = ?", "reserved").Count(&reserved).Error)
		assert.Equal(t, int64(10), reserved)
	})

	t.Run("Releasing twice credits once", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)
		_, err := svc.SetBudget(ctx, pgUser, 1000, nil)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, pgUser, "r-1", 400)
		require.NoError(t, err)

		// Act
		first, err1 := svc.Release(ctx, "r-1")
		second, err2 := svc.Release(ctx, "r-1")

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.True(t, first)
		assert.False(t, second)
		stored, err := svc.GetBudget(ctx, pgUser)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), stored.RemainingCents)
	})

	t.Run("Release is capped at a limit lowered after the reserve", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)
		_, err := svc.SetBudget(ctx, pgUser, 1000, nil)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, pgUser, "r-1", 300)
		require.NoError(t, err)
		_, err = svc.SetBudget(ctx, pgUser, 500, nil)
		require.NoError(t, err)

		// Act
		released, err := svc.Release(ctx, "r-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, released)
		stored, err := svc.GetBudget(ctx, pgUser)
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.WeeklyLimitCents)
		assert.Equal(t, int64(500), stored.RemainingCents)
	})

	t.Run("Reused reservation ID debits once", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)
		_, err := svc.SetBudget(ctx, pgUser, 1000, nil)
		require.NoError(t, err)
		_, err = svc.Reserve(ctx, pgUser, "r-1", 300)
		require.NoError(t, err)

		// Act
		_, err = svc.Reserve(ctx, pgUser, "r-1", 300)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDuplicateTrade)
		stored, err := svc.GetBudget(ctx, pgUser)
		require.NoError(t, err)
		assert.Equal(t, int64(700), stored.RemainingCents)
	})

	t.Run("Reserve without a budget is not found", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		svc := newBudgetService(db)

		// Act
		_, err := svc.Reserve(ctx, pgUser, "r-1", 100)

		// Assert
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
		var rows int64
		require.NoError(t, db.Table("reservations").Count(&rows).Error)
		assert.Zero(t, rows)
	})
}

func TestOrderRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	newOrder := func(id, key string) *entity.Order {
		return &entity.Order{
			ID:              id,
			UserID:          pgUser,
			MarketID:        "0xmarket",
			TokenID:         "111",
			Side:            entity.SideNo,
			Price:           decimal.RequireFromString("0.01"),
			Size:            decimal.NewFromInt(5),
			ExchangeOrderID: "ex-" + id,
			Status:          "matched",
			IdempotencyKey:  key,
			CreatedAt:       time.Now().UTC(),
		}
	}

	t.Run("Idempotency key is unique per user and can be looked up", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		repo := repository.NewOrderRepository(db, logger.NewNoopLogger())
		require.NoError(t, repo.Append(ctx, newOrder("o-1", "sell-1")))

		// Act
		dupErr := repo.Append(ctx, newOrder("o-2", "sell-1"))
		found, findErr := repo.FindByIdempotencyKey(ctx, pgUser, "sell-1")
		_, missingErr := repo.FindByIdempotencyKey(ctx, pgUser, "sell-2")

		// Assert
		assert.ErrorIs(t, dupErr, errs.ErrDuplicateTrade)
		require.NoError(t, findErr)
		assert.Equal(t, "o-1", found.ID)
		assert.Equal(t, "sell-1", found.IdempotencyKey)
		assert.ErrorIs(t, missingErr, errs.ErrOrderNotFound)
	})

	t.Run("Orders without a key never collide", func(t *testing.T) {
		// Arrange
		db := openTestDB(t)
		repo := repository.NewOrderRepository(db, logger.NewNoopLogger())

		// Act
		err1 := repo.Append(ctx, newOrder("o-1", ""))
		err2 := repo.Append(ctx, newOrder("o-2", ""))

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		orders, err := repo.ListByUser(ctx, pgUser)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}

func TestUserLockRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)

	clockAt := func(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(now).Maybe()
		return tp
	}

	tests := []struct {
		name    string
		later   time.Time
		wantErr error
	}{
		{"Live lock keeps a second owner out", start.Add(10 * time.Second), errs.ErrUserLocked},
		{"Expired lock is taken over", start.Add(2 * time.Minute), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db := openTestDB(t)
			first := repository.NewUserLockRepository(db, clockAt(t, start), logger.NewNoopLogger())
			second := repository.NewUserLockRepository(db, clockAt(t, tt.later), logger.NewNoopLogger())
			require.NoError(t, first.AcquireLock(ctx, pgUser, "instance-a", time.Minute))

			// Act
			err := second.AcquireLock(ctx, pgUser, "instance-b", time.Minute)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			var owner string
			require.NoError(t, db.Table("user_locks").Select("owner").Where("user_id = ?", pgUser).Scan(&owner).Error)
			assert.Equal(t, "instance-b", owner)
		})
	}
}

package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/trade-saga/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "0x52908400098527886e0f7030069857d2e4169ee7"

type fixture struct {
	uow    *persistencemocks.MockUnitOfWork
	repo   *persistencemocks.MockBudgetRepository
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:    persistencemocks.NewMockUnitOfWork(t),
		repo:   persistencemocks.NewMockBudgetRepository(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	f.uow.EXPECT().GetBudgetRepository(mock.Anything).Return(f.repo).Maybe()
	f.time.EXPECT().Now().Return(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.svc = NewService(f.uow, f.time, f.logger)
	return f
}

func TestSetBudget(t *testing.T) {
	t.Run("Overwrites cap and remaining", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.repo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.UserID == userID && b.WeeklyLimitCents == 1000 && b.RemainingCents == 1000
		})).Return(nil).Once()
		f.repo.EXPECT().Get(mock.Anything, userID).
			Return(&entity.Budget{UserID: userID, WeeklyLimitCents: 1000, RemainingCents: 1000}, nil).Once()

		// Act
		budget, err := f.svc.SetBudget(context.Background(), "0x52908400098527886E0F7030069857D2E4169EE7", 1000, nil)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1000), budget.RemainingCents)
	})

	t.Run("Invalid user is rejected before storage", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetBudget(context.Background(), "nobody", 1000, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Store failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errs.ErrStore).Once()

		_, err := f.svc.SetBudget(context.Background(), userID, 1000, nil)

		assert.ErrorIs(t, err, errs.ErrStore)
	})
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		repoErr   error
		expectErr error
		callsRepo bool
	}{
		{"reserved", 440, nil, nil, true},
		{"insufficient budget", 700, errs.NewInsufficientBudgetError(userID, 700, 560), errs.ErrInsufficientBudget, true},
		{"duplicate reservation", 440, errs.ErrDuplicateTrade, errs.ErrDuplicateTrade, true},
		{"zero amount", 0, nil, errs.ErrInvalidAmount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			if tt.callsRepo {
				var budget *entity.Budget
				if tt.repoErr == nil {
					budget = &entity.Budget{UserID: userID, WeeklyLimitCents: 1000, RemainingCents: 560}
				}
				f.repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(r *entity.Reservation) bool {
					return r.ID == "res-1" && r.AmountCents == tt.amount && r.Status == entity.ReservationReserved
				})).Return(budget, tt.repoErr).Once()
			}

			// Act
			reservation, err := f.svc.Reserve(context.Background(), userID, "res-1", tt.amount)

			// Assert
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, reservation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "res-1", reservation.ID)
			assert.Equal(t, tt.amount, reservation.AmountCents)
		})
	}
}

func TestRelease(t *testing.T) {
	t.Run("First release credits", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Release(mock.Anything, "res-1").Return(true, nil).Once()

		released, err := f.svc.Release(context.Background(), "res-1")

		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("Second release is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Release(mock.Anything, "res-1").Return(false, nil).Once()

		released, err := f.svc.Release(context.Background(), "res-1")

		require.NoError(t, err)
		assert.False(t, released)
	})

	t.Run("Store failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Release(mock.Anything, "res-1").Return(false, errors.New("boom")).Once()

		released, err := f.svc.Release(context.Background(), "res-1")

		assert.Error(t, err)
		assert.False(t, released)
	})
}

func TestCommit(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Commit(mock.Anything, "res-1").Return(nil).Once()
	f.repo.EXPECT().Commit(mock.Anything, "res-2").Return(errs.ErrReservationClosed).Once()

	assert.NoError(t, f.svc.Commit(context.Background(), "res-1"))
	assert.ErrorIs(t, f.svc.Commit(context.Background(), "res-2"), errs.ErrReservationClosed)
}

func TestGetBudget(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(mock.Anything, userID).Return(nil, errs.ErrBudgetNotFound).Once()

	_, err := f.svc.GetBudget(context.Background(), "0x52908400098527886E0F7030069857D2E4169EE7")

	assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
}

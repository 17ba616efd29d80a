package permission

import (
	"context"
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

const (
	userID  = "0x52908400098527886e0f7030069857d2e4169ee7"
	token   = "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913"
	payload = `{"permission":{"account":"0x52908400098527886e0f7030069857d2e4169ee7"},"signature":"0x01"}`
)

var now = time.Unix(1_735_700_000, 0).UTC()

type fixture struct {
	uow     *persistencemocks.MockUnitOfWork
	perms   *persistencemocks.MockSpendPermissionRepository
	budgets *persistencemocks.MockBudgetRepository
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		perms:   persistencemocks.NewMockSpendPermissionRepository(t),
		budgets: persistencemocks.NewMockBudgetRepository(t),
	}
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now).Maybe()
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetSpendPermissionRepository(mock.Anything).Return(f.perms).Maybe()
	f.uow.EXPECT().GetBudgetRepository(mock.Anything).Return(f.budgets).Maybe()

	f.svc = NewService(f.uow, timeProvider, logger)
	return f
}

func validPermission() *entity.SpendPermission {
	return &entity.SpendPermission{
		UserID:            userID,
		TokenAddress:      token,
		AllowanceUnits:    50_000_000,
		PeriodSeconds:     604_800,
		EndUnix:           now.Unix() + 3600,
		PermissionPayload: payload,
	}
}

func TestStore(t *testing.T) {
	t.Run("Upserts, moves pointer and projects expiry", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		expectedHash, err := entity.ComputePermissionHash([]byte(payload))
		require.NoError(t, err)
		f.perms.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(p *entity.SpendPermission) bool {
			return p.PermissionHash == expectedHash && p.StartUnix == now.Unix()
		})).Return(nil).Once()
		f.perms.EXPECT().SetActive(mock.Anything, userID, expectedHash).Return(nil).Once()
		f.budgets.EXPECT().SetPermissionExpiry(mock.Anything, userID, mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Unix() == now.Unix()+3600
		})).Return(true, nil).Once()

		// Act
		stored, err := f.svc.Store(context.Background(), validPermission())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expectedHash, stored.PermissionHash)
		assert.Equal(t, now, stored.CreatedAt)
	})

	t.Run("Works without a budget", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
		f.perms.EXPECT().SetActive(mock.Anything, userID, mock.Anything).Return(nil).Once()
		f.budgets.EXPECT().SetPermissionExpiry(mock.Anything, userID, mock.Anything).Return(false, nil).Once()

		_, err := f.svc.Store(context.Background(), validPermission())

		assert.NoError(t, err)
	})

	t.Run("Invalid permission never reaches storage", func(t *testing.T) {
		f := newFixture(t)
		p := validPermission()
		p.AllowanceUnits = 0

		_, err := f.svc.Store(context.Background(), p)

		assert.ErrorIs(t, err, errs.ErrInvalidPermission)
	})

	t.Run("Pointer failure aborts the unit of work", func(t *testing.T) {
		f := newFixture(t)
		f.perms.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
		f.perms.EXPECT().SetActive(mock.Anything, userID, mock.Anything).Return(errs.ErrStore).Once()

		_, err := f.svc.Store(context.Background(), validPermission())

		assert.ErrorIs(t, err, errs.ErrStore)
	})
}

func TestGetLatest(t *testing.T) {
	f := newFixture(t)
	f.perms.EXPECT().GetActive(mock.Anything, userID).Return(nil, errs.ErrNoPermission).Once()

	_, err := f.svc.GetLatest(context.Background(), "0x52908400098527886E0F7030069857D2E4169EE7")

	assert.ErrorIs(t, err, errs.ErrNoPermission)
	assert.Equal(t, errs.CodeNoPermission, errs.Code(err))

	_, err = f.svc.GetLatest(context.Background(), "bad")
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

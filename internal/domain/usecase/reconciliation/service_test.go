package reconciliation

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

const userID = "0x52908400098527886e0f7030069857d2e4169ee7"

func setup(t *testing.T) (*Service, *persistencemocks.MockReconciliationRepository, time.Time) {
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	uow := persistencemocks.NewMockUnitOfWork(t)
	repo := persistencemocks.NewMockReconciliationRepository(t)
	uow.EXPECT().GetReconciliationRepository(mock.Anything).Return(repo).Maybe()

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	return NewService(uow, timeProvider, logger), repo, now
}

func TestService_ListOpen(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		wantUser string
	}{
		{"All users", "", ""},
		{"Single user is normalized", "0x52908400098527886E0F7030069857D2E4169EE7", userID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, repo, _ := setup(t)
			items := []*entity.ReconciliationItem{{ID: "rec-1", UserID: userID}}
			repo.EXPECT().ListOpen(mock.Anything, tt.wantUser).Return(items, nil).Once()

			// Act
			got, err := svc.ListOpen(context.Background(), tt.userID)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, items, got)
		})
	}

	t.Run("Invalid user is rejected", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.ListOpen(context.Background(), "carol")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestService_Resolve(t *testing.T) {
	t.Run("Open item is resolved", func(t *testing.T) {
		// Arrange
		svc, repo, now := setup(t)
		resolved := &entity.ReconciliationItem{
			ID:         "rec-1",
			UserID:     userID,
			Status:     entity.ReconciliationResolved,
			Resolution: "refunded 0xabc",
			ResolvedAt: &now,
		}
		repo.EXPECT().Resolve(mock.Anything, "rec-1", "refunded 0xabc", now).Return(resolved, nil).Once()

		// Act
		item, err := svc.Resolve(context.Background(), "rec-1", "  refunded 0xabc ")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.ReconciliationResolved, item.Status)
	})

	t.Run("Second resolve is not found", func(t *testing.T) {
		// Arrange
		svc, repo, now := setup(t)
		repo.EXPECT().Resolve(mock.Anything, "rec-1", "done", now).Return(nil, errs.ErrReconciliationNotFound).Once()

		// Act
		_, err := svc.Resolve(context.Background(), "rec-1", "done")

		// Assert
		assert.Equal(t, errs.CodeNotFound, errs.Code(err))
	})

	t.Run("Missing resolution is rejected", func(t *testing.T) {
		// Arrange
		svc, _, _ := setup(t)

		// Act
		_, err := svc.Resolve(context.Background(), "rec-1", " ")

		// Assert
		assert.ErrorIs(t, err, errs.ErrMissingParams)
	})
}

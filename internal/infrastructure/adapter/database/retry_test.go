package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/repository"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	serializationFailure := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}

	t.Run("Serialization failure is replayed until success", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)
		attempts := 0

		// Act
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			attempts++
			if attempts < 3 {
				return serializationFailure
			}
			return nil
		}, repository.NewErrorClassifier(), logger)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Domain error is returned immediately", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t)
		attempts := 0
		domainErr := errors.New("insufficient budget")

		// Act
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			attempts++
			return domainErr
		}, repository.NewErrorClassifier(), logger)

		// Assert
		assert.ErrorIs(t, err, domainErr)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Exhausted retries return the last error", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn(mock.Anything, mock.Anything).Times(2)
		logger.EXPECT().Error("All retry attempts failed", mock.Anything).Once()
		attempts := 0

		// Act
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			attempts++
			return serializationFailure
		}, repository.NewErrorClassifier(), logger)

		// Assert
		assert.ErrorIs(t, err, serializationFailure)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Canceled context stops the backoff", func(t *testing.T) {
		// Arrange
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		config := fastRetryConfig()
		config.RetryInterval = time.Hour
		config.MaxInterval = time.Hour

		// Act
		err := RetryOnTransientError(ctx, config, func() error {
			return serializationFailure
		}, repository.NewErrorClassifier(), logger)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.2}

	first := calculateBackoffWithJitter(0, config)
	capped := calculateBackoffWithJitter(10, config)

	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)
	assert.GreaterOrEqual(t, capped, time.Second)
	assert.LessOrEqual(t, capped, 1200*time.Millisecond)
}

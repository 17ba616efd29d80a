package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/logger"
)

func TestDatabaseLoggerTrace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM budgets WHERE user_id = '0xabc'", 1 }

	t.Run("Slow query is logged as warning with request ID", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(300 * time.Millisecond))
		var fields map[string]any
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Run(func(_ string, f map[string]any) {
			fields = f
		})
		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "warn", 200*time.Millisecond)
		ctx := coreport.WithRequestID(context.Background(), "req-1")

		// Act
		dbLogger.Trace(ctx, time.Now(), sql, nil)

		// Assert
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "SELECT", fields["type"])
		assert.Equal(t, "BUDGETS", fields["table"])
	})

	t.Run("Record not found is not an SQL error", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Millisecond)
		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "error", time.Second)

		// Act & Assert
		dbLogger.Trace(context.Background(), time.Now(), sql, logger.ErrRecordNotFound)
	})

	t.Run("Driver error is logged", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Millisecond)
		coreLogger.EXPECT().Error("SQL Error", mock.Anything).Once()
		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "error", time.Second)

		// Act & Assert
		dbLogger.Trace(context.Background(), time.Now(), sql, errors.New("connection reset by peer"))
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		dbLogger := NewDatabaseLogger(coreLogger, nil, "silent", time.Second)

		// Act & Assert
		dbLogger.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	})

	t.Run("Slow threshold can be raised", func(t *testing.T) {
		// Arrange
		coreLogger := coremocks.NewMockLogger(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(300 * time.Millisecond))
		dbLogger := NewDatabaseLogger(coreLogger, timeProvider, "warn", 200*time.Millisecond).(*DatabaseLogger)

		// Act & Assert
		dbLogger.WithSlowThreshold(time.Second).Trace(context.Background(), time.Now(), sql, nil)
	})
}

func TestExtractTableName(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{`INSERT INTO orders (id) VALUES ($1)`, "ORDERS"},
		{`UPDATE budgets SET remaining_cents = remaining_cents - $1`, "BUDGETS"},
		{`DELETE FROM user_locks WHERE owner = $1`, "USER_LOCKS"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTableName(tt.sql))
		})
	}
}

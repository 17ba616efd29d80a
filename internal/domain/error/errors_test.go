package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeAndHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"nil error", nil, "", http.StatusOK},
		{"missing params", ErrMissingParams, CodeMissingParams, http.StatusBadRequest},
		{"invalid price maps to missing params", ErrInvalidPrice, CodeMissingParams, http.StatusBadRequest},
		{"invalid user", ErrInvalidUserID, CodeInvalidUserID, http.StatusBadRequest},
		{"insufficient budget", ErrInsufficientBudget, CodeInsufficientBudget, http.StatusPaymentRequired},
		{"detailed insufficient budget", NewInsufficientBudgetError("0xabc", 700, 560), CodeInsufficientBudget, http.StatusPaymentRequired},
		{"no permission", ErrNoPermission, CodeNoPermission, http.StatusForbidden},
		{"budget not found", ErrBudgetNotFound, CodeBudgetNotFound, http.StatusNotFound},
		{"reconciliation not found", ErrReconciliationNotFound, CodeNotFound, http.StatusNotFound},
		{"duplicate trade", ErrDuplicateTrade, CodeDuplicateTrade, http.StatusConflict},
		{"user locked", ErrUserLocked, CodeUserLocked, http.StatusConflict},
		{"spend failed", ErrSpendFailed, CodeSpendFailed, http.StatusInternalServerError},
		{"order rejected", ErrOrderRejected, CodeOrderFailed, http.StatusInternalServerError},
		{"wrapped store error", fmt.Errorf("%w: connection refused", ErrStore), CodeStoreError, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), CodeInternalServer, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, Code(tt.err))
			assert.Equal(t, tt.wantStatus, HTTPStatus(tt.err))
		})
	}
}

func TestSpendError(t *testing.T) {
	t.Run("Chain failure is a spend failure", func(t *testing.T) {
		// Arrange
		err := NewSpendError("0xabc", 4_400_000, "0xhash", []string{"0xtx1"}, errors.New("execution reverted"))

		// Act & Assert
		assert.True(t, errors.Is(err, ErrSpendFailed))
		assert.Equal(t, CodeSpendFailed, Code(err))
		assert.Contains(t, err.Error(), "0xtx1")
	})

	t.Run("Missing permission keeps its own code", func(t *testing.T) {
		// Arrange
		err := NewSpendError("0xabc", 100, "", nil, ErrNoPermission)

		// Act & Assert
		assert.False(t, errors.Is(err, ErrSpendFailed))
		assert.True(t, IsNoPermissionError(err))
		assert.Equal(t, CodeNoPermission, Code(err))
		assert.Equal(t, http.StatusForbidden, HTTPStatus(err))
	})

	t.Run("Log fields carry reconciliation context", func(t *testing.T) {
		// Arrange
		err := &SpendError{
			UserID:         "0xabc",
			AmountUnits:    10,
			PermissionHash: "0xhash",
			TxIDs:          []string{"0xtx1", "0xtx2"},
			Err:            errors.New("nonce too low"),
		}

		// Act
		fields := err.LogFields()

		// Assert
		assert.Equal(t, "0xabc", fields["user_id"])
		assert.Equal(t, int64(10), fields["amount_units"])
		assert.Equal(t, "0xhash", fields["permission_hash"])
		assert.Equal(t, []string{"0xtx1", "0xtx2"}, fields["tx_ids"])
		assert.Equal(t, CodeSpendFailed, fields["error_code"])
	})
}

func TestSagaError(t *testing.T) {
	spendErr := NewSpendError("0xabc", 10, "0xhash", []string{"0xtx"}, errors.New("reverted"))
	err := NewSagaError("pull", "0xabc", "res-1", true, spendErr)

	assert.True(t, errors.Is(err, ErrSpendFailed))
	assert.Equal(t, CodeSpendFailed, Code(err))

	fields := LogFields(err)
	assert.Equal(t, "saga_error", fields["error_type"])
	assert.Equal(t, "pull", fields["step"])
	assert.Equal(t, "res-1", fields["reservation_id"])
	assert.Equal(t, true, fields["compensated"])
	assert.Equal(t, "0xhash", fields["permission_hash"])
	assert.Equal(t, []string{"0xtx"}, fields["tx_ids"])
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(errors.New("plain"))

	assert.Equal(t, "plain", fields["error"])
	assert.Equal(t, CodeInternalServer, fields["error_code"])
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrBudgetNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrOrderNotFound)))
	assert.False(t, IsNotFoundError(ErrStore))
}

func TestSagaStepErrorCodeWinsOverCause(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		cause      error
		wantStatus int
	}{
		{"order step wrapping an amount error", CodeOrderFailed, fmt.Errorf("%w: size below increment", ErrInvalidAmount), http.StatusInternalServerError},
		{"pull step wrapping a malformed permission", CodeSpendFailed, NewSpendError("0xabc", 10, "0xhash", nil, ErrInvalidPermission), http.StatusInternalServerError},
		{"append step wrapping a duplicate", CodeStoreError, fmt.Errorf("%w: %w", ErrStore, ErrDuplicateTrade), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			err := NewSagaStepError("step", tt.code, "0xabc", "res-1", true, tt.cause)

			// Act & Assert
			assert.Equal(t, tt.code, Code(err))
			assert.Equal(t, tt.wantStatus, HTTPStatus(err))
			assert.Equal(t, tt.code, LogFields(err)["error_code"])
		})
	}

	t.Run("Wrapped saga step error keeps its code", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewSagaStepError("order", CodeOrderFailed, "0xabc", "", false, ErrInvalidPrice))

		assert.Equal(t, CodeOrderFailed, Code(err))
	})
}

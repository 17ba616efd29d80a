package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Stable machine-readable error codes returned to API clients
const (
	CodeMissingParams      = "missing_params"
	CodeInvalidUserID      = "invalid_user_id"
	CodeInsufficientBudget = "insufficient_budget"
	CodeNoPermission       = "no_permission"
	CodeBudgetNotFound     = "budget_not_found"
	CodeNotFound           = "not_found"
	CodeDuplicateTrade     = "duplicate_trade"
	CodeUserLocked         = "user_locked"
	CodeSpendFailed        = "spend_failed"
	CodeOrderFailed        = "order_failed"
	CodeStoreError         = "store_error"
	CodeInternalServer     = "internal_error"
)

// Base error types
var (
	// ErrMissingParams is returned when a required request parameter is absent or malformed
	ErrMissingParams = errors.New("missing or invalid parameters")

	// ErrInvalidUserID is returned when the user ID is not a valid wallet address
	ErrInvalidUserID = errors.New("user ID must be a 0x-prefixed 20 byte hex address")

	// ErrInvalidAmount is returned when a monetary amount is negative or not representable
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPrice is returned when a price falls outside [0,1] or off the tick grid
	ErrInvalidPrice = errors.New("price must be within [0,1]")

	// ErrInvalidSide is returned when the side is neither yes nor no
	ErrInvalidSide = errors.New("side must be one of: yes, no")

	// ErrAmountOverflow is returned when an amount would overflow int64 cents or base units
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInsufficientBudget is returned when the remaining weekly budget cannot cover a trade
	ErrInsufficientBudget = errors.New("insufficient budget")

	// ErrBudgetNotFound is returned when no budget has been set for a user
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNoPermission is returned when the user has no active spend permission
	ErrNoPermission = errors.New("no active spend permission")

	// ErrPermissionExpired is returned when the active spend permission is outside its window
	ErrPermissionExpired = errors.New("spend permission expired")

	// ErrAllowanceExceeded is returned when a pull exceeds the permission allowance
	ErrAllowanceExceeded = errors.New("amount exceeds spend permission allowance")

	// ErrInvalidPermission is returned when a spend permission record fails validation
	ErrInvalidPermission = errors.New("invalid spend permission")

	// ErrSpendFailed is returned when the on-chain pull of funds fails
	ErrSpendFailed = errors.New("spend failed")

	// ErrDuplicatePull is returned when an idempotency key has already been used for a pull
	ErrDuplicatePull = errors.New("pull with this idempotency key already exists")

	// ErrOrderRejected is returned when the exchange rejects or fails to fill an order
	ErrOrderRejected = errors.New("order rejected by exchange")

	// ErrDuplicateTrade is returned when a reservation with the same ID already exists
	ErrDuplicateTrade = errors.New("trade with this idempotency key already exists")

	// ErrReservationNotFound is returned when a reservation ID is unknown
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationClosed is returned when a reservation was already released or committed
	ErrReservationClosed = errors.New("reservation closed")

	// ErrOrderNotFound is returned when an order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrMarketNotFound is returned when market metadata cannot be resolved
	ErrMarketNotFound = errors.New("market not found")

	// ErrReconciliationNotFound is returned when an open reconciliation item does not exist
	ErrReconciliationNotFound = errors.New("reconciliation item not found")

	// ErrUserLocked is returned when a user is locked by another trade
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrStore is returned when persistence is unavailable or fails unexpectedly
	ErrStore = errors.New("store error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// Code returns the stable machine-readable code for an error. A saga step that fixed its
// own code wins over whatever cause it wraps.
func Code(err error) string {
	var sagaErr *SagaError
	if errors.As(err, &sagaErr) && sagaErr.FailureCode != "" {
		return sagaErr.FailureCode
	}

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrMissingParams),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidSide),
		errors.Is(err, ErrAmountOverflow),
		errors.Is(err, ErrInvalidPermission):
		return CodeMissingParams
	case errors.Is(err, ErrInsufficientBudget):
		return CodeInsufficientBudget
	case errors.Is(err, ErrNoPermission):
		return CodeNoPermission
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrMarketNotFound),
		errors.Is(err, ErrReconciliationNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateTrade):
		return CodeDuplicateTrade
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrSpendFailed):
		return CodeSpendFailed
	case errors.Is(err, ErrOrderRejected):
		return CodeOrderFailed
	case errors.Is(err, ErrStore):
		return CodeStoreError
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the HTTP status returned by the API
func HTTPStatus(err error) int {
	switch Code(err) {
	case "":
		return http.StatusOK
	case CodeMissingParams, CodeInvalidUserID:
		return http.StatusBadRequest
	case CodeInsufficientBudget:
		return http.StatusPaymentRequired
	case CodeNoPermission:
		return http.StatusForbidden
	case CodeBudgetNotFound, CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateTrade, CodeUserLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientBudgetError provides detailed information when a reservation is refused
type InsufficientBudgetError struct {
	UserID         string
	RequiredCents  int64
	RemainingCents int64
}

// Error implements the error interface
func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("insufficient budget for user %s: required %d cents, remaining %d cents",
		e.UserID, e.RequiredCents, e.RemainingCents)
}

// Is checks if the target error is an ErrInsufficientBudget
func (e *InsufficientBudgetError) Is(target error) bool {
	return target == ErrInsufficientBudget
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBudgetError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_budget",
		"user_id":         e.UserID,
		"required_cents":  e.RequiredCents,
		"remaining_cents": e.RemainingCents,
		"error_code":      CodeInsufficientBudget,
	}
}

// NewInsufficientBudgetError creates a new detailed insufficient budget error
func NewInsufficientBudgetError(userID string, required, remaining int64) error {
	return &InsufficientBudgetError{
		UserID:         userID,
		RequiredCents:  required,
		RemainingCents: remaining,
	}
}

// SpendError carries the reconciliation context of a failed on-chain pull.
// TxIDs holds any transactions that were broadcast before the failure.
type SpendError struct {
	UserID         string
	AmountUnits    int64
	PermissionHash string
	TxIDs          []string
	Err            error
}

// Error implements the error interface
func (e *SpendError) Error() string {
	return fmt.Sprintf("spend failed for user %s (amount_units: %d, permission: %s, txs: [%s]): %v",
		e.UserID, e.AmountUnits, e.PermissionHash, strings.Join(e.TxIDs, ","), e.Err)
}

// Unwrap returns the underlying error
func (e *SpendError) Unwrap() error {
	return e.Err
}

// Is reports every SpendError as an ErrSpendFailed, except when the cause is a missing permission
func (e *SpendError) Is(target error) bool {
	if target == ErrSpendFailed {
		return !errors.Is(e.Err, ErrNoPermission)
	}
	return false
}

// LogFields returns a map of fields for structured logging
func (e *SpendError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "spend_error",
		"user_id":         e.UserID,
		"amount_units":    e.AmountUnits,
		"permission_hash": e.PermissionHash,
		"tx_ids":          e.TxIDs,
		"error":           errorString(e.Err),
		"error_code":      Code(e),
	}
}

// NewSpendError creates a spend error with reconciliation context
func NewSpendError(userID string, amountUnits int64, permissionHash string, txIDs []string, err error) error {
	return &SpendError{
		UserID:         userID,
		AmountUnits:    amountUnits,
		PermissionHash: permissionHash,
		TxIDs:          txIDs,
		Err:            err,
	}
}

// SagaError represents a failed step of the trade saga.
// FailureCode, when set, is reported instead of the code of Err.
type SagaError struct {
	Step          string
	UserID        string
	ReservationID string
	Compensated   bool
	FailureCode   string
	Err           error
}

// Error implements the error interface
func (e *SagaError) Error() string {
	return fmt.Sprintf("trade saga failed at %s for user %s (reservation: %s, compensated: %t): %v",
		e.Step, e.UserID, e.ReservationID, e.Compensated, e.Err)
}

// Unwrap returns the underlying error
func (e *SagaError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SagaError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "saga_error",
		"step":           e.Step,
		"user_id":        e.UserID,
		"reservation_id": e.ReservationID,
		"compensated":    e.Compensated,
		"error":          errorString(e.Err),
		"error_code":     Code(e),
	}
	var spendErr *SpendError
	if errors.As(e.Err, &spendErr) {
		fields["permission_hash"] = spendErr.PermissionHash
		fields["tx_ids"] = spendErr.TxIDs
		fields["amount_units"] = spendErr.AmountUnits
	}
	return fields
}

// NewSagaError creates a saga step error
func NewSagaError(step, userID, reservationID string, compensated bool, err error) error {
	return &SagaError{
		Step:          step,
		UserID:        userID,
		ReservationID: reservationID,
		Compensated:   compensated,
		Err:           err,
	}
}

// NewSagaStepError creates a saga step error reported with code regardless of its cause
func NewSagaStepError(step, code, userID, reservationID string, compensated bool, err error) error {
	return &SagaError{
		Step:          step,
		UserID:        userID,
		ReservationID: reservationID,
		Compensated:   compensated,
		FailureCode:   code,
		Err:           err,
	}
}

// LogFields extracts structured log fields from errors that expose them
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      errorString(err),
		"error_code": Code(err),
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsInsufficientBudgetError checks if the error is related to insufficient budget
func IsInsufficientBudgetError(err error) bool {
	return errors.Is(err, ErrInsufficientBudget)
}

// IsNoPermissionError checks if the error is a missing spend permission
func IsNoPermissionError(err error) bool {
	return errors.Is(err, ErrNoPermission)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrMarketNotFound) ||
		errors.Is(err, ErrReconciliationNotFound)
}

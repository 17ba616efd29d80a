package entity

import "time"

// ReconciliationReason explains why operator-held funds need manual attention
type ReconciliationReason string

const (
	// ReasonOrderFailedAfterPull means funds were pulled but the exchange order failed
	ReasonOrderFailedAfterPull ReconciliationReason = "order_failed_after_pull"
	// ReasonLedgerAppendFailed means the exchange accepted the order but it is missing from the ledger
	ReasonLedgerAppendFailed ReconciliationReason = "ledger_append_failed"
	// ReasonPullOutcomeUnknown means pull transactions were broadcast but the pull did not confirm
	ReasonPullOutcomeUnknown ReconciliationReason = "pull_outcome_unknown"
)

// ReconciliationStatus is the state of a liability item
type ReconciliationStatus string

const (
	ReconciliationOpen     ReconciliationStatus = "open"
	ReconciliationResolved ReconciliationStatus = "resolved"
)

// ReconciliationItem is an entry in the liability ledger of funds the operator holds for a user
type ReconciliationItem struct {
	ID              string
	UserID          string
	ReservationID   string
	AmountUnits     int64
	PermissionHash  string
	TxIDs           []string
	ExchangeOrderID string
	Reason          ReconciliationReason
	Detail          string
	Status          ReconciliationStatus
	Resolution      string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
}

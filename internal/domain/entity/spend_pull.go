package entity

import "time"

// SpendPullStatus is the outcome of an on-chain pull attempt
type SpendPullStatus string

const (
	SpendPullPending   SpendPullStatus = "pending"
	SpendPullSucceeded SpendPullStatus = "succeeded"
	SpendPullFailed    SpendPullStatus = "failed"
)

// SpendPull records one pull per idempotency key so that funds are never pulled twice
type SpendPull struct {
	IdempotencyKey string
	UserID         string
	AmountUnits    int64
	PermissionHash string
	TxIDs          []string
	Status         SpendPullStatus
	Error          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

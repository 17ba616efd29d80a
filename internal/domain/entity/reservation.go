package entity

import "time"

// ReservationStatus is the lifecycle state of a budget reservation
type ReservationStatus string

const (
	// ReservationReserved holds budget for an in-flight trade
	ReservationReserved ReservationStatus = "reserved"
	// ReservationReleased returned its amount to the budget
	ReservationReleased ReservationStatus = "released"
	// ReservationCommitted belongs to an order on the ledger and can no longer be released
	ReservationCommitted ReservationStatus = "committed"
)

// Reservation is a hold on part of a user's budget, keyed by the trade idempotency key
type Reservation struct {
	ID          string
	UserID      string
	AmountCents int64
	Status      ReservationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether the reservation can still be released or committed
func (r *Reservation) IsOpen() bool {
	return r.Status == ReservationReserved
}

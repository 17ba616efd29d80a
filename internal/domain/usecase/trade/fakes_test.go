package trade

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
)

// memBudget is an in-memory budget ledger
type memBudget struct {
	mu           sync.Mutex
	limit        int64
	remaining    int64
	reservations map[string]*entity.Reservation
	commitErr    error
}

func newMemBudget(limitCents int64) *memBudget {
	return &memBudget{
		limit:        limitCents,
		remaining:    limitCents,
		reservations: make(map[string]*entity.Reservation),
	}
}

func (b *memBudget) SetBudget(_ context.Context, userID string, amountCents int64, _ *time.Time) (*entity.Budget, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limit, b.remaining = amountCents, amountCents
	return &entity.Budget{UserID: userID, WeeklyLimitCents: b.limit, RemainingCents: b.remaining}, nil
}

func (b *memBudget) GetBudget(_ context.Context, userID string) (*entity.Budget, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &entity.Budget{UserID: userID, WeeklyLimitCents: b.limit, RemainingCents: b.remaining}, nil
}

func (b *memBudget) Reserve(_ context.Context, userID, reservationID string, amountCents int64) (*entity.Reservation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.reservations[reservationID]; ok {
		return nil, errs.ErrDuplicateTrade
	}
	if b.remaining < amountCents {
		return nil, errs.NewInsufficientBudgetError(userID, amountCents, b.remaining)
	}
	b.remaining -= amountCents
	r := &entity.Reservation{ID: reservationID, UserID: userID, AmountCents: amountCents, Status: entity.ReservationReserved}
	b.reservations[reservationID] = r
	return r, nil
}

func (b *memBudget) Release(_ context.Context, reservationID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.reservations[reservationID]
	if !ok {
		return false, errs.ErrReservationNotFound
	}
	if !r.IsOpen() {
		return false, nil
	}
	r.Status = entity.ReservationReleased
	b.remaining = min(b.remaining+r.AmountCents, b.limit)
	return true, nil
}

func (b *memBudget) Commit(_ context.Context, reservationID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.commitErr != nil {
		return b.commitErr
	}
	r, ok := b.reservations[reservationID]
	if !ok {
		return errs.ErrReservationNotFound
	}
	if !r.IsOpen() {
		return errs.ErrReservationClosed
	}
	r.Status = entity.ReservationCommitted
	return nil
}

func (b *memBudget) status(reservationID string) entity.ReservationStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r, ok := b.reservations[reservationID]; ok {
		return r.Status
	}
	return ""
}

func (b *memBudget) remainingCents() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// memLedger is an in-memory unit of work holding the order and reconciliation ledgers
type memLedger struct {
	mu        sync.Mutex
	orders    []*entity.Order
	items     []*entity.ReconciliationItem
	appendErr error
}

func (l *memLedger) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

func (l *memLedger) Commit(context.Context) error { return nil }

func (l *memLedger) Rollback(context.Context) error { return nil }

func (l *memLedger) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (l *memLedger) GetBudgetRepository(context.Context) persistence.BudgetRepository { return nil }

func (l *memLedger) GetSpendPermissionRepository(context.Context) persistence.SpendPermissionRepository {
	return nil
}

func (l *memLedger) GetSpendPullRepository(context.Context) persistence.SpendPullRepository {
	return nil
}

func (l *memLedger) GetOrderRepository(context.Context) persistence.OrderRepository {
	return memOrders{l}
}

func (l *memLedger) GetReconciliationRepository(context.Context) persistence.ReconciliationRepository {
	return memReconciliation{l}
}

func (l *memLedger) orderRows() []*entity.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*entity.Order(nil), l.orders...)
}

func (l *memLedger) openItems() []*entity.ReconciliationItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*entity.ReconciliationItem(nil), l.items...)
}

type memOrders struct{ l *memLedger }

func (r memOrders) Append(_ context.Context, order *entity.Order) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	if r.l.appendErr != nil {
		return r.l.appendErr
	}
	r.l.orders = append(r.l.orders, order)
	return nil
}

func (r memOrders) FindByIdempotencyKey(_ context.Context, userID, key string) (*entity.Order, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, o := range r.l.orders {
		if o.UserID == userID && o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, errs.ErrOrderNotFound
}

func (r memOrders) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.l.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memReconciliation struct{ l *memLedger }

func (r memReconciliation) Record(_ context.Context, item *entity.ReconciliationItem) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	r.l.items = append(r.l.items, item)
	return nil
}

func (r memReconciliation) ListOpen(context.Context, string) ([]*entity.ReconciliationItem, error) {
	return nil, nil
}

func (r memReconciliation) Resolve(context.Context, string, string, time.Time) (*entity.ReconciliationItem, error) {
	return nil, errs.ErrReconciliationNotFound
}

// memLocks is an in-memory user lock table
type memLocks struct {
	mu     sync.Mutex
	owners map[string]string
}

func newMemLocks() *memLocks {
	return &memLocks{owners: make(map[string]string)}
}

func (l *memLocks) AcquireLock(_ context.Context, userID, owner string, _ time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.owners[userID]; ok {
		return errs.ErrUserLocked
	}
	l.owners[userID] = owner
	return nil
}

func (l *memLocks) ReleaseLock(_ context.Context, userID, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owners[userID] == owner {
		delete(l.owners, userID)
	}
	return nil
}

func (l *memLocks) CleanupExpiredLocks(context.Context) (int64, error) { return 0, nil }

func (l *memLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.owners)
}

// seqIDs generates predictable IDs
type seqIDs struct{ n atomic.Int64 }

func (g *seqIDs) NewID() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}

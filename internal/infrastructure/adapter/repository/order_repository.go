package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OrderRepository is the append-only order ledger
type OrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts a new order row
func (r *OrderRepository) Append(ctx context.Context, order *entity.Order) error {
	row := model.Order{
		ID:              order.ID,
		UserID:          order.UserID,
		MarketID:        order.MarketID,
		TokenID:         order.TokenID,
		Side:            string(order.Side),
		Price:           order.Price,
		Size:            order.Size,
		ExchangeOrderID: order.ExchangeOrderID,
		Status:          order.Status,
		ReservationID:   order.ReservationID,
		IdempotencyKey:  order.IdempotencyKey,
		CreatedAt:       order.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if order.IdempotencyKey != "" && r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate order idempotency key", map[string]any{
				"user_id":         order.UserID,
				"idempotency_key": order.IdempotencyKey,
			})
			return fmt.Errorf("%w: idempotency key %s", errs.ErrDuplicateTrade, order.IdempotencyKey)
		}
		r.logger.Error("Database error when appending order", map[string]any{
			"user_id":           order.UserID,
			"order_id":          order.ID,
			"exchange_order_id": order.ExchangeOrderID,
			"error":             err.Error(),
		})
		return storeError(err)
	}

	r.logger.Debug("Order appended", map[string]any{
		"user_id":  order.UserID,
		"order_id": order.ID,
	})
	return nil
}

// FindByIdempotencyKey returns the user's order recorded under key
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Order, error) {
	var row model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, storeError(err)
	}
	return toOrderEntity(&row), nil
}

// ListByUser returns the user's orders, oldest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var rows []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeError(err)
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderEntity(&rows[i]))
	}
	return orders, nil
}

func toOrderEntity(row *model.Order) *entity.Order {
	return &entity.Order{
		ID:              row.ID,
		UserID:          row.UserID,
		MarketID:        row.MarketID,
		TokenID:         row.TokenID,
		Side:            entity.Side(row.Side),
		Price:           row.Price,
		Size:            row.Size,
		ExchangeOrderID: row.ExchangeOrderID,
		Status:          row.Status,
		ReservationID:   row.ReservationID,
		IdempotencyKey:  row.IdempotencyKey,
		CreatedAt:       row.CreatedAt,
	}
}

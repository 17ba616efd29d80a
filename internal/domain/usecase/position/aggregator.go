package position

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultLookupConcurrency = 8

// Aggregator derives positions from the order ledger
type Aggregator struct {
	uow         persistence.UnitOfWork
	markets     gateway.MarketMetadataProvider
	exchange    gateway.ExchangeOrderClient
	cache       gateway.PositionCache
	logger      coreport.Logger
	concurrency int
}

// NewAggregator creates a position aggregator. cache may be nil.
func NewAggregator(
	uow persistence.UnitOfWork,
	markets gateway.MarketMetadataProvider,
	exchange gateway.ExchangeOrderClient,
	cache gateway.PositionCache,
	logger coreport.Logger,
	concurrency int,
) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultLookupConcurrency
	}
	return &Aggregator{
		uow:         uow,
		markets:     markets,
		exchange:    exchange,
		cache:       cache,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Build returns the user's positions, newest first
func (a *Aggregator) Build(ctx context.Context, userID string) ([]*entity.Position, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	if cached, ok := a.cached(ctx, userID); ok {
		return cached, nil
	}

	orders, err := a.uow.GetOrderRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	positions := group(userID, orders)
	positions = a.enrich(ctx, positions)

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].LatestCreatedAt.After(positions[j].LatestCreatedAt)
	})

	if a.cache != nil {
		if err := a.cache.Set(ctx, userID, positions); err != nil {
			a.logger.Warn("Failed to cache positions", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	return positions, nil
}

// NetExposure returns yes size minus no size per market over the whole ledger
func (a *Aggregator) NetExposure(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	userID, err := entity.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	orders, err := a.uow.GetOrderRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exposure := make(map[string]decimal.Decimal)
	for _, order := range orders {
		net := exposure[order.MarketID]
		if order.Side == entity.SideYes {
			net = net.Add(order.Size)
		} else {
			net = net.Sub(order.Size)
		}
		exposure[order.MarketID] = net
	}
	return exposure, nil
}

func (a *Aggregator) cached(ctx context.Context, userID string) ([]*entity.Position, bool) {
	if a.cache == nil {
		return nil, false
	}
	positions, ok, err := a.cache.Get(ctx, userID)
	if err != nil {
		a.logger.Warn("Position cache unavailable, building from ledger", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false
	}
	return positions, ok
}

// group folds orders into one position per market and side, in first-seen order
func group(userID string, orders []*entity.Order) []*entity.Position {
	byKey := make(map[entity.PositionKey]*entity.Position)
	var positions []*entity.Position

	for _, order := range orders {
		key := entity.PositionKey{MarketID: order.MarketID, Side: order.Side}
		p, ok := byKey[key]
		if !ok {
			p = entity.NewPosition(userID, key)
			byKey[key] = p
			positions = append(positions, p)
		}
		p.Add(order)
	}
	return positions
}

// enrich attaches market metadata and the live order to every position.
// Positions whose lookups fail are dropped.
func (a *Aggregator) enrich(ctx context.Context, positions []*entity.Position) []*entity.Position {
	keep := make([]bool, len(positions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, p := range positions {
		g.Go(func() error {
			var market *entity.MarketMetadata
			var live *entity.OrderDetail

			lookups, lctx := errgroup.WithContext(gctx)
			lookups.Go(func() error {
				var err error
				market, err = a.markets.GetMarket(lctx, p.MarketID)
				return err
			})
			lookups.Go(func() error {
				var err error
				live, err = a.exchange.GetOrder(lctx, p.LatestExchangeOrderID)
				return err
			})

			if err := lookups.Wait(); err != nil {
				a.logger.Warn("Dropping position after failed lookup", map[string]any{
					"user_id":           p.UserID,
					"market_id":         p.MarketID,
					"side":              string(p.Side),
					"exchange_order_id": p.LatestExchangeOrderID,
					"error":             err.Error(),
				})
				return nil
			}

			p.Market = market
			p.Live = live
			keep[i] = true
			return nil
		})
	}
	// lookups never fail the group
	_ = g.Wait()

	out := make([]*entity.Position, 0, len(positions))
	for i, p := range positions {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

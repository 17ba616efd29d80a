package market

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	marketsPath = "/markets"

	defaultTimeout   = 10 * time.Second
	defaultCacheTTL  = 5 * time.Minute
	defaultRateLimit = 5
	defaultRateBurst = 5
)

type cachedMarket struct {
	market    *entity.MarketMetadata
	expiresAt time.Time
}

// GammaClient resolves market metadata from the Gamma API with a TTL cache
type GammaClient struct {
	http         *resty.Client
	limiter      *rate.Limiter
	group        singleflight.Group
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu    sync.RWMutex
	cache map[string]cachedMarket
}

// NewGammaClient creates a market metadata client
func NewGammaClient(cfg config.MarketConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) (*GammaClient, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("market base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	limit, burst := cfg.RateLimit, cfg.RateBurst
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}

	c := &GammaClient{
		limiter:      rate.NewLimiter(rate.Limit(limit), burst),
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
		cache:        make(map[string]cachedMarket),
	}
	c.http = resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		}).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return c.limiter.Wait(req.Context())
		})

	return c, nil
}

// GetMarket returns the market with the given condition ID
func (c *GammaClient) GetMarket(ctx context.Context, marketID string) (*entity.MarketMetadata, error) {
	if marketID == "" {
		return nil, errors.Wrap(errs.ErrMissingParams, "market id is required")
	}

	if m, ok := c.cached(marketID); ok {
		return m, nil
	}

	v, err, _ := c.group.Do(marketID, func() (any, error) {
		m, err := c.fetch(ctx, marketID)
		if err != nil {
			return nil, err
		}
		c.store(marketID, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}

	m := *v.(*entity.MarketMetadata)
	return &m, nil
}

func (c *GammaClient) cached(marketID string) (*entity.MarketMetadata, bool) {
	c.mu.RLock()
	entry, ok := c.cache[marketID]
	c.mu.RUnlock()

	if !ok || !c.timeProvider.Now().Before(entry.expiresAt) {
		return nil, false
	}
	m := *entry.market
	return &m, true
}

func (c *GammaClient) store(marketID string, m *entity.MarketMetadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[marketID] = cachedMarket{market: m, expiresAt: c.timeProvider.Now().Add(c.ttl)}
}

func (c *GammaClient) fetch(ctx context.Context, marketID string) (*entity.MarketMetadata, error) {
	var out gammaMarketsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("condition_ids", marketID).
		SetResult(&out).
		Get(marketsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "get market %s", marketID)
	}
	if resp.IsError() {
		return nil, errors.Errorf("get market %s: status %d", marketID, resp.StatusCode())
	}

	for _, gm := range out {
		if strings.EqualFold(gm.ConditionID, marketID) {
			m, err := toMarketMetadata(gm)
			if err != nil {
				return nil, errors.Wrapf(err, "decode market %s", marketID)
			}
			c.logger.Debug("Market metadata resolved", map[string]any{
				"market_id": marketID,
				"neg_risk":  m.NegRisk,
				"tick_size": m.TickSize.String(),
			})
			return m, nil
		}
	}
	return nil, errors.Wrapf(errs.ErrMarketNotFound, "market %s", marketID)
}

func toMarketMetadata(gm gammaMarket) (*entity.MarketMetadata, error) {
	var tokens, outcomes []string
	if gm.ClobTokenIDs != "" {
		if err := json.Unmarshal([]byte(gm.ClobTokenIDs), &tokens); err != nil {
			return nil, errors.Wrap(err, "clobTokenIds")
		}
	}
	if gm.Outcomes != "" {
		if err := json.Unmarshal([]byte(gm.Outcomes), &outcomes); err != nil {
			return nil, errors.Wrap(err, "outcomes")
		}
	}

	m := &entity.MarketMetadata{
		ConditionID: gm.ConditionID,
		Question:    gm.Question,
		Slug:        gm.Slug,
		EndDate:     gm.EndDateISO,
		NegRisk:     gm.NegRisk,
		TickSize:    entity.DefaultTickSize,
		Closed:      gm.Closed,
	}

	// outcomes are positionally aligned with token ids; fall back to yes, no order
	for i, token := range tokens {
		label := ""
		if i < len(outcomes) {
			label = strings.ToLower(outcomes[i])
		}
		switch {
		case label == "yes" || (label == "" && i == 0):
			m.YesTokenID = token
		case label == "no" || (label == "" && i == 1):
			m.NoTokenID = token
		}
	}

	if gm.TickSize != "" {
		tick, err := decimal.NewFromString(gm.TickSize.String())
		if err != nil {
			return nil, errors.Wrap(err, "tick size")
		}
		if tick.IsPositive() {
			m.TickSize = tick
		}
	}
	return m, nil
}

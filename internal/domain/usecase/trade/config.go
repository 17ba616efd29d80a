package trade

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LockTTLMargin is the headroom the user lock keeps over the pull and order timeouts,
// covering the reserve, compensation and ledger writes around them.
const LockTTLMargin = 15 * time.Second

// Config holds the trade saga limits
type Config struct {
	PullTimeout      time.Duration
	OrderTimeout     time.Duration
	LockTTL          time.Duration
	SellFloorPrice   decimal.Decimal
	QueueSize        int
	QueueIdleTimeout time.Duration
}

// DefaultConfig returns the default saga configuration
func DefaultConfig() Config {
	return Config{
		PullTimeout:      90 * time.Second,
		OrderTimeout:     15 * time.Second,
		LockTTL:          150 * time.Second,
		SellFloorPrice:   decimal.RequireFromString("0.01"),
		QueueSize:        100,
		QueueIdleTimeout: time.Minute,
	}
}

// Validate rejects a lock that could expire while a trade is still in flight
func (c Config) Validate() error {
	if c.LockTTL <= c.PullTimeout+c.OrderTimeout+LockTTLMargin {
		return fmt.Errorf("lock ttl %s must exceed pull timeout %s + order timeout %s + %s",
			c.LockTTL, c.PullTimeout, c.OrderTimeout, LockTTLMargin)
	}
	return nil
}

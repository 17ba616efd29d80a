package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Side is the outcome a position is held on
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

// ParseSide converts a string to a Side, ignoring case
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case SideYes:
		return SideYes, nil
	case SideNo:
		return SideNo, nil
	default:
		return "", errs.ErrInvalidSide
	}
}

// Opposite returns the other outcome
func (s Side) Opposite() Side {
	if s == SideYes {
		return SideNo
	}
	return SideYes
}

// IsValid checks if the side is yes or no
func (s Side) IsValid() bool {
	return s == SideYes || s == SideNo
}

// Order is one append-only row of the order ledger
type Order struct {
	ID              string
	UserID          string
	MarketID        string
	TokenID         string
	Side            Side
	Price           decimal.Decimal
	Size            decimal.Decimal
	ExchangeOrderID string
	Status          string
	ReservationID   string
	IdempotencyKey  string
	CreatedAt       time.Time
}

// Notional returns price times size
func (o *Order) Notional() decimal.Decimal {
	return o.Price.Mul(o.Size)
}

// TradeIntent is a request to buy size shares of an outcome at price
type TradeIntent struct {
	UserID         string
	MarketID       string
	TokenID        string
	Side           Side
	Price          decimal.Decimal
	Size           decimal.Decimal
	TickSize       decimal.Decimal
	NegRisk        bool
	FeeRateBps     int64
	IdempotencyKey string
}

// Validate normalizes the user ID and checks every field of the intent
func (i *TradeIntent) Validate() error {
	userID, err := NormalizeUserID(i.UserID)
	if err != nil {
		return err
	}
	i.UserID = userID

	if strings.TrimSpace(i.MarketID) == "" || strings.TrimSpace(i.TokenID) == "" {
		return fmt.Errorf("%w: marketId and tokenId are required", errs.ErrMissingParams)
	}
	if !i.Side.IsValid() {
		return errs.ErrInvalidSide
	}
	if err := ValidateSize(i.Size); err != nil {
		return err
	}
	if err := ValidatePrice(i.Price); err != nil {
		return err
	}
	if !i.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", errs.ErrInvalidPrice)
	}
	if i.TickSize.IsZero() {
		i.TickSize = DefaultTickSize
	}

	// cost, pull, exchange order and ledger row all use the values the exchange will sign
	price, err := QuantizePrice(i.Price, i.TickSize)
	if err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price %s is below one tick of %s", errs.ErrInvalidPrice, i.Price.String(), i.TickSize.String())
	}
	size, err := TruncateShares(i.Size)
	if err != nil {
		return err
	}
	i.Price, i.Size = price, size

	if i.FeeRateBps < 0 {
		return fmt.Errorf("%w: fee rate must not be negative", errs.ErrMissingParams)
	}
	return nil
}

// SellIntent is a request to close size shares of a held position
type SellIntent struct {
	UserID         string
	MarketID       string
	Side           Side
	Size           decimal.Decimal
	IdempotencyKey string
}

// Validate normalizes the user ID and checks every field of the intent
func (i *SellIntent) Validate() error {
	userID, err := NormalizeUserID(i.UserID)
	if err != nil {
		return err
	}
	i.UserID = userID

	if strings.TrimSpace(i.MarketID) == "" {
		return fmt.Errorf("%w: marketId is required", errs.ErrMissingParams)
	}
	if !i.Side.IsValid() {
		return errs.ErrInvalidSide
	}
	if err := ValidateSize(i.Size); err != nil {
		return err
	}
	size, err := TruncateShares(i.Size)
	if err != nil {
		return err
	}
	i.Size = size
	return nil
}

// DefaultTickSize is used when a trade does not name the market tick size
var DefaultTickSize = decimal.RequireFromString("0.01")

// OrderRequest is what the exchange client needs to sign and post a BUY order
type OrderRequest struct {
	TokenID    string
	Side       Side
	Price      decimal.Decimal
	Size       decimal.Decimal
	TickSize   decimal.Decimal
	NegRisk    bool
	FeeRateBps int64
}

// MarketSellRequest closes a position by selling TokenID at a pessimistic floor price.
// Side is the ledger side of the closing leg.
type MarketSellRequest struct {
	TokenID    string
	Side       Side
	Size       decimal.Decimal
	FloorPrice decimal.Decimal
	NegRisk    bool
}

// PlacedOrder is the exchange's acknowledgement of an accepted order
type PlacedOrder struct {
	ExchangeOrderID string
	Status          string
	MakingAmount    string
	TakingAmount    string
	TxHashes        []string
}

// OrderDetail is the live exchange view of an order
type OrderDetail struct {
	ID           string
	Status       string
	Outcome      string
	Price        decimal.Decimal
	OriginalSize decimal.Decimal
	SizeMatched  decimal.Decimal
	Expiration   int64
}

// TradeResult is returned by a completed trade saga
type TradeResult struct {
	Order         *Order
	ReservationID string
	CostCents     int64
	TxIDs         []string
}

// SellResult is returned by a completed position sell
type SellResult struct {
	Order         *Order
	LedgerOrderID string
}

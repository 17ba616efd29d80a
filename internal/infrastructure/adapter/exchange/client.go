package exchange

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/polymarket/go-order-utils/pkg/builder"
	gomodel "github.com/polymarket/go-order-utils/pkg/model"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	orderPath    = "/order"
	orderTypeFOK = "FOK"
	zeroAddress  = "0x0000000000000000000000000000000000000000"

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 10
	defaultRateBurst = 5
)

// ClobClient signs and posts orders to the CLOB and reads them back
type ClobClient struct {
	reads        *resty.Client
	orders       *resty.Client
	limiter      *rate.Limiter
	builder      builder.ExchangeOrderBuilder
	key          *ecdsa.PrivateKey
	signer       common.Address
	maker        common.Address
	sigType      gomodel.SignatureType
	creds        Credentials
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewClobClient builds a client from configuration
func NewClobClient(cfg config.ExchangeConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) (*ClobClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid exchange private key")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("exchange base url is required")
	}
	if cfg.APIKey == "" || cfg.APISecret == "" || cfg.APIPassphrase == "" {
		return nil, errors.New("exchange api credentials are required")
	}

	signer := crypto.PubkeyToAddress(key.PublicKey)
	maker := signer
	if cfg.FunderAddress != "" {
		if !common.IsHexAddress(cfg.FunderAddress) {
			return nil, errors.Errorf("invalid funder address %q", cfg.FunderAddress)
		}
		maker = common.HexToAddress(cfg.FunderAddress)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit, burst := cfg.RateLimit, cfg.RateBurst
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}

	c := &ClobClient{
		limiter:      rate.NewLimiter(rate.Limit(limit), burst),
		builder:      builder.NewExchangeOrderBuilderImpl(big.NewInt(cfg.ChainID), nil),
		key:          key,
		signer:       signer,
		maker:        maker,
		sigType:      gomodel.SignatureType(cfg.SignatureType),
		timeProvider: timeProvider,
		logger:       logger,
		creds: Credentials{
			APIKey:     cfg.APIKey,
			Secret:     cfg.APISecret,
			Passphrase: cfg.APIPassphrase,
		},
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	// FOK orders are not idempotent, so placement never retries
	c.orders = c.newResty(baseURL, timeout)
	c.reads = c.newResty(baseURL, timeout).
		SetRetryCount(3).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		})

	return c, nil
}

func (c *ClobClient) newResty(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return c.limiter.Wait(req.Context())
		})
}

// PlaceOrder signs and posts a FOK BUY order at the tick-quantized price
func (c *ClobClient) PlaceOrder(ctx context.Context, req entity.OrderRequest) (*entity.PlacedOrder, error) {
	tick := req.TickSize
	if tick.IsZero() {
		tick = entity.DefaultTickSize
	}
	price, err := entity.QuantizePrice(req.Price, tick)
	if err != nil {
		return nil, errors.Wrap(err, "quantize price")
	}
	if !price.IsPositive() {
		return nil, errors.Wrapf(errs.ErrOrderRejected, "price %s rounds to zero at tick %s", req.Price, tick)
	}

	signed, err := c.buildSignedOrder(req.TokenID, gomodel.BUY, price, req.Size, req.FeeRateBps, req.NegRisk)
	if err != nil {
		return nil, err
	}
	return c.postOrder(ctx, signed, "BUY")
}

// PlaceMarketSell signs and posts a FOK SELL of the held token at the floor price
func (c *ClobClient) PlaceMarketSell(ctx context.Context, req entity.MarketSellRequest) (*entity.PlacedOrder, error) {
	floor, err := entity.QuantizePrice(req.FloorPrice, entity.DefaultTickSize)
	if err != nil {
		return nil, errors.Wrap(err, "quantize floor price")
	}
	if !floor.IsPositive() {
		return nil, errors.Wrap(errs.ErrOrderRejected, "floor price must be positive")
	}

	signed, err := c.buildSignedOrder(req.TokenID, gomodel.SELL, floor, req.Size, 0, req.NegRisk)
	if err != nil {
		return nil, err
	}
	return c.postOrder(ctx, signed, "SELL")
}

// GetOrder returns the exchange view of an order
func (c *ClobClient) GetOrder(ctx context.Context, orderID string) (*entity.OrderDetail, error) {
	path := "/data/order/" + url.PathEscape(orderID)
	headers, err := c.l2Headers(http.MethodGet, path, "")
	if err != nil {
		return nil, err
	}

	var out openOrderResponse
	resp, err := c.reads.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetResult(&out).
		Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", orderID)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, errors.Wrapf(errs.ErrOrderNotFound, "exchange order %s", orderID)
	}
	if resp.IsError() {
		return nil, errors.Errorf("get order %s: status %d: %s", orderID, resp.StatusCode(), errorMessage(resp))
	}
	if out.ID == "" {
		return nil, errors.Wrapf(errs.ErrOrderNotFound, "exchange order %s", orderID)
	}

	return toOrderDetail(out)
}

func (c *ClobClient) postOrder(ctx context.Context, signed *gomodel.SignedOrder, side string) (*entity.PlacedOrder, error) {
	body := postOrderRequest{
		Order: orderBody{
			Salt:          json.Number(signed.Order.Salt.String()),
			Maker:         signed.Order.Maker.Hex(),
			Signer:        signed.Order.Signer.Hex(),
			Taker:         signed.Order.Taker.Hex(),
			TokenID:       signed.Order.TokenId.String(),
			MakerAmount:   signed.Order.MakerAmount.String(),
			TakerAmount:   signed.Order.TakerAmount.String(),
			Expiration:    signed.Order.Expiration.String(),
			Nonce:         signed.Order.Nonce.String(),
			FeeRateBps:    signed.Order.FeeRateBps.String(),
			Side:          side,
			SignatureType: int(signed.Order.SignatureType.Int64()),
			Signature:     "0x" + hex.EncodeToString(signed.Signature),
		},
		Owner:     c.creds.APIKey,
		OrderType: orderTypeFOK,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order")
	}

	headers, err := c.l2Headers(http.MethodPost, orderPath, string(payload))
	if err != nil {
		return nil, err
	}

	var out postOrderResponse
	resp, err := c.orders.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetHeader("Content-Type", "application/json").
		SetBody(string(payload)).
		SetResult(&out).
		Post(orderPath)
	if err != nil {
		return nil, errors.Wrap(err, "post order")
	}

	status := resp.StatusCode()
	switch {
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return nil, errors.Wrapf(errs.ErrOrderRejected, "status %d: %s", status, errorMessage(resp))
	case resp.IsError():
		return nil, errors.Errorf("post order: status %d: %s", status, errorMessage(resp))
	case !out.Success || out.ErrorMsg != "":
		return nil, errors.Wrapf(errs.ErrOrderRejected, "%s", out.ErrorMsg)
	}

	c.logger.Info("Exchange order accepted", map[string]any{
		"exchange_order_id": out.OrderID,
		"side":              side,
		"status":            out.Status,
		"token_id":          body.Order.TokenID,
		"maker_amount":      body.Order.MakerAmount,
		"taker_amount":      body.Order.TakerAmount,
	})

	return &entity.PlacedOrder{
		ExchangeOrderID: out.OrderID,
		Status:          out.Status,
		MakingAmount:    out.MakingAmount,
		TakingAmount:    out.TakingAmount,
		TxHashes:        out.TxHashes,
	}, nil
}

func (c *ClobClient) buildSignedOrder(tokenID string, side gomodel.Side, price, size decimal.Decimal, feeRateBps int64, negRisk bool) (*gomodel.SignedOrder, error) {
	makerAmount, takerAmount, err := orderAmounts(side, price, size)
	if err != nil {
		return nil, err
	}

	contract := gomodel.CTFExchange
	if negRisk {
		contract = gomodel.NegRiskCTFExchange
	}

	signed, err := c.builder.BuildSignedOrder(c.key, &gomodel.OrderData{
		Maker:         c.maker.Hex(),
		Taker:         zeroAddress,
		TokenId:       tokenID,
		MakerAmount:   strconv.FormatInt(makerAmount, 10),
		TakerAmount:   strconv.FormatInt(takerAmount, 10),
		FeeRateBps:    strconv.FormatInt(feeRateBps, 10),
		Nonce:         "0",
		Signer:        c.signer.Hex(),
		Expiration:    "0",
		Side:          side,
		SignatureType: c.sigType,
	}, contract)
	if err != nil {
		return nil, errors.Wrap(err, "sign order")
	}
	return signed, nil
}

// orderAmounts returns maker and taker amounts in base units. A BUY pays collateral
// for shares and a SELL pays shares for collateral.
func orderAmounts(side gomodel.Side, price, size decimal.Decimal) (int64, int64, error) {
	shares, err := entity.TruncateShares(size)
	if err != nil {
		return 0, 0, err
	}

	shareUnits, err := entity.ToBaseUnits(shares)
	if err != nil {
		return 0, 0, err
	}
	collateralUnits, err := entity.ToBaseUnits(shares.Mul(price))
	if err != nil {
		return 0, 0, err
	}
	if collateralUnits == 0 {
		return 0, 0, errors.Wrap(errs.ErrInvalidAmount, "order notional rounds to zero")
	}

	if side == gomodel.BUY {
		return collateralUnits, shareUnits, nil
	}
	return shareUnits, collateralUnits, nil
}

func toOrderDetail(out openOrderResponse) (*entity.OrderDetail, error) {
	detail := &entity.OrderDetail{
		ID:      out.ID,
		Status:  out.Status,
		Outcome: out.Outcome,
	}

	var err error
	if detail.Price, err = parseDecimal(out.Price); err != nil {
		return nil, errors.Wrap(err, "parse price")
	}
	if detail.OriginalSize, err = parseDecimal(out.OriginalSize); err != nil {
		return nil, errors.Wrap(err, "parse original size")
	}
	if detail.SizeMatched, err = parseDecimal(out.SizeMatched); err != nil {
		return nil, errors.Wrap(err, "parse size matched")
	}
	if out.Expiration != "" {
		if detail.Expiration, err = strconv.ParseInt(out.Expiration, 10, 64); err != nil {
			return nil, errors.Wrap(err, "parse expiration")
		}
	}
	return detail, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func errorMessage(resp *resty.Response) string {
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(resp.Body()))
}

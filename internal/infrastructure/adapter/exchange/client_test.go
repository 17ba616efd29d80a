package exchange

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/ethereum/go-ethereum/crypto"
	gomodel "github.com/polymarket/go-order-utils/pkg/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSecret = base64.URLEncoding.EncodeToString([]byte("clob-test-secret"))
	fixedNow   = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

func newTestClient(t *testing.T, baseURL string) (*ClobClient, string) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()

	client, err := NewClobClient(config.ExchangeConfig{
		BaseURL:       baseURL,
		ChainID:       137,
		PrivateKey:    hex.EncodeToString(crypto.FromECDSA(key)),
		APIKey:        "api-key",
		APISecret:     testSecret,
		APIPassphrase: "passphrase",
		Timeout:       2 * time.Second,
	}, tp, logger.NewNoopLogger())
	require.NoError(t, err)

	return client, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func expectedSignature(ts, method, path, body string) string {
	secret, _ := base64.URLEncoding.DecodeString(testSecret)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ts + method + path + body))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

func TestNewClobClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ExchangeConfig
	}{
		{"bad private key", config.ExchangeConfig{BaseURL: "http://x", PrivateKey: "zz", APIKey: "k", APISecret: "s", APIPassphrase: "p"}},
		{"missing base url", config.ExchangeConfig{PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", APIKey: "k", APISecret: "s", APIPassphrase: "p"}},
		{"missing credentials", config.ExchangeConfig{BaseURL: "http://x", PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"}},
		{"bad funder", config.ExchangeConfig{BaseURL: "http://x", PrivateKey: "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", FunderAddress: "nope", APIKey: "k", APISecret: "s", APIPassphrase: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClobClient(tt.cfg, coremocks.NewMockTimeProvider(t), logger.NewNoopLogger())

			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestClobClient_PlaceOrder(t *testing.T) {
	t.Run("Signs and posts a FOK buy", func(t *testing.T) {
		// Arrange
		var (
			gotBody    postOrderRequest
			gotHeaders http.Header
			rawBody    string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/order", r.URL.Path)
			b, _ := io.ReadAll(r.Body)
			rawBody = string(b)
			gotHeaders = r.Header.Clone()
			_ = json.Unmarshal(b, &gotBody)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"errorMsg":"","orderID":"0xorder","status":"matched","makingAmount":"4.4","takingAmount":"10","transactionsHashes":["0xtx"]}`))
		}))
		defer server.Close()

		client, signer := newTestClient(t, server.URL)

		// Act
		placed, err := client.PlaceOrder(context.Background(), entity.OrderRequest{
			TokenID:  "123456789",
			Side:     entity.SideYes,
			Price:    decimal.RequireFromString("0.44"),
			Size:     decimal.NewFromInt(10),
			TickSize: decimal.RequireFromString("0.01"),
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "0xorder", placed.ExchangeOrderID)
		assert.Equal(t, "matched", placed.Status)
		assert.Equal(t, []string{"0xtx"}, placed.TxHashes)

		assert.Equal(t, "4400000", gotBody.Order.MakerAmount)
		assert.Equal(t, "10000000", gotBody.Order.TakerAmount)
		assert.Equal(t, "BUY", gotBody.Order.Side)
		assert.Equal(t, "123456789", gotBody.Order.TokenID)
		assert.Equal(t, signer, gotBody.Order.Signer)
		assert.Equal(t, signer, gotBody.Order.Maker)
		assert.Equal(t, zeroAddress, gotBody.Order.Taker)
		assert.Equal(t, "FOK", gotBody.OrderType)
		assert.Equal(t, "api-key", gotBody.Owner)
		assert.Len(t, gotBody.Order.Signature, 132)

		ts := strconv.FormatInt(fixedNow.Unix(), 10)
		assert.Equal(t, signer, gotHeaders.Get("POLY_ADDRESS"))
		assert.Equal(t, ts, gotHeaders.Get("POLY_TIMESTAMP"))
		assert.Equal(t, "api-key", gotHeaders.Get("POLY_API_KEY"))
		assert.Equal(t, "passphrase", gotHeaders.Get("POLY_PASSPHRASE"))
		assert.Equal(t, expectedSignature(ts, "POST", "/order", rawBody), gotHeaders.Get("POLY_SIGNATURE"))
	})

	t.Run("Unsuccessful response is a rejection", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":false,"errorMsg":"order couldn't be fully filled, FOK orders are fully filled/killed"}`))
		}))
		defer server.Close()
		client, _ := newTestClient(t, server.URL)

		// Act
		placed, err := client.PlaceOrder(context.Background(), entity.OrderRequest{
			TokenID: "1", Price: decimal.RequireFromString("0.5"), Size: decimal.NewFromInt(2),
		})

		// Assert
		assert.Nil(t, placed)
		assert.True(t, errors.Is(err, errs.ErrOrderRejected))
		assert.Contains(t, err.Error(), "fully filled")
	})

	t.Run("Client error is a rejection", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid signature"}`))
		}))
		defer server.Close()
		client, _ := newTestClient(t, server.URL)

		// Act
		_, err := client.PlaceOrder(context.Background(), entity.OrderRequest{
			TokenID: "1", Price: decimal.RequireFromString("0.5"), Size: decimal.NewFromInt(2),
		})

		// Assert
		assert.True(t, errors.Is(err, errs.ErrOrderRejected))
		assert.Contains(t, err.Error(), "invalid signature")
	})

	t.Run("Server error is not retried", func(t *testing.T) {
		// Arrange
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		client, _ := newTestClient(t, server.URL)

		// Act
		_, err := client.PlaceOrder(context.Background(), entity.OrderRequest{
			TokenID: "1", Price: decimal.RequireFromString("0.5"), Size: decimal.NewFromInt(2),
		})

		// Assert
		require.Error(t, err)
		assert.False(t, errors.Is(err, errs.ErrOrderRejected))
		assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	})

	t.Run("Price below one tick is refused locally", func(t *testing.T) {
		// Arrange
		client, _ := newTestClient(t, "http://127.0.0.1:1")

		// Act
		_, err := client.PlaceOrder(context.Background(), entity.OrderRequest{
			TokenID: "1", Price: decimal.RequireFromString("0.001"), Size: decimal.NewFromInt(2),
		})

		// Assert
		assert.True(t, errors.Is(err, errs.ErrOrderRejected))
	})
}

func TestClobClient_PlaceMarketSell(t *testing.T) {
	// Arrange
	var gotBody postOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"orderID":"0xsell","status":"matched"}`))
	}))
	defer server.Close()
	client, _ := newTestClient(t, server.URL)

	// Act
	placed, err := client.PlaceMarketSell(context.Background(), entity.MarketSellRequest{
		TokenID:    "42",
		Side:       entity.SideNo,
		Size:       decimal.NewFromInt(10),
		FloorPrice: decimal.RequireFromString("0.01"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0xsell", placed.ExchangeOrderID)
	assert.Equal(t, "SELL", gotBody.Order.Side)
	assert.Equal(t, "10000000", gotBody.Order.MakerAmount)
	assert.Equal(t, "100000", gotBody.Order.TakerAmount)
	assert.Equal(t, "42", gotBody.Order.TokenID)
}

func TestClobClient_GetOrder(t *testing.T) {
	t.Run("Parses order and retries after unavailable", func(t *testing.T) {
		// Arrange
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/data/order/0xabc", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("POLY_SIGNATURE"))
			if atomic.AddInt32(&hits, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"0xabc","status":"MATCHED","outcome":"Yes","price":"0.44","original_size":"10","size_matched":"10","expiration":"0"}`))
		}))
		defer server.Close()
		client, _ := newTestClient(t, server.URL)

		// Act
		detail, err := client.GetOrder(context.Background(), "0xabc")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
		assert.Equal(t, "MATCHED", detail.Status)
		assert.Equal(t, "Yes", detail.Outcome)
		assert.True(t, detail.Price.Equal(decimal.RequireFromString("0.44")))
		assert.True(t, detail.SizeMatched.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, int64(0), detail.Expiration)
	})

	t.Run("Unknown order", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()
		client, _ := newTestClient(t, server.URL)

		// Act
		_, err := client.GetOrder(context.Background(), "missing")

		// Assert
		assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
	})
}

func TestOrderAmounts(t *testing.T) {
	tests := []struct {
		name      string
		side      gomodel.Side
		price     string
		size      string
		wantMaker int64
		wantTaker int64
		wantErr   error
	}{
		{"buy ten at 0.44", gomodel.BUY, "0.44", "10", 4_400_000, 10_000_000, nil},
		{"sell ten at 0.44", gomodel.SELL, "0.44", "10", 10_000_000, 4_400_000, nil},
		{"size truncated to hundredths", gomodel.BUY, "0.5", "1.239", 615_000, 1_230_000, nil},
		{"size below one hundredth", gomodel.BUY, "0.5", "0.004", 0, 0, errs.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maker, taker, err := orderAmounts(tt.side, decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.size))

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMaker, maker)
			assert.Equal(t, tt.wantTaker, taker)
		})
	}
}

package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

const (
	defaultGasLimit     = uint64(300_000)
	defaultPollInterval = 2 * time.Second
)

// Backend is the subset of the JSON-RPC client the gateway needs
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// SpendGateway submits SpendPermissionManager calls signed by the operator key
type SpendGateway struct {
	backend      Backend
	key          *ecdsa.PrivateKey
	operator     common.Address
	manager      common.Address
	chainID      *big.Int
	signer       types.Signer
	gasLimit     uint64
	pollInterval time.Duration
	logger       coreport.Logger

	// serializes nonce assignment across concurrent pulls
	sendMu sync.Mutex
}

// NewSpendGateway dials the RPC endpoint and builds a gateway from configuration
func NewSpendGateway(ctx context.Context, cfg config.ChainConfig, logger coreport.Logger) (*SpendGateway, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	gw, err := NewSpendGatewayWithBackend(client, cfg, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	return gw, nil
}

// NewSpendGatewayWithBackend builds a gateway on an existing backend
func NewSpendGatewayWithBackend(backend Backend, cfg config.ChainConfig, logger coreport.Logger) (*SpendGateway, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.OperatorPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid operator private key: %w", err)
	}
	if !common.IsHexAddress(cfg.SpendManagerAddress) {
		return nil, fmt.Errorf("invalid spend manager address %q", cfg.SpendManagerAddress)
	}
	if cfg.ChainID <= 0 {
		return nil, fmt.Errorf("invalid chain id %d", cfg.ChainID)
	}

	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = defaultGasLimit
	}
	pollInterval := cfg.ReceiptPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	chainID := big.NewInt(cfg.ChainID)
	return &SpendGateway{
		backend:      backend,
		key:          key,
		operator:     crypto.PubkeyToAddress(key.PublicKey),
		manager:      common.HexToAddress(cfg.SpendManagerAddress),
		chainID:      chainID,
		signer:       types.LatestSignerForChainID(chainID),
		gasLimit:     gasLimit,
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

// Operator returns the address that signs and sends pulls
func (g *SpendGateway) Operator() common.Address {
	return g.operator
}

// IsApproved asks the manager whether the permission is already approved
func (g *SpendGateway) IsApproved(ctx context.Context, permission *entity.SignedSpendPermission) (bool, error) {
	tuple, err := toTuple(permission)
	if err != nil {
		return false, err
	}
	data, err := spendManagerABI.Pack("isApproved", tuple)
	if err != nil {
		return false, fmt.Errorf("pack isApproved: %w", err)
	}

	out, err := g.backend.CallContract(ctx, ethereum.CallMsg{
		From: g.operator,
		To:   &g.manager,
		Data: data,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("call isApproved: %w", err)
	}

	values, err := spendManagerABI.Unpack("isApproved", out)
	if err != nil {
		return false, fmt.Errorf("unpack isApproved: %w", err)
	}
	if len(values) != 1 {
		return false, fmt.Errorf("unexpected isApproved result length %d", len(values))
	}
	approved, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected isApproved result type %T", values[0])
	}
	return approved, nil
}

// Submit signs and broadcasts one call and returns its transaction hash
func (g *SpendGateway) Submit(ctx context.Context, call entity.SpendCall) (string, error) {
	if call.Permission != nil && !strings.EqualFold(call.Permission.Permission.Spender, g.operator.Hex()) {
		return "", fmt.Errorf("permission spender %s is not the operator %s",
			call.Permission.Permission.Spender, g.operator.Hex())
	}

	data, err := packCall(call)
	if err != nil {
		return "", fmt.Errorf("pack %s: %w", call.Kind, err)
	}

	gasPrice, err := g.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}
	// 10% over the suggestion for faster inclusion
	gasPrice = new(big.Int).Div(new(big.Int).Mul(gasPrice, big.NewInt(11)), big.NewInt(10))

	gas, err := g.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:     g.operator,
		To:       &g.manager,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		// a failed estimate usually means the call would revert on chain
		return "", fmt.Errorf("estimate gas for %s: %w", call.Kind, err)
	}
	if gas > g.gasLimit {
		return "", fmt.Errorf("estimated gas %d for %s exceeds limit %d", gas, call.Kind, g.gasLimit)
	}
	gas = min(gas*12/10, g.gasLimit)

	g.sendMu.Lock()
	defer g.sendMu.Unlock()

	nonce, err := g.backend.PendingNonceAt(ctx, g.operator)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &g.manager,
		Value:    big.NewInt(0),
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, g.signer, g.key)
	if err != nil {
		return "", fmt.Errorf("sign tx: %w", err)
	}

	if err := g.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send tx: %w", err)
	}

	txID := signed.Hash().Hex()
	g.logger.Info("Spend transaction sent", map[string]any{
		"call":  string(call.Kind),
		"tx_id": txID,
		"nonce": nonce,
		"gas":   gas,
	})
	return txID, nil
}

// WaitMined polls for the receipt of txID until it is mined or ctx ends
func (g *SpendGateway) WaitMined(ctx context.Context, txID string) error {
	hash := common.HexToHash(txID)
	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := g.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return fmt.Errorf("transaction %s reverted in block %s", txID, receipt.BlockNumber)
			}
			return nil
		case errors.Is(err, ethereum.NotFound):
		default:
			g.logger.Debug("Receipt lookup failed, polling again", map[string]any{
				"tx_id": txID,
				"error": err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", txID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close releases the RPC connection when the backend owns one
func (g *SpendGateway) Close() {
	if closer, ok := g.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

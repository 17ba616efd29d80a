package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/trade"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"

	"github.com/shopspring/decimal"
)

// validateConfig checks that every setting the service cannot start without is present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Database.Host, "database.host", "TS_DB_HOST")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Database.Port, "database.port", "TS_DB_PORT")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Database.Username, "database.username", "TS_DB_USERNAME")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Database.Password, "database.password", "TS_DB_PASSWORD")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Database.Database, "database.database", "TS_DB_NAME")

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Saga limits
	if cfg.Saga.PullTimeout == 0 {
		missingConfigs = append(missingConfigs, "saga.pullTimeout")
	}

	if cfg.Saga.OrderTimeout == 0 {
		missingConfigs = append(missingConfigs, "saga.orderTimeout")
	}

	if cfg.Saga.LockTTL == 0 {
		missingConfigs = append(missingConfigs, "saga.lockTtl")
	}

	// Chain and exchange credentials
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Chain.RPCURL, "chain.rpcUrl", "TS_CHAIN_RPC_URL")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Chain.OperatorPrivateKey, "chain.operatorPrivateKey", "TS_OPERATOR_PRIVATE_KEY")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Chain.SpendManagerAddress, "chain.spendManagerAddress", "TS_SPEND_MANAGER_ADDRESS")

	if cfg.Exchange.BaseURL == "" {
		missingConfigs = append(missingConfigs, "exchange.baseUrl")
	}
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Exchange.PrivateKey, "exchange.privateKey", "TS_CLOB_PRIVATE_KEY")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Exchange.APIKey, "exchange.apiKey", "TS_CLOB_API_KEY")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Exchange.APISecret, "exchange.apiSecret", "TS_CLOB_API_SECRET")
	missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Exchange.APIPassphrase, "exchange.apiPassphrase", "TS_CLOB_API_PASSPHRASE")

	if cfg.Market.BaseURL == "" {
		missingConfigs = append(missingConfigs, "market.baseUrl")
	}

	if cfg.Redis.Enabled {
		missingConfigs = appendMissingSecret(cfg, missingConfigs, cfg.Redis.URL, "redis.url", "TS_REDIS_URL")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// The user lock must outlive every step that can move funds
	if cfg.Saga.LockTTL <= cfg.Saga.PullTimeout+cfg.Saga.OrderTimeout+trade.LockTTLMargin {
		return fmt.Errorf("saga.lockTtl %s must exceed saga.pullTimeout + saga.orderTimeout + %s",
			cfg.Saga.LockTTL, trade.LockTTLMargin)
	}

	if _, err := decimal.NewFromString(cfg.Saga.SellFloorPrice); cfg.Saga.SellFloorPrice != "" && err != nil {
		return fmt.Errorf("invalid saga.sellFloorPrice %q: %w", cfg.Saga.SellFloorPrice, err)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		// A trade holds the request open while the pull is confirmed on chain
		if cfg.Server.WriteTimeout < cfg.Saga.PullTimeout+cfg.Saga.OrderTimeout {
			warnings = append(warnings, "server.writeTimeout is shorter than saga.pullTimeout + saga.orderTimeout")
		}

		if !strings.HasPrefix(cfg.Chain.RPCURL, "https://") && !strings.HasPrefix(cfg.Chain.RPCURL, "wss://") {
			warnings = append(warnings, "chain.rpcUrl should use TLS in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}

// appendMissingSecret records a missing value, accepting the environment variable as a source in production
func appendMissingSecret(cfg *config.Config, missing []string, value, key, envVar string) []string {
	if value != "" {
		return missing
	}
	if cfg.Environment == config.Production {
		if os.Getenv(envVar) == "" {
			return append(missing, fmt.Sprintf("%s (or %s environment variable)", key, envVar))
		}
		return missing
	}
	return append(missing, key)
}

// sagaConfigFrom converts the saga section, keeping defaults for anything unset
func sagaConfigFrom(cfg config.SagaConfig) (trade.Config, error) {
	out := trade.DefaultConfig()

	if cfg.PullTimeout > 0 {
		out.PullTimeout = cfg.PullTimeout
	}
	if cfg.OrderTimeout > 0 {
		out.OrderTimeout = cfg.OrderTimeout
	}
	if cfg.LockTTL > 0 {
		out.LockTTL = cfg.LockTTL
	}
	if cfg.QueueSize > 0 {
		out.QueueSize = cfg.QueueSize
	}
	if cfg.QueueIdleTimeout > 0 {
		out.QueueIdleTimeout = cfg.QueueIdleTimeout
	}
	if cfg.SellFloorPrice != "" {
		floor, err := decimal.NewFromString(cfg.SellFloorPrice)
		if err != nil {
			return trade.Config{}, fmt.Errorf("invalid saga.sellFloorPrice %q: %w", cfg.SellFloorPrice, err)
		}
		if floor.IsNegative() || floor.GreaterThan(decimal.NewFromInt(1)) {
			return trade.Config{}, fmt.Errorf("saga.sellFloorPrice must be within [0,1], got %s", floor.String())
		}
		out.SellFloorPrice = floor
	}

	if err := out.Validate(); err != nil {
		return trade.Config{}, fmt.Errorf("invalid saga configuration: %w", err)
	}
	return out, nil
}

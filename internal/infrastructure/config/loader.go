package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Environment variables from .env come first so TS_ENV can live there too
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromFile loads configuration from an explicit YAML file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, getEnvironment())
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix("TS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 120)     // seconds, a trade may wait on chain
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 30)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)      // seconds
	v.SetDefault("database.slowThreshold", 200) // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
	v.SetDefault("logger.maxSizeMb", 100)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.maxAgeDays", 14)

	v.SetDefault("saga.pullTimeout", 90)  // seconds
	v.SetDefault("saga.orderTimeout", 15) // seconds
	v.SetDefault("saga.lockTtl", 150)     // seconds
	v.SetDefault("saga.sellFloorPrice", "0.01")
	v.SetDefault("saga.queueSize", 100)
	v.SetDefault("saga.queueIdleTimeout", 60) // seconds
	v.SetDefault("saga.positionWorkers", 8)

	v.SetDefault("chain.chainId", 8453)
	v.SetDefault("chain.gasLimit", 250000)
	v.SetDefault("chain.receiptPollInterval", 1000) // milliseconds

	v.SetDefault("exchange.baseUrl", "https://clob.polymarket.com")
	v.SetDefault("exchange.chainId", 137)
	v.SetDefault("exchange.timeout", 15) // seconds
	v.SetDefault("exchange.rateLimit", 10.0)
	v.SetDefault("exchange.rateBurst", 5)

	v.SetDefault("market.baseUrl", "https://gamma-api.polymarket.com")
	v.SetDefault("market.timeout", 10)  // seconds
	v.SetDefault("market.cacheTtl", 60) // seconds
	v.SetDefault("market.rateLimit", 20.0)
	v.SetDefault("market.rateBurst", 10)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.keyPrefix", "trade-saga:")
	v.SetDefault("redis.positionTtl", 30) // seconds

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.poolMonitorInterval", 15) // seconds
}

// getEnvironment determines the environment to use based on TS_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("TS_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets environment variables win over file values for secrets
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"TS_DB_HOST":               "database.host",
		"TS_DB_PORT":               "database.port",
		"TS_DB_USERNAME":           "database.username",
		"TS_DB_PASSWORD":           "database.password",
		"TS_DB_NAME":               "database.database",
		"TS_DB_SSL_MODE":           "database.sslMode",
		"TS_SERVER_HOST":           "server.host",
		"TS_SERVER_PORT":           "server.port",
		"TS_LOGGER_LEVEL":          "logger.level",
		"TS_CHAIN_RPC_URL":         "chain.rpcUrl",
		"TS_OPERATOR_PRIVATE_KEY":  "chain.operatorPrivateKey",
		"TS_SPEND_MANAGER_ADDRESS": "chain.spendManagerAddress",
		"TS_CLOB_PRIVATE_KEY":      "exchange.privateKey",
		"TS_CLOB_FUNDER_ADDRESS":   "exchange.funderAddress",
		"TS_CLOB_API_KEY":          "exchange.apiKey",
		"TS_CLOB_API_SECRET":       "exchange.apiSecret",
		"TS_CLOB_API_PASSPHRASE":   "exchange.apiPassphrase",
		"TS_REDIS_URL":             "redis.url",
	}
	for env, key := range overrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if maxOpenConns := getEnvInt("TS_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("TS_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if pullTimeout := getEnvInt("TS_SAGA_PULL_TIMEOUT_SECONDS", 0); pullTimeout > 0 {
		v.Set("saga.pullTimeout", pullTimeout)
	}
	if orderTimeout := getEnvInt("TS_SAGA_ORDER_TIMEOUT_SECONDS", 0); orderTimeout > 0 {
		v.Set("saga.orderTimeout", orderTimeout)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	seconds := []*time.Duration{
		&config.Server.ReadTimeout,
		&config.Server.WriteTimeout,
		&config.Server.IdleTimeout,
		&config.Server.ReadHeaderTimeout,
		&config.Server.ShutdownTimeout,
		&config.Database.QueryTimeout,
		&config.Database.RetryDelay,
		&config.Saga.PullTimeout,
		&config.Saga.OrderTimeout,
		&config.Saga.LockTTL,
		&config.Saga.QueueIdleTimeout,
		&config.Exchange.Timeout,
		&config.Market.Timeout,
		&config.Market.CacheTTL,
		&config.Redis.PositionTTL,
		&config.Metrics.PoolMonitorInterval,
	}
	for _, d := range seconds {
		*d = time.Duration(*d) * time.Second
	}

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	// Convert milliseconds to time.Duration
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Chain.ReceiptPollInterval = time.Duration(config.Chain.ReceiptPollInterval) * time.Millisecond
}

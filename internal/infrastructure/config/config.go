package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Saga        SagaConfig     `mapstructure:"saga"`
	Chain       ChainConfig    `mapstructure:"chain"`
	Exchange    ExchangeConfig `mapstructure:"exchange"`
	Market      MarketConfig   `mapstructure:"market"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
	// File enables a rotating log file next to Output
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"maxSizeMb"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
}

// SagaConfig contains trade saga settings
type SagaConfig struct {
	PullTimeout      time.Duration `mapstructure:"pullTimeout"`  // seconds
	OrderTimeout     time.Duration `mapstructure:"orderTimeout"` // seconds
	LockTTL          time.Duration `mapstructure:"lockTtl"`      // seconds
	SellFloorPrice   string        `mapstructure:"sellFloorPrice"`
	QueueSize        int           `mapstructure:"queueSize"`
	QueueIdleTimeout time.Duration `mapstructure:"queueIdleTimeout"` // seconds
	PositionWorkers  int           `mapstructure:"positionWorkers"`
}

// ChainConfig contains settings for pulling funds on chain
type ChainConfig struct {
	RPCURL              string        `mapstructure:"rpcUrl"`
	ChainID             int64         `mapstructure:"chainId"`
	OperatorPrivateKey  string        `mapstructure:"operatorPrivateKey"`
	SpendManagerAddress string        `mapstructure:"spendManagerAddress"`
	TokenAddress        string        `mapstructure:"tokenAddress"`
	GasLimit            uint64        `mapstructure:"gasLimit"`
	ReceiptPollInterval time.Duration `mapstructure:"receiptPollInterval"` // milliseconds
}

// ExchangeConfig contains CLOB exchange settings
type ExchangeConfig struct {
	BaseURL       string        `mapstructure:"baseUrl"`
	ChainID       int64         `mapstructure:"chainId"`
	PrivateKey    string        `mapstructure:"privateKey"`
	FunderAddress string        `mapstructure:"funderAddress"`
	SignatureType int           `mapstructure:"signatureType"`
	APIKey        string        `mapstructure:"apiKey"`
	APISecret     string        `mapstructure:"apiSecret"`
	APIPassphrase string        `mapstructure:"apiPassphrase"`
	Timeout       time.Duration `mapstructure:"timeout"` // seconds
	RateLimit     float64       `mapstructure:"rateLimit"`
	RateBurst     int           `mapstructure:"rateBurst"`
}

// MarketConfig contains market metadata API settings
type MarketConfig struct {
	BaseURL   string        `mapstructure:"baseUrl"`
	Timeout   time.Duration `mapstructure:"timeout"`  // seconds
	CacheTTL  time.Duration `mapstructure:"cacheTtl"` // seconds
	RateLimit float64       `mapstructure:"rateLimit"`
	RateBurst int           `mapstructure:"rateBurst"`
}

// RedisConfig contains position cache settings
type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	URL         string        `mapstructure:"url"`
	KeyPrefix   string        `mapstructure:"keyPrefix"`
	PositionTTL time.Duration `mapstructure:"positionTtl"` // seconds
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled             bool          `mapstructure:"enabled"`
	Path                string        `mapstructure:"path"`
	PoolMonitorInterval time.Duration `mapstructure:"poolMonitorInterval"` // seconds
}

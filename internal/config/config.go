package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	BaseURL            string        `envconfig:"GEMINI_BASE_URL" default:"https://api.sandbox.gemini.com"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	MinRequestInterval time.Duration `envconfig:"MIN_REQUEST_INTERVAL" default:"1s"` // the exchange's public rate limit
	MaxRetries         int           `envconfig:"MAX_RETRIES" default:"0"`
	MaxRetryTime       time.Duration `envconfig:"MAX_RETRY_TIME" default:"30s"`
	SettlementCurrency string        `envconfig:"SETTLEMENT_CURRENCY" default:"BTC"`
	InsecureSkipVerify bool          `envconfig:"INSECURE_SKIP_VERIFY" default:"false"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the client cannot work with
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("GEMINI_BASE_URL must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.MinRequestInterval < 0 {
		return fmt.Errorf("MIN_REQUEST_INTERVAL must not be negative, got %s", c.MinRequestInterval)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("MAX_RETRIES must not be negative, got %d", c.MaxRetries)
	}
	if c.SettlementCurrency == "" {
		return fmt.Errorf("SETTLEMENT_CURRENCY must not be empty")
	}
	return nil
}

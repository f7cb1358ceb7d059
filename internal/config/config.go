package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`

	PlayerName        string `validate:"required"`
	PlayerLevel       int
	StartingGold      decimal.Decimal
	InventoryCapacity int `validate:"min=1,max=100"`
	SellRatio         decimal.Decimal

	CatalogPath string `validate:"required"`
	MetricsAddr string `validate:"omitempty,hostname_port"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		PlayerName:  getEnv(EnvPlayerName, DefaultPlayerName),
		CatalogPath: getEnv(EnvCatalogPath, ConfigPathCatalog),
		MetricsAddr: getEnv(EnvMetricsAddr, ""),
	}

	var err error
	if cfg.PlayerLevel, err = getInt(EnvPlayerLevel, DefaultPlayerLevel); err != nil {
		return nil, err
	}
	if cfg.InventoryCapacity, err = getInt(EnvInventoryCapacity, DefaultInventoryCapacity); err != nil {
		return nil, err
	}
	if cfg.StartingGold, err = getDecimal(EnvStartingGold, DefaultStartingGold); err != nil {
		return nil, err
	}
	if cfg.SellRatio, err = getDecimal(EnvSellRatio, DefaultSellRatio); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidIntFmt, key, err)
	}
	return n, nil
}

func getDecimal(key, defaultValue string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgInvalidDecimalFmt, key, err)
	}
	return d, nil
}

// MetricsEnabled reports whether the metrics server should be started
func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}

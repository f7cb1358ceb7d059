package config

// Environment variable names
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvPlayerName        = "PLAYER_NAME"
	EnvPlayerLevel       = "PLAYER_LEVEL"
	EnvStartingGold      = "STARTING_GOLD"
	EnvInventoryCapacity = "INVENTORY_CAPACITY"
	EnvSellRatio         = "SELL_RATIO"
	EnvCatalogPath       = "CATALOG_PATH"
	EnvMetricsAddr       = "METRICS_ADDR"
)

// Defaults applied when a variable is unset
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultPlayerName        = "Summoner"
	DefaultPlayerLevel       = "18"
	DefaultStartingGold      = "10000"
	DefaultInventoryCapacity = "6"
	DefaultSellRatio         = "0.8"

	// ConfigPathCatalog is the starter shop shipped with the repository
	ConfigPathCatalog = "configs/catalog.json"
)

// Error messages
const (
	ErrMsgInvalidIntFmt     = "invalid %s value: %w"
	ErrMsgInvalidDecimalFmt = "invalid %s value: %w"
	ErrMsgInvalidConfigFmt  = "invalid configuration: %s"
	ErrMsgNegativeGold      = "STARTING_GOLD must not be negative"
	ErrMsgSellRatioRange    = "SELL_RATIO must be greater than 0 and at most 1"
)

package main

import (
	"github.com/osse101/shopkeep/internal/config"
	"github.com/osse101/shopkeep/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations are only useful while developing
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		Version,
		cfg.Environment,
		addSource,
	))
}

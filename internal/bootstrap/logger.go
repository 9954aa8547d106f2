package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/BattleItems_Go/internal/config"
	"github.com/osse101/BattleItems_Go/internal/logger"
)

// SetupLogger installs the configured logger on w and reports any configuration warnings
func SetupLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(cfg.LoggerConfig(), w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"catalog_path", cfg.CatalogPath,
		"species_path", cfg.SpeciesPath,
		"battle_seed", cfg.BattleSeed)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/osse101/BattleItems_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"oneof=dev test staging production"`
	ServiceName string `validate:"required"`
	Version     string

	// Empty paths select the embedded defaults
	CatalogPath string `validate:"omitempty,filepath"`
	SpeciesPath string `validate:"omitempty,filepath"`

	// BattleSeed fixes the battle RNG; empty means a fresh seed per battle
	BattleSeed string
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: strings.ToLower(getEnv(EnvEnvironment, DefaultEnvironment)),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		CatalogPath: getEnv(EnvCatalogPath, ""),
		SpeciesPath: getEnv(EnvSpeciesPath, ""),
		BattleSeed:  getEnv(EnvBattleSeed, ""),
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

// LoggerConfig maps the configuration onto the logger's settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		ServiceName: c.ServiceName,
		Version:     c.Version,
		Environment: c.Environment,
		AddSource:   c.Environment == EnvironmentDev,
	}
}

// IsProduction reports whether the configuration targets production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

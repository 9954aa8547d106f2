package config

// Environment variable keys
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvCatalogPath = "HELD_ITEM_CATALOG_PATH"
	EnvSpeciesPath = "SPECIES_TABLE_PATH"
	EnvBattleSeed  = "BATTLE_SEED"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "battle-items"
	DefaultVersion     = "dev"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentTest       = "test"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Validation messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
	ErrFmtFieldOneOf    = "%s must be one of [%s], got %q"
	ErrFmtFieldRequired = "%s is required"
	ErrFmtFieldInvalid  = "%s is invalid"
)

// Warning messages
const (
	WarnMsgDebugInProduction = "LOG_LEVEL is debug in production - every applied held item will be logged"
	WarnMsgTextInProduction  = "LOG_FORMAT is text in production - structured collectors expect json"
	WarnMsgFixedSeed         = "BATTLE_SEED is set outside test - every battle will roll the same numbers"
)

package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for config loading
const (
	LogMsgLoadingCatalog = "Loading held item catalog"
	LogMsgCatalogLoaded  = "Held item catalog loaded"
	LogMsgLoadingSpecies = "Loading species table"
	LogMsgSpeciesLoaded  = "Species table loaded"

	SourceEmbedded = "embedded"
)

// Error messages for config loading
const (
	ErrMsgFailedLoadCatalog = "failed to load held item catalog"
	ErrMsgFailedLoadSpecies = "failed to load species table"
)

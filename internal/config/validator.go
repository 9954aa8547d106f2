package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// envKeys maps Config fields to the variables they are read from, for error messages
var envKeys = map[string]string{
	"LogLevel":    EnvLogLevel,
	"LogFormat":   EnvLogFormat,
	"Environment": EnvEnvironment,
	"ServiceName": EnvServiceName,
	"CatalogPath": EnvCatalogPath,
	"SpeciesPath": EnvSpeciesPath,
}

// Validate checks every field and reports all failures at once, named by environment variable
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		key, ok := envKeys[e.Field()]
		if !ok {
			key = e.Field()
		}
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldOneOf, key, strings.ReplaceAll(e.Param(), " ", ", "), e.Value()))
		case "required":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldRequired, key))
		default:
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldInvalid, key))
		}
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings returns non-fatal findings about a valid configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.IsProduction() && c.LogLevel == "debug" {
		warnings = append(warnings, WarnMsgDebugInProduction)
	}
	if c.IsProduction() && c.LogFormat == "text" {
		warnings = append(warnings, WarnMsgTextInProduction)
	}
	if c.BattleSeed != "" && c.Environment != EnvironmentTest {
		warnings = append(warnings, WarnMsgFixedSeed)
	}

	return warnings
}

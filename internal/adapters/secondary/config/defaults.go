package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// Environment variables read by ApplyEnvVars
const (
	EnvOutput         = "DECKGEN_OUTPUT"
	EnvFormat         = "DECKGEN_FORMAT"
	EnvAuthor         = "DECKGEN_AUTHOR"
	EnvCompany        = "DECKGEN_COMPANY"
	EnvColorPrimary   = "DECKGEN_COLOR_PRIMARY"
	EnvColorSecondary = "DECKGEN_COLOR_SECONDARY"
	EnvColorAccent    = "DECKGEN_COLOR_ACCENT"
	EnvColorText      = "DECKGEN_COLOR_TEXT"
	EnvLogLevel       = "DECKGEN_LOG_LEVEL"
	EnvLogJSON        = "DECKGEN_LOG_JSON"
	EnvLogFile        = "DECKGEN_LOG_FILE"
)

// GetDefaultConfig returns the built-in configuration. It reproduces the
// stock deck exactly; environment overrides are applied later by the merger.
func GetDefaultConfig() *entities.Config {
	colors := entities.DefaultColorScheme()

	return &entities.Config{
		Output: entities.OutputConfig{
			Path:   entities.DefaultOutputPath,
			Format: string(entities.FormatPowerPoint),
		},
		Style: entities.StyleConfig{
			Primary:    colors.Primary.String(),
			Secondary:  colors.Secondary.String(),
			Accent:     colors.Accent.String(),
			Text:       colors.Text.String(),
			Typography: entities.DefaultTypography(),
			Spacing:    entities.DefaultSpacing(),
		},
		Metadata: entities.Metadata{
			Author:  "",
			Company: "",
		},
		Logging: entities.LoggingConfig{
			Level:      string(entities.LogLevelInfo),
			Verbose:    false,
			JSONFormat: false,
			File:       "",
		},
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

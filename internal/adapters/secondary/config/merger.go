package config

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	// Start with first config as base
	result := deepCopy(configs[0])
	if result == nil {
		result = GetDefaultConfig()
	}

	// Merge subsequent configs
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if output, ok := flags["output"].(string); ok && output != "" {
		result.Output.Path = output
	}

	if format, ok := flags["format"].(string); ok && format != "" {
		result.Output.Format = format
	}

	if author, ok := flags["author"].(string); ok && author != "" {
		result.Metadata.Author = author
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return result
}

// ApplyEnvVars applies environment variable overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := deepCopy(config)

	// Output
	result.Output.Path = getEnvOrDefault(EnvOutput, result.Output.Path)
	result.Output.Format = getEnvOrDefault(EnvFormat, result.Output.Format)

	// Palette
	result.Style.Primary = getEnvOrDefault(EnvColorPrimary, result.Style.Primary)
	result.Style.Secondary = getEnvOrDefault(EnvColorSecondary, result.Style.Secondary)
	result.Style.Accent = getEnvOrDefault(EnvColorAccent, result.Style.Accent)
	result.Style.Text = getEnvOrDefault(EnvColorText, result.Style.Text)

	// Metadata
	result.Metadata.Author = getEnvOrDefault(EnvAuthor, result.Metadata.Author)
	result.Metadata.Company = getEnvOrDefault(EnvCompany, result.Metadata.Company)

	// Logging
	result.Logging.Level = getEnvOrDefault(EnvLogLevel, result.Logging.Level)
	result.Logging.JSONFormat = getEnvBoolOrDefault(EnvLogJSON, result.Logging.JSONFormat)
	result.Logging.File = getEnvOrDefault(EnvLogFile, result.Logging.File)

	return result
}

// mergeInto merges source configuration into target configuration
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	// Output config
	if source.Output.Path != "" {
		target.Output.Path = source.Output.Path
	}
	if source.Output.Format != "" {
		target.Output.Format = source.Output.Format
	}

	// Palette
	if source.Style.Primary != "" {
		target.Style.Primary = source.Style.Primary
	}
	if source.Style.Secondary != "" {
		target.Style.Secondary = source.Style.Secondary
	}
	if source.Style.Accent != "" {
		target.Style.Accent = source.Style.Accent
	}
	if source.Style.Text != "" {
		target.Style.Text = source.Style.Text
	}

	// Sizes and gaps: zero means unset. This is a TOML limitation; a gap
	// cannot be overridden to zero from a file.
	mergeInt(&target.Style.Typography.Title, source.Style.Typography.Title)
	mergeInt(&target.Style.Typography.Heading, source.Style.Typography.Heading)
	mergeInt(&target.Style.Typography.Body, source.Style.Typography.Body)
	mergeInt(&target.Style.Typography.Detail, source.Style.Typography.Detail)
	mergeInt(&target.Style.Typography.Emphasis, source.Style.Typography.Emphasis)
	mergeInt(&target.Style.Typography.CoverTitle, source.Style.Typography.CoverTitle)
	mergeInt(&target.Style.Typography.CoverSubtitle, source.Style.Typography.CoverSubtitle)
	mergeInt(&target.Style.Typography.CoverDate, source.Style.Typography.CoverDate)
	mergeInt(&target.Style.Typography.ClosingTitle, source.Style.Typography.ClosingTitle)
	mergeInt(&target.Style.Typography.ClosingSubtitle, source.Style.Typography.ClosingSubtitle)
	mergeInt(&target.Style.Spacing.List, source.Style.Spacing.List)
	mergeInt(&target.Style.Spacing.Item, source.Style.Spacing.Item)
	mergeInt(&target.Style.Spacing.Group, source.Style.Spacing.Group)
	mergeInt(&target.Style.Spacing.Section, source.Style.Spacing.Section)
	mergeInt(&target.Style.Spacing.Quote, source.Style.Spacing.Quote)

	// Metadata config
	if source.Metadata.Author != "" {
		target.Metadata.Author = source.Metadata.Author
	}
	if source.Metadata.Company != "" {
		target.Metadata.Company = source.Metadata.Company
	}

	// Logging config; booleans can only be switched on by a later file
	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	if source.Logging.File != "" {
		target.Logging.File = source.Logging.File
	}
	if source.Logging.Verbose {
		target.Logging.Verbose = true
	}
	if source.Logging.JSONFormat {
		target.Logging.JSONFormat = true
	}
}

func mergeInt(target *int, source int) {
	if source != 0 {
		*target = source
	}
}

// deepCopy creates a copy of a configuration; every section is a plain value
func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return nil
	}
	dst := *src
	return &dst
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)

package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputPath is where the deck is written when nothing overrides it
const DefaultOutputPath = "/vercel/sandbox/Cloud_Security_Presentation.pptx"

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig  `toml:"output"`
	Style    StyleConfig   `toml:"style"`
	Metadata Metadata      `toml:"metadata"`
	Logging  LoggingConfig `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("style config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// OutputConfig contains the export target
type OutputConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// Validate validates output configuration
func (o OutputConfig) Validate() error {
	if o.Path == "" {
		return errors.New("output path cannot be empty")
	}

	if o.Format != "" && !ExportFormat(o.Format).IsValid() {
		return fmt.Errorf("unsupported output format: %s", o.Format)
	}

	return nil
}

// GetFormat returns the output format with default
func (o OutputConfig) GetFormat() ExportFormat {
	if o.Format == "" {
		return FormatPowerPoint
	}
	return ExportFormat(o.Format)
}

// StyleConfig contains the deck palette and sizes as written in config files
type StyleConfig struct {
	Primary    string     `toml:"primary"`
	Secondary  string     `toml:"secondary"`
	Accent     string     `toml:"accent"`
	Text       string     `toml:"text"`
	Typography Typography `toml:"typography"`
	Spacing    Spacing    `toml:"spacing"`
}

// Validate validates style configuration
func (s StyleConfig) Validate() error {
	_, err := s.ToStyle()
	return err
}

// ToStyle converts the configured values into an immutable Style
func (s StyleConfig) ToStyle() (Style, error) {
	var scheme ColorScheme
	colors := []struct {
		name  string
		value string
		dst   *RGB
	}{
		{"primary", s.Primary, &scheme.Primary},
		{"secondary", s.Secondary, &scheme.Secondary},
		{"accent", s.Accent, &scheme.Accent},
		{"text", s.Text, &scheme.Text},
	}

	for _, c := range colors {
		parsed, err := ParseRGB(c.value)
		if err != nil {
			return Style{}, fmt.Errorf("%s color: %w", c.name, err)
		}
		*c.dst = parsed
	}

	style := Style{
		Colors:     scheme,
		Typography: s.Typography,
		Spacing:    s.Spacing,
	}

	if err := style.Validate(); err != nil {
		return Style{}, err
	}

	return style, nil
}

// Metadata contains document property defaults
type Metadata struct {
	Author  string `toml:"author"`
	Company string `toml:"company"`
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	Verbose    bool   `toml:"verbose"`     // Enable verbose logging
	JSONFormat bool   `toml:"json_format"` // Output logs in JSON format
	File       string `toml:"file"`        // Log to file (optional)
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}

	if l.File != "" {
		if !filepath.IsAbs(l.File) {
			return errors.New("log file path must be absolute")
		}

		dir := filepath.Dir(l.File)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("log file directory does not exist: %s", dir)
		}
	}

	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Verbose {
		return LogLevelDebug
	}
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/config"
	"github.com/fredcamaral/deckgen/internal/adapters/secondary/logging"
	"github.com/fredcamaral/deckgen/internal/decks"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/services"
)

// overrideFlags are the flags that map onto configuration keys
var overrideFlags = []string{"output", "format", "author"}

// loadConfig resolves the effective configuration for a command
func loadConfig(cmd *cobra.Command) (*entities.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	flags := make(map[string]interface{})
	for _, name := range overrideFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[name] = f.Value.String()
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		flags["verbose"] = true
	}

	configService := services.NewConfigService(config.NewTOMLLoader(), config.NewConfigMerger())
	cfg, err := configService.LoadConfig(cmd.Context(), workingDir, configPath, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}

// session is what every deck command needs once configuration is resolved
type session struct {
	cfg    *entities.Config
	style  entities.Style
	source *decks.CloudSecurity
	logger *slog.Logger
	close  func() error
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	style, err := cfg.Style.ToStyle()
	if err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		slog.String("output", cfg.Output.Path),
		slog.String("format", string(cfg.Output.GetFormat())),
	)

	return &session{
		cfg:    cfg,
		style:  style,
		source: decks.NewCloudSecurity(cfg.Metadata.Author).WithCompany(cfg.Metadata.Company),
		logger: logger,
		close:  closeLog,
	}, nil
}

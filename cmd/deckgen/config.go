package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/config"
	"github.com/fredcamaral/deckgen/internal/domain/services"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file holding the defaults",
		Long: `Write the default configuration as TOML. Without --path the global
file ~/.config/deckgen/config.toml is written. An existing file is never
overwritten.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	initCmd.Flags().String("path", "", "Where to write the file (default: the global config file)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)

	return configCmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")

	loader := config.NewTOMLLoader()
	if path == "" {
		path = loader.GetGlobalPath()
	}

	configService := services.NewConfigService(loader, config.NewConfigMerger())
	if err := configService.CreateConfig(cmd.Context(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return config.Encode(cmd.OutOrStdout(), cfg)
}

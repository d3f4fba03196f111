package main

import (
	"github.com/spf13/cobra"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/export"
	"github.com/fredcamaral/deckgen/internal/domain/services"
)

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline",
		Short: "Print the deck definition as YAML",
		Long: `Print every slide of the deck, with its layout, text, sizes and colors,
as YAML on standard output. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: runOutline,
	}
}

func runOutline(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.close() }()

	deck, err := services.NewDeckService(s.source, nil, nil, s.logger).Outline(s.style)
	if err != nil {
		return err
	}

	return export.EncodeYAML(cmd.OutOrStdout(), deck)
}

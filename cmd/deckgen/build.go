package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/export"
	"github.com/fredcamaral/deckgen/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/services"
)

func newBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the deck to disk",
		Long: `Build the deck and write it to the configured output path.

The output file is replaced atomically; its directory must already exist.
PowerPoint output is read back after writing to check the slide count.`,
		Example: `  deckgen build
  deckgen build -o ./Cloud_Security.pptx
  deckgen build -f html -o ./handout.html`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	buildCmd.Flags().StringP("output", "o", "", "Output path (overrides config)")
	buildCmd.Flags().StringP("format", "f", "", "Output format: pptx, markdown, html or yaml (overrides config)")
	buildCmd.Flags().String("author", "", "Author recorded in the document properties")

	return buildCmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.close() }()

	deckService := services.NewDeckService(s.source, export.NewService(s.logger), pptx.NewInspector(), s.logger)

	result, err := deckService.Build(cmd.Context(), s.style, &entities.ExportOptions{
		Format:     s.cfg.Output.GetFormat(),
		OutputPath: s.cfg.Output.Path,
	})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result *entities.ExportResult) {
	if result.Format == string(entities.FormatPowerPoint) {
		fmt.Fprintf(w, "✅ PowerPoint presentation created successfully: %s\n", result.OutputPath)
	} else {
		fmt.Fprintf(w, "✅ Deck exported as %s: %s\n", result.Format, result.OutputPath)
	}
	fmt.Fprintf(w, "📊 Total slides: %d\n", result.SlideCount)
}

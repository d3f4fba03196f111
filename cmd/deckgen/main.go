package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

func main() {
	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, stopping...")
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root command without a
// subcommand builds the deck.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate the Cloud Security slide deck",
		Long: `deckgen writes a twelve slide presentation about cloud security as a
PowerPoint file. The same deck can be exported as a Markdown or HTML
handout, or dumped as YAML.

Settings come from ~/.config/deckgen/config.toml, ./deckgen.toml,
DECKGEN_* environment variables and flags, in that order.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBuild,
	}

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ./deckgen.toml)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newOutlineCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

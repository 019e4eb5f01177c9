package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/screenflow"
	"github.com/aretw0/screenflow/internal/logging"
	"github.com/aretw0/screenflow/pkg/adapters/scripted"
	"github.com/aretw0/screenflow/pkg/definition"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	var level string
	rootCmd := &cobra.Command{
		Use:   "screenflow",
		Short: "Screenflow inspects and simulates screen graphs",
		Long: `Screenflow loads a screen graph definition (YAML, TOML or JSON), validates it,
renders it as a Mermaid diagram and drives it with scripted screens.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(level)
			if err != nil {
				return err
			}
			slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), lvl))
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&level, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newValidateCmd(),
		newGraphCmd(),
		newDescribeCmd(),
		newExportCmd(),
		newWalkCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadFlow reads a definition and registers it on a builder backed by a fresh
// scripted catalog.
func loadFlow(path string) (*scripted.Catalog, *screenflow.Builder, error) {
	def, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	catalog := scripted.NewCatalog()
	b := def.Builder(catalog)
	if err := b.Err(); err != nil {
		return nil, nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	slog.Debug("definition loaded", "path", path, "screens", len(def.Screens), "start", def.Start)
	return catalog, b, nil
}

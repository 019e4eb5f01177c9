package main

import (
	"fmt"

	"github.com/aretw0/screenflow/internal/presentation/tui"
	"github.com/aretw0/screenflow/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <definition>",
		Short: "Check the graph for consistency",
		Long: `Crawls the graph from its starting screen and reports edges to unregistered
screens, dead ends and unreachable screens. Only broken edges fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := validator.Validate(b.Inspect())
			for _, name := range report.DeadEnds {
				fmt.Fprintf(out, "dead end: %s\n", name)
			}
			for _, name := range report.Unreachable {
				fmt.Fprintf(out, "unreachable: %s\n", name)
			}
			if err := report.Err(); err != nil {
				fmt.Fprintln(out, tui.Status(out, false, "Graph is invalid"))
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(out, tui.Status(out, true, "Graph is valid"))
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/aretw0/screenflow/internal/presentation/tui"
	"github.com/aretw0/screenflow/internal/validator"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	var banner bool
	cmd := &cobra.Command{
		Use:   "describe <definition>",
		Short: "Summarize the screen graph",
		Long:  `Prints a table of screens with their kinds and successors followed by the validation report.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if banner {
				tui.PrintBanner(out)
			}

			g := b.Inspect()
			rendered, err := tui.NewRenderer(out)(tui.DescribeMarkdown(g, validator.Validate(g)))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", false, "Print the banner first")
	return cmd
}

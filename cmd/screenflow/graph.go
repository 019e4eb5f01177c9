package main

import (
	"fmt"

	"github.com/aretw0/screenflow/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <definition>",
		Short: "Export the screen graph visualization",
		Long:  `Outputs a Mermaid diagram (graph TD) of the screens and their successors.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(b.Inspect(), nil))
			return nil
		},
	}
}

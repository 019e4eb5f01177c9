package main

import (
	"github.com/aretw0/screenflow/pkg/definition"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <definition>",
		Short: "Re-encode a definition in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}
			return definition.FromGraph(b.Inspect()).Encode(cmd.OutOrStdout(), definition.Format(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "Output format (yaml, toml, json)")
	return cmd
}

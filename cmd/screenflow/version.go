package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/screenflow"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of screenflow",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "screenflow version %s\n", strings.TrimSpace(screenflow.Version))
		},
	}
}

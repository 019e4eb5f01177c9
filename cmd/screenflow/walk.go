package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/screenflow"
	"github.com/aretw0/screenflow/internal/presentation/graph"
	"github.com/aretw0/screenflow/pkg/adapters/scripted"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/spf13/cobra"
)

func newWalkCmd() *cobra.Command {
	var (
		choices []int
		steps   int
		mermaid bool
	)
	cmd := &cobra.Command{
		Use:   "walk <definition>",
		Short: "Simulate the flow with scripted screens",
		Long: `Drives the graph from its starting screen. Every transition screen finishes
immediately and choice screens consume the --choices list in order. The walk stops
at a screen without successor, when the choices run out or after --steps advances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, b, err := loadFlow(args[0])
			if err != nil {
				return err
			}

			ctrl, err := b.Build(screenflow.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			walked, walkErr := scripted.Walk(cmd.Context(), ctrl, choices, steps)
			for _, s := range walked {
				line := fmt.Sprintf("%s -> %s", s.From, s.To)
				if s.Choice != domain.NoChoice {
					line = fmt.Sprintf("%s -[%d]-> %s", s.From, s.Choice, s.To)
				}
				if s.Reset {
					line += " (reset)"
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "stopped at %s after %d steps\n", ctrl.CurrentName(), len(walked))

			if mermaid {
				fmt.Fprint(out, graph.GenerateMermaid(ctrl.Inspect(), &graph.GraphOverlay{
					UsedScreens:   ctrl.Used(),
					CurrentScreen: ctrl.CurrentName(),
				}))
			}

			if err := ctrl.Dispose(cmd.Context()); err != nil {
				return err
			}
			for _, st := range catalog.Stats() {
				fmt.Fprintf(out, "%-12s %-10s resets=%d disposals=%d\n", st.Name, st.Kind, st.Resets, st.Disposals)
			}
			return walkErr
		},
	}
	cmd.Flags().IntSliceVar(&choices, "choices", nil, "Choice indices fed to choice screens, in order")
	cmd.Flags().IntVar(&steps, "steps", 50, "Maximum number of advances")
	cmd.Flags().BoolVar(&mermaid, "mermaid", false, "Print the graph with the walked path highlighted")
	return cmd
}

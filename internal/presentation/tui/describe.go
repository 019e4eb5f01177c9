package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/screenflow/internal/validator"
	"github.com/aretw0/screenflow/pkg/domain"
)

// DescribeMarkdown summarizes a graph and its validation report as markdown.
func DescribeMarkdown(g domain.Graph, report validator.Report) string {
	var sb strings.Builder

	sb.WriteString("# Screen graph\n\n")
	fmt.Fprintf(&sb, "Starting screen: `%s`\n\n", g.Start)

	sb.WriteString("| Screen | Kind | Loaded | Successors |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, n := range g.Nodes {
		loaded := "yes"
		if !n.Materialized {
			loaded = "lazy"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", n.Name, n.Kind, loaded, successors(n))
	}

	sb.WriteString("\n## Validation\n\n")
	if len(report.Broken) == 0 && len(report.DeadEnds) == 0 && len(report.Unreachable) == 0 {
		sb.WriteString("No problems found.\n")
		return sb.String()
	}
	for _, err := range report.Broken {
		fmt.Fprintf(&sb, "- **broken**: %s\n", err)
	}
	for _, name := range report.DeadEnds {
		fmt.Fprintf(&sb, "- dead end: `%s`\n", name)
	}
	for _, name := range report.Unreachable {
		fmt.Fprintf(&sb, "- unreachable: `%s`\n", name)
	}
	return sb.String()
}

func successors(n domain.Node) string {
	if len(n.Edges) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(n.Edges))
	for _, e := range n.Edges {
		if e.Choice == domain.NoChoice {
			parts = append(parts, e.To)
			continue
		}
		parts = append(parts, fmt.Sprintf("%d → %s", e.Choice, e.To))
	}
	return strings.Join(parts, ", ")
}

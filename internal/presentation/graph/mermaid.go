package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/screenflow/pkg/domain"
)

// GraphOverlay contains controller state to visualize on the graph.
type GraphOverlay struct {
	UsedScreens   []string
	CurrentScreen string
}

// GenerateMermaid produces a Mermaid flowchart from a graph snapshot.
// It applies semantic styling:
// - Start: ((Circle))
// - Choice: {Diamond}, with the choice index on each outgoing edge
// - Transition: [Rectangle]
// Screens still behind a factory get the "lazy" class and edges pointing at
// unregistered names end in a "missing" node.
// It also applies overlay styles (Used/Current) if provided.
func GenerateMermaid(g domain.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	known := make(map[string]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		known[node.Name] = true
	}

	var lazy []string
	missing := make(map[string]bool)
	var missingOrder []string

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.Name)

		opener, closer := "[", "]"
		switch {
		case node.Name == g.Start:
			opener, closer = "((", "))"
		case node.Kind == domain.KindChoice:
			opener, closer = "{", "}"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(node.Name), closer))
		if !node.Materialized {
			lazy = append(lazy, safeID)
		}

		for _, e := range node.Edges {
			safeTo := sanitizeMermaidID(e.To)
			if !known[e.To] && !missing[e.To] {
				missing[e.To] = true
				missingOrder = append(missingOrder, e.To)
			}
			if e.Choice == domain.NoChoice {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, safeTo))
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%d\" --> %s\n", safeID, e.Choice, safeTo))
		}
	}

	for _, name := range missingOrder {
		sb.WriteString(fmt.Sprintf("    %s[\"%s ?\"]\n", sanitizeMermaidID(name), escapeLabel(name)))
	}

	if len(lazy) > 0 || len(missingOrder) > 0 {
		sb.WriteString("\n    %% Graph Styles\n")
	}
	if len(lazy) > 0 {
		sb.WriteString("    classDef lazy stroke-dasharray: 5 5;\n")
		for _, id := range lazy {
			sb.WriteString(fmt.Sprintf("    class %s lazy;\n", id))
		}
	}
	if len(missingOrder) > 0 {
		sb.WriteString("    classDef missing fill:#ffcdd2,stroke:#c62828,color:#000;\n")
		for _, name := range missingOrder {
			sb.WriteString(fmt.Sprintf("    class %s missing;\n", sanitizeMermaidID(name)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef used fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		usedSet := make(map[string]bool)
		for _, name := range overlay.UsedScreens {
			safeID := sanitizeMermaidID(name)
			if !usedSet[safeID] && safeID != "" && name != overlay.CurrentScreen {
				usedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s used;\n", safeID))
			}
		}

		if overlay.CurrentScreen != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentScreen)))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

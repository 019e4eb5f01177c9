package registry

import (
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

// Describe builds a snapshot of both registries. A name present in both is reported
// once, as a transition screen, matching the controller's lookup order.
func Describe(transitions *TransitionRegistry, choices *ChoiceRegistry, start string) domain.Graph {
	edges := make(map[string][]domain.Edge)
	for _, e := range transitions.Edges() {
		edges[e.From] = append(edges[e.From], e)
	}

	graph := domain.Graph{Start: start}
	for _, name := range transitions.Names() {
		graph.Nodes = append(graph.Nodes, domain.Node{
			Name:         name,
			Kind:         domain.KindTransition,
			Materialized: transitions.Materialized(name),
			Edges:        edges[name],
		})
	}

	choiceEdges := make(map[string][]domain.Edge)
	for _, e := range choices.Edges() {
		choiceEdges[e.From] = append(choiceEdges[e.From], e)
	}
	for _, name := range choices.Names() {
		if transitions.Has(name) {
			continue
		}
		graph.Nodes = append(graph.Nodes, domain.Node{
			Name:         name,
			Kind:         domain.KindChoice,
			Materialized: choices.Materialized(name),
			Edges:        choiceEdges[name],
		})
	}

	sort.SliceStable(graph.Nodes, func(i, j int) bool { return graph.Nodes[i].Name < graph.Nodes[j].Name })
	return graph
}

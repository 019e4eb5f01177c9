package domain

// Edge is a directed link between two screens.
// Choice is NoChoice for transition edges.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Choice int    `json:"choice" yaml:"choice"`
}

// Node is the introspection view of a registered screen.
type Node struct {
	Name         string `json:"name" yaml:"name"`
	Kind         Kind   `json:"kind" yaml:"kind"`
	Materialized bool   `json:"materialized" yaml:"materialized"`
	Edges        []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Graph is a read-only snapshot of the screen graph.
type Graph struct {
	Start string `json:"start" yaml:"start"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Lookup returns the node registered under name.
func (g Graph) Lookup(name string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Edges flattens the outgoing edges of every node.
func (g Graph) Edges() []Edge {
	var out []Edge
	for _, n := range g.Nodes {
		out = append(out, n.Edges...)
	}
	return out
}

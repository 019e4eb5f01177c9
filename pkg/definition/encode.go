package definition

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/screenflow/pkg/domain"
	"gopkg.in/yaml.v3"
)

// FromGraph converts a graph snapshot back into a definition. Screens that were
// still pending factories are marked lazy.
func FromGraph(g domain.Graph) *Definition {
	def := &Definition{Start: g.Start, Screens: make([]Screen, 0, len(g.Nodes))}
	for _, n := range g.Nodes {
		s := Screen{Name: n.Name, Kind: n.Kind.String(), Lazy: !n.Materialized}
		for _, e := range n.Edges {
			if n.Kind == domain.KindChoice {
				s.Choices = append(s.Choices, ChoiceEdge{Choice: e.Choice, To: e.To})
				continue
			}
			s.Next = e.To
		}
		def.Screens = append(def.Screens, s)
	}
	return def
}

// Encode writes d to w in the given format.
func (d *Definition) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

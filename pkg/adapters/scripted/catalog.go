package scripted

import (
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

// Catalog creates scripted screens on demand and remembers them by name so a
// simulation can report on them afterwards.
type Catalog struct {
	opts        []Option
	transitions map[string]*Transition
	choices     map[string]*Choice
	created     []string
}

// NewCatalog creates a catalog whose screens all receive opts.
func NewCatalog(opts ...Option) *Catalog {
	return &Catalog{
		opts:        opts,
		transitions: make(map[string]*Transition),
		choices:     make(map[string]*Choice),
	}
}

// Transition returns a factory that creates and records a transition screen.
func (c *Catalog) Transition(name string) domain.TransitionFactory {
	return func() domain.TransitionScreen {
		t := NewTransition(name, c.opts...)
		c.transitions[name] = t
		c.created = append(c.created, name)
		return t
	}
}

// Choice returns a factory that creates and records a choice screen.
func (c *Catalog) Choice(name string) domain.ChoiceFactory {
	return func() domain.ChoiceScreen {
		ch := NewChoice(name, c.opts...)
		c.choices[name] = ch
		c.created = append(c.created, name)
		return ch
	}
}

// Created returns the names of the screens created so far, in creation order.
func (c *Catalog) Created() []string {
	return append([]string(nil), c.created...)
}

// Stats summarizes the lifecycle counters of one scripted screen.
type Stats struct {
	Name      string
	Kind      domain.Kind
	Resets    int
	Disposals int
}

// Stats returns counters for every created screen, sorted by name.
func (c *Catalog) Stats() []Stats {
	out := make([]Stats, 0, len(c.transitions)+len(c.choices))
	for name, t := range c.transitions {
		out = append(out, Stats{Name: name, Kind: domain.KindTransition, Resets: t.Resets(), Disposals: t.Disposals()})
	}
	for name, ch := range c.choices {
		out = append(out, Stats{Name: name, Kind: domain.KindChoice, Resets: ch.Resets(), Disposals: ch.Disposals()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

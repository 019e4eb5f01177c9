package registry

import (
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

type choiceKey struct {
	name   string
	choice int
}

// ChoiceRegistry stores choice screens and their successors keyed by choice index.
type ChoiceRegistry struct {
	screens slots[domain.ChoiceScreen]
	choices map[choiceKey]string
}

// NewChoiceRegistry creates an empty registry.
func NewChoiceRegistry() *ChoiceRegistry {
	return &ChoiceRegistry{
		screens: newSlots(func(s domain.ChoiceScreen) bool { return s == nil }),
		choices: make(map[choiceKey]string),
	}
}

// Add registers a materialized screen. The last write for a name wins.
func (r *ChoiceRegistry) Add(name string, screen domain.ChoiceScreen) {
	r.screens.add(name, screen)
}

// AddFactory registers a factory fired on the first Get of name.
func (r *ChoiceRegistry) AddFactory(name string, factory domain.ChoiceFactory) {
	r.screens.addFactory(name, factory)
}

// Has reports whether name is registered as an instance or a factory.
func (r *ChoiceRegistry) Has(name string) bool {
	return r.screens.has(name)
}

// Materialized reports whether name is held as an instance.
func (r *ChoiceRegistry) Materialized(name string) bool {
	return r.screens.materialized(name)
}

// Get returns the screen registered under name, materializing its factory if needed.
func (r *ChoiceRegistry) Get(name string) (domain.ChoiceScreen, error) {
	return r.screens.get(name)
}

// SetChoice records the successor selected when name finishes with choice.
func (r *ChoiceRegistry) SetChoice(name string, choice int, successor string) error {
	if !r.Has(name) {
		return &domain.ScreenError{Op: "set choice", Name: name, Choice: choice, Err: domain.ErrUnknownScreen}
	}
	r.choices[choiceKey{name: name, choice: choice}] = successor
	return nil
}

// SuccessorOf returns the successor recorded for the (name, choice) pair.
// Other choices of the same screen do not count.
func (r *ChoiceRegistry) SuccessorOf(name string, choice int) (string, error) {
	next, ok := r.choices[choiceKey{name: name, choice: choice}]
	if !ok {
		return "", &domain.ScreenError{Op: "successor", Name: name, Choice: choice, Err: domain.ErrNoSuccessor}
	}
	return next, nil
}

// Names returns every registered name in lexical order.
func (r *ChoiceRegistry) Names() []string {
	return r.screens.names()
}

// Instances returns a copy of the materialized screens.
func (r *ChoiceRegistry) Instances() map[string]domain.ChoiceScreen {
	return r.screens.snapshot()
}

// Edges returns the fan-out edges sorted by origin, then choice.
func (r *ChoiceRegistry) Edges() []domain.Edge {
	edges := make([]domain.Edge, 0, len(r.choices))
	for key, to := range r.choices {
		edges = append(edges, domain.Edge{From: key.name, To: to, Choice: key.choice})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].Choice < edges[j].Choice
	})
	return edges
}

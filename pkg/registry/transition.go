package registry

import (
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

// TransitionRegistry stores transition screens and their single successor.
type TransitionRegistry struct {
	screens    slots[domain.TransitionScreen]
	successors map[string]string
}

// NewTransitionRegistry creates an empty registry.
func NewTransitionRegistry() *TransitionRegistry {
	return &TransitionRegistry{
		screens:    newSlots(func(s domain.TransitionScreen) bool { return s == nil }),
		successors: make(map[string]string),
	}
}

// Add registers a materialized screen. The last write for a name wins.
func (r *TransitionRegistry) Add(name string, screen domain.TransitionScreen) {
	r.screens.add(name, screen)
}

// AddFactory registers a factory fired on the first Get of name.
func (r *TransitionRegistry) AddFactory(name string, factory domain.TransitionFactory) {
	r.screens.addFactory(name, factory)
}

// Has reports whether name is registered as an instance or a factory.
func (r *TransitionRegistry) Has(name string) bool {
	return r.screens.has(name)
}

// Materialized reports whether name is held as an instance.
func (r *TransitionRegistry) Materialized(name string) bool {
	return r.screens.materialized(name)
}

// Get returns the screen registered under name, materializing its factory if needed.
func (r *TransitionRegistry) Get(name string) (domain.TransitionScreen, error) {
	return r.screens.get(name)
}

// SetSuccessor records the screen that follows name. The successor itself may be
// registered later.
func (r *TransitionRegistry) SetSuccessor(name, successor string) error {
	if !r.Has(name) {
		return domain.NewScreenError("set successor", name, domain.ErrUnknownScreen)
	}
	r.successors[name] = successor
	return nil
}

// SuccessorOf returns the recorded successor of name.
func (r *TransitionRegistry) SuccessorOf(name string) (string, error) {
	next, ok := r.successors[name]
	if !ok {
		return "", domain.NewScreenError("successor", name, domain.ErrNoSuccessor)
	}
	return next, nil
}

// Names returns every registered name in lexical order.
func (r *TransitionRegistry) Names() []string {
	return r.screens.names()
}

// Instances returns a copy of the materialized screens.
func (r *TransitionRegistry) Instances() map[string]domain.TransitionScreen {
	return r.screens.snapshot()
}

// Edges returns the successor edges sorted by origin.
func (r *TransitionRegistry) Edges() []domain.Edge {
	edges := make([]domain.Edge, 0, len(r.successors))
	for from, to := range r.successors {
		edges = append(edges, domain.Edge{From: from, To: to, Choice: domain.NoChoice})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].From < edges[j].From })
	return edges
}

// Package registry stores named screens and the edges between them.
//
// Two registries exist, one per screen kind. Both keep a screen either as a
// materialized instance or as a pending factory; a factory fires on the first Get
// and its product replaces it for good. Edges may point at names that are not
// registered yet; only the edge's origin is checked when it is recorded.
//
// Registries are not safe for concurrent use. The controller that consumes them is
// driven from a single goroutine.
package registry

import (
	"sort"

	"github.com/aretw0/screenflow/pkg/domain"
)

// slots holds the instance/factory pair of maps shared by both registries.
// A name is present in at most one of the two maps.
type slots[S any] struct {
	instances map[string]S
	factories map[string]func() S
	isNil     func(S) bool
}

func newSlots[S any](isNil func(S) bool) slots[S] {
	return slots[S]{
		instances: make(map[string]S),
		factories: make(map[string]func() S),
		isNil:     isNil,
	}
}

func (s *slots[S]) add(name string, screen S) {
	delete(s.factories, name)
	s.instances[name] = screen
}

func (s *slots[S]) addFactory(name string, factory func() S) {
	delete(s.instances, name)
	s.factories[name] = factory
}

func (s *slots[S]) has(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := s.instances[name]; ok {
		return true
	}
	_, ok := s.factories[name]
	return ok
}

func (s *slots[S]) materialized(name string) bool {
	_, ok := s.instances[name]
	return ok
}

// get returns the instance, firing the pending factory at most once.
func (s *slots[S]) get(name string) (S, error) {
	if screen, ok := s.instances[name]; ok {
		return screen, nil
	}
	factory, ok := s.factories[name]
	if !ok {
		var zero S
		return zero, domain.NewScreenError("get", name, domain.ErrUnknownScreen)
	}

	screen := factory()
	if s.isNil(screen) {
		var zero S
		return zero, domain.NewScreenError("materialize", name, domain.ErrNilScreen)
	}
	delete(s.factories, name)
	s.instances[name] = screen
	return screen, nil
}

func (s *slots[S]) names() []string {
	names := make([]string, 0, len(s.instances)+len(s.factories))
	for name := range s.instances {
		names = append(names, name)
	}
	for name := range s.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *slots[S]) snapshot() map[string]S {
	out := make(map[string]S, len(s.instances))
	for name, screen := range s.instances {
		out[name] = screen
	}
	return out
}

package screenflow

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/aretw0/screenflow/pkg/registry"
)

// Builder collects screen registrations and edges, then produces a Controller.
//
// Every method is chainable. A rejected step is not applied and its error is
// recorded; Err returns what has been rejected so far and Build refuses to run
// while any error is pending. Steps accepted before a rejection stay applied.
type Builder struct {
	transitions      *registry.TransitionRegistry
	choices          *registry.ChoiceRegistry
	start            string
	rejectDuplicates bool
	errs             []error
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		transitions: registry.NewTransitionRegistry(),
		choices:     registry.NewChoiceRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds screen under name, dispatching on its capabilities: a screen that
// implements domain.ChoiceScreen is registered as a choice screen, anything else
// as a transition screen. Nil screens, typed nil pointers included, are rejected.
func (b *Builder) Register(name string, screen domain.Screen) *Builder {
	if isNilScreen(screen) {
		return b.record(domain.NewScreenError("register", name, domain.ErrNilScreen))
	}
	switch s := screen.(type) {
	case domain.ChoiceScreen:
		return b.RegisterChoice(name, s)
	default:
		return b.RegisterTransition(name, s)
	}
}

// RegisterTransition adds a materialized transition screen.
func (b *Builder) RegisterTransition(name string, screen domain.TransitionScreen) *Builder {
	if err := b.checkRegistration(name, domain.KindTransition, isNilScreen(screen)); err != nil {
		return b.record(err)
	}
	b.transitions.Add(name, screen)
	return b
}

// RegisterTransitionFactory adds a transition screen created on first use.
func (b *Builder) RegisterTransitionFactory(name string, factory domain.TransitionFactory) *Builder {
	if err := b.checkRegistration(name, domain.KindTransition, factory == nil); err != nil {
		return b.record(err)
	}
	b.transitions.AddFactory(name, factory)
	return b
}

// RegisterChoice adds a materialized choice screen.
func (b *Builder) RegisterChoice(name string, screen domain.ChoiceScreen) *Builder {
	if err := b.checkRegistration(name, domain.KindChoice, isNilScreen(screen)); err != nil {
		return b.record(err)
	}
	b.choices.Add(name, screen)
	return b
}

// RegisterChoiceFactory adds a choice screen created on first use.
func (b *Builder) RegisterChoiceFactory(name string, factory domain.ChoiceFactory) *Builder {
	if err := b.checkRegistration(name, domain.KindChoice, factory == nil); err != nil {
		return b.record(err)
	}
	b.choices.AddFactory(name, factory)
	return b
}

// SetSuccession makes to follow the transition screen from. The target may be
// registered later; it is resolved when the controller advances.
func (b *Builder) SetSuccession(from, to string) *Builder {
	if !b.transitions.Has(from) {
		return b.record(domain.NewScreenError("set succession", from, domain.ErrUnknownScreen))
	}
	if to == "" {
		return b.record(domain.NewScreenError("set succession", from, domain.ErrInvalidName))
	}
	if err := b.transitions.SetSuccessor(from, to); err != nil {
		return b.record(err)
	}
	return b
}

// Choice makes successor follow the choice screen when it finishes with index choice.
// The successor may be registered later.
func (b *Builder) Choice(choiceScreen, successor string, choice int) *Builder {
	if !b.choices.Has(choiceScreen) {
		return b.record(&domain.ScreenError{Op: "choice", Name: choiceScreen, Choice: choice, Err: domain.ErrUnknownScreen})
	}
	if choice < 0 {
		return b.record(&domain.ScreenError{Op: "choice", Name: choiceScreen, Choice: choice, Err: domain.ErrInvalidChoice})
	}
	if successor == "" {
		return b.record(&domain.ScreenError{Op: "choice", Name: choiceScreen, Choice: choice, Err: domain.ErrInvalidName})
	}
	if err := b.choices.SetChoice(choiceScreen, choice, successor); err != nil {
		return b.record(err)
	}
	return b
}

// WithStartingScreen sets the screen the controller activates first.
func (b *Builder) WithStartingScreen(name string) *Builder {
	if !b.IsRegistered(name) {
		return b.record(&domain.ScreenError{
			Op:     "starting screen",
			Name:   name,
			Choice: domain.NoChoice,
			Err:    domain.ErrUnknownStartingScreen,
			Cause:  domain.ErrUnknownScreen,
		})
	}
	b.start = name
	return b
}

// IsRegistered reports whether name is known to either registry.
func (b *Builder) IsRegistered(name string) bool {
	return b.transitions.Has(name) || b.choices.Has(name)
}

// KindOf returns the kind name is registered as, or domain.KindUnknown.
func (b *Builder) KindOf(name string) domain.Kind {
	switch {
	case b.transitions.Has(name):
		return domain.KindTransition
	case b.choices.Has(name):
		return domain.KindChoice
	default:
		return domain.KindUnknown
	}
}

// Screen returns the screen registered under name and its kind. A pending factory
// is materialized.
func (b *Builder) Screen(name string) (domain.Screen, domain.Kind, error) {
	switch b.KindOf(name) {
	case domain.KindTransition:
		s, err := b.transitions.Get(name)
		return s, domain.KindTransition, err
	case domain.KindChoice:
		s, err := b.choices.Get(name)
		return s, domain.KindChoice, err
	default:
		return nil, domain.KindUnknown, domain.NewScreenError("get", name, domain.ErrUnknownScreen)
	}
}

// ScreenOfKind returns the screen registered under name, failing with
// domain.ErrWrongScreenKind when it is registered as another kind.
func (b *Builder) ScreenOfKind(name string, kind domain.Kind) (domain.Screen, error) {
	s, actual, err := b.Screen(name)
	if err != nil {
		return nil, err
	}
	if actual != kind {
		return nil, &domain.ScreenError{
			Op:     "get",
			Name:   name,
			Choice: domain.NoChoice,
			Err:    domain.ErrWrongScreenKind,
			Cause:  fmt.Errorf("registered as %s, not %s", actual, kind),
		}
	}
	return s, nil
}

// Get returns the screen registered under name as a T.
// It fails with domain.ErrWrongScreenKind when the screen is not a T.
func Get[T domain.Screen](b *Builder, name string) (T, error) {
	var zero T
	s, _, err := b.Screen(name)
	if err != nil {
		return zero, err
	}
	typed, ok := s.(T)
	if !ok {
		return zero, &domain.ScreenError{
			Op:     "get",
			Name:   name,
			Choice: domain.NoChoice,
			Err:    domain.ErrWrongScreenKind,
			Cause:  fmt.Errorf("screen is of type %T, not %v", s, reflect.TypeOf((*T)(nil)).Elem()),
		}
	}
	return typed, nil
}

// Err returns every rejected step joined into one error, or nil.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// Inspect returns a snapshot of the graph registered so far.
func (b *Builder) Inspect() domain.Graph {
	return registry.Describe(b.transitions, b.choices, b.start)
}

// Build returns a controller bound to the builder's registries. Factories are not
// fired; the starting screen is materialized when the controller activates it.
func (b *Builder) Build(opts ...Option) (*Controller, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	if b.start == "" {
		return nil, domain.ErrMissingStartingScreen
	}
	return New(b.transitions, b.choices, b.start, opts...)
}

func (b *Builder) checkRegistration(name string, kind domain.Kind, isNil bool) error {
	if name == "" {
		return domain.NewScreenError("register", name, domain.ErrInvalidName)
	}
	if isNil {
		return domain.NewScreenError("register", name, domain.ErrNilScreen)
	}

	existing := b.KindOf(name)
	if existing == domain.KindUnknown {
		return nil
	}
	if existing != kind {
		return &domain.ScreenError{
			Op:     "register",
			Name:   name,
			Choice: domain.NoChoice,
			Err:    domain.ErrDuplicateScreen,
			Cause:  fmt.Errorf("already registered as %s", existing),
		}
	}
	if b.rejectDuplicates {
		return domain.NewScreenError("register", name, domain.ErrDuplicateScreen)
	}
	return nil
}

// isNilScreen reports whether screen is nil or an interface holding a nil pointer.
func isNilScreen(screen domain.Screen) bool {
	if screen == nil {
		return true
	}
	v := reflect.ValueOf(screen)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (b *Builder) record(err error) *Builder {
	b.errs = append(b.errs, err)
	return b
}

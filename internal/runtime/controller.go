package runtime

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/screenflow/internal/logging"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/aretw0/screenflow/pkg/registry"
	"github.com/google/uuid"
)

// active is the resolved handle of the current screen.
type active struct {
	name   string
	kind   domain.Kind
	screen domain.Screen
	choice domain.ChoiceScreen // set when kind == KindChoice
}

// Controller is the advance state machine. It holds exactly one active screen and
// moves to its successor when the screen reports completion.
//
// A Controller is not safe for concurrent use; hosts that share it across
// goroutines must serialize access.
type Controller struct {
	id          string
	transitions *registry.TransitionRegistry
	choices     *registry.ChoiceRegistry

	start    string
	current  active
	used     *ledger
	disposed bool

	disposeRegistered bool
	hooks             domain.LifecycleHooks
	logger            *slog.Logger
}

// NewController activates start and returns the controller. No Reset happens for the
// starting screen since nothing has been active yet.
func NewController(transitions *registry.TransitionRegistry, choices *registry.ChoiceRegistry, start string, opts ...Option) (*Controller, error) {
	c := &Controller{
		id:          uuid.NewString(),
		transitions: transitions,
		choices:     choices,
		start:       start,
		used:        newLedger(),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("controller", c.id)

	next, err := c.resolve(start)
	if err != nil {
		return nil, &domain.ScreenError{Op: "start", Name: start, Choice: domain.NoChoice, Err: domain.ErrUnknownStartingScreen, Cause: err}
	}
	c.activate(context.Background(), next)
	return c, nil
}

// ID returns the identifier attached to events and log records.
func (c *Controller) ID() string {
	return c.id
}

// CurrentName returns the name of the active screen.
func (c *Controller) CurrentName() string {
	return c.current.name
}

// CurrentKind returns the kind of the active screen.
func (c *Controller) CurrentKind() domain.Kind {
	return c.current.kind
}

// CurrentScreen resolves the active name through the registries, transition first.
func (c *Controller) CurrentScreen() (domain.Screen, error) {
	if c.disposed {
		return nil, domain.NewScreenError("current", c.current.name, domain.ErrInvalidState)
	}
	resolved, err := c.resolve(c.current.name)
	if err != nil {
		return nil, &domain.ScreenError{Op: "current", Name: c.current.name, Choice: domain.NoChoice, Err: domain.ErrInvalidState, Cause: err}
	}
	return resolved.screen, nil
}

// Used returns the names that have been active, in first-activation order.
func (c *Controller) Used() []string {
	return c.used.names()
}

// Advance polls the active screen and, when it has finished, switches to its
// successor. It reports whether the active screen changed.
//
// Advance is all-or-nothing: on error the active screen and the used set are
// left untouched.
func (c *Controller) Advance(ctx context.Context) (bool, error) {
	if c.disposed {
		return false, domain.NewScreenError("advance", c.current.name, domain.ErrInvalidState)
	}

	from, err := c.resolve(c.current.name)
	if err != nil {
		return false, c.fail(ctx, &domain.ScreenError{Op: "advance", Name: c.current.name, Choice: domain.NoChoice, Err: domain.ErrInvalidState, Cause: err})
	}

	if !from.screen.IsFinished() {
		return false, nil
	}

	choice := domain.NoChoice
	var nextName string
	switch from.kind {
	case domain.KindTransition:
		nextName, err = c.transitions.SuccessorOf(from.name)
	case domain.KindChoice:
		choice = from.choice.Choice()
		nextName, err = c.choices.SuccessorOf(from.name, choice)
	}
	if err != nil {
		return false, c.fail(ctx, err)
	}

	next, err := c.resolve(nextName)
	if err != nil {
		return false, c.fail(ctx, &domain.ScreenError{Op: "advance", Name: nextName, Choice: domain.NoChoice, Err: domain.ErrInvalidState, Cause: err})
	}

	c.emitLeave(ctx, from, choice, next.name)
	c.activate(ctx, next)
	return true, nil
}

// resolve looks name up in the transition registry first, then the choice registry,
// materializing a pending factory when needed.
func (c *Controller) resolve(name string) (active, error) {
	if c.transitions.Has(name) {
		screen, err := c.transitions.Get(name)
		if err != nil {
			return active{}, err
		}
		return active{name: name, kind: domain.KindTransition, screen: screen}, nil
	}
	if c.choices.Has(name) {
		screen, err := c.choices.Get(name)
		if err != nil {
			return active{}, err
		}
		return active{name: name, kind: domain.KindChoice, screen: screen, choice: screen}, nil
	}
	return active{}, domain.NewScreenError("resolve", name, domain.ErrUnknownScreen)
}

// activate commits next as the active screen, resetting it on re-entry.
func (c *Controller) activate(ctx context.Context, next active) {
	if c.used.has(next.name) {
		next.screen.Reset()
		c.logger.Debug("screen reset", "screen", next.name, "kind", next.kind)
		c.emitScreen(ctx, c.hooks.OnScreenReset, domain.EventScreenReset, next)
	}
	c.current = next
	c.used.add(next.name)
	c.logger.Debug("screen activated", "screen", next.name, "kind", next.kind)
	c.emitScreen(ctx, c.hooks.OnScreenEnter, domain.EventScreenEnter, next)
}

func (c *Controller) fail(ctx context.Context, err error) error {
	c.logger.Debug("advance failed", "screen", c.current.name, "err", err)
	if c.hooks.OnAdvanceFailed != nil {
		c.hooks.OnAdvanceFailed(ctx, &domain.FailureEvent{
			EventBase: c.eventBase(domain.EventAdvanceFailed),
			Screen:    c.current.name,
			Err:       err,
		})
	}
	return err
}

// Dispose disposes every screen that has been active, once, in activation order.
// Further calls are no-ops.
func (c *Controller) Dispose(ctx context.Context) error {
	if c.disposed {
		return nil
	}
	c.disposed = true

	var errs []error
	for _, name := range c.used.names() {
		resolved, err := c.resolve(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.dispose(ctx, resolved)
	}

	if c.disposeRegistered {
		c.disposeIdle(ctx)
	}

	c.logger.Debug("controller disposed", "screens", len(c.used.order))
	return errors.Join(errs...)
}

// disposeIdle disposes materialized screens that were never active.
func (c *Controller) disposeIdle(ctx context.Context) {
	for _, name := range c.transitions.Names() {
		if c.used.has(name) || !c.transitions.Materialized(name) {
			continue
		}
		screen, _ := c.transitions.Get(name)
		c.dispose(ctx, active{name: name, kind: domain.KindTransition, screen: screen})
	}
	for _, name := range c.choices.Names() {
		if c.used.has(name) || c.transitions.Has(name) || !c.choices.Materialized(name) {
			continue
		}
		screen, _ := c.choices.Get(name)
		c.dispose(ctx, active{name: name, kind: domain.KindChoice, screen: screen, choice: screen})
	}
}

func (c *Controller) dispose(ctx context.Context, target active) {
	target.screen.Dispose()
	c.logger.Debug("screen disposed", "screen", target.name)
	c.emitScreen(ctx, c.hooks.OnScreenDispose, domain.EventScreenDispose, target)
}

func (c *Controller) eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp:    time.Now(),
		Type:         t,
		ControllerID: c.id,
	}
}

func (c *Controller) emitScreen(ctx context.Context, hook func(context.Context, *domain.ScreenEvent), t domain.EventType, target active) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.ScreenEvent{
		EventBase: c.eventBase(t),
		Screen:    target.name,
		Kind:      target.kind,
		Choice:    domain.NoChoice,
	})
}

func (c *Controller) emitLeave(ctx context.Context, from active, choice int, next string) {
	if c.hooks.OnScreenLeave == nil {
		return
	}
	c.hooks.OnScreenLeave(ctx, &domain.ScreenEvent{
		EventBase: c.eventBase(domain.EventScreenLeave),
		Screen:    from.name,
		Kind:      from.kind,
		Choice:    choice,
		Next:      next,
	})
}

// Inspect returns a snapshot of the screen graph rooted at the starting screen.
func (c *Controller) Inspect() domain.Graph {
	return registry.Describe(c.transitions, c.choices, c.start)
}

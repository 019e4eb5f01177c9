package screenflow

import (
	"context"
	"fmt"

	"github.com/aretw0/screenflow/internal/logging"
	"github.com/aretw0/screenflow/internal/runtime"
	"github.com/aretw0/screenflow/internal/validator"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/aretw0/screenflow/pkg/registry"
)

// Controller holds the active screen of a screen graph and advances it.
// It wraps the internal runtime and is what drivers call every frame.
type Controller struct {
	runtime *runtime.Controller
}

// New creates a controller bound to the given registries and activates start.
// The registries are shared, not copied.
func New(transitions *registry.TransitionRegistry, choices *registry.ChoiceRegistry, start string, opts ...Option) (*Controller, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Ensure logger is initialized so the runtime keeps a usable default.
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	if cfg.strict {
		report := validator.Validate(registry.Describe(transitions, choices, start))
		if err := report.Err(); err != nil {
			return nil, fmt.Errorf("invalid screen graph: %w", err)
		}
		if len(report.Unreachable) > 0 {
			cfg.logger.Warn("unreachable screens", "screens", report.Unreachable)
		}
	}

	runtimeOpts := append([]runtime.Option{runtime.WithLogger(cfg.logger)}, cfg.runtimeOpts...)
	rt, err := runtime.NewController(transitions, choices, start, runtimeOpts...)
	if err != nil {
		return nil, err
	}

	return &Controller{runtime: rt}, nil
}

// CurrentScreen returns the handle the driver should render.
func (c *Controller) CurrentScreen() (domain.Screen, error) {
	return c.runtime.CurrentScreen()
}

// CurrentName returns the name of the active screen.
func (c *Controller) CurrentName() string {
	return c.runtime.CurrentName()
}

// CurrentKind returns the kind of the active screen.
func (c *Controller) CurrentKind() domain.Kind {
	return c.runtime.CurrentKind()
}

// Advance moves to the successor of the active screen if it has finished.
// It returns true when the active screen changed. On error nothing changes.
func (c *Controller) Advance(ctx context.Context) (bool, error) {
	return c.runtime.Advance(ctx)
}

// Dispose disposes every screen that has ever been active, exactly once.
func (c *Controller) Dispose(ctx context.Context) error {
	return c.runtime.Dispose(ctx)
}

// Used returns the names that have been active, in first-activation order.
func (c *Controller) Used() []string {
	return c.runtime.Used()
}

// ID returns the controller's correlation ID.
func (c *Controller) ID() string {
	return c.runtime.ID()
}

// Inspect returns the full graph definition for visualization or validation tools.
func (c *Controller) Inspect() domain.Graph {
	return c.runtime.Inspect()
}

package screenflow

import (
	"log/slog"

	"github.com/aretw0/screenflow/internal/runtime"
	"github.com/aretw0/screenflow/pkg/domain"
)

type config struct {
	strict      bool
	logger      *slog.Logger
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring a Controller.
type Option func(*config)

// WithLogger sets a custom structured logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.runtimeOpts = append(c.runtimeOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithDisposeRegistered makes Dispose also release materialized screens that never
// became active. By default their lifetime belongs to whoever registered them.
func WithDisposeRegistered() Option {
	return func(c *config) {
		c.runtimeOpts = append(c.runtimeOpts, runtime.WithDisposeRegistered())
	}
}

// WithID sets the controller ID used to correlate events and logs (default: random UUID).
func WithID(id string) Option {
	return func(c *config) {
		c.runtimeOpts = append(c.runtimeOpts, runtime.WithID(id))
	}
}

// Strict validates the whole graph before the controller is created: every edge
// must point at a registered screen.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// RejectDuplicates makes the builder refuse to register a name twice.
// Without it the last registration wins.
func RejectDuplicates() BuilderOption {
	return func(b *Builder) {
		b.rejectDuplicates = true
	}
}

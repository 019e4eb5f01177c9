package runtime

import (
	"log/slog"

	"github.com/aretw0/screenflow/pkg/domain"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger used for lifecycle diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithDisposeRegistered extends Dispose to materialized screens that never became active.
// Pending factories are still discarded without being fired.
func WithDisposeRegistered() Option {
	return func(c *Controller) {
		c.disposeRegistered = true
	}
}

// WithID overrides the generated controller ID.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

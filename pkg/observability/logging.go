package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/screenflow/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that write one structured record per event.
// Failures log at warn level, everything else at info.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	screen := func(msg string) func(context.Context, *domain.ScreenEvent) {
		return func(ctx context.Context, e *domain.ScreenEvent) {
			attrs := []any{"controller", e.ControllerID, "screen", e.Screen, "kind", e.Kind}
			if e.Choice != domain.NoChoice {
				attrs = append(attrs, "choice", e.Choice)
			}
			if e.Next != "" {
				attrs = append(attrs, "next", e.Next)
			}
			logger.InfoContext(ctx, msg, attrs...)
		}
	}
	return domain.LifecycleHooks{
		OnScreenEnter:   screen("screen_enter"),
		OnScreenLeave:   screen("screen_leave"),
		OnScreenReset:   screen("screen_reset"),
		OnScreenDispose: screen("screen_dispose"),
		OnAdvanceFailed: func(ctx context.Context, e *domain.FailureEvent) {
			logger.WarnContext(ctx, "advance_failed",
				"controller", e.ControllerID,
				"screen", e.Screen,
				"err", e.Err,
			)
		},
	}
}

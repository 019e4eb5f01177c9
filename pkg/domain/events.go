package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventScreenEnter   EventType = "screen_enter"
	EventScreenLeave   EventType = "screen_leave"
	EventScreenReset   EventType = "screen_reset"
	EventScreenDispose EventType = "screen_dispose"
	EventAdvanceFailed EventType = "advance_failed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp    time.Time `json:"timestamp"`
	Type         EventType `json:"type"`
	ControllerID string    `json:"controller_id"`
}

// ScreenEvent describes a lifecycle step of a single screen.
type ScreenEvent struct {
	EventBase
	Screen string `json:"screen"`
	Kind   Kind   `json:"kind"`
	// Choice is the index that led away from a choice screen on leave, NoChoice otherwise.
	Choice int `json:"choice"`
	// Next names the successor on leave events.
	Next string `json:"next,omitempty"`
}

// FailureEvent describes an advance that was rejected and left the controller unchanged.
type FailureEvent struct {
	EventBase
	Screen string `json:"screen"`
	Err    error  `json:"-"`
}

// LifecycleHooks defines callbacks for controller observability.
// Nil fields are skipped.
type LifecycleHooks struct {
	OnScreenEnter   func(context.Context, *ScreenEvent)
	OnScreenLeave   func(context.Context, *ScreenEvent)
	OnScreenReset   func(context.Context, *ScreenEvent)
	OnScreenDispose func(context.Context, *ScreenEvent)
	OnAdvanceFailed func(context.Context, *FailureEvent)
}

// CombineHooks fans every callback out to each of the given hook sets, in order.
func CombineHooks(sets ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range sets {
				if h.OnScreenEnter != nil {
					h.OnScreenEnter(ctx, e)
				}
			}
		},
		OnScreenLeave: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range sets {
				if h.OnScreenLeave != nil {
					h.OnScreenLeave(ctx, e)
				}
			}
		},
		OnScreenReset: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range sets {
				if h.OnScreenReset != nil {
					h.OnScreenReset(ctx, e)
				}
			}
		},
		OnScreenDispose: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range sets {
				if h.OnScreenDispose != nil {
					h.OnScreenDispose(ctx, e)
				}
			}
		},
		OnAdvanceFailed: func(ctx context.Context, e *FailureEvent) {
			for _, h := range sets {
				if h.OnAdvanceFailed != nil {
					h.OnAdvanceFailed(ctx, e)
				}
			}
		},
	}
}

/*
Package observability turns controller lifecycle events into logs and metrics.

Both LoggingHooks and Metrics.Hooks return domain.LifecycleHooks, so they can be
combined with domain.CombineHooks and passed to the controller with
screenflow.WithLifecycleHooks.
*/
package observability

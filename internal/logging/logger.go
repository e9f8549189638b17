// Package logging defines the structured-logging interface used across the
// project and its slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key–value
// pairs, e.g. log.Info(ctx, "server started", "port", port).
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

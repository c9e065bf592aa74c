// Package logging defines the structured-logging contract shared by every
// layer of the client and the stub backend, plus an slog-backed
// implementation.
package logging

import "context"

// Logger is a leveled, context-aware logger. Variadic args are key-value
// pairs, as in:
//
//	log.Warn(ctx, "sign-in failed", "email", masked, "error", err)
//
// With derives a child logger whose entries always carry the given pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Package logging defines the structured logging surface the server wires
// through its layers. SlogLogger is the production implementation; tests
// that need a logger use Nop.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// interpreted as alternating key and value pairs:
//
//	log.Info(ctx, "starting server", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

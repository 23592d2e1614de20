package logx

import (
	"context"

	"pkt.systems/pslog"
)

type contextKey int

const (
	sourceKey contextKey = iota
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSource annotates the logger with the markdown source path if present.
func WithSource(ctx context.Context, path string) pslog.Logger {
	log := pslog.Ctx(ctx)
	if path != "" {
		if current, ok := ctx.Value(sourceKey).(string); ok && current == path {
			return log
		}
		log = log.With("source", path)
	}
	return log
}

// WithOutput annotates the logger with the output document path when available.
func WithOutput(log pslog.Logger, path string) pslog.Logger {
	if path != "" {
		log = log.With("output", path)
	}
	return log
}

// WithLine annotates the logger with a one-based source line number.
func WithLine(log pslog.Logger, index int) pslog.Logger {
	return log.With("line", index+1)
}

// ContextWithSource stores the source marker on the context for log de-duplication.
func ContextWithSource(ctx context.Context, path string) context.Context {
	if ctx == nil || path == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceKey, path)
}

// ContextWithSourceLogger attaches the logger and source marker to the context.
func ContextWithSourceLogger(ctx context.Context, log pslog.Logger, path string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	return ContextWithSource(ctx, path)
}

// Package log is a small module-tagged wrapper over log/slog. Every record
// carries the name of the subsystem that emitted it.
package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger writes key/value pairs tagged with a module name.
type Logger interface {
	// With returns a Logger carrying the extra attributes.
	With(ctx ...any) Logger

	Debug(module string, msg string, ctx ...any)
	Info(module string, msg string, ctx ...any)
	Warn(module string, msg string, ctx ...any)
	Error(module string, msg string, ctx ...any)

	// Write logs msg at level for module.
	Write(level slog.Level, module string, msg string, attrs ...any)

	// Enabled reports whether the logger emits records at level.
	Enabled(ctx context.Context, level slog.Level) bool

	// Handler returns the underlying slog handler.
	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a Logger writing to h.
func NewLogger(h slog.Handler) Logger {
	return &logger{inner: slog.New(h)}
}

// DiscardHandler drops every record.
func DiscardHandler() slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)})
}

// NewTextHandler returns a text handler on w at the given level.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewJSONHandler returns a JSON handler on w at the given level.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{inner: l.inner.With(ctx...)}
}

func (l *logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.inner.Enabled(ctx, level)
}

// Write logs a message at the specified level.
func (l *logger) Write(level slog.Level, module string, msg string, attrs ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add("module", module)
	r.Add(attrs...)
	_ = l.inner.Handler().Handle(context.Background(), r)
}

func (l *logger) Debug(module string, msg string, ctx ...any) {
	l.Write(slog.LevelDebug, module, msg, ctx...)
}

func (l *logger) Info(module string, msg string, ctx ...any) {
	l.Write(slog.LevelInfo, module, msg, ctx...)
}

func (l *logger) Warn(module string, msg string, ctx ...any) {
	l.Write(slog.LevelWarn, module, msg, ctx...)
}

func (l *logger) Error(module string, msg string, ctx ...any) {
	l.Write(slog.LevelError, module, msg, ctx...)
}

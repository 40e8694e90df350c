package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Module names.
const (
	Inversion = "inversion"
	Worker    = "worker"
	Server    = "server"
	Analysis  = "analysis"
	CLI       = "cli"
)

var root atomic.Value

func init() {
	root.Store(NewLogger(DiscardHandler()))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid level: %s", lvl)
	}
}

// InitLogger installs a text logger on w at the named level as the default.
func InitLogger(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetDefault(NewLogger(NewTextHandler(w, lvl)))

	return nil
}

// SetDefault sets the default global logger.
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger.
func Root() Logger {
	return root.Load().(Logger)
}

func Debug(module string, msg string, ctx ...any) {
	Root().Write(slog.LevelDebug, module, msg, ctx...)
}

func Info(module string, msg string, ctx ...any) {
	Root().Write(slog.LevelInfo, module, msg, ctx...)
}

func Warn(module string, msg string, ctx ...any) {
	Root().Write(slog.LevelWarn, module, msg, ctx...)
}

func Error(module string, msg string, ctx ...any) {
	Root().Write(slog.LevelError, module, msg, ctx...)
}

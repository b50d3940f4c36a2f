// Package logging supplies the engine's diagnostic hook: a minimal
// Logger interface whose production default does nothing. The enumerate
// search calls it unconditionally once per leaf and does not branch on
// whether logging is enabled; core, semantics, accept and label do not
// log.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger receives diagnostic events from the enumerate package's search.
// The zero value of any implementation must be safe to use.
type Logger interface {
	Debugf(format string, args ...any)
}

// noop discards every call. It is the default passed to packages that
// accept a Logger, so callers who never configure one pay no cost beyond
// an interface call.
type noop struct{}

// Debugf implements Logger by discarding its arguments.
func (noop) Debugf(string, ...any) {}

// NoOp returns the logger used when the caller supplies none.
func NoOp() Logger { return noop{} }

// Slog adapts a *slog.Logger to this package's Logger interface, for
// callers who want diagnostics routed through the standard structured
// logger instead of discarded.
type Slog struct {
	Logger *slog.Logger
	Level  slog.Level
}

// Debugf implements Logger, defaulting to slog.Default when Logger is
// nil and to slog.LevelDebug when Level is unset. slog does not do
// printf-style substitution itself, so the message is formatted with
// fmt.Sprintf before being handed to the structured logger.
func (s Slog) Debugf(format string, args ...any) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := s.Level
	if level == 0 {
		level = slog.LevelDebug
	}
	logger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

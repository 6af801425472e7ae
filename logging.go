package automaton

import (
	"context"
	"log/slog"
)

// Logger provides logging hooks for automaton stepping. All methods are
// invoked synchronously on the calling goroutine. State names and symbols
// are passed as-is; implementations decide how to render them.
type Logger interface {
	TransitionExecuted(ctx context.Context, machine string, from, to, symbol any)
	SymbolRejected(ctx context.Context, machine string, symbol any)
	StateForced(ctx context.Context, machine string, state any)
}

// DefaultLogger implements Logger using slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger that writes through the given slog
// logger. A nil base falls back to slog.Default().
func NewDefaultLogger(base *slog.Logger) *DefaultLogger {
	if base == nil {
		base = slog.Default()
	}

	return &DefaultLogger{
		logger: base,
	}
}

func (l *DefaultLogger) TransitionExecuted(ctx context.Context, machine string, from, to, symbol any) {
	l.logger.InfoContext(ctx, "Transition executed",
		"machine", machine,
		"from", from,
		"to", to,
		"symbol", symbol,
	)
}

func (l *DefaultLogger) SymbolRejected(ctx context.Context, machine string, symbol any) {
	l.logger.WarnContext(ctx, "Symbol rejected",
		"machine", machine,
		"symbol", symbol,
	)
}

func (l *DefaultLogger) StateForced(ctx context.Context, machine string, state any) {
	l.logger.InfoContext(ctx, "State forced",
		"machine", machine,
		"state", state,
	)
}

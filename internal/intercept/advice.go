// Package intercept attaches cross-cutting behavior to store, service and HTTP handler calls
// without touching their bodies.
//
// Logging advice is applied by wrapping a call in Around (or Run for calls without a result).
// The authorization gate is an http middleware produced by Gate.Require. Both are composed
// explicitly when the application is wired; nothing is matched at runtime.
package intercept

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Terminal outcomes of an intercepted call.
const (
	OutcomeAllowed  = "allowed"
	OutcomeDenied   = "denied"
	OutcomeReturned = "returned"
	OutcomeThrew    = "threw"
)

// NoCause is logged in place of the cause of an error that wraps nothing.
const NoCause = "NULL"

// Observer receives the terminal outcome of every intercepted call.
type Observer interface {
	ObserveCall(typ, method, outcome string)
}

// Advisor carries the advice configuration for one declaring type.
type Advisor struct {
	typ      string
	logger   *slog.Logger
	observer Observer
}

// NewAdvisor returns an Advisor that reports calls as belonging to typ.
// A nil logger falls back to slog.Default; observer may be nil.
func NewAdvisor(typ string, logger *slog.Logger, observer Observer) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{typ: typ, logger: logger, observer: observer}
}

// Type is the declaring type name used in log records and metrics.
func (a *Advisor) Type() string {
	if a == nil {
		return ""
	}
	return a.typ
}

// Logger returns the logger used by the advice.
func (a *Advisor) Logger() *slog.Logger {
	if a == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *Advisor) observe(method, outcome string) {
	if a.observer != nil {
		a.observer.ObserveCall(a.typ, method, outcome)
	}
}

// Around runs call with entry, exit and failure logging. The result and error of call are
// returned untouched; a panic is logged and re-raised with the same value.
func Around[T any](ctx context.Context, a *Advisor, method string, args []any, call func(context.Context) (T, error)) (result T, err error) {
	if a == nil {
		return call(ctx)
	}
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		a.logger.DebugContext(ctx, "enter",
			slog.String("type", a.typ),
			slog.String("method", method),
			slog.String("args", formatArgs(args)),
		)
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "exception",
				slog.String("type", a.typ),
				slog.String("method", method),
				slog.String("cause", fmt.Sprintf("panic: %v", r)),
			)
			a.observe(method, OutcomeThrew)
			panic(r)
		}
	}()

	result, err = call(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "exception",
			slog.String("type", a.typ),
			slog.String("method", method),
			slog.String("cause", Cause(err)),
		)
		a.observe(method, OutcomeThrew)
		return result, err
	}

	if a.logger.Enabled(ctx, slog.LevelDebug) {
		a.logger.DebugContext(ctx, "exit",
			slog.String("type", a.typ),
			slog.String("method", method),
			slog.Any("result", result),
		)
	}
	a.observe(method, OutcomeReturned)
	return result, nil
}

// Run is Around for calls that only return an error.
func Run(ctx context.Context, a *Advisor, method string, args []any, call func(context.Context) error) error {
	_, err := Around(ctx, a, method, args, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	})
	return err
}

// Cause renders the error wrapped by err, or NoCause.
func Cause(err error) string {
	if err == nil {
		return NoCause
	}
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return NoCause
}

func formatArgs(args []any) string {
	return fmt.Sprintf("%v", args)
}

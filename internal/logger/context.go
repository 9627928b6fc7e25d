package logger

import (
	"context"
	"time"
)

type contextKey struct{}

var logContextKey = contextKey{}

// LogContext holds the fields attached to every log line of one command run.
type LogContext struct {
	RunID     string    // random id of this invocation
	Command   string    // xdrctl subcommand (decode, check, guess, hash)
	TypeName  string    // protocol type being decoded, if known
	Source    string    // where the input came from: arg, stdin or a file path
	StartTime time.Time
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext starts a LogContext for the named command.
func NewLogContext(command string) *LogContext {
	return &LogContext{
		Command:   command,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	c := *lc
	return &c
}

// WithType returns a copy with the protocol type name set.
func (lc *LogContext) WithType(name string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TypeName = name
	}
	return clone
}

// WithSource returns a copy with the input source set.
func (lc *LogContext) WithSource(source string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Source = source
	}
	return clone
}

// WithRunID returns a copy carrying the given run id.
func (lc *LogContext) WithRunID(id string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.RunID = id
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}

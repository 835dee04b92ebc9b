// Package cli implements the pydepsync command-line interface.
//
// The root command scans a Python project, resolves the third-party imports
// it finds against the configured package indexes and appends the missing
// ones to pyproject.toml. The CLI is built using cobra and logs with the
// charmbracelet/log library.
//
// # Commands
//
//   - pydepsync [path]: sync pyproject.toml with the project's imports
//   - cache: Manage the index response cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every diagnostic and observability event as it happens. Loggers are
// passed through context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pydepsync/pkg/diag"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Synced demo-app (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logSink logs diagnostics as they are emitted. Everything goes out at
// debug level unless warn is set, in which case warnings are logged as such.
// Pipeline runs leave warn unset because the final report lists warnings.
type logSink struct {
	logger *log.Logger
	warn   bool
}

func newLogSink(l *log.Logger) *logSink {
	return &logSink{logger: l}
}

// Emit implements diag.Sink. charmbracelet/log serializes writes, so Emit
// is safe for concurrent use.
func (s *logSink) Emit(d diag.Diagnostic) {
	kv := []any{"stage", d.Stage, "severity", d.Severity}
	if d.Subject != "" {
		kv = append(kv, "subject", d.Subject)
	}
	if s.warn && d.Severity >= diag.Warning {
		s.logger.Warn(d.Message, kv...)
		return
	}
	s.logger.Debug(d.Message, kv...)
}

// Package log provides context-aware logging for brws.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger provides diagnostic output and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	debug   *charmlog.Logger
}

// New creates a new logger. quiet suppresses all output, including verbose traces.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
		quiet:   quiet,
		debug: charmlog.NewWithOptions(out, charmlog.Options{
			Level:           charmlog.DebugLevel,
			ReportTimestamp: false,
		}),
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, false)
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Command logs an external command execution and returns a function that
// reports its duration once it has finished. Only prints in verbose mode.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := fmt.Sprintf("$ %s %s", name, strings.Join(args, " "))
	if dir != "" {
		line = fmt.Sprintf("[%s] %s", dir, line)
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// Debug writes a structured debug line in verbose mode.
// keyvals are alternating keys and values; an unpaired trailing key is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	if len(keyvals)%2 == 1 {
		keyvals = keyvals[:len(keyvals)-1]
	}
	l.debug.Debug(msg, keyvals...)
}

// IsVerbose returns true if verbose output is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Package log provides context-aware diagnostic logging for gwm.
// All log output goes to stderr; primary data output lives in the
// output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger writes diagnostics with optional verbose command echoing.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger writing to out.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a discarding logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted diagnostic output unless quiet is set.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a diagnostic line unless quiet is set.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a warning. Warnings are not suppressed by quiet mode.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "Warning: "+format, args...)
}

// Command echoes an external command invocation in verbose mode.
func (l *Logger) Command(name string, args ...string) {
	if !l.verbose || l.quiet {
		return
	}
	fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
}

// Verbose reports whether verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Package log provides context-aware logging for filebatch.
//
// Printf/Println carry user-facing diagnostics and are silenced by --quiet.
// Debug emits structured key=value records and only when --verbose is set.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type ctxKey struct{}

// Logger provides diagnostic output and verbose debug records.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	debug   *slog.Logger
}

// New creates a new logger. Quiet wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	l := &Logger{out: out, verbose: verbose, quiet: quiet}
	if l.IsVerbose() {
		l.debug = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				if a.Key == "error" {
					a.Key = "err"
				}
				return a
			},
		}))
	}
	return l
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, quiet: true}
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

// Debug writes a debug record with key/value pairs.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l.debug == nil {
		return
	}
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}
	l.debug.Debug(msg, keyvals...)
}

// IsVerbose returns true if debug records are written.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

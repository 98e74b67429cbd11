// Package logger wraps zerolog.Logger with the constructors used by the
// epiceditor command and API server.
//
// The Logger type embeds zerolog.Logger so all zerolog methods are available
// directly. Request-scoped loggers are attached to and read from a context
// with zerolog's own helpers.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Options configures New.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unknown or empty names fall back to info.
	Level string
	// Console switches from JSON lines to human readable output.
	Console bool
	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer
}

// New builds a *Logger tagged with the given role ("cli", "server").
func New(role string, opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all output, for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext attaches l to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx. zerolog falls back to a
// disabled logger when none is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

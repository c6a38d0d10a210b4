package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls the global logger behavior.
type Config struct {
	// Level is the minimum level that gets emitted: debug, info, warn, error.
	Level string
	// Format selects the output encoding: "json" or "console".
	Format string
	// TimeFormat overrides the timestamp layout. Defaults to RFC3339.
	TimeFormat string
}

// Init configures the global zerolog logger. It is safe to call more than
// once; the last call wins.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = timeFormat

	var out io.Writer = os.Stderr
	if strings.ToLower(cfg.Format) != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal starts a fatal-level event on the global logger. The process exits
// after the message is written.
func Fatal() *zerolog.Event {
	return log.Fatal()
}

// WithContext returns a copy of ctx carrying the global logger.
func WithContext(ctx context.Context) context.Context {
	return log.Logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, falling back to the global logger
// when none is attached.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

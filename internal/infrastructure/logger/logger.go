// Package logger configures zerolog for the trip optimizer and exposes
// a process-wide instance for code with no logger to thread through.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the severity floor, the output encoding and the
// service tag stamped on every entry.
type Config struct {
	// Level names the minimum severity that gets written. Unknown
	// values fall back to info.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format picks the encoding: "json" for machines, "console" for
	// a terminal.
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller stamps each entry with the file:line that wrote it.
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName appears as the "service" field on every entry.
	ServiceName string `env:"SERVICE_NAME" envDefault:"trip-optimizer"`
}

// DefaultConfig is JSON at info level, tagged trip-optimizer.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "trip-optimizer",
	}
}

// Logger embeds a configured zerolog.Logger, so zerolog's whole event
// API is available on it directly.
type Logger struct {
	zerolog.Logger
}

// New builds a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput builds a Logger writing to the given sink. Tests pass
// a buffer here to capture entries.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	base := zerolog.New(sinkFor(cfg.Format, output)).
		Level(levelFor(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		base = base.Caller()
	}

	return &Logger{Logger: base.Logger()}
}

func levelFor(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func sinkFor(format string, output io.Writer) io.Writer {
	if format == "console" {
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	return output
}

// WithContext returns a child logger that stamps every entry with the
// given field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID tags entries with the request they belong to.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider tags entries with the offer source being queried.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// WithLeg tags entries with a leg label such as "LHR,LGW>HKG".
func (l *Logger) WithLeg(label string) *Logger {
	return l.WithContext("leg", label)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process-wide logger. main sets it once at startup; the
// package-level event functions fall back to DefaultConfig when it was
// never set.
var Global *Logger

// Init replaces the global logger with one built from cfg.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal installs an already-built logger. Tests use this to
// capture global output.
func SetGlobal(l *Logger) {
	Global = l
}

func global() *Logger {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global
}

// Debug opens a debug event on the global logger.
func Debug() *zerolog.Event { return global().Debug() }

// Info opens an info event on the global logger.
func Info() *zerolog.Event { return global().Info() }

// Warn opens a warn event on the global logger.
func Warn() *zerolog.Event { return global().Warn() }

// Error opens an error event on the global logger.
func Error() *zerolog.Event { return global().Error() }

// Fatal opens a fatal event on the global logger. Sending it exits
// the process.
func Fatal() *zerolog.Event { return global().Fatal() }

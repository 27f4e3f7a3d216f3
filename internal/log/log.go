// Package log provides structured, colored logging for the mnemonic tools.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the system.
var (
	Codec    zerolog.Logger
	Wordlist zerolog.Logger
	Config   zerolog.Logger
	CLI      zerolog.Logger
)

func init() {
	// Stdout carries command output, so logs default to stderr.
	Logger = NewConsoleLogger(os.Stderr, "warn")
	initComponentLoggers()
}

// consoleTimeFormat is the timestamp layout of human-readable output.
const consoleTimeFormat = "15:04:05"

// levels lists the level names accepted in config and flags.
var levels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// Init rebuilds the global and component loggers. Stderr gets colored
// console lines, or JSON when jsonOutput is set. A non-empty file also
// receives every entry as JSON.
func Init(level string, jsonOutput bool, file string) error {
	var out io.Writer = os.Stderr
	if !jsonOutput {
		out = consoleWriter(os.Stderr)
	}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(out, f)
	}

	Logger = newLogger(out, level)
	initComponentLoggers()
	return nil
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(consoleWriter(w), level)
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
}

// ValidLevel reports whether level is one Init understands.
func ValidLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

// parseLevel maps a level name to zerolog, falling back to warn.
func parseLevel(level string) zerolog.Level {
	if lvl, ok := levels[level]; ok {
		return lvl
	}
	return zerolog.WarnLevel
}

// initComponentLoggers initializes loggers for each component.
func initComponentLoggers() {
	Codec = Logger.With().Str("component", "codec").Logger()
	Wordlist = Logger.With().Str("component", "wordlist").Logger()
	Config = Logger.With().Str("component", "config").Logger()
	CLI = Logger.With().Str("component", "cli").Logger()
}

// WithLanguage returns a logger with a language field.
func WithLanguage(lang string) zerolog.Logger {
	return Wordlist.With().Str("language", lang).Logger()
}

// Benchmark helper for timing operations.
func Benchmark(name string) func() {
	start := time.Now()
	return func() {
		Logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}

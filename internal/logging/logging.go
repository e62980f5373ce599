// Package logging provides the application logger.
//
// Logger keeps a small printf-style API with attached fields and fans each
// record out to one or more slog handlers. The terminal UI owns stdout, so
// sinks are files or in-memory buffers, never the screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a level name. Unknown names report false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Sink is one destination for log records.
type Sink struct {
	// Writer receives formatted records.
	Writer io.Writer

	// JSON selects the JSON handler instead of the text handler.
	JSON bool

	// MinLevel raises the logger level for this sink only.
	MinLevel Level
}

// Config configures the logger.
type Config struct {
	// Level is the minimum level for all sinks.
	Level Level

	// Sinks receive every record at or above their level.
	Sinks []Sink
}

// Logger provides structured logging for the application.
type Logger struct {
	base  *slog.Logger
	level *slog.LevelVar
}

// New creates a logger fanning out to the configured sinks.
// A config without sinks discards everything.
func New(cfg Config) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(cfg.Level.slog())

	var handlers []slog.Handler
	for _, s := range cfg.Sinks {
		if s.Writer == nil {
			continue
		}
		opts := &slog.HandlerOptions{Level: floor{global: lv, min: s.MinLevel.slog()}}
		if s.JSON {
			handlers = append(handlers, slog.NewJSONHandler(s.Writer, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(s.Writer, opts))
		}
	}

	var h slog.Handler = slog.DiscardHandler
	if len(handlers) > 0 {
		h = slogmulti.Fanout(handlers...)
	}

	return &Logger{base: slog.New(h), level: lv}
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return New(Config{})
}

// floor is a Leveler that never reports below min.
type floor struct {
	global *slog.LevelVar
	min    slog.Level
}

func (f floor) Level() slog.Level {
	return max(f.global.Level(), f.min)
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{base: l.base.With(key, value), level: l.level}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{base: l.base.With(args...), level: l.level}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level. Derived loggers share the level.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slog())
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

func (l *Logger) log(level Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.base.Enabled(ctx, level.slog()) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.base.Log(ctx, level.slog(), msg)
}

package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger provides structured logging capabilities
type Logger struct {
	*slog.Logger
}

// LogLevel represents log level constants
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config represents logger configuration
type Config struct {
	Level  LogLevel
	Format string // "json" or "text"
	Output io.Writer
}

// NewLogger creates a new structured logger
func NewLogger(config Config) *Logger {
	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// GetDefaultLogger returns a logger writing info and above to stderr
func GetDefaultLogger() *Logger {
	return NewLogger(Config{Level: LevelInfo, Format: "text", Output: os.Stderr})
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewLogger(Config{Level: LevelError, Output: io.Discard})
}

// WithContext adds contextual fields to the logger
func (l *Logger) WithContext(args ...any) *Logger {
	return &Logger{Logger: l.With(args...)}
}

// ConfigLoaded logs successful configuration file loading
func (l *Logger) ConfigLoaded(file string) {
	l.Debug("Configuration loaded", "file", file)
}

// ScanStarted logs the start of a cases scan
func (l *Logger) ScanStarted(root string, mode string, apple bool) {
	l.Debug("Scanning for test groups", "root", root, "mode", mode, "objc", apple)
}

// FileSkipped logs a file or directory that could not be read
func (l *Logger) FileSkipped(path string, err error) {
	l.Warn("Skipping unreadable path", "path", path, "error", err)
}

// GroupsFound logs the groups extracted from one file
func (l *Logger) GroupsFound(path string, bucket string, count int) {
	l.Debug("Groups found", "file", path, "bucket", bucket, "count", count)
}

// ScanComplete logs the end of a cases scan
func (l *Logger) ScanComplete(files int, groups int, skipped int) {
	l.Debug("Scan complete", "files", files, "groups", groups, "skipped", skipped)
}

// ArtifactWritten logs a runner written to disk
func (l *Logger) ArtifactWritten(path string, groups int, changed bool) {
	l.Debug("Runner written", "path", path, "groups", groups, "changed", changed)
}

// WatchStarted logs the start of watch mode
func (l *Logger) WatchStarted(root string, dirs int) {
	l.Debug("Watching for changes", "root", root, "directories", dirs)
}

// ChangeDetected logs a filesystem event that will trigger regeneration
func (l *Logger) ChangeDetected(path string, op string) {
	l.Debug("Change detected", "path", path, "op", op)
}

// RegenerationFailed logs a failed regeneration in watch mode
func (l *Logger) RegenerationFailed(err error) {
	l.Error("Regeneration failed", "error", err)
}

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance
	Log zerolog.Logger

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// fileOnlyLog is a cached logger that writes only to file (no console).
	// Used in prompt mode to avoid creating a new logger per log event.
	fileOnlyLog zerolog.Logger

	// promptMode controls whether console logs are suppressed.
	// When true, ALL console logs (INFO, WARN, ERROR) are suppressed so stray
	// output never corrupts the shell prompt line being rendered.
	// File logging (if enabled) is NOT affected by prompt mode.
	promptMode bool
	promptMu   sync.RWMutex

	// repoContext holds the repository context for log entries (may be empty)
	repoContext   string
	repoContextMu sync.RWMutex
)

// SetRepo sets the repository working-root context for all subsequent log
// entries. Pass an empty string to clear. Thread-safe.
func SetRepo(root string) {
	repoContextMu.Lock()
	defer repoContextMu.Unlock()
	repoContext = root
}

// addContext adds the repo field to an event if set.
func addContext(event *zerolog.Event) *zerolog.Event {
	repoContextMu.RLock()
	repo := repoContext
	repoContextMu.RUnlock()
	if repo != "" {
		event = event.Str("repo", repo)
	}
	return event
}

// FileConfig holds configuration for file-based logging.
// This matches internal/config.LoggingSettings but is duplicated here
// to avoid circular imports.
type FileConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *FileConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *FileConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *FileConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *FileConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetPromptMode enables or disables prompt mode.
// When enabled, ALL console logs (INFO, WARN, ERROR) are suppressed so they
// cannot interleave with prompt output. Debug and Fatal are never suppressed
// on console. File logging (if enabled) is NOT affected by prompt mode.
func SetPromptMode(enabled bool) {
	promptMu.Lock()
	defer promptMu.Unlock()
	promptMode = enabled
}

// Init initializes the global logger with the specified configuration.
// This initializes console-only logging. Use InitWithFile for file logging.
func Init(debug bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	Log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with optional file output.
// File logging captures all logs regardless of prompt mode.
// If logsDir is empty or cfg indicates file logging is disabled,
// this behaves like Init (console-only).
func InitWithFile(debug bool, logsDir string, cfg *FileConfig) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Log = zerolog.New(consoleWriter).
			Level(level).
			With().
			Timestamp().
			Logger()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, "promptgit.log")

	fileWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   false,
	}

	// Cached file-only logger for use in prompt mode. Avoids allocating a
	// new logger on each suppressed log event.
	fileOnlyLog = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Console uses human-readable format, file uses JSON.
	// Prompt mode filtering happens at the log function level (Info, Warn, Error).
	multi := io.MultiWriter(consoleWriter, fileWriter)

	Log = zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil // Prevent double-close and writes to closed file
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if
// file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// shouldSuppress returns true if console logs should be suppressed (prompt
// mode, non-debug level)
func shouldSuppress() bool {
	promptMu.RLock()
	prompt := promptMode
	promptMu.RUnlock()
	return prompt && Log.GetLevel() != zerolog.DebugLevel
}

// Debug logs a debug message (never suppressed - used for debugging)
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message (suppressed on console in prompt mode, still written to file)
func Info() *zerolog.Event {
	if shouldSuppress() {
		if fileWriter != nil {
			return addContext(fileOnlyLog.Info())
		}
		nop := zerolog.Nop()
		return nop.Info()
	}
	return addContext(Log.Info())
}

// Warn logs a warning message (suppressed on console in prompt mode, still written to file)
func Warn() *zerolog.Event {
	if shouldSuppress() {
		if fileWriter != nil {
			return addContext(fileOnlyLog.Warn())
		}
		nop := zerolog.Nop()
		return nop.Warn()
	}
	return addContext(Log.Warn())
}

// Error logs an error message (suppressed on console in prompt mode, still written to file)
func Error() *zerolog.Event {
	if shouldSuppress() {
		if fileWriter != nil {
			return addContext(fileOnlyLog.Error())
		}
		nop := zerolog.Nop()
		return nop.Error()
	}
	return addContext(Log.Error())
}

// Fatal logs a fatal message and exits (never suppressed - critical failures)
func Fatal() *zerolog.Event {
	return addContext(Log.Fatal())
}

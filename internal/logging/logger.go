// Package logging writes diagnostic logs to a file under the user's
// home directory. Nothing is logged to the terminal; stdout belongs to
// the digest.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// Init routes logs to ~/.newsbrief/logs/newsbrief-YYYY-MM-DD.log.
// Before Init (and after a failed Init) all log calls are discarded,
// so the package is always safe to use.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".newsbrief", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("newsbrief-%s.log", time.Now().Format("2006-01-02"))
	logFile, err = os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger = log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	})
	return nil
}

// Close closes the log file and reverts to the discard logger.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = log.New(io.Discard)
}

// Debug logs a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }

// Info logs an info message with optional key/value pairs.
func Info(msg string, keyvals ...any) { logger.Info(msg, keyvals...) }

// Warn logs a warning with optional key/value pairs.
func Warn(msg string, keyvals ...any) { logger.Warn(msg, keyvals...) }

// Error logs an error with optional key/value pairs.
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }

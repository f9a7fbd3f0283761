// Package logging owns the process log file and its shared level. The
// terminal belongs to the presenter, so records go to a log file, never to
// stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DefaultDir is the directory under the user state dir holding the log.
	DefaultDir = "sentradeck"
	// DefaultFilename is the log file name.
	DefaultFilename = "sentradeck.log"
)

var (
	mu       sync.Mutex
	logFile  *os.File
	levelVar = &slog.LevelVar{}
)

// Setup opens path for appending and returns a JSON logger writing to it.
// An empty path uses DefaultPath. When the file cannot be opened the logger
// discards everything and the error is returned for the caller to report.
func Setup(path string, level string) (*slog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	SetRawLogLevel(level)
	closeLocked()

	if path == "" {
		path = DefaultPath()
	}
	w, err := open(path)
	if err != nil {
		return slog.New(slog.DiscardHandler), err
	}
	return New(w), nil
}

// New returns a JSON logger on w that honors the shared level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	}))
}

func open(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logFile = f
	return f, nil
}

// DefaultPath returns $XDG_STATE_HOME/sentradeck/sentradeck.log, falling
// back to ~/.local/state and finally the temp dir.
func DefaultPath() string {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, ".local", "state")
		} else {
			base = os.TempDir()
		}
	}
	return filepath.Join(base, DefaultDir, DefaultFilename)
}

// SetRawLogLevel parses debug/info/warn/error (case-insensitive); anything
// else selects info.
func SetRawLogLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close closes the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

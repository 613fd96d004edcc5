package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "OVERLAY_DEBUG"

var (
	logFile *os.File
	logger  = log.NewWithOptions(io.Discard, log.Options{Level: log.InfoLevel})
	mu      sync.Mutex
)

func init() {
	if path := os.Getenv(EnvVar); path != "" {
		_ = Init(path)
	}
}

// Init starts debug logging to the specified file path.
// If path is empty, uses "overlay-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "overlay-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "overlay",
	})
	return nil
}

// SetOutput routes debug logging to w at debug level. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.InfoLevel})
		return
	}
	logger = log.NewWithOptions(w, log.Options{Level: log.DebugLevel, Prefix: "overlay"})
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = log.NewWithOptions(io.Discard, log.Options{Level: log.InfoLevel})
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug messages are written anywhere.
func Enabled() bool {
	return Logger().GetLevel() <= log.DebugLevel
}

// Logger returns the current debug logger.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Log writes a structured debug message.
func Log(msg string, keyvals ...any) {
	Logger().Debug(msg, keyvals...)
}

// Logf writes a formatted debug message.
func Logf(format string, args ...any) {
	Logger().Debugf(format, args...)
}

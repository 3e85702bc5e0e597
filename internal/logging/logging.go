package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultLogFile = "paneldock.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logLevel     = log.WarnLevel
	logFile      *os.File
	logger       *log.Logger
)

// outputLocked opens the log file and builds the logger on first use. The
// caller holds mu.
func outputLocked() (*os.File, *log.Logger, error) {
	if logFile != nil {
		return logFile, logger, nil
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           logLevel,
		Prefix:          "paneldock",
	})
	return logFile, logger, nil
}

func closeLocked() {
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile, logger = nil, nil
}

func write(level log.Level, msg string, keyvals ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level < logLevel {
		return
	}
	_, l, err := outputLocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	l.Log(level, msg, keyvals...)
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(log.ErrorLevel, err.Error())
}

// Warn writes a warning with optional key/value pairs.
func Warn(msg string, keyvals ...interface{}) {
	write(log.WarnLevel, msg, keyvals...)
}

// Info writes an informational line with optional key/value pairs.
func Info(msg string, keyvals ...interface{}) {
	write(log.InfoLevel, msg, keyvals...)
}

// SetLevel sets the minimum level written by Error, Warn and Info. Trace
// entries are controlled separately by SetTraceEnabled.
func SetLevel(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	mu.Lock()
	logLevel = level
	if logger != nil {
		logger.SetLevel(level)
	}
	mu.Unlock()
	return nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	mu.Lock()
	defer mu.Unlock()
	f, _, err := outputLocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing. The file is
// opened on the first write.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

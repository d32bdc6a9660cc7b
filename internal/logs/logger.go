package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	prefix   = "[discard] "
	flags    = log.LstdFlags | log.Lshortfile
	fileName = "debug.log"
)

var (
	Logger  = log.New(io.Discard, prefix, flags)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at <logDir>/debug.log. Until it is called,
// log output is discarded: the TUI owns the terminal.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fileName)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Printf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, flags)

	Logger.Printf("Logger initialized to: %s", logPath)

	return nil
}

// Close closes the log file and discards further output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = log.New(io.Discard, prefix, flags)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

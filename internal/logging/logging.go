package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup tees the standard logger to stderr and a timestamped run-log file
// (<prefix>_<YYYYMMDD_HHMMSS>.log) under logsDir. The file handle lives for
// the whole process, so it is never closed here.
func Setup(logsDir, prefix, stamp string) error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", prefix, stamp))
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetFlags(log.LstdFlags)
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.Printf("Logging initialized. Log file: %s", logPath)
	return nil
}

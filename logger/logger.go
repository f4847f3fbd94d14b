package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	Logger  = log.New(os.Stderr, "", log.LstdFlags)
	logFile *os.File
)

// Setup sends log output to the file at path, appending, or to stderr when
// path is empty. The standard logger is redirected too.
func Setup(path string) error {
	var out io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		out = f
	}
	Logger = log.New(out, "", log.LstdFlags)
	log.SetOutput(out)
	return nil
}

func Close() {
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			log.Printf("failed to close log file: %v", err)
		}
		logFile = nil
	}
}

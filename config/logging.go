package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	logFileName = "glowbar.log"
)

var logFile *os.File

// InitLogging routes the standard logger to both stderr and a rotating
// glowbar.log in the config directory. The log viewer window follows this
// file. Should be called once during application startup.
func InitLogging() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	logPath := filepath.Join(dir, logFileName)

	// Check if we need to rotate before opening
	if info, err := os.Stat(logPath); err == nil && info.Size() >= maxLogSize {
		if err := rotateLogs(dir); err != nil {
			return fmt.Errorf("failed to rotate logs: %w", err)
		}
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = file
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("=== glowbar %s starting ===", Version)
	log.Printf("Log file: %s", logPath)

	return nil
}

// CloseLogging releases the log file handle.
func CloseLogging() {
	if logFile != nil {
		log.SetOutput(os.Stderr)
		logFile.Close()
		logFile = nil
	}
}

// LogPath returns the active log file location for the log viewer.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// rotateLogs shifts glowbar.log to numbered backups, dropping the oldest.
func rotateLogs(dir string) error {
	basePath := filepath.Join(dir, logFileName)

	// Remove oldest backup (glowbar.log.3)
	oldestBackup := fmt.Sprintf("%s.%d", basePath, maxLogFiles)
	os.Remove(oldestBackup) // Ignore error if file doesn't exist

	// Rotate existing backups
	for i := maxLogFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		newPath := fmt.Sprintf("%s.%d", basePath, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	// Move current log to .1
	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

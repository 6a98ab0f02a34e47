package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the glowbar configuration directory, creating it on first
// use. Logs and any future exported files live here; the scalar settings
// themselves go through the platform preferences store.
func Dir() (string, error) {
	configDirectory, expandError := expandPath("~/.config/glowbar")
	if expandError != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", expandError)
	}

	// Check if the directory exists
	_, err := os.Stat(configDirectory)

	if os.IsNotExist(err) {
		err := os.MkdirAll(configDirectory, 0755)
		if err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("Directory %s created successfully.\n", configDirectory)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// expandPath expands ~ to the user's home directory, or returns the path as-is
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

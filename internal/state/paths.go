package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigDirName is the root directory name for svtrack configuration
	ConfigDirName = "svtrack"

	// ConfigFileName is the main configuration file name
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the path to the svtrack configuration directory,
// $XDG_CONFIG_HOME/svtrack or ~/.config/svtrack.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the path to the main configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// EnsureDir ensures that a directory exists, creating it if necessary.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory %s: %w", path, err)
	}
	return nil
}

// EnsureStatsDir creates the statistics directory.
func EnsureStatsDir(path string) (string, error) {
	dir, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	return dir, nil
}

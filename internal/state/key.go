package state

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("no steam API key configured")

// LoadAPIKey reads the API key from path. Surrounding whitespace is trimmed.
func LoadAPIKey(path string) (string, error) {
	if path == "" {
		return "", ErrNoAPIKey
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoAPIKey, expanded)
	}

	return key, nil
}

// ResolveAPIKey returns the inline key when set, otherwise the key file's
// contents.
func ResolveAPIKey(cfg SteamConfig) (string, error) {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key, nil
	}
	return LoadAPIKey(cfg.KeyFile)
}

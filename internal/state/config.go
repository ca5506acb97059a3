package state

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the user configuration for svtrack.
type Config struct {
	Steam   SteamConfig   `yaml:"steam" mapstructure:"steam"`
	Tracker TrackerConfig `yaml:"tracker" mapstructure:"tracker"`
	Stats   StatsConfig   `yaml:"stats" mapstructure:"stats"`
	TUI     TUIConfig     `yaml:"tui" mapstructure:"tui"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SteamConfig holds the directory API settings.
type SteamConfig struct {
	BaseURL         string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey          string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	KeyFile         string        `yaml:"key_file" mapstructure:"key_file"`
	AppID           int           `yaml:"app_id" mapstructure:"app_id"`
	Dedicated       bool          `yaml:"dedicated" mapstructure:"dedicated"`
	Limit           int           `yaml:"limit" mapstructure:"limit"`
	RequestInterval time.Duration `yaml:"request_interval" mapstructure:"request_interval"`
}

// TrackerConfig holds the polling loop delays.
type TrackerConfig struct {
	QueryTimeout        time.Duration `yaml:"query_timeout" mapstructure:"query_timeout"`
	Interval            time.Duration `yaml:"interval" mapstructure:"interval"`
	ErrorCooldownFactor int           `yaml:"error_cooldown_factor" mapstructure:"error_cooldown_factor"`
}

// StatsConfig holds the statistics output location.
type StatsConfig struct {
	Directory string `yaml:"directory" mapstructure:"directory"`
}

// TUIConfig holds dashboard configuration.
type TUIConfig struct {
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Steam: SteamConfig{
			BaseURL:         "https://api.steampowered.com",
			KeyFile:         "api_key.txt",
			AppID:           225840,
			Dedicated:       true,
			Limit:           5000,
			RequestInterval: 1 * time.Second,
		},
		Tracker: TrackerConfig{
			QueryTimeout:        10 * time.Second,
			Interval:            30 * time.Second,
			ErrorCooldownFactor: 2,
		},
		Stats: StatsConfig{
			Directory: "stats",
		},
		TUI: TUIConfig{
			HistorySize: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultSettings flattens DefaultConfig into dotted keys, the form viper
// and the config file use.
func DefaultSettings() map[string]any {
	cfg := DefaultConfig()

	return map[string]any{
		"steam.base_url":                cfg.Steam.BaseURL,
		"steam.api_key":                 cfg.Steam.APIKey,
		"steam.key_file":                cfg.Steam.KeyFile,
		"steam.app_id":                  cfg.Steam.AppID,
		"steam.dedicated":               cfg.Steam.Dedicated,
		"steam.limit":                   cfg.Steam.Limit,
		"steam.request_interval":        cfg.Steam.RequestInterval,
		"tracker.query_timeout":         cfg.Tracker.QueryTimeout,
		"tracker.interval":              cfg.Tracker.Interval,
		"tracker.error_cooldown_factor": cfg.Tracker.ErrorCooldownFactor,
		"stats.directory":               cfg.Stats.Directory,
		"tui.history_size":              cfg.TUI.HistorySize,
		"logging.level":                 cfg.Logging.Level,
	}
}

// SaveConfig writes the configuration to path using atomic writes.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}

	// The file may hold an API key.
	if err := AtomicWrite(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// MarshalConfig renders the configuration as YAML.
func MarshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.Steam.BaseURL == "" {
		return fmt.Errorf("steam base URL cannot be empty")
	}

	if cfg.Steam.AppID <= 0 {
		return fmt.Errorf("app id must be positive, got %d", cfg.Steam.AppID)
	}

	if cfg.Steam.Limit < 1 || cfg.Steam.Limit > 20000 {
		return fmt.Errorf("limit must be between 1 and 20000, got %d", cfg.Steam.Limit)
	}

	if cfg.Steam.APIKey == "" && cfg.Steam.KeyFile == "" {
		return fmt.Errorf("either an API key or a key file must be configured")
	}

	if cfg.Steam.RequestInterval < 0 {
		return fmt.Errorf("request interval must be >= 0, got %v", cfg.Steam.RequestInterval)
	}

	if cfg.Tracker.QueryTimeout < 100*time.Millisecond {
		return fmt.Errorf("query timeout must be >= 100ms, got %v", cfg.Tracker.QueryTimeout)
	}

	if cfg.Tracker.Interval < time.Second {
		return fmt.Errorf("refresh interval must be >= 1s, got %v", cfg.Tracker.Interval)
	}

	if cfg.Tracker.ErrorCooldownFactor < 1 {
		return fmt.Errorf("error cooldown factor must be >= 1, got %d", cfg.Tracker.ErrorCooldownFactor)
	}

	if cfg.Stats.Directory == "" {
		return fmt.Errorf("stats directory cannot be empty")
	}

	if cfg.TUI.HistorySize < 1 {
		return fmt.Errorf("TUI history size must be >= 1, got %d", cfg.TUI.HistorySize)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLogLevels {
		if cfg.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	return nil
}

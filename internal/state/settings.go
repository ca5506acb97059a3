package state

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadSettings registers the defaults on v and decodes the merged result of
// defaults, config file, environment and bound flags.
func LoadSettings(v *viper.Viper) (*Config, error) {
	for key, value := range DefaultSettings() {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

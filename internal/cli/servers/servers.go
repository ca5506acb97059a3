package servers

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/state"
	"github.com/steviee/svtrack/internal/steam"
	"github.com/steviee/svtrack/internal/tracker"
)

// Flag names shared by the server commands, with the config keys they
// override.
var flagKeys = map[string]string{
	"app-id":    "steam.app_id",
	"limit":     "steam.limit",
	"key-file":  "steam.key_file",
	"interval":  "tracker.interval",
	"timeout":   "tracker.query_timeout",
	"stats-dir": "stats.directory",
}

// addQueryFlags registers the directory query flags
func addQueryFlags(cmd *cobra.Command) {
	defaults := state.DefaultConfig()

	cmd.Flags().Int("app-id", defaults.Steam.AppID, "Steam app id to list servers for")
	cmd.Flags().Int("limit", defaults.Steam.Limit, "Maximum number of servers per request")
	cmd.Flags().String("key-file", defaults.Steam.KeyFile, "File holding the Steam Web API key")
	cmd.Flags().Duration("timeout", defaults.Tracker.QueryTimeout, "Timeout for a single directory request")
}

// addLoopFlags registers the flags of the long running commands
func addLoopFlags(cmd *cobra.Command) {
	defaults := state.DefaultConfig()

	addQueryFlags(cmd)
	cmd.Flags().Duration("interval", defaults.Tracker.Interval, "Wait between successful refreshes")
	cmd.Flags().String("stats-dir", defaults.Stats.Directory, "Directory for statistics output")
}

// loadConfig binds the command's flags into viper and returns the merged
// configuration. Binding happens per run so commands do not share flags.
func loadConfig(cmd *cobra.Command) (*state.Config, error) {
	v := viper.GetViper()

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return state.LoadSettings(v)
}

// newClient creates a directory client. A missing API key is fatal.
func newClient(cfg *state.Config) (*steam.Client, error) {
	key, err := state.ResolveAPIKey(cfg.Steam)
	if err != nil {
		return nil, fmt.Errorf("failed to load API key: %w", err)
	}

	return steam.NewClient(&steam.Config{
		BaseURL:         cfg.Steam.BaseURL,
		APIKey:          key,
		Timeout:         cfg.Tracker.QueryTimeout,
		RequestInterval: cfg.Steam.RequestInterval,
	}), nil
}

// queryFromConfig returns the directory query described by cfg
func queryFromConfig(cfg *state.Config) steam.Query {
	return steam.Query{
		AppID:     cfg.Steam.AppID,
		Dedicated: cfg.Steam.Dedicated,
		Limit:     cfg.Steam.Limit,
	}
}

// newTracker wires a tracker to the configured query and timing
func newTracker(cfg *state.Config, fetcher tracker.Fetcher, display tracker.Display) *tracker.Tracker {
	return tracker.New(fetcher, display, tracker.Options{
		Query: queryFromConfig(cfg),
		Timing: tracker.Timing{
			QueryTimeout:        cfg.Tracker.QueryTimeout,
			Interval:            cfg.Tracker.Interval,
			ErrorCooldownFactor: cfg.Tracker.ErrorCooldownFactor,
		},
	})
}

// prepare loads config, the API key and the stats directory for the long
// running commands
func prepare(cmd *cobra.Command) (*state.Config, *steam.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	dir, err := state.EnsureStatsDir(cfg.Stats.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare stats directory: %w", err)
	}
	cfg.Stats.Directory = dir

	return cfg, client, nil
}

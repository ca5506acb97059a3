package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/cli/config"
	"github.com/steviee/svtrack/internal/cli/servers"
	"github.com/steviee/svtrack/internal/state"
)

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool

	// Global logger
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "svtrack",
		Short: "Track Sven Co-op server population",
		Long: `svtrack polls the Steam game server directory on a fixed interval and shows
which dedicated servers currently have players.

It provides:
  - A live console view of populated servers, refreshed every 30 seconds
  - An interactive dashboard with a population trend
  - One-shot listings in table or JSON form

A Steam Web API key is required. It is read from api_key.txt in the working
directory unless configured otherwise.`,
		Example: `  # Watch populated servers in the console
  svtrack track

  # Open the dashboard
  svtrack top

  # Track a different game
  svtrack track --app-id 440

  # List every server once as JSON
  svtrack list --all --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr so the console view stays clean
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			if !quiet && !verbose {
				applyConfigLevel(viper.GetString("logging.level"))
			}

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/svtrack/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))
	rootCmd.AddCommand(servers.NewTrackCommand())
	rootCmd.AddCommand(servers.NewTopCommand())
	rootCmd.AddCommand(servers.NewListCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	return config.NewCommand()
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	var handler slog.Handler

	switch {
	case quiet:
		logLevel.Set(slog.LevelError)
	case verbose:
		logLevel.Set(slog.LevelDebug)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	if jsonOut {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// applyConfigLevel sets the log level from the logging.level setting.
// Unknown or empty values keep the current level.
func applyConfigLevel(name string) {
	if name == "" {
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		logger.Warn("ignoring invalid log level", "level", name)
		return
	}
	logLevel.Set(level)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return fmt.Errorf("get config directory: %w", err)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// SVTRACK_STEAM_API_KEY overrides steam.api_key and so on
	viper.SetEnvPrefix("SVTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	return logger
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

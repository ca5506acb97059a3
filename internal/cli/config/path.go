package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/state"
)

// NewPathCommand creates the config path subcommand
func NewPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(viper.GetViper())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

// configPath returns the file given with --config, or the default location
func configPath(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}
	return state.GetConfigPath()
}

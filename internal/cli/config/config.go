package config

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the config command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and create svtrack configuration.

Settings are merged from built-in defaults, the config file, SVTRACK_*
environment variables and command flags, in that order of precedence.
Configuration is stored in ~/.config/svtrack/config.yaml by default.`,
		Example: `  # View the effective configuration
  svtrack config show

  # Write a config file with the defaults
  svtrack config init

  # Show configuration file path
  svtrack config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewPathCommand())

	return cmd
}

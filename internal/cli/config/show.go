package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/state"
)

const redacted = "REDACTED"

// NewShowCommand creates the config show subcommand
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Print the configuration svtrack would run with, as YAML. An inline API key
is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), viper.GetViper())
		},
	}
}

func runShow(w io.Writer, v *viper.Viper) error {
	cfg, err := state.LoadSettings(v)
	if err != nil {
		return err
	}

	if cfg.Steam.APIKey != "" {
		cfg.Steam.APIKey = redacted
	}

	data, err := state.MarshalConfig(cfg)
	if err != nil {
		return err
	}

	if used := v.ConfigFileUsed(); used != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", used); err != nil {
			return err
		}
	}

	_, err = w.Write(data)
	return err
}

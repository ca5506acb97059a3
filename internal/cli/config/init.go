package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/state"
)

// NewInitCommand creates the config init subcommand
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Long: `Write the default configuration to the config file path. An existing file is
left alone unless --force is given.`,
		Example: `  svtrack config init
  svtrack config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(viper.GetViper())
			if err != nil {
				return err
			}
			return runInit(cmd.OutOrStdout(), path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(w io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	if err := state.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	if err := state.SaveConfig(path, state.DefaultConfig()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Wrote default configuration to %s\n", path)
	return err
}

package servers

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/steviee/svtrack/internal/tracker"
)

// NewTrackCommand creates the track command
func NewTrackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Watch populated servers in the console",
		Long: `Poll the Steam game server directory and redraw the console with every
dedicated server that has more than one player, least populated first.

Each line shows players, the player limit and the server name:

    5 / 32  Alpha

The list refreshes every 30 seconds. When the directory cannot be reached the
next attempt waits twice the request timeout. A reply without a server list
clears the screen and retries after one request timeout.

Runs until interrupted.`,
		Example: `  # Track Sven Co-op servers
  svtrack track

  # Refresh every 10 seconds with a key stored elsewhere
  svtrack track --interval 10s --key-file ~/.steam/api_key.txt

  # Track another game
  svtrack track --app-id 440`,
		Aliases: []string{"watch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, cmd.OutOrStdout())
		},
	}

	addLoopFlags(cmd)

	return cmd
}

// runTrack executes the track command
func runTrack(cmd *cobra.Command, stdout io.Writer) error {
	cfg, client, err := prepare(cmd)
	if err != nil {
		return err
	}

	slog.Debug("stats directory ready", "path", cfg.Stats.Directory)

	t := newTracker(cfg, client, tracker.NewConsole(stdout))

	err = t.Run(cmd.Context())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.Info("tracking stopped", "tracked", t.Cache().Len())
		return nil
	}

	return err
}

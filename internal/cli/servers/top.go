package servers

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/steviee/svtrack/internal/tui"
)

// NewTopCommand creates the top command
func NewTopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Interactive dashboard of populated servers",
		Long: `Launch an interactive TUI dashboard that lists populated servers, busiest
first, with how full each one is, how long it has been tracked and a trend of
the total player count.

The dashboard refreshes on the same schedule as 'svtrack track'.

Keyboard shortcuts:
  ↑/k         Move selection up
  ↓/j         Move selection down
  r           Refresh now
  q/Ctrl+C    Quit dashboard`,
		Example: `  # Launch the dashboard
  svtrack top

  # Alternative using alias
  svtrack dashboard`,
		Aliases: []string{"dashboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd)
		},
	}

	addLoopFlags(cmd)

	return cmd
}

// runTop executes the top command
func runTop(cmd *cobra.Command) error {
	cfg, client, err := prepare(cmd)
	if err != nil {
		return err
	}

	// The dashboard draws itself; the tracker needs no display
	t := newTracker(cfg, client, nil)
	model := tui.NewModel(cmd.Context(), t, cfg.TUI.HistorySize)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		// Cancelled by a signal
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}

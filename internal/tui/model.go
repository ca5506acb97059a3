package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/svtrack/internal/tracker"
)

// errorDisplayTime is how long an error stays in the footer
const errorDisplayTime = 3 * time.Second

// Poller runs one directory poll and exposes the address cache.
// *tracker.Tracker satisfies it.
type Poller interface {
	Poll(ctx context.Context) (tracker.Result, time.Duration)
	Cache() *tracker.Cache
}

// ServerInfo is one row of the dashboard
type ServerInfo struct {
	Address    string
	Name       string
	Map        string
	Players    int
	MaxPlayers int
	Bots       int
	FirstSeen  time.Time
}

// Model is the bubbletea model for the dashboard
type Model struct {
	servers     []ServerInfo
	selectedIdx int

	// history holds the total player count of visible servers per poll
	history     []float64
	historySize int

	listed     int
	tracked    int
	lastUpdate time.Time
	nextPoll   time.Time

	err       error
	errorTime time.Time

	loading  bool
	polling  bool
	gen      int
	width    int
	height   int
	quitting bool

	poller Poller
	ctx    context.Context
	now    func() time.Time
}

// NewModel creates a new dashboard model. historySize bounds the population
// trend.
func NewModel(ctx context.Context, poller Poller, historySize int) *Model {
	if historySize < 1 {
		historySize = 1
	}

	return &Model{
		servers:     []ServerInfo{},
		history:     make([]float64, 0, historySize),
		historySize: historySize,
		loading:     true,
		polling:     true,
		poller:      poller,
		ctx:         ctx,
		now:         time.Now,
	}
}

// Init starts the first poll
func (m Model) Init() tea.Cmd {
	return pollCmd(m.ctx, m.poller)
}

// pollCmd returns a command that polls the directory once
func pollCmd(ctx context.Context, poller Poller) tea.Cmd {
	return func() tea.Msg {
		res, wait := poller.Poll(ctx)
		return pollMsg{res: res, wait: wait}
	}
}

// scheduleCmd returns a command that requests a poll after wait
func scheduleCmd(gen int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// clearErrorCmd returns a command that clears the error message after a delay
func clearErrorCmd() tea.Cmd {
	return tea.Tick(errorDisplayTime, func(t time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

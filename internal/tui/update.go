package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/steviee/svtrack/internal/tracker"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.quitting || m.polling || msg.gen != m.gen {
			return m, nil
		}
		m.polling = true
		return m, pollCmd(m.ctx, m.poller)

	case pollMsg:
		return m.handlePoll(msg)

	case clearErrorMsg:
		if m.now().Sub(m.errorTime) >= errorDisplayTime {
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handlePoll applies a poll result and schedules the next one
func (m Model) handlePoll(msg pollMsg) (tea.Model, tea.Cmd) {
	m.polling = false
	m.loading = false
	m.gen++
	m.nextPoll = m.now().Add(msg.wait)

	if m.quitting {
		return m, nil
	}

	next := scheduleCmd(m.gen, msg.wait)

	if msg.res.Outcome != tracker.OutcomeOK {
		m.err = msg.res.Err
		m.errorTime = m.now()
		slog.Error("failed to get server list", "outcome", msg.res.Outcome, "error", msg.res.Err, "retry_in", msg.wait)
		return m, tea.Batch(next, clearErrorCmd())
	}

	m.servers = buildRows(msg.res.Servers, m.poller.Cache())
	m.history = appendHistory(m.history, float64(totalPlayers(m.servers)), m.historySize)
	m.listed = len(msg.res.Servers)
	m.tracked = m.poller.Cache().Len()
	m.lastUpdate = msg.res.At

	if len(m.servers) == 0 {
		m.selectedIdx = 0
	} else if m.selectedIdx >= len(m.servers) {
		m.selectedIdx = len(m.servers) - 1
	}

	return m, next
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "r":
		if m.polling {
			return m, nil
		}
		m.polling = true
		return m, pollCmd(m.ctx, m.poller)
	}

	if len(m.servers) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case "down", "j":
		if m.selectedIdx < len(m.servers)-1 {
			m.selectedIdx++
		}
	}

	return m, nil
}

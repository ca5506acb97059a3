package tui

import (
	"fmt"
	"strings"
	"time"

	units "github.com/docker/go-units"
)

const (
	defaultWidth  = 80
	trendWidth    = 40
	fillBarWidth  = 6
	maxNameWidth  = 40
	minNameWidth  = 12
	maxMapWidth   = 20
	minMapWidth   = 8
	addressWidth  = 21
	trackedWidth  = 14
	playersWidth  = 7
	fillColWidth  = 11
	rowIndentSize = 2
)

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return "Dashboard closed.\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch {
	case m.loading && len(m.servers) == 0:
		b.WriteString("\nQuerying server list...\n")
	case len(m.servers) == 0:
		b.WriteString("\nNo populated servers right now.\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderPopulation())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if m.err != nil && m.now().Sub(m.errorTime) < errorDisplayTime {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %s", m.err)))
	}

	return b.String()
}

func (m Model) totalWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// renderHeader renders the title bar with the last update time and counts
func (m Model) renderHeader() string {
	title := "svtrack"

	status := "Last Update: never"
	if !m.lastUpdate.IsZero() {
		status = fmt.Sprintf("Last Update: %s (%s ago)",
			m.lastUpdate.Format("15:04:05"),
			units.HumanDuration(m.now().Sub(m.lastUpdate)))
	}

	counts := fmt.Sprintf("%d listed, %d tracked", m.listed, m.tracked)

	totalWidth := m.totalWidth()
	spacing := totalWidth - len(title) - len(status) - len(counts) - 8
	if spacing < 2 {
		spacing = 2
	}
	left := spacing / 2

	var b strings.Builder
	b.WriteString("╭")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╮\n")

	headerText := fmt.Sprintf(" %s%s%s%s%s ",
		title, strings.Repeat(" ", left),
		counts, strings.Repeat(" ", spacing-left),
		status)
	b.WriteString("│")
	b.WriteString(headerStyle.Render(headerText))
	b.WriteString("│\n")

	b.WriteString("╰")
	b.WriteString(strings.Repeat("─", totalWidth-2))
	b.WriteString("╯")

	return b.String()
}

// renderTable renders the populated servers, busiest first
func (m Model) renderTable() string {
	var b strings.Builder

	nameWidth := minNameWidth
	mapWidth := minMapWidth
	for _, server := range m.servers {
		nameWidth = max(nameWidth, len(server.Name))
		mapWidth = max(mapWidth, len(server.Map))
	}
	nameWidth = min(nameWidth, maxNameWidth)
	mapWidth = min(mapWidth, maxMapWidth)

	headerRow := fmt.Sprintf("%s%*s  %-*s  %-*s  %-*s  %-*s  %-*s",
		strings.Repeat(" ", rowIndentSize),
		playersWidth, "PLAYERS",
		fillColWidth, "FILL",
		nameWidth, "NAME",
		mapWidth, "MAP",
		addressWidth, "ADDRESS",
		trackedWidth, "TRACKED",
	)
	b.WriteString(tableHeaderStyle.Render(headerRow))
	b.WriteString("\n")

	now := m.now()
	for i, server := range m.servers {
		players := fmt.Sprintf("%*s", playersWidth, fmt.Sprintf("%d/%d", server.Players, server.MaxPlayers))
		fill := renderProgressBarWithPercentage(fillPercent(server), fillBarWidth)
		name := fmt.Sprintf("%-*s", nameWidth, truncate(server.Name, nameWidth))
		mapName := fmt.Sprintf("%-*s", mapWidth, truncate(server.Map, mapWidth))
		address := fmt.Sprintf("%-*s", addressWidth, server.Address)
		tracked := fmt.Sprintf("%-*s", trackedWidth, formatTracked(now, server.FirstSeen))

		if i == m.selectedIdx {
			b.WriteString(selectedRowStyle.Render("> "+players) + "  ")
			b.WriteString(fill + "  ")
			b.WriteString(selectedRowStyle.Render(name + "  " + mapName + "  " + address + "  " + tracked))
		} else {
			b.WriteString("  " + players + "  " + fill + "  " + name + "  " + mapName + "  " + address + "  " + tracked)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderPopulation renders the total player trend across polls
func (m Model) renderPopulation() string {
	width := min(trendWidth, m.totalWidth()-20)
	if width < 1 {
		width = 1
	}

	current := 0
	if len(m.history) > 0 {
		current = int(m.history[len(m.history)-1])
	}

	var b strings.Builder
	b.WriteString(renderSeparator(m.totalWidth(), "Population"))
	b.WriteString("\n")
	b.WriteString(trendLabelStyle.Render("Players "))
	b.WriteString(renderTrend(m.history, width))
	fmt.Fprintf(&b, " %d", current)
	b.WriteString("\n")

	return b.String()
}

// renderFooter renders the key help and the next poll time
func (m Model) renderFooter() string {
	actions := "[↑/↓] navigate  [r]efresh  [q]uit"
	if m.polling {
		actions += "  (refreshing...)"
	} else if !m.nextPoll.IsZero() {
		actions += fmt.Sprintf("  next refresh %s", m.nextPoll.Format("15:04:05"))
	}
	return footerStyle.Render(actions)
}

// formatTracked humanizes how long an address has been in the cache
func formatTracked(now, firstSeen time.Time) string {
	if firstSeen.IsZero() {
		return "-"
	}
	return units.HumanDuration(now.Sub(firstSeen))
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

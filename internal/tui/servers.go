package tui

import (
	"github.com/steviee/svtrack/internal/steam"
	"github.com/steviee/svtrack/internal/tracker"
)

// buildRows turns a ranked listing into dashboard rows, most populated
// first. Only servers the console view would show are kept.
func buildRows(ranked []steam.Server, cache *tracker.Cache) []ServerInfo {
	visible := tracker.VisibleServers(ranked)

	rows := make([]ServerInfo, 0, len(visible))
	for i := len(visible) - 1; i >= 0; i-- {
		srv := visible[i]
		row := ServerInfo{
			Address:    srv.Addr,
			Name:       srv.Name,
			Map:        srv.Map,
			Players:    srv.Players,
			MaxPlayers: srv.MaxPlayers,
			Bots:       srv.Bots,
		}

		if cache != nil {
			if rec, ok := cache.Get(srv.Addr); ok {
				row.FirstSeen = rec.FirstSeen
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// totalPlayers sums the players across rows
func totalPlayers(rows []ServerInfo) int {
	total := 0
	for _, row := range rows {
		total += row.Players
	}
	return total
}

// appendHistory appends v and drops the oldest samples beyond size
func appendHistory(history []float64, v float64, size int) []float64 {
	history = append(history, v)
	if len(history) > size {
		history = history[len(history)-size:]
	}
	return history
}

// fillPercent reports how full a server is, 0-100
func fillPercent(row ServerInfo) float64 {
	if row.MaxPlayers <= 0 {
		return 0
	}
	pct := float64(row.Players) / float64(row.MaxPlayers) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

package tracker

import (
	"fmt"
	"io"
	"sort"

	"github.com/steviee/svtrack/internal/steam"
)

// MinVisiblePlayers is the player count a server must exceed to be shown.
const MinVisiblePlayers = 1

// Rank returns a copy of servers stable-sorted by ascending player count.
func Rank(servers []steam.Server) []steam.Server {
	ranked := make([]steam.Server, len(servers))
	copy(ranked, servers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Players < ranked[j].Players
	})

	return ranked
}

// Visible reports whether a server is shown in the console view.
func Visible(srv steam.Server) bool {
	return srv.Players > MinVisiblePlayers && srv.Dedicated
}

// VisibleServers filters servers down to the visible ones, keeping order.
func VisibleServers(servers []steam.Server) []steam.Server {
	visible := make([]steam.Server, 0, len(servers))
	for _, srv := range servers {
		if Visible(srv) {
			visible = append(visible, srv)
		}
	}
	return visible
}

// FormatLine renders a server as "players / max  name".
func FormatLine(srv steam.Server) string {
	return fmt.Sprintf("%3d / %-2d  %s ", srv.Players, srv.MaxPlayers, srv.Name)
}

// Render writes one line per visible server, in the given order, followed by
// the total number of servers in the listing.
func Render(w io.Writer, servers []steam.Server) error {
	for _, srv := range servers {
		if !Visible(srv) {
			continue
		}
		if _, err := fmt.Fprintln(w, FormatLine(srv)); err != nil {
			return fmt.Errorf("write server line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "Total servers: %d\n", len(servers)); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	return nil
}

package servers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/steviee/svtrack/internal/steam"
	"github.com/steviee/svtrack/internal/tracker"
)

// ListFlags holds all flags for the list command
type ListFlags struct {
	All      bool
	NoHeader bool
}

// ServerListItem represents a server in the list output
type ServerListItem struct {
	Address    string `json:"address"`
	Name       string `json:"name"`
	Map        string `json:"map"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	Bots       int    `json:"bots"`
	Dedicated  bool   `json:"dedicated"`
	Secure     bool   `json:"secure"`
	OS         string `json:"os,omitempty"`
	Version    string `json:"version,omitempty"`
	SteamID    string `json:"steam_id,omitempty"`
}

// ListOutput holds the output for JSON mode
type ListOutput struct {
	Status  string                 `json:"status"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	flags := &ListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List servers once",
		Long: `Query the Steam game server directory once and print the result.

By default only the servers the console view shows are listed: dedicated
servers with more than one player, least populated first. Use --all to list
every server the directory returned.`,
		Example: `  # List populated servers
  svtrack list

  # List every server, including empty ones
  svtrack list --all

  # JSON output for scripting
  svtrack list --json

  # Omit table header
  svtrack list --no-header`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Show all servers including empty ones")
	cmd.Flags().BoolVar(&flags.NoHeader, "no-header", false, "Omit table header")
	addQueryFlags(cmd)

	return cmd
}

// runList executes the list command
func runList(cmd *cobra.Command, stdout io.Writer, flags *ListFlags) error {
	jsonMode := isJSONMode(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return outputListError(stdout, jsonMode, err)
	}

	client, err := newClient(cfg)
	if err != nil {
		return outputListError(stdout, jsonMode, err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Tracker.QueryTimeout)
	defer cancel()

	servers, err := client.GetServerList(ctx, queryFromConfig(cfg))
	if err != nil {
		return outputListError(stdout, jsonMode, fmt.Errorf("failed to get server list: %w", err))
	}

	items := listItems(servers, flags.All)

	if len(items) == 0 {
		if jsonMode {
			output := ListOutput{
				Status: "success",
				Data: map[string]interface{}{
					"servers": []ServerListItem{},
					"count":   0,
					"total":   len(servers),
				},
				Message: "No servers match the filter",
			}
			return json.NewEncoder(stdout).Encode(output)
		}

		_, _ = fmt.Fprintf(stdout, "No populated servers. Total servers: %d\n", len(servers))
		return nil
	}

	if jsonMode {
		return outputListJSON(stdout, items, len(servers))
	}

	return outputListTable(stdout, items, len(servers), flags.NoHeader)
}

// listItems ranks servers and keeps the visible ones unless all is set
func listItems(servers []steam.Server, all bool) []ServerListItem {
	ranked := tracker.Rank(servers)
	if !all {
		ranked = tracker.VisibleServers(ranked)
	}

	items := make([]ServerListItem, 0, len(ranked))
	for _, srv := range ranked {
		item := ServerListItem{
			Address:    srv.Addr,
			Name:       srv.Name,
			Map:        srv.Map,
			Players:    srv.Players,
			MaxPlayers: srv.MaxPlayers,
			Bots:       srv.Bots,
			Dedicated:  srv.Dedicated,
			Secure:     srv.Secure,
			OS:         srv.OS,
			Version:    srv.Version,
		}
		if sid := srv.SID64(); sid != 0 {
			item.SteamID = strconv.FormatInt(int64(sid), 10)
		}
		items = append(items, item)
	}

	return items
}

// outputListTable outputs servers in table format
func outputListTable(stdout io.Writer, items []ServerListItem, total int, noHeader bool) error {
	playersWidth := len("PLAYERS")
	addressWidth := len("ADDRESS")
	mapWidth := len("MAP")

	for _, item := range items {
		if l := len(formatPlayers(item)); l > playersWidth {
			playersWidth = l
		}
		if len(item.Address) > addressWidth {
			addressWidth = len(item.Address)
		}
		if len(item.Map) > mapWidth {
			mapWidth = len(item.Map)
		}
	}

	if !noHeader {
		_, _ = fmt.Fprintf(stdout, "%*s  %-*s  %-*s  %s\n",
			playersWidth, "PLAYERS",
			addressWidth, "ADDRESS",
			mapWidth, "MAP",
			"NAME",
		)
	}

	for _, item := range items {
		_, _ = fmt.Fprintf(stdout, "%*s  %-*s  %-*s  %s\n",
			playersWidth, formatPlayers(item),
			addressWidth, item.Address,
			mapWidth, item.Map,
			item.Name,
		)
	}

	if !noHeader {
		_, _ = fmt.Fprintf(stdout, "\nShowing %d of %d servers\n", len(items), total)
	}

	return nil
}

// formatPlayers renders "players/max"
func formatPlayers(item ServerListItem) string {
	return fmt.Sprintf("%d/%d", item.Players, item.MaxPlayers)
}

// outputListJSON outputs servers in JSON format
func outputListJSON(stdout io.Writer, items []ServerListItem, total int) error {
	output := ListOutput{
		Status: "success",
		Data: map[string]interface{}{
			"servers": items,
			"count":   len(items),
			"total":   total,
		},
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputListError outputs an error message
func outputListError(stdout io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		output := ListOutput{
			Status: "error",
			Error:  err.Error(),
		}
		_ = json.NewEncoder(stdout).Encode(output)
	}
	return err
}

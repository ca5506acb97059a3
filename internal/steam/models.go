package steam

import (
	"github.com/leighmacdonald/steamid/v2/steamid"
)

// ServerListResponse is the envelope returned by GetServerList.
// Both levels are pointers so a missing object can be told apart from an
// empty one.
type ServerListResponse struct {
	Response *ServerListBody `json:"response"`
}

// ServerListBody is the "response" object of GetServerList.
type ServerListBody struct {
	Servers *[]Server `json:"servers"`
}

// Server is a single entry of the directory listing.
type Server struct {
	Addr       string `json:"addr"`
	GamePort   int    `json:"gameport"`
	SteamID    string `json:"steamid"`
	Name       string `json:"name"`
	AppID      int    `json:"appid"`
	GameDir    string `json:"gamedir"`
	Version    string `json:"version"`
	Product    string `json:"product"`
	Region     int    `json:"region"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	Bots       int    `json:"bots"`
	Map        string `json:"map"`
	Secure     bool   `json:"secure"`
	Dedicated  bool   `json:"dedicated"`
	OS         string `json:"os"`
	GameType   string `json:"gametype"`
}

// SID64 returns the server's steam id, or 0 when the field is empty or
// not a valid 64bit id.
func (s Server) SID64() steamid.SID64 {
	if s.SteamID == "" {
		return 0
	}

	sid, err := steamid.StringToSID64(s.SteamID)
	if err != nil || !sid.Valid() {
		return 0
	}

	return sid
}

package tracker

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/leighmacdonald/steamid/v2/steamid"
	"github.com/steviee/svtrack/internal/steam"
)

// ServerRecord is the tracked state of one server address.
type ServerRecord struct {
	Address    string
	Name       string
	Map        string
	Players    int
	MaxPlayers int
	SteamID    steamid.SID64
	FirstSeen  time.Time
	LastSeen   time.Time
}

// Cache maps server addresses to their latest observation.
// Entries are never evicted, so the key set only grows.
type Cache struct {
	mu      sync.RWMutex
	records map[string]*ServerRecord
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		records: make(map[string]*ServerRecord),
	}
}

// Merge records every server in the list as seen at now and returns how many
// addresses were new. Servers with an unusable address are skipped.
func (c *Cache) Merge(servers []steam.Server, now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, srv := range servers {
		if _, err := steam.ParseAddr(srv.Addr); err != nil {
			slog.Debug("skipping server with invalid address", "addr", srv.Addr, "error", err)
			continue
		}

		rec, exists := c.records[srv.Addr]
		if !exists {
			rec = &ServerRecord{
				Address:   srv.Addr,
				FirstSeen: now,
			}
			c.records[srv.Addr] = rec
			added++
		}

		rec.Name = srv.Name
		rec.Map = srv.Map
		rec.Players = srv.Players
		rec.MaxPlayers = srv.MaxPlayers
		rec.SteamID = srv.SID64()
		rec.LastSeen = now
	}

	return added
}

// Get returns a copy of the record for addr.
func (c *Cache) Get(addr string) (ServerRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[addr]
	if !ok {
		return ServerRecord{}, false
	}
	return *rec, true
}

// Len returns the number of tracked addresses.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// Addresses returns the tracked addresses in sorted order.
func (c *Cache) Addresses() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	addrs := make([]string, 0, len(c.records))
	for addr := range c.records {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	return addrs
}

// Records returns copies of all records sorted by address.
func (c *Cache) Records() []ServerRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := make([]ServerRecord, 0, len(c.records))
	for _, rec := range c.records {
		recs = append(recs, *rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Address < recs[j].Address
	})

	return recs
}

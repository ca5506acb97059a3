package tracker

import (
	"testing"
	"time"

	"github.com/steviee/svtrack/internal/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MergeNew(t *testing.T) {
	cache := NewCache()
	now := time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC)

	added := cache.Merge(scenarioServers(), now)

	assert.Equal(t, 3, added)
	assert.Equal(t, 3, cache.Len())

	rec, ok := cache.Get("1.1.1.1:27015")
	require.True(t, ok)
	assert.Equal(t, "Alpha", rec.Name)
	assert.Equal(t, 5, rec.Players)
	assert.Equal(t, 32, rec.MaxPlayers)
	assert.Equal(t, now, rec.FirstSeen)
	assert.Equal(t, now, rec.LastSeen)
}

func TestCache_MergeRefreshesExisting(t *testing.T) {
	cache := NewCache()
	first := time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC)
	second := first.Add(30 * time.Second)

	cache.Merge([]steam.Server{{Addr: "1.1.1.1:27015", Name: "Alpha", Players: 5, MaxPlayers: 32, Map: "svencoop1"}}, first)
	added := cache.Merge([]steam.Server{{Addr: "1.1.1.1:27015", Name: "Alpha [EU]", Players: 7, MaxPlayers: 32, Map: "svencoop2"}}, second)

	assert.Equal(t, 0, added)

	rec, ok := cache.Get("1.1.1.1:27015")
	require.True(t, ok)
	assert.Equal(t, "Alpha [EU]", rec.Name)
	assert.Equal(t, 7, rec.Players)
	assert.Equal(t, "svencoop2", rec.Map)
	assert.Equal(t, first, rec.FirstSeen)
	assert.Equal(t, second, rec.LastSeen)
}

func TestCache_RecordsAreIndependent(t *testing.T) {
	cache := NewCache()
	cache.Merge(scenarioServers(), time.Now())

	alpha, _ := cache.Get("1.1.1.1:27015")
	beta, _ := cache.Get("2.2.2.2:27015")

	assert.NotEqual(t, alpha.Name, beta.Name)

	alpha.Name = "changed"
	again, _ := cache.Get("1.1.1.1:27015")
	assert.Equal(t, "Alpha", again.Name, "Get returns a copy")
}

func TestCache_GrowsMonotonically(t *testing.T) {
	cache := NewCache()
	now := time.Now()

	cycles := [][]steam.Server{
		{{Addr: "1.1.1.1:27015"}, {Addr: "2.2.2.2:27015"}},
		{{Addr: "2.2.2.2:27015"}},
		{},
		{{Addr: "3.3.3.3:27015"}, {Addr: "1.1.1.1:27015"}},
	}

	seen := map[string]bool{}
	prev := 0
	for i, servers := range cycles {
		cache.Merge(servers, now.Add(time.Duration(i)*time.Minute))
		for _, srv := range servers {
			seen[srv.Addr] = true
		}

		assert.GreaterOrEqual(t, cache.Len(), prev)
		for addr := range seen {
			_, ok := cache.Get(addr)
			assert.True(t, ok, "address %s must stay tracked", addr)
		}
		prev = cache.Len()
	}

	assert.Equal(t, []string{"1.1.1.1:27015", "2.2.2.2:27015", "3.3.3.3:27015"}, cache.Addresses())
}

func TestCache_SkipsInvalidAddresses(t *testing.T) {
	cache := NewCache()

	added := cache.Merge([]steam.Server{
		{Addr: "1.1.1.1"},
		{Addr: "999.1.1.1:27015"},
		{Addr: "4.4.4.4:27015"},
	}, time.Now())

	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"4.4.4.4:27015"}, cache.Addresses())
}

func TestCache_Records(t *testing.T) {
	cache := NewCache()
	cache.Merge(scenarioServers(), time.Now())

	recs := cache.Records()

	require.Len(t, recs, 3)
	assert.Equal(t, "1.1.1.1:27015", recs[0].Address)
	assert.Equal(t, "3.3.3.3:27015", recs[2].Address)
}

func TestCache_GetMissing(t *testing.T) {
	_, ok := NewCache().Get("5.5.5.5:27015")
	assert.False(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 10; j++ {
				cache.Merge(scenarioServers(), time.Now())
				cache.Records()
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 3, cache.Len())
}

package tui

import (
	"testing"
	"time"

	"github.com/steviee/svtrack/internal/steam"
	"github.com/steviee/svtrack/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRows(t *testing.T) {
	cache := tracker.NewCache()
	cache.Merge(testServers(), fixedNow)

	servers := append(testServers(),
		steam.Server{Addr: "4.4.4.4:27015", Players: 9, MaxPlayers: 12, Name: "Listen", Dedicated: false},
		steam.Server{Addr: "5.5.5.5:27015", Players: 3, MaxPlayers: 8, Name: "New", Dedicated: true},
	)

	rows := buildRows(tracker.Rank(servers), cache)

	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha", rows[0].Name)
	assert.Equal(t, "New", rows[1].Name)
	assert.Equal(t, "Beta", rows[2].Name)

	assert.Equal(t, "svencoop1", rows[0].Map)
	assert.Equal(t, "1.1.1.1:27015", rows[0].Address)
	assert.Equal(t, fixedNow, rows[0].FirstSeen)
	assert.True(t, rows[1].FirstSeen.IsZero(), "address not merged yet")
}

func TestBuildRows_NilCache(t *testing.T) {
	rows := buildRows(tracker.Rank(testServers()), nil)
	assert.Len(t, rows, 2)
}

func TestTotalPlayers(t *testing.T) {
	rows := []ServerInfo{{Players: 5}, {Players: 2}, {Players: 11}}
	assert.Equal(t, 18, totalPlayers(rows))
	assert.Equal(t, 0, totalPlayers(nil))
}

func TestAppendHistory(t *testing.T) {
	var history []float64
	for i := 1; i <= 4; i++ {
		history = appendHistory(history, float64(i), 3)
	}
	assert.Equal(t, []float64{2, 3, 4}, history)
}

func TestFillPercent(t *testing.T) {
	tests := []struct {
		name string
		row  ServerInfo
		want float64
	}{
		{name: "half", row: ServerInfo{Players: 8, MaxPlayers: 16}, want: 50},
		{name: "full", row: ServerInfo{Players: 32, MaxPlayers: 32}, want: 100},
		{name: "over capacity", row: ServerInfo{Players: 40, MaxPlayers: 32}, want: 100},
		{name: "no slots", row: ServerInfo{Players: 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fillPercent(tt.row), 0.001)
		})
	}
}

func TestFormatTracked(t *testing.T) {
	assert.Equal(t, "-", formatTracked(fixedNow, time.Time{}))
	assert.Equal(t, "5 minutes", formatTracked(fixedNow, fixedNow.Add(-5*time.Minute)))
	assert.Equal(t, "About an hour", formatTracked(fixedNow, fixedNow.Add(-time.Hour)))
}

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name        string
		xdg         string
		wantContain string
	}{
		{
			name:        "uses XDG_CONFIG_HOME when set",
			xdg:         "/tmp/test-config",
			wantContain: "/tmp/test-config/svtrack",
		},
		{
			name:        "uses ~/.config when XDG_CONFIG_HOME not set",
			xdg:         "",
			wantContain: filepath.Join(".config", "svtrack"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)

			dir, err := GetConfigDir()
			require.NoError(t, err)
			assert.Contains(t, dir, tt.wantContain)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-config")

	path, err := GetConfigPath()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-config/svtrack/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative path unchanged", path: "stats", want: "stats"},
		{name: "absolute path unchanged", path: "/var/lib/svtrack", want: "/var/lib/svtrack"},
		{name: "home prefix", path: "~/svtrack/key.txt", want: filepath.Join(home, "svtrack/key.txt")},
		{name: "bare home", path: "~", want: home},
		{name: "tilde user form unchanged", path: "~other/key", want: "~other/key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureStatsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stats")

	got, err := EnsureStatsDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directory is fine
	_, err = EnsureStatsDir(dir)
	assert.NoError(t, err)
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := EnsureDir(path)

	assert.Error(t, err)
}

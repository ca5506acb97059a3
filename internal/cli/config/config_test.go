package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/steviee/svtrack/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage configuration", cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
	assert.Contains(t, cmd.Aliases, "cfg")

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "init", "path"}, names)
}

func TestRunShow(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(v *viper.Viper)
		wantAPIKey string
		wantAppID  int
	}{
		{
			name:       "defaults",
			setup:      func(v *viper.Viper) {},
			wantAPIKey: "",
			wantAppID:  225840,
		},
		{
			name: "inline key is redacted",
			setup: func(v *viper.Viper) {
				v.Set("steam.api_key", "secret")
				v.Set("steam.app_id", 440)
			},
			wantAPIKey: redacted,
			wantAppID:  440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.setup(v)

			var buf bytes.Buffer
			require.NoError(t, runShow(&buf, v))
			assert.NotContains(t, buf.String(), "secret")

			var cfg state.Config
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &cfg))
			assert.Equal(t, tt.wantAPIKey, cfg.Steam.APIKey)
			assert.Equal(t, tt.wantAppID, cfg.Steam.AppID)
		})
	}
}

func TestRunShow_InvalidConfig(t *testing.T) {
	v := viper.New()
	v.Set("steam.limit", 0)

	err := runShow(&bytes.Buffer{}, v)
	assert.ErrorContains(t, err, "limit must be between")
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svtrack", "config.yaml")

	var buf bytes.Buffer
	require.NoError(t, runInit(&buf, path, false))
	assert.Contains(t, buf.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg state.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *state.DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRunInit_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steam:\n  app_id: 440\n"), 0600))

	err := runInit(&bytes.Buffer{}, path, false)
	assert.ErrorContains(t, err, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "440", "existing file is untouched")

	require.NoError(t, runInit(&bytes.Buffer{}, path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "225840")
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path, err := configPath(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "svtrack", "config.yaml"), path)

	v := viper.New()
	v.SetConfigFile("/etc/svtrack.yaml")
	path, err = configPath(v)
	require.NoError(t, err)
	assert.Equal(t, "/etc/svtrack.yaml", path)
}

func TestPathCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	cmd := NewPathCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, filepath.Join(home, "svtrack", "config.yaml")+"\n", out.String())
}

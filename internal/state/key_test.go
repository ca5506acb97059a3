package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    string
		wantErr error
	}{
		{name: "plain key", content: strPtr("ABCDEF0123456789"), want: "ABCDEF0123456789"},
		{name: "trailing newline trimmed", content: strPtr("ABCDEF0123456789\r\n"), want: "ABCDEF0123456789"},
		{name: "empty file", content: strPtr("  \n"), wantErr: ErrNoAPIKey},
		{name: "missing file", content: nil, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "api_key.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0600))
			}

			got, err := LoadAPIKey(path)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadAPIKey_EmptyPath(t *testing.T) {
	_, err := LoadAPIKey("")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestResolveAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_key.txt")
	require.NoError(t, os.WriteFile(path, []byte("FROMFILE"), 0600))

	key, err := ResolveAPIKey(SteamConfig{APIKey: " INLINE ", KeyFile: path})
	require.NoError(t, err)
	assert.Equal(t, "INLINE", key, "inline key wins over the file")

	key, err = ResolveAPIKey(SteamConfig{KeyFile: path})
	require.NoError(t, err)
	assert.Equal(t, "FROMFILE", key)
}

func strPtr(s string) *string {
	return &s
}

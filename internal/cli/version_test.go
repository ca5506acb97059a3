package cli

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.0.0", "abc123", "2025-11-05", "goreleaser")

	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Print version information", cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
}

func TestVersionCommand_Execute(t *testing.T) {
	tests := []struct {
		name       string
		jsonMode   bool
		wantOutput []string
	}{
		{
			name:     "text output",
			jsonMode: false,
			wantOutput: []string{
				"svtrack version 1.0.0",
				"Commit:   abc123",
				"Built:    2025-11-05",
				"Built by: goreleaser",
				"Go:       " + runtime.Version(),
			},
		},
		{
			name:     "json output",
			jsonMode: true,
			wantOutput: []string{
				`"status": "success"`,
				`"version": "1.0.0"`,
				`"platform": "` + runtime.GOOS + "/" + runtime.GOARCH + `"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonOut = tt.jsonMode
			defer func() { jsonOut = false }()

			cmd := NewVersionCommand("1.0.0", "abc123", "2025-11-05", "goreleaser")
			cmd.SetArgs([]string{})

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			require.NoError(t, cmd.Execute())

			output := out.String()
			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestPrintVersionJSON(t *testing.T) {
	info := VersionInfo{
		Version:   "dev",
		Commit:    "unknown",
		Date:      "unknown",
		BuiltBy:   "src",
		GoVersion: "go1.23.0",
		Platform:  "linux/amd64",
	}

	var buf bytes.Buffer
	require.NoError(t, printVersionJSON(&buf, info))

	var result struct {
		Status string      `json:"status"`
		Data   VersionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, info, result.Data)
}

func TestPrintVersionText_Format(t *testing.T) {
	info := VersionInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		Date:      "2025-11-05",
		BuiltBy:   "goreleaser",
		GoVersion: "go1.23.0",
		Platform:  "linux/amd64",
	}

	var buf bytes.Buffer
	require.NoError(t, printVersionText(&buf, info))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "svtrack version 1.0.0", lines[0])
	assert.Contains(t, lines[1], "Commit:   abc123")
	assert.Contains(t, lines[5], "Platform: linux/amd64")
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	BuiltBy   string `json:"built_by"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date, builtBy string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the svtrack release, build commit and date, and the Go runtime it was built with.",
		Example: `  svtrack version
  svtrack version --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   version,
				Commit:    commit,
				Date:      date,
				BuiltBy:   builtBy,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			if IsJSONOutput() {
				return printVersionJSON(cmd.OutOrStdout(), info)
			}
			return printVersionText(cmd.OutOrStdout(), info)
		},
	}

	return cmd
}

func printVersionJSON(w io.Writer, info VersionInfo) error {
	output := struct {
		Status string      `json:"status"`
		Data   VersionInfo `json:"data"`
	}{
		Status: "success",
		Data:   info,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}

	return nil
}

func printVersionText(w io.Writer, info VersionInfo) error {
	if _, err := fmt.Fprintf(w, "svtrack version %s\n", info.Version); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"Commit:", info.Commit},
		{"Built:", info.Date},
		{"Built by:", info.BuiltBy},
		{"Go:", info.GoVersion},
		{"Platform:", info.Platform},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("write version details: %w", err)
		}
	}

	return tw.Flush()
}

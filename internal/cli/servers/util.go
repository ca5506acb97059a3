package servers

import (
	"os"

	"github.com/spf13/cobra"
)

// jsonEnvVar enables JSON output when the --json flag is not given
const jsonEnvVar = "SVTRACK_JSON"

// isJSONMode reports whether the global --json flag, or SVTRACK_JSON=true,
// asks for JSON output
func isJSONMode(cmd *cobra.Command) bool {
	if f := cmd.Flag("json"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	return os.Getenv(jsonEnvVar) == "true"
}

package cmdutil

import (
	"encoding/json"
	"fmt"

	"github.com/schmitthub/promptgit/internal/iostreams"
)

// PrintStatus prints a status message to stderr unless quiet is enabled.
// Use this for informational messages that can be suppressed with --quiet.
func PrintStatus(ios *iostreams.IOStreams, quiet bool, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(ios.ErrOut, format+"\n", args...)
	}
}

// OutputJSON marshals data to stdout as JSON with indentation.
// Use this for machine-readable output when --json flag is set.
func OutputJSON(ios *iostreams.IOStreams, data any) error {
	enc := json.NewEncoder(ios.Out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// PrintHelpHint prints a contextual help hint to stderr.
// cmdPath should be cmd.CommandPath() (e.g., "promptgit config disable-repo")
func PrintHelpHint(ios *iostreams.IOStreams, cmdPath string) {
	fmt.Fprintf(ios.ErrOut, "\nRun '%s --help' for more information.\n", cmdPath)
}

// Package promptgit hosts the CLI entry point shared by cmd/promptgit and
// integration tests.
package promptgit

import (
	"errors"
	"fmt"
	"os"

	"github.com/schmitthub/promptgit/internal/cmd/factory"
	"github.com/schmitthub/promptgit/internal/cmd/root"
	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

// Main is the entry point for the promptgit CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	if wd, err := os.Getwd(); err == nil {
		f.WorkDir = wd
	} else {
		f.WorkDir = "."
	}

	rootCmd := root.NewCmdRoot(f, Version, BuildDate)
	rootCmd.SilenceErrors = true

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		if errors.Is(err, cmdutil.SilentError) {
			return 1
		}

		fmt.Fprintf(f.IOStreams.ErrOut, "Error: %v\n", err)

		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			fmt.Fprint(f.IOStreams.ErrOut, cmd.UsageString())
		} else {
			cmdutil.PrintHelpHint(f.IOStreams, cmd.CommandPath())
		}
		return 1
	}

	return 0
}

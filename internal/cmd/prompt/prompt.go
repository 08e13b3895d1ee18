// Package prompt implements the subcommand shells invoke from PS1. It must
// never fail the shell: errors degrade to empty output.
package prompt

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/git"
	"github.com/schmitthub/promptgit/internal/iostreams"
	"github.com/schmitthub/promptgit/internal/logger"
	promptpkg "github.com/schmitthub/promptgit/internal/prompt"
	"github.com/schmitthub/promptgit/internal/status"
)

// PromptOptions contains the options for the prompt command.
type PromptOptions struct {
	IOStreams   *iostreams.IOStreams
	Settings    func() (*config.Settings, error)
	StatusCache func() *status.Cache

	Dir string
}

// NewCmdPrompt creates the prompt command.
func NewCmdPrompt(f *cmdutil.Factory, runF func(*PromptOptions) error) *cobra.Command {
	opts := &PromptOptions{
		IOStreams:   f.IOStreams,
		Settings:    f.Settings,
		StatusCache: f.StatusCache,
	}

	cmd := &cobra.Command{
		Use:   "prompt [dir]",
		Short: "Render the git status segment for a shell prompt",
		Long: `Renders a one-line git status segment for the given directory (default:
the current directory) and prints it without a trailing newline, ready to
embed in PS1.

Outside a git repository, or when status is disabled in settings, nothing
is printed and the exit code is zero. The prompt never breaks the shell.`,
		Example: `  # bash
  PS1='\w $(promptgit prompt) \$ '`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = f.WorkDir
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if runF != nil {
				return runF(opts)
			}
			return promptRun(opts)
		},
	}

	return cmd
}

func promptRun(opts *PromptOptions) error {
	logger.SetPromptMode(true)
	defer logger.SetPromptMode(false)

	st, err := opts.StatusCache().Current(opts.Dir)
	if err != nil {
		if errors.Is(err, git.ErrGitUnavailable) {
			fmt.Fprintln(opts.IOStreams.ErrOut, "promptgit: git executable not found in PATH")
		}
		logger.Debug().Err(err).Str("dir", opts.Dir).Msg("status unavailable")
		return nil
	}

	r := promptpkg.NewRenderer(opts.IOStreams.ColorEnabled())
	if s, err := opts.Settings(); err == nil {
		r.Before = s.Prompt.GetBeforeStatus()
		r.After = s.Prompt.GetAfterStatus()
	}

	if out := r.Render(st); out != "" {
		fmt.Fprint(opts.IOStreams.Out, out)
	}
	return nil
}

// Package init implements first-run setup: scaffolding the settings file and
// emitting shell integration snippets.
package init

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/iostreams"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	IOStreams      *iostreams.IOStreams
	SettingsLoader func() (*config.SettingsLoader, error)

	Shell string
}

// shellHooks maps a shell name to the snippet users eval in their rc file.
var shellHooks = map[string]string{
	"bash": `# promptgit shell integration
__promptgit_prompt() {
  promptgit prompt
}
PS1='\w $(__promptgit_prompt) \$ '
`,
	"zsh": `# promptgit shell integration
setopt PROMPT_SUBST
__promptgit_prompt() {
  promptgit prompt
}
PROMPT='%~ $(__promptgit_prompt) %# '
`,
	"fish": `# promptgit shell integration
function fish_prompt
    printf '%s %s > ' (prompt_pwd) (promptgit prompt)
end
`,
}

// NewCmdInit creates the init command.
func NewCmdInit(f *cmdutil.Factory, runF func(*InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize promptgit user settings",
		Long: `Creates the user settings file at ~/.promptgit/settings.yaml if it does
not exist.

With --shell, also prints an integration snippet for embedding the prompt
segment. Add it to your shell rc file, for example:

  promptgit init --shell zsh >> ~/.zshrc`,
		Example: `  # Scaffold settings only
  promptgit init

  # Print the bash hook
  promptgit init --shell bash`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(opts)
			}
			return initRun(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Shell, "shell", "", "Print an integration snippet for this shell (bash, zsh, fish)")

	return cmd
}

func initRun(opts *InitOptions) error {
	ios := opts.IOStreams

	var hook string
	if opts.Shell != "" {
		var ok bool
		hook, ok = shellHooks[opts.Shell]
		if !ok {
			return cmdutil.FlagErrorf("unsupported shell %q (supported: bash, zsh, fish)", opts.Shell)
		}
	}

	loader, err := opts.SettingsLoader()
	if err != nil {
		return fmt.Errorf("failed to create settings loader: %w", err)
	}

	created, err := loader.EnsureExists()
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	if created {
		fmt.Fprintf(ios.ErrOut, "Created %s\n", loader.Path())
	} else {
		fmt.Fprintf(ios.ErrOut, "Settings already exist at %s\n", loader.Path())
	}

	if hook != "" {
		fmt.Fprint(ios.Out, hook)
	}
	return nil
}

// Package config implements subcommands for inspecting and editing the user
// settings file.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/promptgit/internal/cmdutil"
)

// NewCmdConfig creates the config command group.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage promptgit settings",
		Long: `Inspect and edit the user settings file (~/.promptgit/settings.yaml).

Settings changes take effect on the next prompt render; long-running
consumers pick them up without restarting.`,
	}

	cmd.AddCommand(newCmdPath(f))
	cmd.AddCommand(newCmdDisableRepo(f))
	cmd.AddCommand(newCmdEnableRepo(f))

	return cmd
}

func newCmdPath(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := f.SettingsLoader()
			if err != nil {
				return err
			}
			fmt.Fprintln(f.IOStreams.Out, loader.Path())
			return nil
		},
	}
}

func newCmdDisableRepo(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "disable-repo [dir]",
		Short: "Skip file status under a repository path",
		Long: `Adds a path prefix to file_status.disabled_repos. The prompt still shows
branch and operation state there, but skips the per-file summary. Useful
for repositories large enough that the status tool is slow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := f.WorkDir
			if len(args) > 0 {
				dir = args[0]
			}

			loader, err := f.SettingsLoader()
			if err != nil {
				return err
			}
			if err := loader.AddDisabledRepo(dir); err != nil {
				return err
			}
			f.InvalidateSettingsCache()

			fmt.Fprintf(f.IOStreams.ErrOut, "File status disabled under %s\n", dir)
			return nil
		},
	}
}

func newCmdEnableRepo(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "enable-repo [dir]",
		Short: "Re-enable file status under a repository path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := f.WorkDir
			if len(args) > 0 {
				dir = args[0]
			}

			loader, err := f.SettingsLoader()
			if err != nil {
				return err
			}
			if err := loader.RemoveDisabledRepo(dir); err != nil {
				return err
			}
			f.InvalidateSettingsCache()

			fmt.Fprintf(f.IOStreams.ErrOut, "File status enabled under %s\n", dir)
			return nil
		},
	}
}

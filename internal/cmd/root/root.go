package root

import (
	"github.com/spf13/cobra"

	configcmd "github.com/schmitthub/promptgit/internal/cmd/config"
	initcmd "github.com/schmitthub/promptgit/internal/cmd/init"
	promptcmd "github.com/schmitthub/promptgit/internal/cmd/prompt"
	statuscmd "github.com/schmitthub/promptgit/internal/cmd/status"
	versioncmd "github.com/schmitthub/promptgit/internal/cmd/version"
	watchcmd "github.com/schmitthub/promptgit/internal/cmd/watch"
	"github.com/schmitthub/promptgit/internal/cmdutil"
	internalconfig "github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/logger"
)

// NewCmdRoot creates the root command for the promptgit CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "promptgit <command>",
		Short: "Fast git status for shell prompts",
		Long: `Promptgit renders a git status segment for shell prompts, backed by a
filesystem-watch cache so repeated renders in an unchanged repository cost
a single git invocation.

Quick start:
  promptgit init --shell zsh >> ~/.zshrc   # Install the prompt hook
  promptgit prompt                         # Render the segment once
  promptgit status                         # Full status, human readable
  promptgit watch                          # Live view while you work`,
		SilenceUsage: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f.Debug = debug
			initializeLogger(debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("promptgit starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate) + "\n")

	cmd.AddCommand(promptcmd.NewCmdPrompt(f, nil))
	cmd.AddCommand(statuscmd.NewCmdStatus(f, nil))
	cmd.AddCommand(watchcmd.NewCmdWatch(f, nil))
	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(debug bool) {
	loader, err := internalconfig.NewSettingsLoader()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to create settings loader")
		return
	}

	settings, err := loader.Load()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.FileConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}

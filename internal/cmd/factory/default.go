package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/git"
	"github.com/schmitthub/promptgit/internal/iostreams"
	"github.com/schmitthub/promptgit/internal/logger"
	"github.com/schmitthub/promptgit/internal/status"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/promptgit/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	// Git runner
	var (
		runnerOnce sync.Once
		runner     git.Runner
	)
	f.Runner = func() git.Runner {
		runnerOnce.Do(func() {
			runner = git.NewRunner()
		})
		return runner
	}

	// Settings. The cached value is read from command goroutines and from
	// refresh Cmds in the watch view, so access is mutex-guarded.
	var (
		settingsOnce   sync.Once
		settingsLoader *config.SettingsLoader
		loaderErr      error

		settingsMu   sync.Mutex
		settingsData *config.Settings
		settingsErr  error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		settingsOnce.Do(func() {
			settingsLoader, loaderErr = config.NewSettingsLoader()
		})
		return settingsLoader, loaderErr
	}
	f.Settings = func() (*config.Settings, error) {
		settingsMu.Lock()
		defer settingsMu.Unlock()
		if settingsData != nil || settingsErr != nil {
			return settingsData, settingsErr
		}
		loader, err := f.SettingsLoader()
		if err != nil {
			settingsErr = err
			return nil, err
		}
		settingsData, settingsErr = loader.Load()
		return settingsData, settingsErr
	}
	f.InvalidateSettingsCache = func() {
		settingsMu.Lock()
		defer settingsMu.Unlock()
		settingsData = nil
		settingsErr = nil
	}

	// Status cache, reading settings on every call so config changes take
	// effect without restarting long-running consumers.
	var (
		cacheOnce sync.Once
		cache     *status.Cache
	)
	f.StatusCache = func() *status.Cache {
		cacheOnce.Do(func() {
			cache = status.NewCache(f.Runner(), func() status.Options {
				s, err := f.Settings()
				if err != nil {
					logger.Warn().Err(err).Msg("failed to load settings; using defaults")
					s = config.DefaultSettings()
				}
				return status.Options{
					Enabled:           s.Prompt.IsEnabled(),
					FileStatus:        s.FileStatus.IsEnabled(),
					DisabledRepoPaths: s.FileStatus.DisabledRepos,
					Timing:            s.Prompt.Timing,
				}
			})
		})
		return cache
	}

	return f
}

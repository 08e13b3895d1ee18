package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	// (PROMPTGIT_PROMPT_TIMING=true overrides prompt.timing).
	EnvPrefix = "PROMPTGIT"
)

// SettingsLoader handles loading and saving of user settings.
type SettingsLoader struct {
	path string
}

// NewSettingsLoader creates a new SettingsLoader.
// It resolves the settings path from PROMPTGIT_HOME or the default location.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := PromptgitHome()
	if err != nil {
		return nil, fmt.Errorf("failed to determine promptgit home: %w", err)
	}
	return &SettingsLoader{
		path: filepath.Join(home, SettingsFileName),
	}, nil
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
// Returns false for "file not found" and for other errors (permission denied,
// etc.) since the file cannot be read either way.
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads the settings file with environment overrides applied.
// If the file doesn't exist, returns defaults (not an error). Environment
// variables prefixed with PROMPTGIT_ override file values either way.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering every key gives AutomaticEnv something to match even
	// when the settings file is absent.
	v.SetDefault("prompt.enabled", true)
	v.SetDefault("prompt.timing", false)
	v.SetDefault("prompt.before_status", "")
	v.SetDefault("prompt.after_status", "")
	v.SetDefault("file_status.enabled", true)
	v.SetDefault("file_status.disabled_repos", []string{})
	v.SetDefault("logging.file_enabled", true)
	v.SetDefault("logging.max_size_mb", 0)
	v.SetDefault("logging.max_age_days", 0)
	v.SetDefault("logging.max_backups", 0)

	if l.Exists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

// Save writes the settings to the file.
// Creates the parent directory if it doesn't exist.
func (l *SettingsLoader) Save(s *Settings) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// EnsureExists creates the settings file if it doesn't exist.
// Returns true if the file was created, false if it already existed.
func (l *SettingsLoader) EnsureExists() (bool, error) {
	if l.Exists() {
		return false, nil
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(l.path, []byte(DefaultSettingsYAML), 0644); err != nil {
		return false, fmt.Errorf("failed to write settings file: %w", err)
	}

	return true, nil
}

// AddDisabledRepo adds a repository path to the file-status disabled list if
// not already present. The path is normalized to an absolute path.
func (l *SettingsLoader) AddDisabledRepo(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	settings, err := l.Load()
	if err != nil {
		return err
	}

	for _, p := range settings.FileStatus.DisabledRepos {
		if p == absDir {
			return nil // Already disabled
		}
	}

	settings.FileStatus.DisabledRepos = append(settings.FileStatus.DisabledRepos, absDir)
	return l.Save(settings)
}

// RemoveDisabledRepo removes a repository path from the file-status disabled
// list. The path is normalized to an absolute path.
func (l *SettingsLoader) RemoveDisabledRepo(dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	settings, err := l.Load()
	if err != nil {
		return err
	}

	found := false
	kept := make([]string, 0, len(settings.FileStatus.DisabledRepos))
	for _, p := range settings.FileStatus.DisabledRepos {
		if p == absDir {
			found = true
		} else {
			kept = append(kept, p)
		}
	}

	if !found {
		return nil // Not disabled, nothing to do
	}

	settings.FileStatus.DisabledRepos = kept
	return l.Save(settings)
}

// IsRepoDisabled checks if a directory is on the file-status disabled list.
// The directory is normalized to an absolute path.
func (l *SettingsLoader) IsRepoDisabled(dir string) (bool, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	settings, err := l.Load()
	if err != nil {
		return false, err
	}

	for _, p := range settings.FileStatus.DisabledRepos {
		if p == absDir {
			return true, nil
		}
	}

	return false, nil
}

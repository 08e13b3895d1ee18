package config

// Settings represents user-level configuration stored in ~/.promptgit/settings.yaml.
// Settings are global and apply across all repositories.
type Settings struct {
	// Prompt configures prompt rendering and status computation.
	Prompt PromptSettings `yaml:"prompt,omitempty" mapstructure:"prompt"`

	// FileStatus configures the per-file working tree summary.
	// File status is ENABLED by default - users can disable via settings.yaml.
	FileStatus FileStatusSettings `yaml:"file_status,omitempty" mapstructure:"file_status"`

	// Logging configures file-based logging.
	Logging LoggingSettings `yaml:"logging,omitempty" mapstructure:"logging"`
}

// PromptSettings configures prompt rendering and status computation.
type PromptSettings struct {
	// Enabled is the master switch for status computation (default: true).
	// Set to false in settings.yaml to make every prompt call a no-op.
	Enabled *bool `yaml:"enabled,omitempty" mapstructure:"enabled"`
	// Timing logs the elapsed time of each status recomputation at debug
	// level (default: false)
	Timing bool `yaml:"timing,omitempty" mapstructure:"timing"`
	// BeforeStatus is printed before the status segment (default: "[")
	BeforeStatus string `yaml:"before_status,omitempty" mapstructure:"before_status"`
	// AfterStatus is printed after the status segment (default: "]")
	AfterStatus string `yaml:"after_status,omitempty" mapstructure:"after_status"`
}

// FileStatusSettings configures the per-file working tree summary.
type FileStatusSettings struct {
	// Enabled enables running the porcelain status tool (default: true).
	// When disabled only branch and operation state appear in the prompt.
	Enabled *bool `yaml:"enabled,omitempty" mapstructure:"enabled"`
	// DisabledRepos lists path prefixes where file status is skipped even
	// when enabled. Useful for very large repositories.
	DisabledRepos []string `yaml:"disabled_repos,omitempty" mapstructure:"disabled_repos"`
}

// LoggingSettings configures file-based logging.
type LoggingSettings struct {
	// FileEnabled enables logging to file (default: true)
	// Set to false in ~/.promptgit/settings.yaml to disable
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// IsEnabled returns whether status computation is enabled.
// Defaults to true if not explicitly set.
func (s *PromptSettings) IsEnabled() bool {
	if s.Enabled == nil {
		return true
	}
	return *s.Enabled
}

// GetBeforeStatus returns the status opening delimiter, defaulting to "[".
func (s *PromptSettings) GetBeforeStatus() string {
	if s.BeforeStatus == "" {
		return "["
	}
	return s.BeforeStatus
}

// GetAfterStatus returns the status closing delimiter, defaulting to "]".
func (s *PromptSettings) GetAfterStatus() string {
	if s.AfterStatus == "" {
		return "]"
	}
	return s.AfterStatus
}

// IsEnabled returns whether file status is enabled.
// Defaults to true if not explicitly set.
func (s *FileStatusSettings) IsEnabled() bool {
	if s.Enabled == nil {
		return true
	}
	return *s.Enabled
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (s *LoggingSettings) IsFileEnabled() bool {
	if s.FileEnabled == nil {
		return true
	}
	return *s.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (s *LoggingSettings) GetMaxSizeMB() int {
	if s.MaxSizeMB <= 0 {
		return 10
	}
	return s.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (s *LoggingSettings) GetMaxAgeDays() int {
	if s.MaxAgeDays <= 0 {
		return 7
	}
	return s.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (s *LoggingSettings) GetMaxBackups() int {
	if s.MaxBackups <= 0 {
		return 3
	}
	return s.MaxBackups
}

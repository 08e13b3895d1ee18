package config

// DefaultSettings returns a Settings with every field at its documented default.
func DefaultSettings() *Settings {
	return &Settings{}
}

// DefaultSettingsYAML is the settings file template written on first run.
const DefaultSettingsYAML = `# Promptgit Settings
# Documentation: https://github.com/schmitthub/promptgit

prompt:
  # Master switch for status computation. Set to false to make every
  # prompt call a no-op.
  # enabled: true
  # Log elapsed time of each status recomputation (debug level)
  # timing: false
  # Delimiters around the status segment
  # before_status: "["
  # after_status: "]"

file_status:
  # Per-file working tree summary. When disabled only branch and
  # operation state appear in the prompt.
  # enabled: true
  # Path prefixes where file status is skipped (large repositories)
  # disabled_repos:
  #   - /work/huge-monorepo

logging:
  # File logging with rotation (~/.promptgit/logs/promptgit.log)
  # file_enabled: true
  # max_size_mb: 10
  # max_age_days: 7
  # max_backups: 3
`

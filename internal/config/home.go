package config

import (
	"os"
	"path/filepath"
)

const (
	// PromptgitHomeEnv is the environment variable for the promptgit home directory
	PromptgitHomeEnv = "PROMPTGIT_HOME"
	// DefaultPromptgitDir is the default directory name under user home
	DefaultPromptgitDir = ".promptgit"
	// LogsSubdir is the subdirectory for log files
	LogsSubdir = "logs"
)

// PromptgitHome returns the promptgit home directory.
// It checks PROMPTGIT_HOME environment variable first, then defaults to ~/.promptgit
func PromptgitHome() (string, error) {
	if home := os.Getenv(PromptgitHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultPromptgitDir), nil
}

// LogsDir returns the log file directory (~/.promptgit/logs)
func LogsDir() (string, error) {
	home, err := PromptgitHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrNotRepository is returned when the path is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrGitUnavailable is returned when the git binary cannot be found.
	ErrGitUnavailable = errors.New("git executable not found")
)

// Runner executes git subprocesses and returns their standard output.
// It exists so that higher layers (and tests) can substitute the real
// binary with a fake.
type Runner interface {
	// Output runs git with args in dir and returns trimmed stdout.
	// Standard error is discarded. A non-zero exit returns an error.
	Output(dir string, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by the system git binary.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", ErrGitUnavailable, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

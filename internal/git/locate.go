package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// GitDir resolves the metadata directory for the repository containing dir.
// The result is absolute. Returns ErrNotRepository (wrapped) when dir is not
// inside a git repository.
func GitDir(r Runner, dir string) (string, error) {
	out, err := r.Output(dir, "rev-parse", "--git-dir")
	if err != nil {
		if errors.Is(err, ErrGitUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	gitDir := strings.TrimSpace(out)
	if gitDir == "" {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	return filepath.Clean(gitDir), nil
}

// WorkingRoot resolves the top-level directory of the working tree containing
// dir. Empty rev-parse output means dir itself is the root. The result is
// absolute. Returns ErrNotRepository (wrapped) when dir is not inside a git
// repository.
func WorkingRoot(r Runner, dir string) (string, error) {
	out, err := r.Output(dir, "rev-parse", "--show-cdup")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	cdup := strings.TrimSpace(out)
	if cdup == "" {
		return filepath.Clean(dir), nil
	}
	return filepath.Clean(filepath.Join(dir, cdup)), nil
}

// Within reports whether path is the same as or located under root.
// Both arguments are expected to be cleaned absolute paths.
func Within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

package gittest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is an on-disk fixture repository rooted in a test temp directory.
// Marker files and HEAD states are real files under GitDir, so resolver
// probing and filesystem watching behave exactly as in production.
type Repo struct {
	// Root is the working-tree root.
	Root string

	// GitDir is the metadata directory (Root/.git).
	GitDir string

	repo *gogit.Repository
}

// InitRepo creates a repository with a single initial commit.
func InitRepo(t *testing.T) *Repo {
	t.Helper()

	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err, "failed to init fixture repo")

	r := &Repo{
		Root:   root,
		GitDir: filepath.Join(root, ".git"),
		repo:   repo,
	}
	r.WriteFile(t, "README.md", "# fixture\n")
	r.Commit(t, "initial commit")
	return r
}

// WriteFile writes a file relative to the working root.
func (r *Repo) WriteFile(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(r.Root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// WriteMarker writes a file relative to the metadata directory, creating
// parent directories. Use it to simulate in-progress operations
// (rebase-merge/interactive, MERGE_HEAD, ...).
func (r *Repo) WriteMarker(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(r.GitDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// Commit stages everything and commits, returning the new commit hash.
func (r *Repo) Commit(t *testing.T, message string) plumbing.Hash {
	t.Helper()

	wt, err := r.repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&gogit.AddOptions{All: true}))

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to commit fixture")
	return hash
}

// DetachHead checks out the current commit directly, leaving HEAD detached.
func (r *Repo) DetachHead(t *testing.T) plumbing.Hash {
	t.Helper()

	head, err := r.repo.Head()
	require.NoError(t, err)

	wt, err := r.repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: head.Hash()}))
	return head.Hash()
}

// HeadHash returns the current HEAD commit hash.
func (r *Repo) HeadHash(t *testing.T) plumbing.Hash {
	t.Helper()
	head, err := r.repo.Head()
	require.NoError(t, err)
	return head.Hash()
}

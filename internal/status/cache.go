// Package status computes git working-tree status for prompt rendering and
// caches the result between calls. The cache is invalidated by filesystem
// notifications rather than timers, so an idle repository costs nothing after
// the first computation.
package status

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/promptgit/internal/git"
	"github.com/schmitthub/promptgit/internal/logger"
)

// Options is the configuration surface the cache reads on every call.
// Values come from settings at call time, so config changes take effect
// without restarting the process.
type Options struct {
	// Enabled is the master switch. When false, Current returns nil
	// without touching git or the filesystem.
	Enabled bool

	// FileStatus controls whether the porcelain status tool runs. When
	// false only branch and operation state are resolved.
	FileStatus bool

	// DisabledRepoPaths lists path prefixes where file status is skipped
	// even when FileStatus is true. Useful for very large repositories.
	DisabledRepoPaths []string

	// Timing emits a debug log with the elapsed time of every
	// recomputation.
	Timing bool
}

// Cache memoizes the most recent Status per metadata directory and watches
// the repository for changes that would make it stale.
//
// Events observed between a watcher teardown and its re-establishment are
// still queued and drained on the next call, so a modification racing a
// recomputation invalidates at most one subsequent result.
type Cache struct {
	runner  git.Runner
	options func() Options

	// mu guards pending. The remaining fields are only touched from
	// Current, which prompt rendering calls from a single goroutine.
	mu      sync.Mutex
	pending []fsnotify.Event

	gitDir   string
	last     *git.Status
	watchers []*watcher
}

// NewCache returns a Cache reading configuration through options on every
// call. The runner is used for all git invocations.
func NewCache(runner git.Runner, options func() Options) *Cache {
	return &Cache{runner: runner, options: options}
}

// Current returns the status for dir, reusing the cached result when the
// repository has not changed since it was computed. It returns (nil, nil)
// when status is disabled or dir is not inside a git repository.
func (c *Cache) Current(dir string) (*git.Status, error) {
	opts := c.options()
	if !opts.Enabled {
		return nil, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	changed := c.drain()

	gitDir, err := git.GitDir(c.runner, abs)
	if err != nil {
		// The drained events belong to whatever repository is still
		// cached; put them back so returning there recomputes.
		c.requeue(changed)
		if errors.Is(err, git.ErrNotRepository) {
			return nil, nil
		}
		return nil, err
	}
	insideGitDir := git.Within(abs, gitDir)

	if c.last != nil && c.gitDir == gitDir && !insideGitDir && len(changed) == 0 {
		logger.Debug().Str("git_dir", gitDir).Msg("status cache hit")
		return c.last, nil
	}
	if len(changed) > 0 {
		logger.Debug().Int("events", len(changed)).Str("first", changed[0].Name).Msg("status cache invalidated")
	}

	// Stop watching before recomputation so our own reads never feed the
	// pending queue.
	c.teardown()

	start := time.Now()
	st, workingRoot := c.compute(abs, gitDir, insideGitDir, opts)
	if opts.Timing {
		logger.Debug().Dur("elapsed", time.Since(start)).Str("git_dir", gitDir).Msg("status computed")
	}

	if insideGitDir || git.Within(workingRoot, gitDir) {
		// Watching the metadata directory as a working tree would fire
		// on every git command. Serve the result uncached.
		c.gitDir = ""
		c.last = nil
		return st, nil
	}

	c.gitDir = gitDir
	c.last = st
	c.establish(workingRoot, gitDir)
	return st, nil
}

// compute resolves the full status for abs. Errors from individual git
// invocations degrade the result instead of failing it, matching prompt
// rendering where a partial answer beats none.
func (c *Cache) compute(abs, gitDir string, insideGitDir bool, opts Options) (*git.Status, string) {
	workingRoot, err := git.WorkingRoot(c.runner, abs)
	if err != nil {
		workingRoot = abs
	}

	var res git.ParseResult
	if opts.FileStatus && !underAny(abs, opts.DisabledRepoPaths) && !insideGitDir {
		out, err := c.runner.Output(abs, "-c", "color.status=false", "status", "--short", "--branch")
		if err == nil {
			res = git.ParseStatus(strings.Split(out, "\n"))
		} else {
			logger.Debug().Err(err).Msg("status tool failed, falling back to HEAD resolution")
		}
	}

	branch := res.Branch
	op := git.OpNone
	if !res.BranchFound || insideGitDir {
		ropts := git.ResolveOptions{InsideGitDir: insideGitDir}
		if insideGitDir {
			ropts.Bare = c.isBare(abs)
		}
		branch, op = git.ResolveHEAD(c.runner, gitDir, ropts)
	}

	return &git.Status{
		GitDir:       gitDir,
		Branch:       branch,
		Operation:    op,
		AheadBy:      res.AheadBy,
		BehindBy:     res.BehindBy,
		Index:        res.Index,
		Working:      res.Working,
		HasUntracked: res.HasUntracked(),
	}, workingRoot
}

func (c *Cache) isBare(dir string) bool {
	out, err := c.runner.Output(dir, "rev-parse", "--is-bare-repository")
	return err == nil && strings.TrimSpace(out) == "true"
}

// establish watches the working root, plus the metadata directory when it
// lives outside the root (linked worktrees, submodules).
func (c *Cache) establish(workingRoot, gitDir string) {
	roots := []string{workingRoot}
	if !git.Within(gitDir, workingRoot) {
		roots = append(roots, gitDir)
	}
	for _, root := range roots {
		w, err := newWatcher(root, c.enqueue)
		if err != nil {
			// Without a watcher the cache can never be trusted, so
			// drop the stored result and recompute every call.
			logger.Warn().Err(err).Str("root", root).Msg("filesystem watch unavailable, caching disabled for this repository")
			c.teardown()
			c.gitDir = ""
			c.last = nil
			return
		}
		c.watchers = append(c.watchers, w)
	}
}

func (c *Cache) enqueue(ev fsnotify.Event) {
	c.mu.Lock()
	c.pending = append(c.pending, ev)
	c.mu.Unlock()
}

func (c *Cache) drain() []fsnotify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	evs := c.pending
	c.pending = nil
	return evs
}

// requeue restores drained events at the front of the pending queue.
func (c *Cache) requeue(evs []fsnotify.Event) {
	if len(evs) == 0 {
		return
	}
	c.mu.Lock()
	c.pending = append(evs, c.pending...)
	c.mu.Unlock()
}

func (c *Cache) teardown() {
	for _, w := range c.watchers {
		_ = w.Close()
	}
	c.watchers = nil
}

// Close releases all filesystem watchers. The cache remains usable; the next
// Current call recomputes and re-establishes watching.
func (c *Cache) Close() {
	c.teardown()
	c.gitDir = ""
	c.last = nil
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if git.Within(path, filepath.Clean(p)) {
			return true
		}
	}
	return false
}

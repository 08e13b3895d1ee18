// Package git shells out to the system git binary and interprets its
// line-oriented output into a typed status model.
//
// This is a Tier 1 (Leaf) package in the promptgit architecture:
//   - It imports ONLY stdlib packages
//   - It does NOT import any internal packages
//   - Configuration is passed as parameters, not via config package imports
//
// The package deliberately does not implement any git plumbing itself; it
// locates the repository, probes marker files inside the metadata directory,
// and parses `git status --short --branch` output.
package git

// Operation identifies an in-progress multi-step repository operation that
// overrides normal branch display. At most one is active at a time.
type Operation int

const (
	OpNone Operation = iota
	OpRebaseInteractive
	OpRebaseMerge
	OpRebaseApply
	OpAmApply
	OpAmOrRebase
	OpMerging
	OpCherryPicking
	OpBisecting
)

// String returns the display suffix for the operation, e.g. "REBASE-i".
// OpNone returns the empty string.
func (o Operation) String() string {
	switch o {
	case OpRebaseInteractive:
		return "REBASE-i"
	case OpRebaseMerge:
		return "REBASE-m"
	case OpRebaseApply:
		return "REBASE"
	case OpAmApply:
		return "AM"
	case OpAmOrRebase:
		return "AM/REBASE"
	case OpMerging:
		return "MERGING"
	case OpCherryPicking:
		return "CHERRY-PICKING"
	case OpBisecting:
		return "BISECTING"
	default:
		return ""
	}
}

// ChangeSet groups changed paths by change type. A path appears in at most
// one category within a ChangeSet; the same path may appear in both the index
// and working ChangeSets of a Status (different change types at each level).
type ChangeSet struct {
	Added    []string
	Modified []string
	Deleted  []string
	Unmerged []string
}

// HasAny reports whether any category is non-empty.
func (c ChangeSet) HasAny() bool {
	return len(c.Added)+len(c.Modified)+len(c.Deleted)+len(c.Unmerged) > 0
}

// Count returns the total number of paths across all categories.
func (c ChangeSet) Count() int {
	return len(c.Added) + len(c.Modified) + len(c.Deleted) + len(c.Unmerged)
}

// Paths returns the de-duplicated union of all four categories.
// Order is not significant.
func (c ChangeSet) Paths() []string {
	seen := make(map[string]struct{}, c.Count())
	var paths []string
	for _, group := range [][]string{c.Added, c.Modified, c.Deleted, c.Unmerged} {
		for _, p := range group {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// Status is an immutable snapshot of a repository's state. It is produced by
// one computation pass and never mutated afterwards; a new query produces a
// new instance.
type Status struct {
	// GitDir is the absolute path to the repository metadata directory.
	GitDir string

	// Branch is the display label for HEAD: a branch name, a parenthesized
	// tag/describe form, an abbreviated commit with ellipsis, "GIT_DIR!"
	// when operating inside the metadata directory, or "unknown".
	Branch string

	// Operation is the in-progress operation, OpNone for a plain checkout.
	Operation Operation

	// AheadBy and BehindBy are the commit-count divergence from the
	// configured upstream. Zero when there is no upstream.
	AheadBy  int
	BehindBy int

	// Index holds staged changes, Working holds unstaged ones.
	Index   ChangeSet
	Working ChangeSet

	// HasUntracked is true when the working tree contains untracked files.
	HasUntracked bool
}

// Dirty reports whether any staged or unstaged change is present.
func (s *Status) Dirty() bool {
	return s.Index.HasAny() || s.Working.HasAny()
}

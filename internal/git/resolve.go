package git

import (
	"os"
	"path/filepath"
	"strings"
)

const branchRefPrefix = "refs/heads/"

// ResolveOptions adjusts HEAD resolution for special working locations.
type ResolveOptions struct {
	// InsideGitDir is true when the current location is inside the metadata
	// directory rather than the working tree.
	InsideGitDir bool

	// Bare is true for a bare repository with no working tree.
	Bare bool
}

// ResolveHEAD classifies the repository into an operation state and derives
// the branch display label for HEAD.
//
// Operation markers are probed in a fixed priority order; the first match
// wins. Interactive and merge-style rebases also supply the label directly
// from the rebase-merge/head-name marker. When no marker supplies a label the
// ordered fallback strategies run until one succeeds.
//
// Marker probes are pure existence/content checks: absent files are the
// common case and a marker vanishing between check and read is treated the
// same as absence.
func ResolveHEAD(r Runner, gitDir string, opts ResolveOptions) (string, Operation) {
	branch, op := detectOperation(gitDir)

	if branch == "" {
		for _, strategy := range headStrategies {
			if label, ok := strategy(r, gitDir); ok {
				branch = label
				break
			}
		}
	}
	if branch == "" {
		branch = "unknown"
	}

	if opts.InsideGitDir {
		if opts.Bare {
			branch = "BARE:" + branch
		} else {
			branch = "GIT_DIR!"
		}
	}
	return branch, op
}

// detectOperation probes marker files inside the metadata directory.
// Priority: interactive rebase-merge > rebase-merge > rebase-apply
// subvariants > merge > cherry-pick > bisect.
func detectOperation(gitDir string) (string, Operation) {
	rebaseMerge := filepath.Join(gitDir, "rebase-merge")
	if markerExists(filepath.Join(rebaseMerge, "interactive")) {
		return headNameLabel(rebaseMerge), OpRebaseInteractive
	}
	if markerExists(rebaseMerge) {
		return headNameLabel(rebaseMerge), OpRebaseMerge
	}

	rebaseApply := filepath.Join(gitDir, "rebase-apply")
	switch {
	case markerExists(filepath.Join(rebaseApply, "rebasing")):
		return "", OpRebaseApply
	case markerExists(filepath.Join(rebaseApply, "applying")):
		return "", OpAmApply
	case markerExists(rebaseApply):
		return "", OpAmOrRebase
	case markerExists(filepath.Join(gitDir, "MERGE_HEAD")):
		return "", OpMerging
	case markerExists(filepath.Join(gitDir, "CHERRY_PICK_HEAD")):
		return "", OpCherryPicking
	case markerExists(filepath.Join(gitDir, "BISECT_LOG")):
		return "", OpBisecting
	}
	return "", OpNone
}

// headStrategies is the ordered label fallback chain, short-circuited on the
// first strategy that succeeds.
var headStrategies = []func(Runner, string) (string, bool){
	symbolicRefLabel,
	exactTagLabel,
	rawHeadLabel,
}

// symbolicRefLabel asks git for the symbolic ref of HEAD and strips the
// branch namespace prefix for display.
func symbolicRefLabel(r Runner, gitDir string) (string, bool) {
	out, err := r.Output(gitDir, "symbolic-ref", "-q", "HEAD")
	if err != nil {
		return "", false
	}
	ref := strings.TrimSpace(out)
	if ref == "" {
		return "", false
	}
	return strings.TrimPrefix(ref, branchRefPrefix), true
}

// exactTagLabel resolves a detached HEAD sitting exactly on a tag, rendered
// parenthesized.
func exactTagLabel(r Runner, gitDir string) (string, bool) {
	out, err := r.Output(gitDir, "describe", "--tags", "--exact-match", "HEAD")
	if err != nil {
		return "", false
	}
	tag := strings.TrimSpace(out)
	if tag == "" {
		return "", false
	}
	return "(" + tag + ")", true
}

// rawHeadLabel reads the HEAD file directly: a "ref: X" line yields X
// verbatim, a plain object id yields its abbreviated form with an ellipsis.
func rawHeadLabel(_ Runner, gitDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", false
	}
	head := strings.TrimSpace(string(data))
	if target, ok := strings.CutPrefix(head, "ref: "); ok {
		return strings.TrimSpace(target), true
	}
	if len(head) >= 7 && isHex(head) {
		return head[:7] + "...", true
	}
	return "", false
}

// headNameLabel reads rebase-merge/head-name for the branch being rebased.
// A vanished marker yields the empty label and the caller falls back to the
// strategy chain.
func headNameLabel(rebaseDir string) string {
	data, err := os.ReadFile(filepath.Join(rebaseDir, "head-name"))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(string(data)), branchRefPrefix)
}

func markerExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

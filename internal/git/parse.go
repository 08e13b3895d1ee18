package git

import (
	"regexp"
	"strconv"
)

// ParseResult is the accumulation of one pass over status output.
// Branch is empty (BranchFound false) when no branch header line was present;
// the caller must fall back to ResolveHEAD in that case.
type ParseResult struct {
	Branch      string
	BranchFound bool
	AheadBy     int
	BehindBy    int
	Index       ChangeSet
	Working     ChangeSet
}

// HasUntracked reports whether the working tree contains untracked files.
func (r ParseResult) HasUntracked() bool {
	return len(r.Working.Added) > 0
}

var (
	// ## <branch>[...<upstream>[ [ahead N][, ][behind N]]]
	branchHeaderRe = regexp.MustCompile(
		`^## (?P<branch>\S+?)(?:\.\.\.(?P<upstream>\S+))?(?: \[(?:ahead (?P<ahead>\d+))?(?:, )?(?:behind (?P<behind>\d+))?\])?$`)

	// ## Initial commit on <branch>
	initialCommitRe = regexp.MustCompile(`^## Initial commit on (?P<branch>\S+)$`)

	// <index><working> <path>[ -> <newpath>]
	entryRe = regexp.MustCompile(`^(?P<index>[^#])(?P<working>.) (?P<path>.*?)(?: -> .*)?$`)
)

// statusPatterns are evaluated in order; the first match wins and the rest
// are skipped. Lines matching none of them are silently ignored, which keeps
// the parser forward-compatible with status line formats it does not know.
var statusPatterns = []struct {
	re     *regexp.Regexp
	handle func(*ParseResult, *regexp.Regexp, []string)
}{
	{branchHeaderRe, handleBranchHeader},
	{initialCommitRe, handleInitialCommit},
	{entryRe, handleEntry},
}

// ParseStatus consumes the output of `git status --short --branch`, one line
// per element, and produces the normalized change-set accumulation. Lines are
// independent; there is no cross-line state beyond accumulation.
func ParseStatus(lines []string) ParseResult {
	var res ParseResult
	for _, line := range lines {
		if line == "" {
			continue
		}
		for _, p := range statusPatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			p.handle(&res, p.re, m)
			break
		}
	}
	return res
}

func handleBranchHeader(res *ParseResult, re *regexp.Regexp, m []string) {
	res.Branch = m[re.SubexpIndex("branch")]
	res.BranchFound = true
	if n := m[re.SubexpIndex("ahead")]; n != "" {
		res.AheadBy, _ = strconv.Atoi(n)
	}
	if n := m[re.SubexpIndex("behind")]; n != "" {
		res.BehindBy, _ = strconv.Atoi(n)
	}
}

func handleInitialCommit(res *ParseResult, re *regexp.Regexp, m []string) {
	res.Branch = m[re.SubexpIndex("branch")]
	res.BranchFound = true
}

// handleEntry classifies one two-character status entry. Renames keep only
// the first path. Unmapped status characters (including space) contribute
// nothing to their grouping.
func handleEntry(res *ParseResult, re *regexp.Regexp, m []string) {
	path := m[re.SubexpIndex("path")]

	switch m[re.SubexpIndex("index")] {
	case "A":
		res.Index.Added = append(res.Index.Added, path)
	case "M", "R", "C":
		res.Index.Modified = append(res.Index.Modified, path)
	case "D":
		res.Index.Deleted = append(res.Index.Deleted, path)
	case "U":
		res.Index.Unmerged = append(res.Index.Unmerged, path)
	}

	switch m[re.SubexpIndex("working")] {
	case "?", "A":
		res.Working.Added = append(res.Working.Added, path)
	case "M":
		res.Working.Modified = append(res.Working.Modified, path)
	case "D":
		res.Working.Deleted = append(res.Working.Deleted, path)
	case "U":
		res.Working.Unmerged = append(res.Working.Unmerged, path)
	}
}

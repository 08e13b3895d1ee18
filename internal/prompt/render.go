// Package prompt renders a git status into the single-line segment shells
// embed in their prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/promptgit/internal/git"
)

// Renderer formats a Status as a prompt segment like
//
//	[main|REBASE-i ↑2 ↓1 +1 ~0 -0 | +0 ~2 -1 !]
//
// Delimiters are configurable; colors can be disabled for dumb terminals
// and tests.
type Renderer struct {
	// Before and After delimit the segment.
	Before string
	After  string

	colors bool
}

// NewRenderer returns a Renderer with the default "[" and "]" delimiters.
func NewRenderer(colorEnabled bool) *Renderer {
	return &Renderer{Before: "[", After: "]", colors: colorEnabled}
}

// Render formats st. A nil status renders as the empty string, so callers
// can pass through the "not a repository" case unconditionally.
func (r *Renderer) Render(st *git.Status) string {
	if st == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.Before)
	b.WriteString(r.paint(r.branchStyle(st), st.Branch))
	if st.Operation != git.OpNone {
		b.WriteString(r.paint(OperationStyle, "|"+st.Operation.String()))
	}
	if st.AheadBy > 0 {
		b.WriteString(" " + r.paint(BranchAheadStyle, fmt.Sprintf("↑%d", st.AheadBy)))
	}
	if st.BehindBy > 0 {
		b.WriteString(" " + r.paint(BranchBehindStyle, fmt.Sprintf("↓%d", st.BehindBy)))
	}
	if st.Index.HasAny() {
		b.WriteString(" " + r.paint(IndexStyle, counts(st.Index)))
	}
	if st.Index.HasAny() && st.Working.HasAny() {
		b.WriteString(" |")
	}
	if st.Working.HasAny() {
		b.WriteString(" " + r.paint(WorkingStyle, counts(st.Working)))
	}
	if st.HasUntracked {
		b.WriteString(" " + r.paint(WorkingStyle, "!"))
	}
	b.WriteString(r.After)
	return b.String()
}

// branchStyle picks the branch color from upstream divergence.
func (r *Renderer) branchStyle(st *git.Status) lipgloss.Style {
	switch {
	case st.AheadBy > 0 && st.BehindBy > 0:
		return BranchDivergedStyle
	case st.BehindBy > 0:
		return BranchBehindStyle
	case st.AheadBy > 0:
		return BranchAheadStyle
	default:
		return BranchStyle
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.colors {
		return s
	}
	return style.Render(s)
}

// counts summarizes a change set as "+added ~modified -deleted", with an
// "!unmerged" tail only when conflicts exist.
func counts(cs git.ChangeSet) string {
	s := fmt.Sprintf("+%d ~%d -%d", len(cs.Added), len(cs.Modified), len(cs.Deleted))
	if len(cs.Unmerged) > 0 {
		s += fmt.Sprintf(" !%d", len(cs.Unmerged))
	}
	return s
}

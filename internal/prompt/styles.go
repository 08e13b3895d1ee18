package prompt

import "github.com/charmbracelet/lipgloss"

// ─── Segment Colors ───────────────────────────────────────────────
// ANSI-16 values so the prompt inherits the user's terminal palette.
var (
	ColorBranch    = lipgloss.Color("14") // bright cyan
	ColorAhead     = lipgloss.Color("10") // bright green
	ColorBehind    = lipgloss.Color("9")  // bright red
	ColorDiverged  = lipgloss.Color("11") // bright yellow
	ColorOperation = lipgloss.Color("11")
	ColorIndex     = lipgloss.Color("2") // green
	ColorWorking   = lipgloss.Color("1") // red
)

// Segment styles. Branch color shifts with upstream divergence, matching
// the familiar posh-git scheme.
var (
	BranchStyle         = lipgloss.NewStyle().Foreground(ColorBranch)
	BranchAheadStyle    = lipgloss.NewStyle().Foreground(ColorAhead)
	BranchBehindStyle   = lipgloss.NewStyle().Foreground(ColorBehind)
	BranchDivergedStyle = lipgloss.NewStyle().Foreground(ColorDiverged)
	OperationStyle      = lipgloss.NewStyle().Foreground(ColorOperation).Bold(true)
	IndexStyle          = lipgloss.NewStyle().Foreground(ColorIndex)
	WorkingStyle        = lipgloss.NewStyle().Foreground(ColorWorking)
)

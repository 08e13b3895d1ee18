// Package status implements the human-facing status subcommand, a verbose
// counterpart to the prompt segment.
package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/git"
	"github.com/schmitthub/promptgit/internal/iostreams"
	statuspkg "github.com/schmitthub/promptgit/internal/status"
)

// StatusOptions contains the options for the status command.
type StatusOptions struct {
	IOStreams   *iostreams.IOStreams
	StatusCache func() *statuspkg.Cache

	Dir  string
	JSON bool
}

// statusJSON is the machine-readable projection of a git.Status.
type statusJSON struct {
	GitDir       string     `json:"git_dir"`
	Branch       string     `json:"branch"`
	Operation    string     `json:"operation,omitempty"`
	AheadBy      int        `json:"ahead_by"`
	BehindBy     int        `json:"behind_by"`
	Index        changeJSON `json:"index"`
	Working      changeJSON `json:"working"`
	HasUntracked bool       `json:"has_untracked"`
	Dirty        bool       `json:"dirty"`
}

type changeJSON struct {
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Deleted  []string `json:"deleted"`
	Unmerged []string `json:"unmerged"`
}

// NewCmdStatus creates the status command.
func NewCmdStatus(f *cmdutil.Factory, runF func(*StatusOptions) error) *cobra.Command {
	opts := &StatusOptions{
		IOStreams:   f.IOStreams,
		StatusCache: f.StatusCache,
	}

	cmd := &cobra.Command{
		Use:   "status [dir]",
		Short: "Show the cached git status for a directory",
		Long: `Shows the full status the prompt segment is built from: branch, upstream
divergence, in-progress operation, and per-file index and working tree
changes. Results come from the same cache the prompt uses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = f.WorkDir
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if runF != nil {
				return runF(opts)
			}
			return statusRun(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output status as JSON")

	return cmd
}

func statusRun(opts *StatusOptions) error {
	ios := opts.IOStreams

	st, err := opts.StatusCache().Current(opts.Dir)
	if err != nil {
		return err
	}
	if st == nil {
		fmt.Fprintln(ios.ErrOut, "not a git repository (or status disabled in settings)")
		return cmdutil.SilentError
	}

	if opts.JSON {
		return cmdutil.OutputJSON(ios, toJSON(st))
	}

	printHuman(ios, st)
	return nil
}

func toJSON(st *git.Status) statusJSON {
	op := ""
	if st.Operation != git.OpNone {
		op = st.Operation.String()
	}
	return statusJSON{
		GitDir:       st.GitDir,
		Branch:       st.Branch,
		Operation:    op,
		AheadBy:      st.AheadBy,
		BehindBy:     st.BehindBy,
		Index:        toChangeJSON(st.Index),
		Working:      toChangeJSON(st.Working),
		HasUntracked: st.HasUntracked,
		Dirty:        st.Dirty(),
	}
}

func toChangeJSON(cs git.ChangeSet) changeJSON {
	return changeJSON{
		Added:    emptyNotNil(cs.Added),
		Modified: emptyNotNil(cs.Modified),
		Deleted:  emptyNotNil(cs.Deleted),
		Unmerged: emptyNotNil(cs.Unmerged),
	}
}

// emptyNotNil keeps JSON output at [] instead of null for absent lists.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func printHuman(ios *iostreams.IOStreams, st *git.Status) {
	fmt.Fprintf(ios.Out, "On branch %s\n", st.Branch)
	if st.Operation != git.OpNone {
		fmt.Fprintf(ios.Out, "Operation in progress: %s\n", st.Operation)
	}
	if st.AheadBy > 0 || st.BehindBy > 0 {
		fmt.Fprintf(ios.Out, "Upstream: ahead %d, behind %d\n", st.AheadBy, st.BehindBy)
	}
	fmt.Fprintf(ios.Out, "Git dir: %s\n", st.GitDir)

	printChanges(ios, "Index", st.Index)
	printChanges(ios, "Working tree", st.Working)

	if st.HasUntracked {
		fmt.Fprintln(ios.Out, "\nUntracked files present")
	}
	if !st.Dirty() {
		fmt.Fprintln(ios.Out, "\nWorking tree clean")
	}
}

func printChanges(ios *iostreams.IOStreams, label string, cs git.ChangeSet) {
	if !cs.HasAny() {
		return
	}
	fmt.Fprintf(ios.Out, "\n%s:\n", label)
	for _, p := range cs.Added {
		fmt.Fprintf(ios.Out, "  added:    %s\n", p)
	}
	for _, p := range cs.Modified {
		fmt.Fprintf(ios.Out, "  modified: %s\n", p)
	}
	for _, p := range cs.Deleted {
		fmt.Fprintf(ios.Out, "  deleted:  %s\n", p)
	}
	for _, p := range cs.Unmerged {
		fmt.Fprintf(ios.Out, "  unmerged: %s\n", p)
	}
}

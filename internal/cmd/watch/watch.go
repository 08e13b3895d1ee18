// Package watch implements a live status viewer. It is the long-running
// consumer of the status cache: refreshes are cache hits until the watched
// repository actually changes on disk.
package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/git"
	"github.com/schmitthub/promptgit/internal/iostreams"
	promptpkg "github.com/schmitthub/promptgit/internal/prompt"
	statuspkg "github.com/schmitthub/promptgit/internal/status"
)

// WatchOptions contains the options for the watch command.
type WatchOptions struct {
	IOStreams   *iostreams.IOStreams
	Settings    func() (*config.Settings, error)
	StatusCache func() *statuspkg.Cache

	Dir      string
	Interval time.Duration
}

// NewCmdWatch creates the watch command.
func NewCmdWatch(f *cmdutil.Factory, runF func(*WatchOptions) error) *cobra.Command {
	opts := &WatchOptions{
		IOStreams:   f.IOStreams,
		Settings:    f.Settings,
		StatusCache: f.StatusCache,
	}

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a repository and show its prompt segment live",
		Long: `Shows the prompt segment for a repository and refreshes it as the
repository changes. Refreshes reuse the filesystem-watch cache, so an idle
repository costs nothing between changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = f.WorkDir
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			if runF != nil {
				return runF(opts)
			}
			return watchRun(opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Interval, "interval", 500*time.Millisecond, "Refresh interval")

	return cmd
}

func watchRun(opts *WatchOptions) error {
	if !opts.IOStreams.IsOutputTTY() {
		return fmt.Errorf("watch requires a terminal")
	}

	r := promptpkg.NewRenderer(opts.IOStreams.ColorEnabled())
	if s, err := opts.Settings(); err == nil {
		r.Before = s.Prompt.GetBeforeStatus()
		r.After = s.Prompt.GetAfterStatus()
	}

	cache := opts.StatusCache()
	m := newModel(cache, r, opts.Dir, opts.Interval)

	// The cache is single-consumer; the last in-flight refresh must finish
	// before its watchers are released.
	defer cache.Close()
	defer m.wg.Wait()

	p := tea.NewProgram(
		m,
		tea.WithInput(opts.IOStreams.In),
		tea.WithOutput(opts.IOStreams.Out),
	)
	_, err := p.Run()
	return err
}

type tickMsg time.Time

type refreshMsg struct {
	status *git.Status
	err    error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type model struct {
	cache    *statuspkg.Cache
	renderer *promptpkg.Renderer
	dir      string
	interval time.Duration

	spinner   spinner.Model
	segment   string
	refreshes int
	loaded    bool
	err       error
	quitting  bool

	// refreshing is true while a refresh Cmd is in flight. The cache does
	// not support overlapping calls, so ticks never dispatch a second
	// refresh until the previous one has reported back.
	refreshing bool

	// wg tracks in-flight refresh Cmds so watchRun can wait for the last
	// one before closing the cache.
	wg *sync.WaitGroup
}

func newModel(cache *statuspkg.Cache, r *promptpkg.Renderer, dir string, interval time.Duration) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		cache:    cache,
		renderer: r,
		dir:      dir,
		interval: interval,
		spinner:  sp,
		// Init dispatches the first refresh.
		refreshing: true,
		wg:         &sync.WaitGroup{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh(), m.tick())
}

// refresh computes (or reuses) the status off the UI goroutine.
func (m model) refresh() tea.Cmd {
	cache, dir := m.cache, m.dir
	m.wg.Add(1)
	return func() tea.Msg {
		defer m.wg.Done()
		st, err := cache.Current(dir)
		return refreshMsg{status: st, err: err}
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		if m.refreshing {
			return m, m.tick()
		}
		m.refreshing = true
		return m, tea.Batch(m.refresh(), m.tick())

	case refreshMsg:
		m.refreshing = false
		m.loaded = true
		m.err = msg.err
		m.refreshes++
		if msg.err == nil {
			m.segment = m.renderer.Render(msg.status)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.err != nil:
		body = errStyle.Render(m.err.Error())
	case !m.loaded:
		body = m.spinner.View() + " computing status..."
	case m.segment == "":
		body = dimStyle.Render("not a git repository (or status disabled)")
	default:
		body = m.segment
	}

	return fmt.Sprintf("%s\n\n  %s\n\n%s\n",
		titleStyle.Render("promptgit watch: "+m.dir),
		body,
		dimStyle.Render(fmt.Sprintf("refreshes: %d • q to quit", m.refreshes)))
}

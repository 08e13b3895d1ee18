package watch

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/promptgit/internal/git"
	promptpkg "github.com/schmitthub/promptgit/internal/prompt"
	statuspkg "github.com/schmitthub/promptgit/internal/status"
)

func newTestModel() model {
	return newModel(nil, promptpkg.NewRenderer(false), "/work/repo", 100*time.Millisecond)
}

func TestModelRefreshShowsSegment(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(refreshMsg{status: &git.Status{Branch: "main", AheadBy: 1}})
	m = updated.(model)

	assert.True(t, m.loaded)
	assert.Equal(t, 1, m.refreshes)
	assert.Contains(t, m.View(), "[main ↑1]")
	assert.Contains(t, m.View(), "refreshes: 1")
}

func TestModelNilStatusShowsPlaceholder(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(refreshMsg{status: nil})
	m = updated.(model)

	assert.Contains(t, m.View(), "not a git repository")
}

func TestModelRefreshError(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(refreshMsg{err: errors.New("boom")})
	m = updated.(model)

	assert.Contains(t, m.View(), "boom")
}

func TestModelTickSchedulesRefresh(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tickMsg(time.Now()))

	require.NotNil(t, cmd, "tick should schedule another refresh cycle")
}

func TestModelTickNeverOverlapsRefreshes(t *testing.T) {
	m := newTestModel()
	require.True(t, m.refreshing, "the initial refresh is dispatched by Init")

	// The cache does not support concurrent calls: a tick arriving while a
	// refresh is still in flight must not dispatch a second one.
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(model)
	assert.True(t, m.refreshing)

	updated, _ = m.Update(refreshMsg{status: &git.Status{Branch: "main"}})
	m = updated.(model)
	assert.False(t, m.refreshing)

	updated, _ = m.Update(tickMsg(time.Now()))
	m = updated.(model)
	assert.True(t, m.refreshing, "tick after a completed refresh schedules the next one")
}

func TestModelRefreshReleasesWaitGroup(t *testing.T) {
	cache := statuspkg.NewCache(nil, func() statuspkg.Options { return statuspkg.Options{} })
	m := newModel(cache, promptpkg.NewRenderer(false), t.TempDir(), time.Second)

	cmd := m.refresh()
	msg := cmd()

	// Wait must return once the dispatched refresh has reported back;
	// watchRun relies on this before closing the cache.
	m.wg.Wait()
	assert.IsType(t, refreshMsg{}, msg)
}

func TestModelQuits(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(model)

	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

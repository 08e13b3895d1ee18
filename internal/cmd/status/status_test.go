package status

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/git/gittest"
	"github.com/schmitthub/promptgit/internal/iostreams"
	statuspkg "github.com/schmitthub/promptgit/internal/status"
)

func newTestFactory(t *testing.T, r *gittest.FakeRunner) (*cmdutil.Factory, *iostreams.TestIOStreams) {
	t.Helper()

	ios := iostreams.NewTestIOStreams()
	cache := statuspkg.NewCache(r, func() statuspkg.Options {
		return statuspkg.Options{Enabled: true, FileStatus: true}
	})
	t.Cleanup(cache.Close)

	return &cmdutil.Factory{
		IOStreams:   ios.IOStreams,
		StatusCache: func() *statuspkg.Cache { return cache },
	}, ios
}

func repoFixture(t *testing.T) (string, *gittest.FakeRunner) {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	r := gittest.NewFakeRunner()
	r.Respond(".git\n", "rev-parse", "--git-dir")
	r.Respond("", "rev-parse", "--show-cdup")
	r.Respond(
		"## main...origin/main [ahead 1]\nM  staged.txt\n D gone.txt\n?? new.txt",
		"-c", "color.status=false", "status", "--short", "--branch",
	)
	return root, r
}

func TestStatusRun_Human(t *testing.T) {
	root, r := repoFixture(t)
	f, ios := newTestFactory(t, r)

	cmd := NewCmdStatus(f, nil)
	cmd.SetArgs([]string{root})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	out := ios.OutBuf.String()
	assert.Contains(t, out, "On branch main")
	assert.Contains(t, out, "Upstream: ahead 1, behind 0")
	assert.Contains(t, out, "modified: staged.txt")
	assert.Contains(t, out, "deleted:  gone.txt")
	assert.Contains(t, out, "added:    new.txt")
	assert.Contains(t, out, "Untracked files present")
}

func TestStatusRun_JSON(t *testing.T) {
	root, r := repoFixture(t)
	f, ios := newTestFactory(t, r)

	cmd := NewCmdStatus(f, nil)
	cmd.SetArgs([]string{root, "--json"})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(ios.OutBuf.String()), &got))

	assert.Equal(t, "main", got.Branch)
	assert.Equal(t, 1, got.AheadBy)
	assert.Empty(t, got.Operation)
	assert.Equal(t, []string{"staged.txt"}, got.Index.Modified)
	assert.Equal(t, []string{"gone.txt"}, got.Working.Deleted)
	assert.True(t, got.HasUntracked)
	assert.True(t, got.Dirty)
	assert.Equal(t, []string{}, got.Index.Unmerged, "absent lists serialize as empty arrays")
}

func TestStatusRun_OutsideRepository(t *testing.T) {
	r := gittest.NewFakeRunner()
	r.Fail(os.ErrNotExist, "rev-parse", "--git-dir")
	f, ios := newTestFactory(t, r)

	cmd := NewCmdStatus(f, nil)
	cmd.SetArgs([]string{t.TempDir()})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)
	cmd.SilenceErrors = true

	err := cmd.Execute()

	assert.ErrorIs(t, err, cmdutil.SilentError)
	assert.Contains(t, ios.ErrBuf.String(), "not a git repository")
}

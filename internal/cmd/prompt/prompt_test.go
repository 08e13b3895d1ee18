package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/promptgit/internal/cmdutil"
	"github.com/schmitthub/promptgit/internal/config"
	"github.com/schmitthub/promptgit/internal/git/gittest"
	"github.com/schmitthub/promptgit/internal/iostreams"
	"github.com/schmitthub/promptgit/internal/status"
)

func newTestFactory(t *testing.T, r *gittest.FakeRunner, settings *config.Settings) (*cmdutil.Factory, *iostreams.TestIOStreams) {
	t.Helper()

	ios := iostreams.NewTestIOStreams()
	cache := status.NewCache(r, func() status.Options {
		return status.Options{
			Enabled:           settings.Prompt.IsEnabled(),
			FileStatus:        settings.FileStatus.IsEnabled(),
			DisabledRepoPaths: settings.FileStatus.DisabledRepos,
		}
	})
	t.Cleanup(cache.Close)

	return &cmdutil.Factory{
		IOStreams:   ios.IOStreams,
		Settings:    func() (*config.Settings, error) { return settings, nil },
		StatusCache: func() *status.Cache { return cache },
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
		"## main...origin/main [ahead 2]\nM  staged.txt\n?? new.txt",
		"-c", "color.status=false", "status", "--short", "--branch",
	)
	return root, r
}

func TestPromptRun(t *testing.T) {
	root, r := repoFixture(t)
	f, ios := newTestFactory(t, r, config.DefaultSettings())

	cmd := NewCmdPrompt(f, nil)
	cmd.SetArgs([]string{root})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "[main ↑2 +0 ~1 -0 | +1 ~0 -0 !]", ios.OutBuf.String())
}

func TestPromptRun_CustomDelimiters(t *testing.T) {
	root, r := repoFixture(t)
	settings := config.DefaultSettings()
	settings.Prompt.BeforeStatus = "("
	settings.Prompt.AfterStatus = ")"
	f, ios := newTestFactory(t, r, settings)

	cmd := NewCmdPrompt(f, nil)
	cmd.SetArgs([]string{root})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "(main ↑2 +0 ~1 -0 | +1 ~0 -0 !)", ios.OutBuf.String())
}

func TestPromptRun_OutsideRepositoryPrintsNothing(t *testing.T) {
	r := gittest.NewFakeRunner()
	r.Fail(os.ErrNotExist, "rev-parse", "--git-dir")
	f, ios := newTestFactory(t, r, config.DefaultSettings())

	cmd := NewCmdPrompt(f, nil)
	cmd.SetArgs([]string{t.TempDir()})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	assert.Empty(t, ios.OutBuf.String())
	assert.Empty(t, ios.ErrBuf.String())
}

func TestPromptRun_DisabledPrintsNothing(t *testing.T) {
	root, r := repoFixture(t)
	off := false
	settings := config.DefaultSettings()
	settings.Prompt.Enabled = &off
	f, ios := newTestFactory(t, r, settings)

	cmd := NewCmdPrompt(f, nil)
	cmd.SetArgs([]string{root})
	cmd.SetOut(ios.Out)
	cmd.SetErr(ios.ErrOut)

	require.NoError(t, cmd.Execute())

	assert.Empty(t, ios.OutBuf.String())
	assert.Empty(t, r.Calls(), "disabled prompt should never invoke git")
}

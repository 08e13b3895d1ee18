package git

import (
	"errors"
	"testing"

	"github.com/schmitthub/promptgit/internal/git/gittest"
	"github.com/stretchr/testify/assert"
)

// failingHEAD returns a runner where both git-based label strategies fail,
// forcing resolution down to the raw HEAD read.
func failingHEAD() *gittest.FakeRunner {
	r := gittest.NewFakeRunner()
	r.Fail(errors.New("exit status 1"), "symbolic-ref", "-q", "HEAD")
	r.Fail(errors.New("exit status 128"), "describe", "--tags", "--exact-match", "HEAD")
	return r
}

func TestResolveHEAD_OperationMarkers(t *testing.T) {
	tests := []struct {
		name    string
		markers map[string]string // rel path under .git -> content
		wantOp  Operation
	}{
		{
			name: "interactive rebase",
			markers: map[string]string{
				"rebase-merge/interactive": "",
				"rebase-merge/head-name":   "refs/heads/feature\n",
			},
			wantOp: OpRebaseInteractive,
		},
		{
			name: "rebase merge",
			markers: map[string]string{
				"rebase-merge/head-name": "refs/heads/feature\n",
			},
			wantOp: OpRebaseMerge,
		},
		{
			name:    "rebase apply rebasing",
			markers: map[string]string{"rebase-apply/rebasing": ""},
			wantOp:  OpRebaseApply,
		},
		{
			name:    "am applying",
			markers: map[string]string{"rebase-apply/applying": ""},
			wantOp:  OpAmApply,
		},
		{
			name:    "rebase apply ambiguous",
			markers: map[string]string{"rebase-apply/keep": ""},
			wantOp:  OpAmOrRebase,
		},
		{
			name:    "merging",
			markers: map[string]string{"MERGE_HEAD": "deadbeef\n"},
			wantOp:  OpMerging,
		},
		{
			name:    "cherry picking",
			markers: map[string]string{"CHERRY_PICK_HEAD": "deadbeef\n"},
			wantOp:  OpCherryPicking,
		},
		{
			name:    "bisecting",
			markers: map[string]string{"BISECT_LOG": ""},
			wantOp:  OpBisecting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := gittest.InitRepo(t)
			for rel, content := range tt.markers {
				repo.WriteMarker(t, rel, content)
			}

			r := gittest.NewFakeRunner()
			r.Respond("refs/heads/main", "symbolic-ref", "-q", "HEAD")

			_, op := ResolveHEAD(r, repo.GitDir, ResolveOptions{})

			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestResolveHEAD_RebaseMergeBeatsMergeHead(t *testing.T) {
	repo := gittest.InitRepo(t)
	repo.WriteMarker(t, "rebase-merge/head-name", "refs/heads/topic\n")
	repo.WriteMarker(t, "MERGE_HEAD", "deadbeef\n")

	branch, op := ResolveHEAD(gittest.NewFakeRunner(), repo.GitDir, ResolveOptions{})

	assert.Equal(t, OpRebaseMerge, op)
	assert.Equal(t, "topic", branch)
}

func TestResolveHEAD_HeadNameSuppliesLabel(t *testing.T) {
	repo := gittest.InitRepo(t)
	repo.WriteMarker(t, "rebase-merge/interactive", "")
	repo.WriteMarker(t, "rebase-merge/head-name", "refs/heads/feature/login\n")

	// No runner calls expected: the marker supplies the label directly.
	branch, op := ResolveHEAD(gittest.NewFakeRunner(), repo.GitDir, ResolveOptions{})

	assert.Equal(t, "feature/login", branch)
	assert.Equal(t, OpRebaseInteractive, op)
}

func TestResolveHEAD_SymbolicRef(t *testing.T) {
	repo := gittest.InitRepo(t)

	r := gittest.NewFakeRunner()
	r.Respond("refs/heads/main\n", "symbolic-ref", "-q", "HEAD")

	branch, op := ResolveHEAD(r, repo.GitDir, ResolveOptions{})

	assert.Equal(t, "main", branch)
	assert.Equal(t, OpNone, op)
}

func TestResolveHEAD_ExactTag(t *testing.T) {
	repo := gittest.InitRepo(t)

	r := gittest.NewFakeRunner()
	r.Fail(errors.New("exit status 1"), "symbolic-ref", "-q", "HEAD")
	r.Respond("v1.2.0\n", "describe", "--tags", "--exact-match", "HEAD")

	branch, _ := ResolveHEAD(r, repo.GitDir, ResolveOptions{})

	assert.Equal(t, "(v1.2.0)", branch)
}

func TestResolveHEAD_RawHeadRef(t *testing.T) {
	// go-git writes HEAD as "ref: refs/heads/<default>"; with both git-based
	// strategies failing the raw read yields the ref target verbatim.
	repo := gittest.InitRepo(t)
	repo.WriteMarker(t, "HEAD", "ref: refs/heads/master\n")

	branch, _ := ResolveHEAD(failingHEAD(), repo.GitDir, ResolveOptions{})

	assert.Equal(t, "refs/heads/master", branch)
}

func TestResolveHEAD_RawHeadObjectID(t *testing.T) {
	repo := gittest.InitRepo(t)
	repo.WriteMarker(t, "HEAD", "1234abcd5678ef901234abcd5678ef901234abcd\n")

	branch, _ := ResolveHEAD(failingHEAD(), repo.GitDir, ResolveOptions{})

	assert.Equal(t, "1234abc...", branch)
}

func TestResolveHEAD_Unknown(t *testing.T) {
	repo := gittest.InitRepo(t)
	repo.WriteMarker(t, "HEAD", "not a ref at all\n")

	branch, _ := ResolveHEAD(failingHEAD(), repo.GitDir, ResolveOptions{})

	assert.Equal(t, "unknown", branch)
}

func TestResolveHEAD_InsideGitDir(t *testing.T) {
	repo := gittest.InitRepo(t)

	r := gittest.NewFakeRunner()
	r.Respond("refs/heads/main", "symbolic-ref", "-q", "HEAD")

	branch, _ := ResolveHEAD(r, repo.GitDir, ResolveOptions{InsideGitDir: true})

	assert.Equal(t, "GIT_DIR!", branch)
}

func TestResolveHEAD_BareRepository(t *testing.T) {
	repo := gittest.InitRepo(t)

	r := gittest.NewFakeRunner()
	r.Respond("refs/heads/main", "symbolic-ref", "-q", "HEAD")

	branch, _ := ResolveHEAD(r, repo.GitDir, ResolveOptions{InsideGitDir: true, Bare: true})

	assert.Equal(t, "BARE:main", branch)
}

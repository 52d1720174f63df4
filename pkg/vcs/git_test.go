package vcs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesisops/scrivener/pkg/model"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and replays canned output keyed on
// the git subcommand.
type fakeRunner struct {
	calls  []call
	stdout map[string]string
	fail   map[string]error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	// args[0] is -C, args[1] the directory; the subcommand follows.
	sub := args[2]
	if err, ok := f.fail[sub]; ok {
		return "", err
	}
	return f.stdout[sub], nil
}

func newFakeRepo(f *fakeRunner) *Repository {
	return NewRepository("/work/thesis", WithRunner(f.run))
}

func TestRunTargetsDirectory(t *testing.T) {
	f := &fakeRunner{stdout: map[string]string{"status": "clean"}}
	repo := newFakeRepo(f)

	out, err := repo.Run(context.Background(), "status")
	require.NoError(t, err)
	assert.Equal(t, "clean", out)
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"-C", "/work/thesis", "status"}, f.calls[0].args)
}

func TestCommitAddsBeforeCommitting(t *testing.T) {
	f := &fakeRunner{}
	repo := newFakeRepo(f)

	require.NoError(t, repo.Commit(context.Background(), "draft of chapter 2"))
	require.Len(t, f.calls, 2)
	assert.Equal(t, []string{"-C", "/work/thesis", "add", "--all"}, f.calls[0].args)
	assert.Equal(t, []string{"-C", "/work/thesis", "commit", "-m", "draft of chapter 2"}, f.calls[1].args)
}

func TestBranches(t *testing.T) {
	f := &fakeRunner{stdout: map[string]string{
		"branch": "  alice\n* master\n  experiments\n",
	}}
	repo := newFakeRepo(f)

	branches, current, err := repo.Branches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Branch{"alice", "master", "experiments"}, branches)
	assert.Equal(t, model.Master, current)
}

func TestBranchesNoCurrentMarker(t *testing.T) {
	f := &fakeRunner{stdout: map[string]string{"branch": "  alice\n"}}
	repo := newFakeRepo(f)

	_, _, err := repo.Branches(context.Background())
	assert.Error(t, err)
}

func TestCurrentBranch(t *testing.T) {
	f := &fakeRunner{stdout: map[string]string{"rev-parse": "alice\n"}}
	repo := newFakeRepo(f)

	current, err := repo.CurrentBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Branch("alice"), current)
}

func TestShow(t *testing.T) {
	f := &fakeRunner{stdout: map[string]string{"show": "\\section{Results}\n"}}
	repo := newFakeRepo(f)

	content, err := repo.Show(context.Background(), "master", "results.tex")
	require.NoError(t, err)
	assert.Equal(t, "\\section{Results}\n", string(content))
	assert.Equal(t, []string{"-C", "/work/thesis", "show", "master:results.tex"}, f.calls[0].args)
}

func TestIsMergeConflict(t *testing.T) {
	conflict := fmt.Errorf("git pull origin alice: exit status 1 (stderr: " +
		"CONFLICT (content): Merge conflict in chapter1.tex\nAutomatic merge failed)")
	assert.True(t, IsMergeConflict(conflict))
	assert.False(t, IsMergeConflict(errors.New("ssh: connect to host refused")))
	assert.False(t, IsMergeConflict(nil))
}

package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
)

func stagedRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	for name, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err)
	}
	return dir
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. Equivalent to t.Chdir, which
// requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func commitStaged(t *testing.T, dir string) {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test Author", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestHookPreCommitFlagsStagedViolations(t *testing.T) {
	dir := stagedRepo(t, map[string]string{
		"src/bad.cpp": "int x;\t\n",
	})
	chdir(t, dir)

	_, stderr, err := runCLI(t, "hook", "pre-commit")
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, stderr, "FAIL [trailing-whitespace] src/bad.cpp:1:")
	assert.Contains(t, stderr, "FAIL [tab] src/bad.cpp:1:")
}

func TestHookPreCommitCleanTree(t *testing.T) {
	dir := stagedRepo(t, map[string]string{
		"src/good.cpp": "int x;\n",
	})
	chdir(t, dir)

	_, stderr, err := runCLI(t, "hook", "pre-commit")
	assert.NoError(t, err)
	assert.NotContains(t, stderr, "FAIL")
}

func TestHookCommitMsg(t *testing.T) {
	dir := stagedRepo(t, map[string]string{"a.py": "x = 1\n"})
	chdir(t, dir)

	msgFile := filepath.Join(dir, "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(msgFile, []byte("no issue id here\n"), 0o644))
	_, stderr, err := runCLI(t, "hook", "commit-msg", msgFile)
	require.Error(t, err)
	assert.Contains(t, stderr, "FAIL [commit-message] <commit-message>:")

	require.NoError(t, os.WriteFile(msgFile, []byte("ABC-123 proper message\n"), 0o644))
	_, _, err = runCLI(t, "hook", "commit-msg", msgFile)
	assert.NoError(t, err)
}

func TestHookPreMergeCommitOnlyMarkerApplies(t *testing.T) {
	// Tabs alone do not block a merge; a forbidden marker does.
	dir := stagedRepo(t, map[string]string{
		"merged.cpp": "int y;\t\n",
	})
	chdir(t, dir)

	_, _, err := runCLI(t, "hook", "pre-merge-commit")
	assert.NoError(t, err)

	dir = stagedRepo(t, map[string]string{
		"merged.cpp": "// DO NOT MERGE\nint y;\n",
	})
	chdir(t, dir)

	_, stderr, err := runCLI(t, "hook", "pre-merge-commit")
	require.Error(t, err)
	assert.Contains(t, stderr, "FAIL [forbidden-marker] merged.cpp:1:")
}

func TestHookIgnoresUnstagedEdits(t *testing.T) {
	dir := stagedRepo(t, map[string]string{"a.py": "x = 1\n"})
	commitStaged(t, dir)

	// Dirty the working tree without staging: nothing to validate.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("x = 1 \t\n"), 0o644))
	chdir(t, dir)

	_, _, err := runCLI(t, "hook", "pre-commit")
	assert.NoError(t, err)
}

package status_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/status"
	"gitprompt.dev/gitprompt/testhelpers"
)

func TestReadBranch(t *testing.T) {
	t.Parallel()

	t.Run("reports branch name on a clean repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "main", state.Branch.Name)
		require.False(t, state.Branch.Detached)
		require.Zero(t, state.Branch.Ahead)
		require.Zero(t, state.Branch.Behind)
		require.False(t, state.Files.HasIndexChanges())
		require.False(t, state.Files.HasWorktreeChanges())
	})

	t.Run("reports detached HEAD with sha", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		sha, err := scene.Repo.HeadSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CheckoutDetached())

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.True(t, state.Branch.Detached)
		require.Equal(t, sha, state.Branch.SHA)
	})

	t.Run("reports branch name on a repository with no commits", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEmptyScene(t)

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "main", state.Branch.Name)
		require.Zero(t, state.Branch.Ahead)
		require.Zero(t, state.Branch.Behind)
	})

	t.Run("returns ErrNotARepository outside a repository", func(t *testing.T) {
		t.Parallel()

		_, err := status.Read(t.TempDir())
		require.ErrorIs(t, err, gperrors.ErrNotARepository)
	})
}

func TestReadAheadBehind(t *testing.T) {
	t.Parallel()

	t.Run("counts commits ahead of upstream", func(t *testing.T) {
		t.Parallel()
		origin := testhelpers.NewScene(t)

		clone, err := testhelpers.CloneGitRepo(t.TempDir(), origin.Dir)
		require.NoError(t, err)

		require.NoError(t, clone.CommitFile("a.txt", "a", "first local commit"))
		require.NoError(t, clone.CommitFile("b.txt", "b", "second local commit"))

		state, err := status.Read(clone.Dir)
		require.NoError(t, err)
		require.Equal(t, 2, state.Branch.Ahead)
		require.Zero(t, state.Branch.Behind)
	})

	t.Run("counts commits behind upstream", func(t *testing.T) {
		t.Parallel()
		origin := testhelpers.NewScene(t)

		clone, err := testhelpers.CloneGitRepo(t.TempDir(), origin.Dir)
		require.NoError(t, err)

		require.NoError(t, origin.Repo.CommitFile("new.txt", "new", "upstream moved on"))
		require.NoError(t, clone.RunGit("fetch", "origin"))

		state, err := status.Read(clone.Dir)
		require.NoError(t, err)
		require.Zero(t, state.Branch.Ahead)
		require.Equal(t, 1, state.Branch.Behind)
	})

	t.Run("counts diverged history on both sides", func(t *testing.T) {
		t.Parallel()
		origin := testhelpers.NewScene(t)

		clone, err := testhelpers.CloneGitRepo(t.TempDir(), origin.Dir)
		require.NoError(t, err)

		require.NoError(t, origin.Repo.CommitFile("theirs.txt", "x", "upstream commit"))
		require.NoError(t, clone.CommitFile("ours.txt", "y", "local commit"))
		require.NoError(t, clone.RunGit("fetch", "origin"))

		state, err := status.Read(clone.Dir)
		require.NoError(t, err)
		require.Equal(t, 1, state.Branch.Ahead)
		require.Equal(t, 1, state.Branch.Behind)
	})
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	t.Run("counts untracked files as worktree adds", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		require.NoError(t, scene.Repo.WriteFile("new1.txt", "x"))
		require.NoError(t, scene.Repo.WriteFile("new2.txt", "y"))

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, 2, state.Files.WorktreeAdd)
		require.False(t, state.Files.HasIndexChanges())
	})

	t.Run("counts unstaged modifications and deletions", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		require.NoError(t, scene.Repo.CommitFile("keep.txt", "v1", "add files"))
		require.NoError(t, scene.Repo.CommitFile("gone.txt", "v1", "another file"))

		require.NoError(t, scene.Repo.WriteFile("keep.txt", "v2"))
		require.NoError(t, scene.Repo.DeleteFile("gone.txt"))

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, 1, state.Files.WorktreeEdit)
		require.Equal(t, 1, state.Files.WorktreeRemove)
	})

	t.Run("counts staged adds, edits, and removes", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		require.NoError(t, scene.Repo.CommitFile("edit.txt", "v1", "tracked file"))
		require.NoError(t, scene.Repo.CommitFile("remove.txt", "v1", "removable file"))

		require.NoError(t, scene.Repo.WriteFile("added.txt", "new"))
		require.NoError(t, scene.Repo.WriteFile("edit.txt", "v2"))
		require.NoError(t, scene.Repo.RunGit("rm", "remove.txt"))
		require.NoError(t, scene.Repo.Stage("added.txt", "edit.txt"))

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, 1, state.Files.IndexAdd)
		require.Equal(t, 1, state.Files.IndexEdit)
		require.Equal(t, 1, state.Files.IndexRemove)
		require.False(t, state.Files.HasWorktreeChanges())
	})

	t.Run("counts a staged rename as add plus remove", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		require.NoError(t, scene.Repo.CommitFile("old.txt", "content", "file to rename"))
		require.NoError(t, scene.Repo.RunGit("mv", "old.txt", "new.txt"))

		state, err := status.Read(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, state.Files.IndexAdd+state.Files.IndexRemove, 2)
	})
}

package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitprompt.dev/gitprompt/internal/status"
)

func plain() *Renderer {
	return newRenderer(false)
}

func TestBranchText(t *testing.T) {
	t.Parallel()

	t.Run("plain branch", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "main", BranchText(status.BranchState{Name: "main"}))
	})

	t.Run("detached HEAD includes sha", func(t *testing.T) {
		t.Parallel()
		b := status.BranchState{Name: "HEAD", Detached: true, SHA: "abc123"}
		require.Equal(t, "HEAD(abc123)", BranchText(b))
	})

	t.Run("behind then ahead", func(t *testing.T) {
		t.Parallel()
		b := status.BranchState{Name: "feature", Ahead: 2, Behind: 1}
		require.Equal(t, "feature ↓1 ↑2", BranchText(b))
	})
}

func TestCountsText(t *testing.T) {
	t.Parallel()

	t.Run("omits zero counts", func(t *testing.T) {
		t.Parallel()
		f := status.FileState{WorktreeEdit: 3}
		require.Equal(t, " ~3", WorktreeText(f))
		require.Equal(t, "", IndexText(f))
	})

	t.Run("orders add edit remove", func(t *testing.T) {
		t.Parallel()
		f := status.FileState{IndexAdd: 1, IndexEdit: 2, IndexRemove: 3}
		require.Equal(t, " +1 ~2 -3", IndexText(f))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("clean repository shows only the branch", func(t *testing.T) {
		t.Parallel()
		state := &status.State{Branch: status.BranchState{Name: "main"}}
		require.Equal(t, "[main]", plain().Render(state))
	})

	t.Run("separator appears only when both sections are present", func(t *testing.T) {
		t.Parallel()

		both := &status.State{
			Branch: status.BranchState{Name: "main"},
			Files:  status.FileState{IndexAdd: 1, WorktreeEdit: 2},
		}
		require.Equal(t, "[main +1 | ~2]", plain().Render(both))

		indexOnly := &status.State{
			Branch: status.BranchState{Name: "main"},
			Files:  status.FileState{IndexAdd: 1},
		}
		require.Equal(t, "[main +1]", plain().Render(indexOnly))

		worktreeOnly := &status.State{
			Branch: status.BranchState{Name: "main"},
			Files:  status.FileState{WorktreeRemove: 1},
		}
		require.Equal(t, "[main -1]", plain().Render(worktreeOnly))
	})

	t.Run("full segment with divergence and counts", func(t *testing.T) {
		t.Parallel()
		state := &status.State{
			Branch: status.BranchState{Name: "feature", Ahead: 1, Behind: 2},
			Files:  status.FileState{IndexEdit: 1, WorktreeAdd: 3},
		}
		require.Equal(t, "[feature ↓2 ↑1 ~1 | +3]", plain().Render(state))
	})

	t.Run("colored output wraps sections in escape codes", func(t *testing.T) {
		t.Parallel()
		state := &status.State{Branch: status.BranchState{Name: "main"}}
		out := newRenderer(true).Render(state)
		require.Contains(t, out, "main")
		require.Contains(t, out, "\x1b[")
	})
}

// Package status reads the repository state shown in the prompt segment:
// the current branch, its position relative to upstream, and staged and
// unstaged file counts. All reads go through go-git, no git binary required.
package status

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// BranchState describes where HEAD is and how it relates to its upstream
type BranchState struct {
	Name     string
	Ahead    int
	Behind   int
	Detached bool
	SHA      string
}

// FileState holds add/edit/remove counts for the index and the worktree
type FileState struct {
	WorktreeAdd    int
	WorktreeEdit   int
	WorktreeRemove int
	IndexAdd       int
	IndexEdit      int
	IndexRemove    int
}

// HasIndexChanges reports whether any index counter is non-zero
func (f FileState) HasIndexChanges() bool {
	return f.IndexAdd > 0 || f.IndexEdit > 0 || f.IndexRemove > 0
}

// HasWorktreeChanges reports whether any worktree counter is non-zero
func (f FileState) HasWorktreeChanges() bool {
	return f.WorktreeAdd > 0 || f.WorktreeEdit > 0 || f.WorktreeRemove > 0
}

// State is the full repository snapshot rendered into the segment
type State struct {
	Branch BranchState
	Files  FileState
}

// Read opens the repository containing dir and returns its prompt state.
// Returns ErrNotARepository when dir is not inside a git repository.
func Read(dir string) (*State, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, gperrors.ErrNotARepository
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	branch, err := readBranchState(repo)
	if err != nil {
		return nil, err
	}

	files, err := readFileState(repo)
	if err != nil {
		return nil, err
	}

	return &State{Branch: *branch, Files: *files}, nil
}

// readBranchState resolves HEAD, its detached flag, and ahead/behind counts
// relative to the configured upstream (zero when no upstream exists).
func readBranchState(repo *gogit.Repository) (*BranchState, error) {
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return unbornBranchState(repo)
		}
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	detached, err := isDetached(repo)
	if err != nil {
		return nil, err
	}

	state := &BranchState{
		Name:     head.Name().Short(),
		Detached: detached,
		SHA:      head.Hash().String(),
	}

	upstream, ok := upstreamHash(repo, head)
	if !ok {
		return state, nil
	}

	ahead, behind, err := aheadBehind(repo, head.Hash(), upstream)
	if err != nil {
		return nil, fmt.Errorf("failed to count ahead/behind: %w", err)
	}
	state.Ahead = ahead
	state.Behind = behind

	return state, nil
}

// unbornBranchState handles a repository with no commits yet: the branch name
// comes from the symbolic HEAD target and every counter stays zero.
func unbornBranchState(repo *gogit.Repository) (*BranchState, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return nil, gperrors.ErrUnbornHead
	}
	if ref.Type() != plumbing.SymbolicReference {
		return nil, gperrors.ErrUnbornHead
	}
	return &BranchState{Name: ref.Target().Short()}, nil
}

// isDetached reports whether HEAD points directly at a commit
func isDetached(repo *gogit.Repository) (bool, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return false, fmt.Errorf("failed to read HEAD reference: %w", err)
	}
	return ref.Type() == plumbing.HashReference, nil
}

// upstreamHash resolves the remote-tracking ref for HEAD's branch. The bool
// is false when the branch has no upstream configured or the tracking ref
// has not been fetched yet.
func upstreamHash(repo *gogit.Repository, head *plumbing.Reference) (plumbing.Hash, bool) {
	if !head.Name().IsBranch() {
		return plumbing.ZeroHash, false
	}

	cfg, err := repo.Config()
	if err != nil {
		return plumbing.ZeroHash, false
	}

	branchCfg, ok := cfg.Branches[head.Name().Short()]
	if !ok || branchCfg.Remote == "" || branchCfg.Merge == "" {
		return plumbing.ZeroHash, false
	}

	trackingName := plumbing.NewRemoteReferenceName(branchCfg.Remote, branchCfg.Merge.Short())
	tracking, err := repo.Reference(trackingName, true)
	if err != nil {
		return plumbing.ZeroHash, false
	}

	return tracking.Hash(), true
}

// readFileState counts files per status code the way the prompt reports them:
// renames count as one add plus one remove.
func readFileState(repo *gogit.Repository) (*FileState, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return &FileState{}, nil
		}
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	st, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	state := &FileState{}
	for _, fs := range st {
		switch fs.Worktree {
		case gogit.Untracked:
			state.WorktreeAdd++
			// Untracked files show '?' on both sides. Nothing staged.
			continue
		case gogit.Modified, gogit.UpdatedButUnmerged:
			state.WorktreeEdit++
		case gogit.Deleted:
			state.WorktreeRemove++
		case gogit.Renamed:
			state.WorktreeAdd++
			state.WorktreeRemove++
		}

		switch fs.Staging {
		case gogit.Added, gogit.Copied:
			state.IndexAdd++
		case gogit.Modified:
			state.IndexEdit++
		case gogit.Deleted:
			state.IndexRemove++
		case gogit.Renamed:
			state.IndexAdd++
			state.IndexRemove++
		}
	}

	return state, nil
}

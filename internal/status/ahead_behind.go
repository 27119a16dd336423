package status

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	gogit "github.com/go-git/go-git/v5"
)

// aheadBehind counts commits reachable from local but not upstream (ahead)
// and vice versa (behind), pruning the walk at their merge bases.
func aheadBehind(repo *gogit.Repository, local, upstream plumbing.Hash) (int, int, error) {
	if local == upstream {
		return 0, 0, nil
	}

	localCommit, err := object.GetCommit(repo.Storer, local)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load local commit: %w", err)
	}
	upstreamCommit, err := object.GetCommit(repo.Storer, upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load upstream commit: %w", err)
	}

	bases, err := localCommit.MergeBase(upstreamCommit)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find merge base: %w", err)
	}

	stop := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		stop = append(stop, base.Hash)
	}

	ahead, err := countReachable(localCommit, stop)
	if err != nil {
		return 0, 0, err
	}
	behind, err := countReachable(upstreamCommit, stop)
	if err != nil {
		return 0, 0, err
	}

	return ahead, behind, nil
}

// countReachable walks ancestors of from, not descending past stop commits
func countReachable(from *object.Commit, stop []plumbing.Hash) (int, error) {
	count := 0
	iter := object.NewCommitPreorderIter(from, nil, stop)
	err := iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return 0, fmt.Errorf("failed to walk commits: %w", err)
	}
	return count, nil
}

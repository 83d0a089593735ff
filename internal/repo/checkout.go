package repo

import (
	"fmt"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/worktree"
)

// CheckoutResult describes where a checkout landed.
type CheckoutResult struct {
	Branch   string // non-empty when HEAD attached to a branch
	Detached bool
	Commit   *meta.Commit
}

// Checkout replaces the working tree with the target snapshot. A ref is
// resolved as a branch name first, then as a commit digest. The mutation
// order (verify, reset, materialize, HEAD, index) keeps a crashed
// checkout re-runnable: blobs are content-addressed, so repeating it
// converges to the target state.
func (r *Repository) Checkout(ref string) (*CheckoutResult, error) {
	var targetDigest string
	var targetBranch string

	if r.Meta.BranchExists(ref) {
		d, err := r.Meta.GetBranch(ref)
		if err != nil {
			return nil, err
		}
		if d == "" {
			return nil, fmt.Errorf("branch %q points to no commit: %w", ref, ErrUnbornHead)
		}
		targetBranch = ref
		targetDigest = d
	} else if r.Objects.Exists(ref) {
		targetDigest = ref
	} else {
		return nil, &RefNotFoundError{Ref: ref}
	}

	unsafe, err := r.hasUnstagedChanges()
	if err != nil {
		return nil, err
	}
	if unsafe {
		return nil, ErrWouldOverwrite
	}

	// Load and verify before touching anything.
	target, err := r.LoadCommit(targetDigest)
	if err != nil {
		return nil, err
	}
	for p, d := range target.Snapshot {
		if !r.Objects.Exists(d) {
			return nil, &CorruptCommitError{
				Digest: targetDigest,
				Err:    fmt.Errorf("dangling blob %s for %q", d, p),
			}
		}
	}

	if err := worktree.Reset(r.Config.WorkRoot); err != nil {
		return nil, err
	}
	label := targetBranch
	if label == "" {
		label = meta.ShortDigest(targetDigest)
	}
	if err := worktree.Materialize(r.Config.WorkRoot, target.Snapshot, r.Objects, label); err != nil {
		return nil, err
	}

	if targetBranch != "" {
		if err := r.Meta.AttachHead(targetBranch); err != nil {
			return nil, err
		}
	} else {
		if err := r.Meta.DetachHead(targetDigest); err != nil {
			return nil, err
		}
	}

	ix, err := r.LoadIndex()
	if err != nil {
		return nil, err
	}
	ix.Clear()
	if err := ix.Save(); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Branch:   targetBranch,
		Detached: targetBranch == "",
		Commit:   target,
	}, nil
}

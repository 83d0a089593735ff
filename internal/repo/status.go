package repo

import (
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/worktree"
)

// Status computes the working-tree classification against HEAD and the
// index.
func (r *Repository) Status() (*worktree.Status, error) {
	ix, err := r.LoadIndex()
	if err != nil {
		return nil, err
	}

	headSnapshot, err := r.HeadSnapshot()
	if err != nil {
		return nil, err
	}

	w, err := worktree.Scan(r.Config.WorkRoot, r.Hash)
	if err != nil {
		return nil, err
	}

	return worktree.Classify(w, headSnapshot, ix), nil
}

// hasUnstagedChanges is the safety gate shared by checkout and merge.
func (r *Repository) hasUnstagedChanges() (bool, error) {
	st, err := r.Status()
	if err != nil {
		return false, err
	}
	return st.HasUnstagedChanges(), nil
}

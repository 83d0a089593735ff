package repo

import (
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

// CreateBranch creates a new branch at the current HEAD commit.
func (r *Repository) CreateBranch(name string) error {
	if err := meta.ValidateBranchName(name); err != nil {
		return err
	}
	if r.Meta.BranchExists(name) {
		return &BranchExistsError{Name: name}
	}

	d, err := r.Meta.ResolveHead()
	if err != nil {
		return err
	}
	if d == "" {
		return ErrUnbornHead
	}

	return r.Meta.SetBranch(name, d)
}

// DeleteBranch removes a branch ref; the branch HEAD is attached to is
// protected.
func (r *Repository) DeleteBranch(name string) error {
	return r.Meta.DeleteBranch(name)
}

// Branches lists all branches sorted by name.
func (r *Repository) Branches() ([]meta.Branch, error) {
	return r.Meta.ListBranches()
}

package repo

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/history"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/store/worktree"
)

// MergeOutcome discriminates the merge result.
type MergeOutcome int

const (
	MergeUpToDate MergeOutcome = iota
	MergeFastForward
	MergeCommitted
)

// MergeResult describes a completed merge.
type MergeResult struct {
	Outcome MergeOutcome
	Commit  *meta.Commit // the merge commit, or the fast-forward target
}

// Merge joins branch B into the current branch: already-up-to-date and
// fast-forward detection first, then three-way per-path reconciliation
// against the lowest common ancestor. Conflicts are materialized as
// marker files and reported via MergeConflictError without creating a
// commit or moving refs.
func (r *Repository) Merge(branchName string) (*MergeResult, error) {
	head, err := r.Meta.ReadHead()
	if err != nil {
		return nil, err
	}
	if head.Detached {
		return nil, ErrCannotMergeDetached
	}
	if head.Branch == branchName {
		return nil, fmt.Errorf("cannot merge branch %q into itself", branchName)
	}

	if !r.Meta.BranchExists(branchName) {
		return nil, &RefNotFoundError{Ref: branchName}
	}
	otherDigest, err := r.Meta.GetBranch(branchName)
	if err != nil {
		return nil, err
	}
	if otherDigest == "" {
		return nil, fmt.Errorf("branch %q has no commits: %w", branchName, ErrUnbornHead)
	}

	currentDigest, err := r.Meta.ResolveHead()
	if err != nil {
		return nil, err
	}
	if currentDigest == "" {
		return nil, ErrUnbornHead
	}

	unsafe, err := r.hasUnstagedChanges()
	if err != nil {
		return nil, err
	}
	if unsafe {
		return nil, ErrWouldOverwrite
	}

	load := r.commitLoader()

	if currentDigest == otherDigest || history.IsAncestor(load, otherDigest, currentDigest) {
		return &MergeResult{Outcome: MergeUpToDate}, nil
	}

	if history.IsAncestor(load, currentDigest, otherDigest) {
		return r.fastForward(head.Branch, branchName, otherDigest)
	}

	return r.threeWay(head.Branch, branchName, currentDigest, otherDigest)
}

// fastForward advances the current branch to the other tip without a new
// commit.
func (r *Repository) fastForward(currentBranch, otherBranch, otherDigest string) (*MergeResult, error) {
	target, err := r.LoadCommit(otherDigest)
	if err != nil {
		return nil, err
	}

	if err := r.Meta.SetBranch(currentBranch, otherDigest); err != nil {
		return nil, err
	}

	ix, err := r.LoadIndex()
	if err != nil {
		return nil, err
	}
	ix.Clear()
	if err := ix.Save(); err != nil {
		return nil, err
	}

	if err := worktree.Reset(r.Config.WorkRoot); err != nil {
		return nil, err
	}
	if err := worktree.Materialize(r.Config.WorkRoot, target.Snapshot, r.Objects, fmt.Sprintf("branch '%s'", otherBranch)); err != nil {
		return nil, err
	}

	return &MergeResult{Outcome: MergeFastForward, Commit: target}, nil
}

// threeWay reconciles each path across base, current, and other.
func (r *Repository) threeWay(currentBranch, otherBranch, currentDigest, otherDigest string) (*MergeResult, error) {
	load := r.commitLoader()

	baseDigest, ok := history.FindLCA(load, currentDigest, otherDigest)
	if !ok {
		return nil, ErrNoCommonAncestor
	}

	base, err := r.LoadCommit(baseDigest)
	if err != nil {
		return nil, err
	}
	current, err := r.LoadCommit(currentDigest)
	if err != nil {
		return nil, err
	}
	other, err := r.LoadCommit(otherDigest)
	if err != nil {
		return nil, err
	}

	merged, conflicts := mergeSnapshots(base.Snapshot, current.Snapshot, other.Snapshot)

	if len(conflicts) > 0 {
		return nil, r.materializeConflicts(merged, conflicts, current.Snapshot, other.Snapshot, otherBranch)
	}

	c := &meta.Commit{
		Message:   fmt.Sprintf("Merge branch '%s' into %s", otherBranch, currentBranch),
		Author:    r.Settings.Author,
		Timestamp: time.Now().Format(meta.TimestampLayout),
		Parents:   []string{currentDigest, otherDigest},
		Snapshot:  merged,
	}
	d, err := r.Objects.Put(c.Serialize())
	if err != nil {
		return nil, err
	}
	c.Digest = d

	if err := r.Meta.SetBranch(currentBranch, d); err != nil {
		return nil, err
	}

	if err := worktree.Reset(r.Config.WorkRoot); err != nil {
		return nil, err
	}
	if err := worktree.Materialize(r.Config.WorkRoot, merged, r.Objects, fmt.Sprintf("merge of '%s'", otherBranch)); err != nil {
		return nil, err
	}

	ix, err := r.LoadIndex()
	if err != nil {
		return nil, err
	}
	ix.Clear()
	for p, bd := range merged {
		ix.Stage(p, bd)
	}
	if err := ix.Save(); err != nil {
		return nil, err
	}

	return &MergeResult{Outcome: MergeCommitted, Commit: c}, nil
}

// mergeSnapshots applies the three-way table per path: identical on both
// sides keeps either; a side matching the base yields to the other side
// (including deletions); everything else conflicts. Conflicted paths are
// omitted from the merged mapping.
func mergeSnapshots(base, current, other map[string]string) (map[string]string, []string) {
	merged := make(map[string]string)
	var conflicts []string

	paths := make(map[string]struct{}, len(base)+len(current)+len(other))
	for p := range base {
		paths[p] = struct{}{}
	}
	for p := range current {
		paths[p] = struct{}{}
	}
	for p := range other {
		paths[p] = struct{}{}
	}

	for p := range paths {
		l, c, o := base[p], current[p], other[p]

		switch {
		case c == o:
			if c != "" {
				merged[p] = c
			}
		case l == c:
			if o != "" {
				merged[p] = o
			}
		case l == o:
			if c != "" {
				merged[p] = c
			}
		default:
			conflicts = append(conflicts, p)
		}
	}

	sort.Strings(conflicts)
	return merged, conflicts
}

// materializeConflicts writes marker files for every conflicted path,
// re-seeds the index with the merged paths plus the conflicted files in
// their tentative state, and reports the conflict set. No commit is
// created and no ref moves.
func (r *Repository) materializeConflicts(merged map[string]string, conflicts []string, current, other map[string]string, otherBranch string) error {
	ix, err := r.LoadIndex()
	if err != nil {
		return err
	}
	ix.Clear()
	for p, d := range merged {
		ix.Stage(p, d)
	}

	// Non-conflicting results enter the working tree too, so the seeded
	// index matches what is on disk.
	if err := worktree.Materialize(r.Config.WorkRoot, merged, r.Objects, fmt.Sprintf("merge of '%s'", otherBranch)); err != nil {
		return err
	}

	for _, p := range conflicts {
		content, err := r.conflictContent(current[p], other[p], otherBranch)
		if err != nil {
			return err
		}

		abs := filepath.Join(r.Config.WorkRoot, filepath.FromSlash(p))
		if err := fsio.WriteFileAtomic(abs, content, 0o644); err != nil {
			return err
		}

		d, err := r.Objects.Put(content)
		if err != nil {
			return err
		}
		ix.Stage(p, d)
	}

	if err := ix.Save(); err != nil {
		return err
	}
	return &MergeConflictError{Paths: conflicts}
}

// conflictContent renders the conflict markers around both sides' bytes.
// An absent side contributes nothing between its markers.
func (r *Repository) conflictContent(currentDigest, otherDigest, otherBranch string) ([]byte, error) {
	var currentBytes, otherBytes []byte
	var err error

	if currentDigest != "" {
		if currentBytes, err = r.Objects.Get(currentDigest); err != nil {
			return nil, err
		}
	}
	if otherDigest != "" {
		if otherBytes, err = r.Objects.Get(otherDigest); err != nil {
			return nil, err
		}
	}

	content := make([]byte, 0, len(currentBytes)+len(otherBytes)+64)
	content = append(content, []byte("<<<<<<< HEAD\n")...)
	content = append(content, currentBytes...)
	content = append(content, []byte("=======\n")...)
	content = append(content, otherBytes...)
	content = append(content, []byte(">>>>>>> "+otherBranch+"\n")...)
	return content, nil
}

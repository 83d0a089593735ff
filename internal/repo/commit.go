package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/history"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

// LoadCommit reads and parses a commit object. Parse failures surface as
// CorruptCommitError.
func (r *Repository) LoadCommit(d string) (*meta.Commit, error) {
	data, err := r.Objects.Get(d)
	if err != nil {
		return nil, &CorruptCommitError{Digest: d, Err: err}
	}
	c, err := meta.ParseCommit(data)
	if err != nil {
		return nil, &CorruptCommitError{Digest: d, Err: err}
	}
	c.Digest = d
	return c, nil
}

// commitLoader adapts LoadCommit for the ancestry walks.
func (r *Repository) commitLoader() history.LoadFunc {
	return func(d string) (*meta.Commit, error) { return r.LoadCommit(d) }
}

// HeadSnapshot returns the snapshot of the commit HEAD points to, or an
// empty map on an unborn HEAD.
func (r *Repository) HeadSnapshot() (map[string]string, error) {
	d, err := r.Meta.ResolveHead()
	if err != nil {
		return nil, err
	}
	if d == "" {
		return map[string]string{}, nil
	}
	c, err := r.LoadCommit(d)
	if err != nil {
		return nil, err
	}
	return c.Snapshot, nil
}

// Commit records the staged changes as a new commit and advances the
// current branch (or moves a detached HEAD). Returns ErrNothingToCommit
// on an empty index.
func (r *Repository) Commit(message string) (*meta.Commit, error) {
	if strings.Contains(message, "\n") {
		return nil, fmt.Errorf("commit message must be a single line")
	}

	ix, err := r.LoadIndex()
	if err != nil {
		return nil, err
	}
	if ix.IsEmpty() {
		return nil, ErrNothingToCommit
	}

	head, err := r.Meta.ReadHead()
	if err != nil {
		return nil, err
	}
	headDigest, err := r.Meta.ResolveHead()
	if err != nil {
		return nil, err
	}

	headSnapshot := map[string]string{}
	if headDigest != "" {
		parent, err := r.LoadCommit(headDigest)
		if err != nil {
			return nil, err
		}
		headSnapshot = parent.Snapshot
	}

	c := &meta.Commit{
		Message:   message,
		Author:    r.Settings.Author,
		Timestamp: time.Now().Format(meta.TimestampLayout),
		Snapshot:  ix.SnapshotForCommit(headSnapshot),
	}
	if headDigest != "" {
		c.Parents = []string{headDigest}
	}

	d, err := r.Objects.Put(c.Serialize())
	if err != nil {
		return nil, err
	}
	c.Digest = d

	if head.Detached {
		if err := r.Meta.DetachHead(d); err != nil {
			return nil, err
		}
	} else {
		if err := r.Meta.SetBranch(head.Branch, d); err != nil {
			return nil, err
		}
	}

	ix.Clear()
	if err := ix.Save(); err != nil {
		return nil, err
	}
	return c, nil
}

package worktree

import (
	"sort"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/config"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/index"
)

// Status classifies every known path into exactly one bucket, comparing
// the working tree W and HEAD snapshot H against the index.
type Status struct {
	StagedNew        []string // in staged, not in H
	StagedModified   []string // in staged, in H, staged != H
	StagedDeleted    []string // in removed
	UnstagedModified []string // in W, in H, not staged, W != H
	UnstagedDeleted  []string // in H, not in W, not removed
	IndexStale       []string // in staged, in W, staged != W
	Untracked        []string // in W, not in H, not staged
	Clean            []string // tracked or staged content matching the working copy
}

// Classify buckets the union of W, H, staged, and removed paths. The
// bucket predicates overlap; first match wins, in the order the fields
// are declared above.
func Classify(w, h map[string]string, ix *index.Index) *Status {
	s := &Status{}

	paths := make(map[string]struct{}, len(w)+len(h))
	for p := range w {
		paths[p] = struct{}{}
	}
	for p := range h {
		paths[p] = struct{}{}
	}
	for p := range ix.Staged {
		paths[p] = struct{}{}
	}
	for p := range ix.Removed {
		paths[p] = struct{}{}
	}

	for p := range paths {
		if p == config.IgnoreManifest {
			continue // never reported; Scan skips it in W as well
		}
		wd, inW := w[p]
		hd, inH := h[p]
		sd, inStaged := ix.Staged[p]
		_, inRemoved := ix.Removed[p]

		switch {
		case inStaged && !inH:
			s.StagedNew = append(s.StagedNew, p)
		case inStaged && sd != hd:
			s.StagedModified = append(s.StagedModified, p)
		case inRemoved:
			s.StagedDeleted = append(s.StagedDeleted, p)
		case inW && inH && !inStaged && wd != hd:
			s.UnstagedModified = append(s.UnstagedModified, p)
		case inH && !inW && !inRemoved:
			s.UnstagedDeleted = append(s.UnstagedDeleted, p)
		case inStaged && inW && sd != wd:
			s.IndexStale = append(s.IndexStale, p)
		case inW && !inH && !inStaged:
			s.Untracked = append(s.Untracked, p)
		default:
			s.Clean = append(s.Clean, p)
		}
	}

	for _, b := range [][]string{
		s.StagedNew, s.StagedModified, s.StagedDeleted,
		s.UnstagedModified, s.UnstagedDeleted, s.IndexStale,
		s.Untracked, s.Clean,
	} {
		sort.Strings(b)
	}
	return s
}

// HasUnstagedChanges is the safety predicate for checkout and merge: true
// iff any path is unstaged-modified, unstaged-deleted, index-stale, or
// untracked. Paths in a staged bucket never trip it, whatever their
// working copy holds.
func (s *Status) HasUnstagedChanges() bool {
	return len(s.UnstagedModified) > 0 ||
		len(s.UnstagedDeleted) > 0 ||
		len(s.IndexStale) > 0 ||
		len(s.Untracked) > 0
}

package index

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/fsio"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/util"
)

// Index is the staging area: the pending mutation set layered over HEAD's
// snapshot. Staged keys and Removed members stay disjoint; staging a path
// clears it from Removed and vice versa.
type Index struct {
	path    string
	Staged  map[string]string   // path -> blob digest
	Removed map[string]struct{} // paths marked for deletion in the next commit
}

// Load reads the index file. A missing file is an empty index.
//
// Line format (whitespace-separated):
//
//	staged <digest> <path>
//	removed <path>
//
// Paths may contain spaces: the path field is everything after the second
// space for staged lines and after the first space for removed lines.
func Load(path string) (*Index, error) {
	ix := &Index{
		path:    path,
		Staged:  make(map[string]string),
		Removed: make(map[string]struct{}),
	}

	data, err := fsio.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ix, nil
		}
		return nil, fmt.Errorf("read index %q: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		kind, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue // malformed line
		}
		switch kind {
		case "staged":
			d, p, ok := strings.Cut(rest, " ")
			if !ok || p == "" {
				continue
			}
			ix.Staged[p] = d
		case "removed":
			ix.Removed[rest] = struct{}{}
		}
	}
	return ix, nil
}

// Save persists the index atomically, staged lines first, sorted by path.
func (ix *Index) Save() error {
	var sb strings.Builder
	for _, p := range util.SortedKeys(ix.Staged) {
		sb.WriteString("staged ")
		sb.WriteString(ix.Staged[p])
		sb.WriteByte(' ')
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	removed := make([]string, 0, len(ix.Removed))
	for p := range ix.Removed {
		removed = append(removed, p)
	}
	sort.Strings(removed)
	for _, p := range removed {
		sb.WriteString("removed ")
		sb.WriteString(p)
		sb.WriteByte('\n')
	}

	if err := fsio.WriteFileAtomic(ix.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write index %q: %w", ix.path, err)
	}
	return nil
}

// Stage records path's intended next content. Clears any pending removal.
func (ix *Index) Stage(path, blobDigest string) {
	ix.Staged[path] = blobDigest
	delete(ix.Removed, path)
}

// MarkRemoved marks path for deletion in the next commit. Clears any
// staged content.
func (ix *Index) MarkRemoved(path string) {
	delete(ix.Staged, path)
	ix.Removed[path] = struct{}{}
}

// Clear empties both collections.
func (ix *Index) Clear() {
	ix.Staged = make(map[string]string)
	ix.Removed = make(map[string]struct{})
}

// IsEmpty reports whether there is nothing to commit.
func (ix *Index) IsEmpty() bool {
	return len(ix.Staged) == 0 && len(ix.Removed) == 0
}

// StagedFiles returns staged paths sorted.
func (ix *Index) StagedFiles() []string { return util.SortedKeys(ix.Staged) }

// RemovedFiles returns removal-marked paths sorted.
func (ix *Index) RemovedFiles() []string {
	removed := make([]string, 0, len(ix.Removed))
	for p := range ix.Removed {
		removed = append(removed, p)
	}
	sort.Strings(removed)
	return removed
}

// SnapshotForCommit derives the next commit's snapshot: HEAD's snapshot
// overlaid with staged entries, minus removals. Files untouched since HEAD
// carry over without being re-staged.
func (ix *Index) SnapshotForCommit(headSnapshot map[string]string) map[string]string {
	snapshot := make(map[string]string, len(headSnapshot)+len(ix.Staged))
	for p, d := range headSnapshot {
		snapshot[p] = d
	}
	for p, d := range ix.Staged {
		snapshot[p] = d
	}
	for p := range ix.Removed {
		delete(snapshot, p)
	}
	return snapshot
}

package verify

import (
	"fmt"
	"sort"

	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo"
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/util"
)

// Report summarizes an integrity scan over every commit reachable from
// the branch tips and HEAD.
type Report struct {
	Commits        int
	Blobs          int
	CorruptCommits []string
	MissingBlobs   []string
}

// OK reports whether the scan found no damage.
func (rep *Report) OK() bool {
	return len(rep.CorruptCommits) == 0 && len(rep.MissingBlobs) == 0
}

// Scan walks the commit DAG from every ref tip plus HEAD, parses each
// commit, and checks that every referenced blob resolves in the object
// store. Damaged commits end their walk branch but not the scan.
func Scan(r *repo.Repository) (*Report, error) {
	tips := map[string]struct{}{}

	branches, err := r.Meta.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		if b.Digest != "" {
			tips[b.Digest] = struct{}{}
		}
	}
	if d, err := r.Meta.ResolveHead(); err == nil && d != "" {
		tips[d] = struct{}{}
	}

	rep := &Report{}
	blobs := map[string]struct{}{}
	visited := map[string]bool{}
	corrupt := map[string]bool{}

	queue := make([]string, 0, len(tips))
	for d := range tips {
		queue = append(queue, d)
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == "" || visited[cur] {
			continue
		}
		visited[cur] = true

		c, err := r.LoadCommit(cur)
		if err != nil {
			corrupt[cur] = true
			continue
		}
		rep.Commits++

		for _, bd := range c.Snapshot {
			blobs[bd] = struct{}{}
		}
		queue = append(queue, c.Parents...)
	}

	for d := range corrupt {
		rep.CorruptCommits = append(rep.CorruptCommits, d)
	}
	sort.Strings(rep.CorruptCommits)

	rep.Blobs = len(blobs)

	var missing []string
	blobList := util.SortedKeys(blobs)
	err = util.Parallel(blobList, util.WorkerCount(), func(d string) error {
		if !r.Objects.Exists(d) {
			return fmt.Errorf("missing blob %s", d)
		}
		return nil
	})
	// Parallel reports only the first failure; list the rest serially so
	// the report is complete.
	if err != nil {
		for _, d := range blobList {
			if !r.Objects.Exists(d) {
				missing = append(missing, d)
			}
		}
	}
	rep.MissingBlobs = missing

	return rep, nil
}

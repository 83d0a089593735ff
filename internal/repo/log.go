package repo

import (
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

// Log walks the first-parent chain from HEAD, newest first. An unborn
// HEAD yields an empty history.
func (r *Repository) Log() ([]*meta.Commit, error) {
	cur, err := r.Meta.ResolveHead()
	if err != nil {
		return nil, err
	}

	var commits []*meta.Commit
	seen := map[string]bool{}
	for cur != "" && !seen[cur] {
		seen[cur] = true
		c, err := r.LoadCommit(cur)
		if err != nil {
			return commits, err
		}
		commits = append(commits, c)

		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	return commits, nil
}

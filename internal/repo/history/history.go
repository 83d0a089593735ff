package history

import (
	"github.com/MiniGit-AAiT/MiniGit-AAiT/internal/repo/meta"
)

// LoadFunc resolves a commit digest to its parsed commit. The DAG walks
// below tolerate malformed data: a digest that fails to load is treated as
// a commit with no parents rather than aborting the walk.
type LoadFunc func(digest string) (*meta.Commit, error)

// IsAncestor reports whether a is reachable from d through parent edges
// (inclusive: a commit is its own ancestor). Breadth-first with an
// explicit visited set, so cycles in corrupt stores terminate.
func IsAncestor(load LoadFunc, a, d string) bool {
	if a == "" || d == "" {
		return false
	}
	if a == d {
		return true
	}

	visited := map[string]bool{}
	queue := []string{d}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == "" || visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == a {
			return true
		}

		c, err := load(cur)
		if err != nil {
			continue // missing or corrupt: no parents
		}
		queue = append(queue, c.Parents...)
	}
	return false
}

// FindLCA returns a common ancestor of x and y suitable as a merge base,
// or ok=false when none exists. Among common ancestors it picks the one
// minimizing BFS depth from x plus BFS depth from y; ties break toward
// the first encounter in the walk from y, which is deterministic because
// parent order is.
func FindLCA(load LoadFunc, x, y string) (string, bool) {
	if x == "" || y == "" {
		return "", false
	}

	xDepth := bfsDepths(load, x)

	best := ""
	bestSum := -1

	visited := map[string]bool{}
	type node struct {
		digest string
		depth  int
	}
	queue := []node{{y, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.digest == "" || visited[cur.digest] {
			continue
		}
		visited[cur.digest] = true

		if xd, ok := xDepth[cur.digest]; ok {
			sum := xd + cur.depth
			if bestSum < 0 || sum < bestSum {
				best = cur.digest
				bestSum = sum
			}
		}

		c, err := load(cur.digest)
		if err != nil {
			continue
		}
		for _, p := range c.Parents {
			queue = append(queue, node{p, cur.depth + 1})
		}
	}

	return best, bestSum >= 0
}

// bfsDepths maps every ancestor of start (inclusive) to its minimum
// parent-edge distance from start.
func bfsDepths(load LoadFunc, start string) map[string]int {
	depths := map[string]int{}
	type node struct {
		digest string
		depth  int
	}
	queue := []node{{start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.digest == "" {
			continue
		}
		if _, seen := depths[cur.digest]; seen {
			continue
		}
		depths[cur.digest] = cur.depth

		c, err := load(cur.digest)
		if err != nil {
			continue
		}
		for _, p := range c.Parents {
			queue = append(queue, node{p, cur.depth + 1})
		}
	}
	return depths
}

package lifted

import "time"

// adjacency is a dense boolean adjacency matrix over a flat vertex index
// space; adjacency[i][j] holds iff vertices i and j (from distinct
// partitions) are compatible.
type adjacency [][]bool

// findAllKCliques enumerates every k-tuple of vertices, one per partition,
// pairwise adjacent. partitions[i] lists the global vertex indices
// belonging to partition i. Returns (cliques, true) on exhaustive
// completion, or (partial, false) if deadline passed first — callers must
// discard results when ok is false.
//
// Branch-and-bound: at each level, candidates for every later partition are
// intersected with the adjacency row of the vertex just picked; a partition
// left with zero candidates prunes the branch immediately.
func findAllKCliques(partitions [][]int, adj adjacency, deadline time.Time) ([][]int, bool) {
	k := len(partitions)
	var cliques [][]int
	current := make([]int, 0, k)
	ok := true

	var rec func(level int, candidates [][]int)
	rec = func(level int, candidates [][]int) {
		if !ok {
			return
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			ok = false
			return
		}
		if level == k {
			cliques = append(cliques, append([]int(nil), current...))
			return
		}
		for _, v := range candidates[level] {
			current = append(current, v)
			feasible := true
			next := make([][]int, k)
			copy(next, candidates)
			for l := level + 1; l < k; l++ {
				filtered := make([]int, 0, len(candidates[l]))
				for _, u := range candidates[l] {
					if adj[v][u] {
						filtered = append(filtered, u)
					}
				}
				if len(filtered) == 0 {
					feasible = false
				}
				next[l] = filtered
			}
			if feasible {
				rec(level+1, next)
			}
			current = current[:len(current)-1]
			if !ok {
				return
			}
		}
	}
	rec(0, partitions)
	return cliques, ok
}

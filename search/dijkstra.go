package search

import "github.com/gopherplan/strips/state"

// Dijkstra runs eager A* with the heuristic fixed at the zero function,
// reducing it to uniform-cost search: no admissibility requirement beyond
// non-negative action costs, same min-heap open list and closed-set
// discipline as AStar.
func (f *Framework) Dijkstra(isGoal GoalFunc, succ SuccessorFunc) *Result {
	return f.AStar(isGoal, succ, func(_ *state.State) (float64, bool) {
		return 0, false
	})
}

// Package statespace builds and queries the explicit, enumerated state
// space reachable from one initial state under a successor function: a
// dense forward/backward transition graph, goal distances, lazy all-pairs
// shortest paths, and uniform sampling over precomputed index buckets.
//
// What
//
//   - Build(problem, initial, isGoal, succ, maxStates) performs a forward BFS
//     closure bounded by maxStates (ErrMaxStatesExceeded on overflow), then a
//     backward BFS from every discovered goal state to fill DistanceToGoal
//     (−1 marks an unreached, dead-end state).
//   - GetDistanceBetweenStates computes the full all-pairs distance matrix on
//     first call, via Floyd–Warshall over the unit-cost transition graph in
//     fixed k→i→j loop order, and caches it.
//   - SampleState / SampleStateWithDistanceToGoal / SampleDeadEndState draw
//     uniformly from precomputed index buckets using a caller-supplied
//     *rand.Rand for reproducibility; an empty bucket is ErrNoSuchSample.
package statespace

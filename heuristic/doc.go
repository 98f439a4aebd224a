// Package heuristic computes admissible delete-relaxation heuristics over
// ranks: Delta1 (h1, single-rank costs) and Delta2 (h2, pairwise costs),
// both by Bellman-Ford-style relaxation to a dirty-flag fixpoint.
//
// What
//
//   - BuildDelta1/BuildDelta2 precompute each action's (preconditions,
//     add effects, delete complement, cost) once, in the representation
//     the fixpoint loop consumes.
//   - Evaluate(s, goalRanks) reseeds the table from s, relaxes to
//     convergence, and returns the max-over-goal-subsets cost; DeadEnd is
//     true if any required term never became finite.
package heuristic

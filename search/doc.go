// Package search hosts the uniform search framework: shared scaffolding
// (problem, initial state, abort flag, progress handlers, statistics) plus
// three strategies built on top of it — BFS, eager A*, and Dijkstra
// (A* with a heuristic fixed at zero) — all driven by a caller-supplied
// successor function and goal test, so the same framework serves both the
// lifted and grounded generators.
package search

// Command strips is the planner's command-line driver: it parses a PDDL
// domain/problem pair, builds the requested successor generator, runs the
// requested search strategy, and prints the resulting plan (or the reason
// there isn't one) to stdout.
//
//	strips <domain-file> <problem-file> <lifted|grounded|automatic> <bfs|astar|dijkstras|statespace>
package main

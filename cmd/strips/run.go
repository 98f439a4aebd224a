package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/heuristic"
	"github.com/gopherplan/strips/pddl"
	"github.com/gopherplan/strips/planconfig"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/search"
	"github.com/gopherplan/strips/state"
)

// runPlanner parses domainPath/problemPath, builds the requested successor
// generator and search strategy, runs it, and prints the result to stdout.
// The returned int is the process exit code.
func runPlanner(domainPath, problemPath, generatorArg, algorithmArg string, cfg planconfig.Config, log *logrus.Entry) (int, error) {
	if !planconfig.ValidAlgorithm(algorithmArg) {
		return exitArgumentError, fmt.Errorf("strips: unknown algorithm %q", algorithmArg)
	}
	if !planconfig.ValidGenerator(generatorArg) {
		return exitUnknownGenerator, fmt.Errorf("strips: unknown generator %q", generatorArg)
	}
	cfg = cfg.Apply(planconfig.WithGenerator(generatorArg), planconfig.WithAlgorithm(algorithmArg))

	domainSrc, err := os.ReadFile(domainPath)
	if err != nil {
		return exitDomainMissing, fmt.Errorf("strips: domain file: %w", err)
	}
	problemSrc, err := os.ReadFile(problemPath)
	if err != nil {
		return exitProblemMissing, fmt.Errorf("strips: problem file: %w", err)
	}

	domain, constants, err := pddl.ParseDomain(string(domainSrc))
	if err != nil {
		return exitParseFailure, err
	}
	problem, err := pddl.ParseProblem(string(problemSrc), domain, constants)
	if err != nil {
		return exitParseFailure, err
	}

	table := rank.Build(problem)
	initial, err := state.FromAtoms(problem.Initial, problem, table)
	if err != nil {
		return exitParseFailure, err
	}

	deadline := time.Now().Add(cfg.Deadline)
	gb, err := buildGenerator(generatorArg, domain, problem, table, deadline)
	if err != nil {
		return exitParseFailure, err
	}

	isGoal := func(s *state.State) bool {
		ok, err := s.AtomsHold(goalAtoms(problem))
		return err == nil && ok
	}

	start := time.Now()
	var framework *search.Framework
	framework = search.NewFramework(problem, initial,
		search.WithHandler(func() { logProgress(log, algorithmArg, framework, start) }))
	// The same deadline bounds the search loop: once it passes, the framework
	// is aborted and the running strategy returns Aborted.
	stopDeadline := time.AfterFunc(time.Until(deadline), framework.Abort)
	defer stopDeadline.Stop()

	var result *search.Result
	switch algorithmArg {
	case "bfs":
		result = framework.BFS(isGoal, gb.succ)
	case "dijkstras":
		result = framework.Dijkstra(isGoal, gb.succ)
	case "astar":
		h, err := buildHeuristic(gb, table, problem, deadline)
		if err != nil {
			return exitParseFailure, err
		}
		result = framework.AStar(isGoal, gb.succ, h)
	case "statespace":
		return runStatespace(domain, problem, table, initial, isGoal, gb, cfg, log)
	}

	printResult(result)
	return exitSolved, nil
}

// goalAtoms extracts the positive atoms of problem's goal conjunction. The
// pddl package rejects negated goal literals at parse time, so every goal
// literal reaching this point is already positive.
func goalAtoms(problem *formalism.Problem) []formalism.Atom {
	atoms := make([]formalism.Atom, len(problem.Goal))
	for i, lit := range problem.Goal {
		atoms[i] = lit.Atom
	}
	return atoms
}

func goalRanks(problem *formalism.Problem, table *rank.Table) ([]int, error) {
	ranks := make([]int, len(problem.Goal))
	for i, lit := range problem.Goal {
		r, err := table.GetRank(lit.Atom)
		if err != nil {
			return nil, err
		}
		ranks[i] = r
	}
	return ranks, nil
}

// buildHeuristic grounds every action (regardless of which successor
// generator drives expansion) to build the Delta2 fixpoint table admissible
// heuristics need up front.
func buildHeuristic(gb *generatorBundle, table *rank.Table, problem *formalism.Problem, deadline time.Time) (search.HeuristicFunc, error) {
	actions, err := gb.allGroundings(deadline)
	if err != nil {
		return nil, err
	}
	ranks, err := goalRanks(problem, table)
	if err != nil {
		return nil, err
	}
	d2 := heuristic.BuildDelta2(actions, table.NumRanks)
	return func(s *state.State) (float64, bool) {
		return d2.Evaluate(s, ranks)
	}, nil
}

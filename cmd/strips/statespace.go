package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/planconfig"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
	"github.com/gopherplan/strips/statespace"
)

// runStatespace builds the full forward-closed state space instead of
// searching for a single plan, and reports its size and goal membership.
// There is no plan to print here, so the output contract is this summary
// rather than the BFS/A*/Dijkstra plan format.
func runStatespace(domain *formalism.Domain, problem *formalism.Problem, table *rank.Table, initial *state.State, isGoal func(*state.State) bool, gb *generatorBundle, cfg planconfig.Config, log *logrus.Entry) (int, error) {
	sp, err := statespace.Build(problem, initial, isGoal, gb.statespaceSucc, cfg.MaxStates)
	if err != nil {
		return exitParseFailure, err
	}

	log.Infof("[states=%d]", sp.NumStates())
	goalIndices := sp.GoalIndices()
	fmt.Printf("Explored %d states, %d of which are goal states\n", sp.NumStates(), len(goalIndices))
	if len(goalIndices) == 0 {
		fmt.Println("Problem is provably unsolvable")
	}
	return exitSolved, nil
}

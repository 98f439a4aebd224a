package main

import (
	"fmt"
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/grounded"
	"github.com/gopherplan/strips/lifted"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/search"
	"github.com/gopherplan/strips/state"
	"github.com/gopherplan/strips/statespace"
)

// generatorBundle wraps whichever successor generator runPlanner picked,
// exposing a uniform search.SuccessorFunc plus a way to get the full ground
// action list buildHeuristic needs regardless of which generator is driving
// expansion.
type generatorBundle struct {
	succ           search.SuccessorFunc
	statespaceSucc statespace.SuccessorFunc
	allGroundings  func(deadline time.Time) ([]*gaction.Action, error)
}

// buildGenerator constructs the successor generator named by kind. "automatic"
// tries grounding the full action space first, since a grounded decision tree
// gives faster per-state expansion once it exists; if grounding does not
// finish inside the deadline it falls back to the lifted generator, which
// pays its enumeration cost lazily per state instead of all at once.
func buildGenerator(kind string, domain *formalism.Domain, problem *formalism.Problem, table *rank.Table, deadline time.Time) (*generatorBundle, error) {
	switch kind {
	case "grounded":
		return buildGroundedBundle(domain, problem, table, deadline)
	case "lifted":
		return buildLiftedBundle(domain, problem, table), nil
	case "automatic":
		gb, err := buildGroundedBundle(domain, problem, table, deadline)
		if err == nil {
			return gb, nil
		}
		return buildLiftedBundle(domain, problem, table), nil
	default:
		return nil, fmt.Errorf("strips: unknown generator %q", kind)
	}
}

func buildGroundedBundle(domain *formalism.Domain, problem *formalism.Problem, table *rank.Table, deadline time.Time) (*generatorBundle, error) {
	g, err := grounded.Build(domain, problem, table, deadline)
	if err != nil {
		return nil, err
	}
	return &generatorBundle{
		succ:           func(s *state.State) []*gaction.Action { return g.GetApplicableActions(s) },
		statespaceSucc: statespace.GroundedSuccessors(g),
		allGroundings: func(time.Time) ([]*gaction.Action, error) {
			return g.Actions(), nil
		},
	}, nil
}

func buildLiftedBundle(domain *formalism.Domain, problem *formalism.Problem, table *rank.Table) *generatorBundle {
	lg := lifted.BuildAll(domain, problem, table)
	return &generatorBundle{
		succ: func(s *state.State) []*gaction.Action {
			actions, _ := lg.GetApplicableActions(s, time.Time{})
			return actions
		},
		statespaceSucc: statespace.LiftedSuccessors(lg),
		allGroundings: func(deadline time.Time) ([]*gaction.Action, error) {
			actions, ok := lg.GetAllGroundings(deadline)
			if !ok {
				return nil, fmt.Errorf("strips: lifted grounding did not finish before the deadline")
			}
			return actions, nil
		},
	}
}

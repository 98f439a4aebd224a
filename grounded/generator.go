package grounded

import (
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/lifted"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

// Generator is the grounded successor generator: the full, precomputed
// action universe plus a decision tree over precondition atom ranks.
type Generator struct {
	problem *formalism.Problem
	actions []*gaction.Action
	root    decisionNode
}

// Build enumerates every syntactically valid grounding of every schema in
// domain (via the lifted generator's permissive GetAllGroundings) and
// compiles the decision tree over the result. Returns ErrDeadlineExceeded if
// deadline expires before enumeration finishes; pass the zero time.Time for
// no deadline.
func Build(domain *formalism.Domain, problem *formalism.Problem, table *rank.Table, deadline time.Time) (*Generator, error) {
	lg := lifted.BuildAll(domain, problem, table)
	actions, ok := lg.GetAllGroundings(deadline)
	if !ok {
		return nil, ErrDeadlineExceeded
	}

	return &Generator{
		problem: problem,
		actions: actions,
		root:    buildTree(actions, mentionedRanks(actions)),
	}, nil
}

// Problem returns the problem this generator was built for.
func (g *Generator) Problem() *formalism.Problem { return g.problem }

// Actions returns every ground action in the generator's universe, in
// enumeration order.
func (g *Generator) Actions() []*gaction.Action { return g.actions }

// GetApplicableActions walks the decision tree and returns every ground
// action whose preconditions hold in s.
func (g *Generator) GetApplicableActions(s *state.State) []*gaction.Action {
	return g.root.collect(s, nil)
}

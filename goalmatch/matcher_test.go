package goalmatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/goalmatch"
	"github.com/gopherplan/strips/grounded"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
	"github.com/gopherplan/strips/statespace"
)

// buildPickupWorld is the same single-block pickup/putdown domain used by
// the statespace package's own tests: its full state space has exactly two
// states, {ontable, clear} and {holding}.
func buildPickupWorld(t *testing.T) (*formalism.Problem, *rank.Table, *state.State, formalism.Atom, *formalism.Object) {
	t.Helper()
	d := formalism.NewDomain("blocks")
	block, err := d.InternType("block", nil)
	require.NoError(t, err)
	clear, _ := d.InternPredicate("clear", []*formalism.Type{block})
	ontable, _ := d.InternPredicate("ontable", []*formalism.Type{block})
	holding, _ := d.InternPredicate("holding", []*formalism.Type{block})

	scratch := formalism.NewProblem("scratch", d)
	px, err := scratch.InternObject("?x", block)
	require.NoError(t, err)
	clearX, _ := formalism.NewAtom(clear, []*formalism.Object{px})
	ontableX, _ := formalism.NewAtom(ontable, []*formalism.Object{px})
	holdingX, _ := formalism.NewAtom(holding, []*formalism.Object{px})

	pickup := &formalism.ActionSchema{
		Name:       "pickup",
		Parameters: []*formalism.Object{px},
		Precondition: []formalism.Literal{
			{Atom: clearX}, {Atom: ontableX},
		},
		UnconditionalEffect: []formalism.Literal{
			{Atom: holdingX}, {Atom: clearX, Negated: true}, {Atom: ontableX, Negated: true},
		},
		Cost: formalism.ConstCost(1),
	}
	require.NoError(t, d.AddSchema(pickup))

	putdown := &formalism.ActionSchema{
		Name:         "putdown",
		Parameters:   []*formalism.Object{px},
		Precondition: []formalism.Literal{{Atom: holdingX}},
		UnconditionalEffect: []formalism.Literal{
			{Atom: ontableX}, {Atom: clearX}, {Atom: holdingX, Negated: true},
		},
		Cost: formalism.ConstCost(1),
	}
	require.NoError(t, d.AddSchema(putdown))

	live := formalism.NewProblem("live", d)
	a, err := live.InternObject("a", block)
	require.NoError(t, err)
	table := rank.Build(live)

	clearA, _ := formalism.NewAtom(clear, []*formalism.Object{a})
	ontableA, _ := formalism.NewAtom(ontable, []*formalism.Object{a})
	holdingA, _ := formalism.NewAtom(holding, []*formalism.Object{a})

	initial, err := state.FromAtoms([]formalism.Atom{clearA, ontableA}, live, table)
	require.NoError(t, err)

	return live, table, initial, holdingA, a
}

func TestBestMatchGroundGoalFindsSoleSolvingState(t *testing.T) {
	live, table, initial, holdingA, _ := buildPickupWorld(t)
	live.AddGoalLiteral(formalism.Literal{Atom: holdingA})

	isGoal := func(s *state.State) bool {
		ok, err := s.LiteralHolds(formalism.Literal{Atom: holdingA})
		return err == nil && ok
	}
	gen, err := grounded.Build(live.Domain, live, table, time.Time{})
	require.NoError(t, err)
	sp, err := statespace.Build(live, initial, isGoal, statespace.GroundedSuccessors(gen), 0)
	require.NoError(t, err)

	m := goalmatch.Build(sp, table)
	matched, dist, err := m.BestMatch()
	require.NoError(t, err)
	assert.Equal(t, 1, dist)

	ok, err := matched.LiteralHolds(formalism.Literal{Atom: holdingA})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBestMatchGroundGoalUnsatisfiableReturnsErrNoMatch(t *testing.T) {
	live, table, initial, holdingA, a := buildPickupWorld(t)

	// holding(a) and clear(a) never hold simultaneously in either of this
	// world's two reachable states, so no discovered state can satisfy
	// their conjunction.
	clearAtom, err := formalism.NewAtom(mustPredicate(t, live, "clear"), []*formalism.Object{a})
	require.NoError(t, err)
	live.AddGoalLiteral(formalism.Literal{Atom: holdingA})
	live.AddGoalLiteral(formalism.Literal{Atom: clearAtom})

	isGoal := func(s *state.State) bool { return false }
	gen, err := grounded.Build(live.Domain, live, table, time.Time{})
	require.NoError(t, err)
	sp, err := statespace.Build(live, initial, isGoal, statespace.GroundedSuccessors(gen), 0)
	require.NoError(t, err)

	m := goalmatch.Build(sp, table)
	_, _, err = m.BestMatch()
	assert.ErrorIs(t, err, goalmatch.ErrNoMatch)
}

func mustPredicate(t *testing.T, p *formalism.Problem, name string) *formalism.Predicate {
	t.Helper()
	pred, err := p.Domain.LookupPredicate(name)
	require.NoError(t, err)
	return pred
}

func TestBestMatchLiftedGoalFindsStateAdmittingSomeGrounding(t *testing.T) {
	live, table, initial, _, _ := buildPickupWorld(t)

	block, err := live.Domain.LookupType("block")
	require.NoError(t, err)
	varX, err := live.InternObject("?x", block)
	require.NoError(t, err)
	holdingPred := mustPredicate(t, live, "holding")
	holdingVarX, err := formalism.NewAtom(holdingPred, []*formalism.Object{varX})
	require.NoError(t, err)
	live.AddGoalLiteral(formalism.Literal{Atom: holdingVarX})

	isGoal := func(s *state.State) bool {
		ok, err := s.LiteralHolds(formalism.Literal{Atom: holdingVarX})
		return err == nil && ok
	}
	gen, err := grounded.Build(live.Domain, live, table, time.Time{})
	require.NoError(t, err)
	sp, err := statespace.Build(live, initial, isGoal, statespace.GroundedSuccessors(gen), 0)
	require.NoError(t, err)

	m := goalmatch.Build(sp, table)
	matched, dist, err := m.BestMatch()
	require.NoError(t, err)
	assert.Equal(t, 1, dist)
	assert.NotNil(t, matched)
}

func TestBestMatchFromUnknownStateReturnsErrUnknownState(t *testing.T) {
	live, table, initial, holdingA, a := buildPickupWorld(t)
	live.AddGoalLiteral(formalism.Literal{Atom: holdingA})

	isGoal := func(s *state.State) bool {
		ok, err := s.LiteralHolds(formalism.Literal{Atom: holdingA})
		return err == nil && ok
	}
	gen, err := grounded.Build(live.Domain, live, table, time.Time{})
	require.NoError(t, err)
	sp, err := statespace.Build(live, initial, isGoal, statespace.GroundedSuccessors(gen), 0)
	require.NoError(t, err)

	m := goalmatch.Build(sp, table)

	clearAtom, _ := formalism.NewAtom(mustPredicate(t, live, "clear"), []*formalism.Object{a})
	foreign, err := state.FromAtoms([]formalism.Atom{clearAtom}, formalism.NewProblem("other", live.Domain), table)
	require.NoError(t, err)

	_, _, err = m.BestMatchFrom(foreign)
	assert.ErrorIs(t, err, goalmatch.ErrUnknownState)
}

package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/heuristic"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

// buildPickupWorld is a one-block domain whose pickup action deletes clear,
// so the conjunctive goal {holding, clear} is reachable under h1 (each
// rank individually achievable) but a dead end under h2 (the only action
// that ever adds holding also destroys clear), giving a concrete witness for
// the Delta1 <= Delta2 ordering.
func buildPickupWorld(t *testing.T) (*rank.Table, *state.State, []*gaction.Action, formalism.Atom, formalism.Atom) {
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
		Name:         "pickup",
		Parameters:   []*formalism.Object{px},
		Precondition: []formalism.Literal{{Atom: clearX}, {Atom: ontableX}},
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

	pickupA, err := gaction.Ground(pickup, []*formalism.Object{a}, live, table)
	require.NoError(t, err)
	putdownA, err := gaction.Ground(putdown, []*formalism.Object{a}, live, table)
	require.NoError(t, err)

	return table, initial, []*gaction.Action{pickupA, putdownA}, holdingA, clearA
}

func TestDelta1ReachesSingleGoalInOneStep(t *testing.T) {
	table, initial, actions, holdingA, _ := buildPickupWorld(t)
	d1 := heuristic.BuildDelta1(actions, table.NumRanks)

	holdingRank, err := table.GetRank(holdingA)
	require.NoError(t, err)

	cost, deadEnd := d1.Evaluate(initial, []int{holdingRank})
	require.False(t, deadEnd)
	assert.Equal(t, 1.0, cost)
}

func TestDelta1ZeroForAlreadyTrueRank(t *testing.T) {
	table, initial, actions, _, clearA := buildPickupWorld(t)
	d1 := heuristic.BuildDelta1(actions, table.NumRanks)

	clearRank, err := table.GetRank(clearA)
	require.NoError(t, err)

	cost, deadEnd := d1.Evaluate(initial, []int{clearRank})
	require.False(t, deadEnd)
	assert.Equal(t, 0.0, cost)
}

func TestDelta2DetectsConjunctiveDeadEndThatDelta1Misses(t *testing.T) {
	table, initial, actions, holdingA, clearA := buildPickupWorld(t)
	holdingRank, err := table.GetRank(holdingA)
	require.NoError(t, err)
	clearRank, err := table.GetRank(clearA)
	require.NoError(t, err)
	goal := []int{holdingRank, clearRank}

	d1 := heuristic.BuildDelta1(actions, table.NumRanks)
	cost1, deadEnd1 := d1.Evaluate(initial, goal)
	require.False(t, deadEnd1)
	assert.Equal(t, 1.0, cost1)

	d2 := heuristic.BuildDelta2(actions, table.NumRanks)
	_, deadEnd2 := d2.Evaluate(initial, goal)
	assert.True(t, deadEnd2)
}

func TestDelta1LessEqualDelta2ForSingletonGoal(t *testing.T) {
	table, initial, actions, holdingA, _ := buildPickupWorld(t)
	holdingRank, err := table.GetRank(holdingA)
	require.NoError(t, err)
	goal := []int{holdingRank}

	d1 := heuristic.BuildDelta1(actions, table.NumRanks)
	cost1, deadEnd1 := d1.Evaluate(initial, goal)
	require.False(t, deadEnd1)

	d2 := heuristic.BuildDelta2(actions, table.NumRanks)
	cost2, deadEnd2 := d2.Evaluate(initial, goal)
	require.False(t, deadEnd2)

	assert.LessOrEqual(t, cost1, cost2)
}

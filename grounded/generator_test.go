package grounded_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/grounded"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

// buildBlocksDomain builds a two-schema domain over three blocks:
//
//	pickup(?x): clear(?x) & ontable(?x) -> holding(?x), not clear(?x), not ontable(?x)
//	putdown(?x): holding(?x) -> ontable(?x), clear(?x), not holding(?x)
func buildBlocksDomain(t *testing.T, blockNames []string) (*formalism.Domain, *formalism.Problem, *rank.Table) {
	t.Helper()
	d := formalism.NewDomain("blocks")
	block, err := d.InternType("block", nil)
	require.NoError(t, err)
	clear, _ := d.InternPredicate("clear", []*formalism.Type{block})
	ontable, _ := d.InternPredicate("ontable", []*formalism.Type{block})
	holding, _ := d.InternPredicate("holding", []*formalism.Type{block})

	px, err := formalismParam(d, "px", block)
	require.NoError(t, err)
	clearX, _ := formalism.NewAtom(clear, []*formalism.Object{px})
	ontableX, _ := formalism.NewAtom(ontable, []*formalism.Object{px})
	holdingX, _ := formalism.NewAtom(holding, []*formalism.Object{px})

	pickup := &formalism.ActionSchema{
		Name:       "pickup",
		Parameters: []*formalism.Object{px},
		Precondition: []formalism.Literal{
			{Atom: clearX},
			{Atom: ontableX},
		},
		UnconditionalEffect: []formalism.Literal{
			{Atom: holdingX},
			{Atom: clearX, Negated: true},
			{Atom: ontableX, Negated: true},
		},
		Cost: formalism.ConstCost(1),
	}
	require.NoError(t, d.AddSchema(pickup))

	py, err := formalismParam(d, "py", block)
	require.NoError(t, err)
	clearY, _ := formalism.NewAtom(clear, []*formalism.Object{py})
	ontableY, _ := formalism.NewAtom(ontable, []*formalism.Object{py})
	holdingY, _ := formalism.NewAtom(holding, []*formalism.Object{py})

	putdown := &formalism.ActionSchema{
		Name:         "putdown",
		Parameters:   []*formalism.Object{py},
		Precondition: []formalism.Literal{{Atom: holdingY}},
		UnconditionalEffect: []formalism.Literal{
			{Atom: ontableY},
			{Atom: clearY},
			{Atom: holdingY, Negated: true},
		},
		Cost: formalism.ConstCost(1),
	}
	require.NoError(t, d.AddSchema(putdown))

	live := formalism.NewProblem("live", d)
	for _, name := range blockNames {
		_, err := live.InternObject(name, block)
		require.NoError(t, err)
	}
	table := rank.Build(live)

	return d, live, table
}

// formalismParam interns a dedicated "schema-only" problem to host a formal
// parameter object, mirroring how gaction's own tests build schema
// parameters distinct from any concrete problem's objects.
func formalismParam(d *formalism.Domain, varName string, typ *formalism.Type) (*formalism.Object, error) {
	scratch := formalism.NewProblem("scratch-"+varName, d)
	return scratch.InternObject("?"+varName, typ)
}

func TestGroundedGeneratorMatchesExpectedActionCount(t *testing.T) {
	d, p, table := buildBlocksDomain(t, []string{"a", "b", "c"})

	gen, err := grounded.Build(d, p, table, time.Time{})
	require.NoError(t, err)

	// pickup has 3 groundings (one per block), putdown has 3: 6 total.
	assert.Len(t, gen.Actions(), 6)
}

func TestGroundedGeneratorAppliesOnlyValidActions(t *testing.T) {
	d, p, table := buildBlocksDomain(t, []string{"a", "b", "c"})
	gen, err := grounded.Build(d, p, table, time.Time{})
	require.NoError(t, err)

	clearPred, err := d.LookupPredicate("clear")
	require.NoError(t, err)
	ontablePred, err := d.LookupPredicate("ontable")
	require.NoError(t, err)

	a, err := p.LookupObject("a")
	require.NoError(t, err)
	clearA, _ := formalism.NewAtom(clearPred, []*formalism.Object{a})
	ontableA, _ := formalism.NewAtom(ontablePred, []*formalism.Object{a})

	s, err := state.FromAtoms([]formalism.Atom{clearA, ontableA}, p, table)
	require.NoError(t, err)

	actions := gen.GetApplicableActions(s)
	require.Len(t, actions, 1)
	assert.Equal(t, "pickup(a)", actions[0].String())
}

func TestGroundedGeneratorNoApplicableActionsInEmptyState(t *testing.T) {
	d, p, table := buildBlocksDomain(t, []string{"a", "b", "c"})
	gen, err := grounded.Build(d, p, table, time.Time{})
	require.NoError(t, err)

	s, err := state.FromAtoms(nil, p, table)
	require.NoError(t, err)

	assert.Empty(t, gen.GetApplicableActions(s))
}

// TestGroundedGeneratorBranchesOnLargeActionSet uses enough blocks that the
// action universe exceeds leafThreshold, forcing buildTree to actually
// insert branchNodes rather than settling for one big leaf.
func TestGroundedGeneratorBranchesOnLargeActionSet(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	d, p, table := buildBlocksDomain(t, names)
	gen, err := grounded.Build(d, p, table, time.Time{})
	require.NoError(t, err)

	// pickup + putdown, one grounding per block each.
	assert.Len(t, gen.Actions(), 2*len(names))

	clearPred, err := d.LookupPredicate("clear")
	require.NoError(t, err)
	ontablePred, err := d.LookupPredicate("ontable")
	require.NoError(t, err)

	e, err := p.LookupObject("e")
	require.NoError(t, err)
	clearE, _ := formalism.NewAtom(clearPred, []*formalism.Object{e})
	ontableE, _ := formalism.NewAtom(ontablePred, []*formalism.Object{e})

	s, err := state.FromAtoms([]formalism.Atom{clearE, ontableE}, p, table)
	require.NoError(t, err)

	actions := gen.GetApplicableActions(s)
	require.Len(t, actions, 1)
	assert.Equal(t, "pickup(e)", actions[0].String())
}

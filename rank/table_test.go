package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/rank"
)

func buildSmallBlocks(t *testing.T) (*formalism.Problem, *formalism.Predicate, *formalism.Predicate) {
	t.Helper()
	d := formalism.NewDomain("blocks")
	obj, err := d.InternType("object", nil)
	require.NoError(t, err)
	on, err := d.InternPredicate("on", []*formalism.Type{obj, obj})
	require.NoError(t, err)
	clear, err := d.InternPredicate("clear", []*formalism.Type{obj})
	require.NoError(t, err)
	// "on" is dynamic (mentioned in an effect); "clear" stays static for this test.
	require.NoError(t, d.AddSchema(&formalism.ActionSchema{
		Name:                "stack",
		UnconditionalEffect: []formalism.Literal{{Atom: formalism.Atom{Predicate: on}}},
	}))

	p := formalism.NewProblem("p1", d)
	for _, name := range []string{"a", "b", "c"} {
		_, err := p.InternObject(name, obj)
		require.NoError(t, err)
	}
	return p, on, clear
}

func TestRankBijection(t *testing.T) {
	p, on, clear := buildSmallBlocks(t)
	table := rank.Build(p)

	a, _ := p.LookupObject("a")
	b, _ := p.LookupObject("b")
	c, _ := p.LookupObject("c")

	for _, obj := range []*formalism.Object{a, b, c} {
		atom, err := formalism.NewAtom(clear, []*formalism.Object{obj})
		require.NoError(t, err)
		r, err := table.GetRank(atom)
		require.NoError(t, err)
		roundTrip, err := table.GetAtom(r)
		require.NoError(t, err)
		assert.True(t, atom.Equal(roundTrip))
	}

	for _, x := range []*formalism.Object{a, b, c} {
		for _, y := range []*formalism.Object{a, b, c} {
			atom, err := formalism.NewAtom(on, []*formalism.Object{x, y})
			require.NoError(t, err)
			r, err := table.GetRank(atom)
			require.NoError(t, err)
			roundTrip, err := table.GetAtom(r)
			require.NoError(t, err)
			assert.True(t, atom.Equal(roundTrip))
		}
	}

	// Every rank in [0, NumRanks) round-trips back to itself.
	for r := 0; r < table.NumRanks; r++ {
		atom, err := table.GetAtom(r)
		require.NoError(t, err)
		r2, err := table.GetRank(atom)
		require.NoError(t, err)
		assert.Equal(t, r, r2)
	}
}

func TestIsStaticClassification(t *testing.T) {
	p, on, clear := buildSmallBlocks(t)
	table := rank.Build(p)

	a, _ := p.LookupObject("a")
	b, _ := p.LookupObject("b")

	onAtom, err := formalism.NewAtom(on, []*formalism.Object{a, b})
	require.NoError(t, err)
	r, err := table.GetRank(onAtom)
	require.NoError(t, err)
	static, err := table.IsStatic(r)
	require.NoError(t, err)
	assert.False(t, static)

	clearAtom, err := formalism.NewAtom(clear, []*formalism.Object{a})
	require.NoError(t, err)
	r, err = table.GetRank(clearAtom)
	require.NoError(t, err)
	static, err = table.IsStatic(r)
	require.NoError(t, err)
	assert.True(t, static)
}

func TestOutOfRange(t *testing.T) {
	p, _, _ := buildSmallBlocks(t)
	table := rank.Build(p)

	_, err := table.GetAtom(-1)
	assert.ErrorIs(t, err, rank.ErrOutOfRange)
	_, err = table.GetAtom(table.NumRanks)
	assert.ErrorIs(t, err, rank.ErrOutOfRange)
}

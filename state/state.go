package state

import (
	"reflect"
	"sort"

	"github.com/gopherplan/strips/bitset"
	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/rank"
)

// State is an immutable (problem, bitset) pair with a cached content hash.
// Two States compare equal iff their problems are identical and their
// bitsets are equal (bitset.Equal, which ignores trailing default blocks).
type State struct {
	problem *formalism.Problem
	table   *rank.Table
	bits    *bitset.Bitset
	hash    uint64
}

// New builds a State directly from a bitset, without touching atoms. Used
// by Apply to avoid re-ranking.
func New(problem *formalism.Problem, table *rank.Table, bits *bitset.Bitset) *State {
	return &State{problem: problem, table: table, bits: bits, hash: computeHash(problem, bits)}
}

// FromAtoms ranks each atom via table and sets the corresponding bit,
// producing a State whose bitset has defaultTail=false (unmentioned ranks
// are absent).
func FromAtoms(atoms []formalism.Atom, problem *formalism.Problem, table *rank.Table) (*State, error) {
	b := bitset.New(false)
	for _, a := range atoms {
		r, err := table.GetRank(a)
		if err != nil {
			return nil, err
		}
		b.Set(r)
	}
	return New(problem, table, b), nil
}

func computeHash(problem *formalism.Problem, bits *bitset.Bitset) uint64 {
	// Mix problem identity (its pointer) into the bitset's own content hash,
	// mirroring the source's boost::hash_combine(hash_, problem.get()).
	h := bits.Hash()
	ptr := reflect.ValueOf(problem).Pointer()
	return h*1099511628211 ^ uint64(ptr)
}

// Problem returns the *formalism.Problem this state belongs to.
func (s *State) Problem() *formalism.Problem { return s.problem }

// Bitset exposes the underlying bitset (read-only by convention; callers
// must not mutate it, as States are shared by pointer across the search).
func (s *State) Bitset() *bitset.Bitset { return s.bits }

// Hash returns the cached content hash.
func (s *State) Hash() uint64 { return s.hash }

// Equal reports whether s and other reference the same problem and have
// equal bitsets.
func (s *State) Equal(other *State) bool {
	if s.problem != other.problem {
		return false
	}
	return bitset.Equal(s.bits, other.bits)
}

// IsInState reports whether rank r is set in this state's bitset.
func (s *State) IsInState(r int) bool { return s.bits.Get(r) }

// LiteralHolds reports whether lit holds in s: its rank is set, XOR its
// negation flag.
func (s *State) LiteralHolds(lit formalism.Literal) (bool, error) {
	r, err := s.table.GetRank(lit.Atom)
	if err != nil {
		return false, err
	}
	return s.bits.Get(r) != lit.Negated, nil
}

// AtomsHold reports whether every atom in atoms is present in s.
func (s *State) AtomsHold(atoms []formalism.Atom) (bool, error) {
	for _, a := range atoms {
		r, err := s.table.GetRank(a)
		if err != nil {
			return false, err
		}
		if !s.bits.Get(r) {
			return false, nil
		}
	}
	return true, nil
}

// Atoms materializes every true atom in s, sorted by rank for determinism.
func (s *State) Atoms() []formalism.Atom {
	return s.atomsInRange(0, s.table.NumRanks)
}

// DynamicAtoms materializes every true atom in s whose predicate is dynamic
// (mentioned in some action's effect).
func (s *State) DynamicAtoms() []formalism.Atom {
	all := s.Atoms()
	out := make([]formalism.Atom, 0, len(all))
	for _, a := range all {
		r, err := s.table.GetRank(a)
		if err != nil {
			continue
		}
		static, err := s.table.IsStatic(r)
		if err == nil && !static {
			out = append(out, a)
		}
	}
	return out
}

func (s *State) atomsInRange(lo, hi int) []formalism.Atom {
	var out []formalism.Atom
	for r := s.bits.NextSetBit(lo); r != bitset.NoPosition && r < hi; r = s.bits.NextSetBit(r + 1) {
		a, err := s.table.GetAtom(r)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, _ := s.table.GetRank(out[i])
		rj, _ := s.table.GetRank(out[j])
		return ri < rj
	})
	return out
}

// IsApplicable reports whether action a's preconditions are satisfied in s:
// (s | posPre) & negPre == s. negPre is already the "keep" mask built by
// gaction.Ground — all ones except a zero at every rank a's negative
// preconditions forbid — so ANDing it in directly clears exactly those ranks
// from the left side; the identity holds iff s already contains posPre and
// touches none of the forbidden ranks. This holds even when s's bitset is
// shorter than a's, because posPre's defaultTail is false and negPre's is
// true.
func (s *State) IsApplicable(a *gaction.Action) bool {
	lhs := bitset.And(bitset.Or(s.bits, a.PosPre), a.NegPre)
	return bitset.Equal(lhs, s.bits)
}

// conditionalApplicable reports whether ce's antecedent holds against the
// pre-state s, using the same bitset identity as IsApplicable.
func conditionalApplicable(s *bitset.Bitset, ce gaction.ConditionalEffect) bool {
	lhs := bitset.And(bitset.Or(s, ce.PosPre), ce.NegPre)
	return bitset.Equal(lhs, s)
}

// Apply returns the successor state of applying a to s, using
// delete-then-add semantics: every applicable conditional effect's delete
// set is removed, then every applicable effect's add set (unconditional
// first, then each applicable conditional, in implication order) is added —
// so an action's own simultaneous add/delete of a rank resolves as "add
// wins". Conditional effects are evaluated against the pre-state s, not the
// intermediate state. Returns ErrNotGround if a's arguments do not fill its
// schema's parameters (defensive; gaction.Ground already enforces this).
func (s *State) Apply(a *gaction.Action) (*State, error) {
	if len(a.Arguments) != len(a.Schema.Parameters) {
		return nil, ErrNotGround
	}

	applicable := make([]bool, len(a.Conditional))
	for i, ce := range a.Conditional {
		applicable[i] = conditionalApplicable(s.bits, ce)
	}

	next := bitset.And(s.bits, a.NegEff)
	for i, ce := range a.Conditional {
		if applicable[i] {
			next = bitset.And(next, ce.NegEff)
		}
	}

	next = bitset.Or(next, a.PosEff)
	for i, ce := range a.Conditional {
		if applicable[i] {
			next = bitset.Or(next, ce.PosEff)
		}
	}

	return New(s.problem, s.table, next), nil
}

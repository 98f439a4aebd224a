package rank

import (
	"fmt"
	"sort"

	"github.com/gopherplan/strips/formalism"
)

// Table is the per-problem rank bijection: predicate_offset partitions the
// rank space into per-predicate intervals of size |objects|^arity(p); the
// other fields let GetAtom and IsStatic invert a rank without rescanning the
// Domain.
//
// Lookups are O(log P) via binary search over predicateOffset rather than a
// materialized per-rank inverse array — same round-trip semantics as a full
// inverse table, at O(P) memory instead of O(num_ranks).
type Table struct {
	domain  *formalism.Domain
	problem *formalism.Problem

	numObjects int

	// predicateOffset[i] is the first rank belonging to Predicates()[i];
	// predicateOffset[len(Predicates())] == NumRanks.
	predicateOffset []int

	// isStaticByPredicateID[p] is true iff no schema's effect mentions p.
	isStaticByPredicateID []bool

	// NumRanks is predicateOffset[P], a tight upper bound on any state's
	// bitset width for this problem.
	NumRanks int
}

// Build constructs the rank Table for problem over its domain.
func Build(problem *formalism.Problem) *Table {
	domain := problem.Domain
	predicates := domain.Predicates()
	n := problem.NumObjects()

	t := &Table{
		domain:                domain,
		problem:               problem,
		numObjects:            n,
		predicateOffset:       make([]int, len(predicates)+1),
		isStaticByPredicateID: make([]bool, len(predicates)),
	}

	offset := 0
	for i, p := range predicates {
		t.predicateOffset[i] = offset
		offset += intPow(n, p.Arity())
		t.isStaticByPredicateID[i] = domain.IsStaticPredicate(p)
	}
	t.predicateOffset[len(predicates)] = offset
	t.NumRanks = offset

	return t
}

func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// GetRank computes the dense integer rank of a ground atom.
//
//	rank = predicate_offset[p] + Σ_i arguments[i].ID * numObjects^i
func (t *Table) GetRank(a formalism.Atom) (int, error) {
	pid := int(a.Predicate.ID)
	if pid < 0 || pid >= len(t.predicateOffset)-1 {
		return 0, fmt.Errorf("%w: predicate id %d", ErrOutOfRange, pid)
	}
	offset := t.predicateOffset[pid]
	multiplier := 1
	for _, arg := range a.Arguments {
		if int(arg.ID) >= t.numObjects {
			return 0, fmt.Errorf("%w: object id %d", ErrArgumentOutOfDomain, arg.ID)
		}
		offset += int(arg.ID) * multiplier
		multiplier *= t.numObjects
	}
	return offset, nil
}

// GetAtom reconstructs the ground atom for rank by locating its owning
// predicate interval via binary search, then decomposing the residual in
// base numObjects.
func (t *Table) GetAtom(r int) (formalism.Atom, error) {
	if r < 0 || r >= t.NumRanks {
		return formalism.Atom{}, fmt.Errorf("%w: rank %d", ErrOutOfRange, r)
	}
	pid := t.predicateIDForRank(r)
	predicate := t.domain.Predicates()[pid]
	residual := r - t.predicateOffset[pid]

	objects := t.problem.Objects()
	args := make([]*formalism.Object, predicate.Arity())
	for i := 0; i < predicate.Arity(); i++ {
		objID := residual % t.numObjects
		residual /= t.numObjects
		args[i] = objects[objID]
	}
	return formalism.Atom{Predicate: predicate, Arguments: args}, nil
}

// predicateIDForRank returns the id of the predicate whose interval contains r.
func (t *Table) predicateIDForRank(r int) int {
	// predicateOffset is sorted ascending; find the last offset <= r.
	idx := sort.SearchInts(t.predicateOffset, r+1) - 1
	if idx < 0 {
		idx = 0
	}
	return idx
}

// RankToPredicateID returns the predicate id owning rank r, mirroring the
// spec's rank_to_predicate_id inverse table.
func (t *Table) RankToPredicateID(r int) (uint32, error) {
	if r < 0 || r >= t.NumRanks {
		return 0, fmt.Errorf("%w: rank %d", ErrOutOfRange, r)
	}
	return uint32(t.predicateIDForRank(r)), nil
}

// RankToArity returns the arity of the predicate owning rank r.
func (t *Table) RankToArity(r int) (int, error) {
	pid, err := t.RankToPredicateID(r)
	if err != nil {
		return 0, err
	}
	return t.domain.Predicates()[pid].Arity(), nil
}

// IsStatic reports whether rank r belongs to a predicate never mentioned in
// any action schema's effect.
func (t *Table) IsStatic(r int) (bool, error) {
	pid, err := t.RankToPredicateID(r)
	if err != nil {
		return false, err
	}
	return t.isStaticByPredicateID[pid], nil
}

// PredicateRankInterval returns the half-open [lo, hi) rank interval owned
// by predicate p, i.e. [predicate_offset[p], predicate_offset[p+1]).
func (t *Table) PredicateRankInterval(p *formalism.Predicate) (lo, hi int) {
	pid := int(p.ID)
	return t.predicateOffset[pid], t.predicateOffset[pid+1]
}

// Problem returns the *formalism.Problem this table was built for.
func (t *Table) Problem() *formalism.Problem { return t.problem }

// NumObjects returns the object count this table ranks over.
func (t *Table) NumObjects() int { return t.numObjects }

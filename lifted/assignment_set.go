package lifted

import "github.com/gopherplan/strips/formalism"

// singleKey identifies "predicate p has a witnessing atom with argument[pos]
// == obj".
type singleKey struct {
	predicateID uint32
	pos         int
	objectID    uint32
}

// pairKey identifies "predicate p has a witnessing atom with argument[pos1]
// == obj1 and argument[pos2] == obj2" (pos1 < pos2 by construction).
type pairKey struct {
	predicateID      uint32
	pos1, pos2       int
	objectID1, objectID2 uint32
}

// assignmentSet is a compact indicator for a given set of atoms: which
// single- and pair-position partial assignments have at least one witness.
type assignmentSet struct {
	singles map[singleKey]bool
	pairs   map[pairKey]bool
}

func buildAssignmentSet(atoms []formalism.Atom) *assignmentSet {
	as := &assignmentSet{singles: make(map[singleKey]bool), pairs: make(map[pairKey]bool)}
	for _, atom := range atoms {
		pid := atom.Predicate.ID
		n := len(atom.Arguments)
		for i := 0; i < n; i++ {
			as.singles[singleKey{pid, i, atom.Arguments[i].ID}] = true
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				as.pairs[pairKey{pid, i, j, atom.Arguments[i].ID, atom.Arguments[j].ID}] = true
			}
		}
	}
	return as
}

// fixedPositions returns, for atom (a precondition literal's atom belonging
// to some schema), the positions whose argument is the schema parameter at
// paramIdx1 or paramIdx2, mapped to the candidate object bound there. Only
// positions matching one of the two supplied parameters are considered
// "fixed" for this query; every other argument (another free variable, or a
// problem constant) is left unconstrained.
func fixedPositions(atom formalism.Atom, param1, obj1, param2, obj2 *formalism.Object) map[int]*formalism.Object {
	fixed := make(map[int]*formalism.Object)
	for i, arg := range atom.Arguments {
		switch arg {
		case param1:
			fixed[i] = obj1
		case param2:
			fixed[i] = obj2
		}
	}
	return fixed
}

// consistent reports whether lit is consistent with binding param1->obj1,
// param2->obj2 according to as. A literal whose atom fixes none of the two
// parameters is vacuously consistent (it constrains nothing about this
// pair). A literal fixing exactly one or exactly two positions is checked
// against as.singles/as.pairs for positive literals; negative literals are
// checked for absence only when the fixed positions account for the atom's
// entire arity (otherwise the negative test is conservatively skipped and
// left to the final exact recheck against the grounded action).
func consistent(lit formalism.Literal, param1, obj1, param2, obj2 *formalism.Object, as *assignmentSet) bool {
	atom := lit.Atom
	fixed := fixedPositions(atom, param1, obj1, param2, obj2)
	if len(fixed) == 0 {
		return true
	}
	pid := atom.Predicate.ID
	fullyFixed := len(fixed) == len(atom.Arguments)

	if len(fixed) == 1 {
		var pos int
		var obj *formalism.Object
		for p, o := range fixed {
			pos, obj = p, o
		}
		has := as.singles[singleKey{pid, pos, obj.ID}]
		if !lit.Negated {
			return has
		}
		if fullyFixed {
			return !has
		}
		return true // conservative: can't decide negative partial constraint yet
	}

	// Exactly two fixed positions.
	var positions []int
	for p := range fixed {
		positions = append(positions, p)
	}
	if positions[0] > positions[1] {
		positions[0], positions[1] = positions[1], positions[0]
	}
	o1, o2 := fixed[positions[0]], fixed[positions[1]]
	has := as.pairs[pairKey{pid, positions[0], positions[1], o1.ID, o2.ID}]
	if !lit.Negated {
		return has
	}
	if fullyFixed {
		return !has
	}
	return true
}

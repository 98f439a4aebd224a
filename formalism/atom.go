package formalism

import "strings"

// Atom is a predicate applied to an ordered list of objects. Invariant:
// len(Arguments) == Predicate.Arity(), and each Arguments[i]'s type is a
// subtype of Predicate.Parameters[i].
type Atom struct {
	Predicate *Predicate
	Arguments []*Object
}

// NewAtom validates arity and argument types and returns the constructed Atom.
func NewAtom(pred *Predicate, args []*Object) (Atom, error) {
	if pred == nil {
		return Atom{}, ErrUnknownPredicate
	}
	if len(args) != pred.Arity() {
		return Atom{}, ErrArityMismatch
	}
	for i, a := range args {
		if a == nil {
			return Atom{}, ErrUnknownObject
		}
		if !a.Type.IsSubtypeOf(pred.Parameters[i]) {
			return Atom{}, ErrTypeMismatch
		}
	}
	return Atom{Predicate: pred, Arguments: append([]*Object(nil), args...)}, nil
}

// IsGround reports whether every argument is a constant (no free variables).
func (a Atom) IsGround() bool {
	for _, arg := range a.Arguments {
		if arg.IsVariable() {
			return false
		}
	}
	return true
}

// Equal reports whether a and b reference the same predicate and the same
// argument objects, by pointer identity (valid for atoms built from handles
// interned within the same Domain/Problem).
func (a Atom) Equal(b Atom) bool {
	if a.Predicate != b.Predicate || len(a.Arguments) != len(b.Arguments) {
		return false
	}
	for i := range a.Arguments {
		if a.Arguments[i] != b.Arguments[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical string encoding suitable for use as a map key,
// e.g. in a per-atom cost table. Two equal atoms produce equal keys.
func (a Atom) Key() string {
	var sb strings.Builder
	if a.Predicate != nil {
		sb.WriteString(a.Predicate.Name)
	}
	for _, arg := range a.Arguments {
		sb.WriteByte('\x00')
		sb.WriteString(arg.Name)
	}
	return sb.String()
}

// String renders the atom in PDDL-ish form, e.g. "(on a b)".
func (a Atom) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(a.Predicate.String())
	for _, arg := range a.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Literal is an Atom together with a polarity flag.
type Literal struct {
	Atom    Atom
	Negated bool
}

// String renders the literal in PDDL-ish form, negating with "(not ...)".
func (l Literal) String() string {
	if l.Negated {
		return "(not " + l.Atom.String() + ")"
	}
	return l.Atom.String()
}

// Implication models a conditional effect: antecedent literals guard the
// consequence literals.
type Implication struct {
	Antecedent []Literal
	Consequence []Literal
}

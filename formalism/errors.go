package formalism

import "errors"

// Sentinel errors for formalism construction. Callers that hit these during
// domain/problem assembly are looking at a malformed input, not a core bug;
// parse-time callers (package pddl) wrap these with source-position context.
var (
	// ErrUnknownType indicates a reference to a type never interned in this Domain.
	ErrUnknownType = errors.New("formalism: unknown type")

	// ErrDuplicateType indicates two distinct base types registered under one name.
	ErrDuplicateType = errors.New("formalism: duplicate type definition")

	// ErrCyclicType indicates a type's base chain would not terminate.
	ErrCyclicType = errors.New("formalism: cyclic type hierarchy")

	// ErrUnknownPredicate indicates a reference to a predicate never interned in this Domain.
	ErrUnknownPredicate = errors.New("formalism: unknown predicate")

	// ErrUnknownObject indicates a reference to an object never interned in this Problem.
	ErrUnknownObject = errors.New("formalism: unknown object")

	// ErrArityMismatch indicates an atom was built with the wrong number of arguments.
	ErrArityMismatch = errors.New("formalism: arity mismatch")

	// ErrTypeMismatch indicates an atom argument's type is not a subtype of its parameter type.
	ErrTypeMismatch = errors.New("formalism: argument type mismatch")

	// ErrUnknownCostAtom indicates a cost expression referenced an atom absent from
	// the problem's per-atom cost map.
	ErrUnknownCostAtom = errors.New("formalism: unknown cost atom")

	// ErrDuplicateSchema indicates two action schemas registered under one name.
	ErrDuplicateSchema = errors.New("formalism: duplicate action schema")

	// ErrNotGround indicates an operation that requires a fully instantiated
	// (variable-free) entity was given one still carrying free variables.
	ErrNotGround = errors.New("formalism: not ground")
)

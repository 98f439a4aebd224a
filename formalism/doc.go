// Package formalism defines the hash-consed, immutable entities that make up a
// STRIPS-style planning domain and problem: types, objects, predicates, atoms,
// literals, action schemas, and the problem itself.
//
// What
//
//   - Type: a name plus an optional base type, forming an acyclic subtype chain.
//   - Object: a typed constant or (if its name starts with "?") schema variable.
//   - Predicate: a name plus an ordered list of typed parameters.
//   - Atom / Literal: a predicate applied to objects, optionally negated.
//   - ActionSchema: parameters, precondition, unconditional effect, conditional
//     effects, and a cost expression.
//   - Domain: the arena owning Types, Predicates, and ActionSchemas for one domain.
//   - Problem: the arena owning Objects, the initial atom set, the goal, and
//     per-atom costs for one problem over a Domain.
//
// Why
//
//   - Every downstream package (rank, state, gaction, lifted, grounded, search)
//     operates on *Domain/*Problem-scoped handles rather than ad-hoc strings, so
//     identity comparisons are pointer comparisons and content comparisons are a
//     single tuple comparison.
//
// Determinism
//
//	Predicate and Object ids are assigned in order of first appearance within a
//	Domain/Problem, so two builds from the same PDDL text produce identical ids.
package formalism

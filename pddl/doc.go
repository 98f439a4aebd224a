// Package pddl parses a small STRIPS-flavored PDDL subset — domains and
// problems built from typed objects, predicates, action schemas with
// preconditions/effects (including `when` conditional effects and
// `increase (total-cost) ...`), and a goal conjunction — into the
// formalism package's interned Domain/Problem.
//
// Parsing runs in two layers: Lexer/Parser turn source text into a generic
// s-expression tree (Node), then the per-file builders in domain.go and
// problem.go walk that tree against the expected PDDL forms, calling
// straight into formalism constructors. Syntax errors (malformed
// parenthesization, unexpected token) become *ParseError; structurally
// valid but semantically invalid input (undefined identifiers, arity
// mismatches, unsupported requirements) becomes *SemanticError.
package pddl

// Package lifted implements the lifted (schema-driven) successor generator:
// one SchemaGenerator per action schema, computing applicable groundings
// from a state via nullary/unary/general cases, the general case via static
// assignment-set filtering and k-partite clique enumeration over a
// compatibility graph.
//
// What
//
//   - SchemaGenerator.GetApplicableActions(state, deadline) returns every
//     ground action this schema admits in state, or (nil, false) if the
//     search aborted at the deadline before exhausting the general case.
//   - LiftedGenerator aggregates every schema's generator for a domain and
//     round-robins the remaining wall-clock deadline across schemas that
//     have not yet finished, so one expensive schema cannot starve the rest.
package lifted

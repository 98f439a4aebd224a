// Package state implements the immutable planning State = (problem, bitset,
// cached hash), plus the bitset identities that make applicability and
// apply pure bit operations against a ground action's precomputed bitsets.
//
// What
//
//   - State.IsApplicable(action): (s | posPre) & negPre == s, where negPre is
//     already the "keep" mask (all ones except a zero at each forbidden rank).
//   - State.Apply(action): delete-then-add semantics, conditional effects
//     evaluated against the pre-state, add wins over delete for the action's
//     own simultaneous add/delete of a rank.
//   - State.Atoms()/DynamicAtoms(): materialize atoms on demand by walking
//     set bits via bitset.NextSetBit.
package state

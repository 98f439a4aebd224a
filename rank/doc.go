// Package rank implements the per-problem bijection between ground atoms and
// dense integer "ranks", enabling states to be represented as bitsets and
// applicability/apply to be pure bit operations.
//
// What
//
//   - Table.GetRank(atom) and Table.GetAtom(rank) are mutual inverses.
//   - predicate_offset[p] partitions the rank space into one contiguous
//     interval per predicate, sized |objects|^arity(p).
//   - Table.IsStatic(rank) classifies a rank's predicate as static (never
//     mentioned in any action effect) or dynamic.
//
// Why
//
//	A dense integer rank turns "is atom a true in state s" into a single bit
//	test, and "apply this action's effects" into bitwise set operations —
//	see packages bitset and state.
//
// Complexity
//
//	GetRank is O(arity) — linear in the predicate's own arity. GetAtom is
//	O(log P + arity): a binary search over the P predicate offsets, then one
//	step per argument. Neither depends on the problem's total atom count.
package rank

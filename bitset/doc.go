// Package bitset implements a variable-length bitset with a default-value
// tail: positions past the explicit backing words behave as defaultTail,
// which lets boolean algebra (in particular complement) be expressed without
// materializing an infinite bitset.
//
// What
//
//   - Set/Unset/Get, Or/And/Not, NextSetBit, Compare, Hash.
//   - Not flips defaultTail and complements every explicit block — "~~b == b".
//   - Hash treats any suffix of blocks equal to defaultTail as equivalent to
//     not having those blocks at all, so two bitsets that differ only by a
//     trailing run of default-valued words hash and compare equal.
//
// Why
//
//	This is the representation backing state.State: a ground action's
//	negative-precondition bitset has defaultTail=1 ("absent, hence
//	satisfied" for any rank it does not explicitly mention), and its
//	positive-effect bitset has defaultTail=0, so applicability and apply are
//	pure bitwise operations over bitsets of possibly different lengths.
package bitset

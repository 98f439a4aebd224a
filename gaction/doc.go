// Package gaction constructs ground actions: a schema paired with a
// fully-instantiated argument tuple, a numeric cost, and four precomputed
// bitsets (positive/negative preconditions, positive/negative unconditional
// effects) plus one bitset quadruple per conditional effect.
//
// What
//
//   - Ground(schema, args, problem, table) grounds every literal in the
//     schema's precondition/effect lists against args, splits each list by
//     polarity, and sets the corresponding ranks in bitsets with the
//     correct defaultTail polarity: PosPre/PosEff default to 0 ("absent
//     unless set"), NegPre/NegEff default to 1 ("absent, hence satisfied"
//     for NegPre; "absent, hence idempotent" for NegEff under set-difference).
package gaction

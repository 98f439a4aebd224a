// Package grounded implements the grounded successor generator: every
// reachable ground action is enumerated once at construction time, then
// organized into a decision tree keyed on precondition atom ranks so that
// GetApplicableActions(state) avoids rescanning the full action list.
//
// What
//
//   - Build enumerates the full action universe via the lifted generator's
//     GetAllGroundings (type- and static-precondition-consistent, dynamic
//     preconditions ignored), then recursively partitions it into a tree of
//     branchNode (present/absent/dontCare children keyed on one rank) and
//     leafNode (a flat action list) values.
//   - GetApplicableActions(state) walks the tree: present iff the rank holds
//     in state, absent iff it doesn't, dontCare unconditionally; a leaf
//     filters its actions by exact bitset applicability.
package grounded

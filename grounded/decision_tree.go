package grounded

import (
	"sort"

	"github.com/gopherplan/strips/bitset"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/state"
)

// leafThreshold bounds how small a candidate group must be before recursion
// stops early and settles for a flat scan; below it, another branch node
// costs more to walk than the linear filter it would save.
const leafThreshold = 8

// decisionNode is either a branchNode or a leafNode.
type decisionNode interface {
	collect(s *state.State, out []*gaction.Action) []*gaction.Action
}

// branchNode tests one precondition atom rank against a state and recurses
// into whichever of present/absent applies, plus dontCare unconditionally.
// Any child may be nil if that partition was empty at build time.
type branchNode struct {
	rank                       int
	present, absent, dontCare decisionNode
}

func (n *branchNode) collect(s *state.State, out []*gaction.Action) []*gaction.Action {
	if s.IsInState(n.rank) {
		if n.present != nil {
			out = n.present.collect(s, out)
		}
	} else if n.absent != nil {
		out = n.absent.collect(s, out)
	}
	if n.dontCare != nil {
		out = n.dontCare.collect(s, out)
	}
	return out
}

// leafNode holds the ground actions that survived every branch test on the
// path to it; each must still be checked for exact applicability, since the
// tree only prunes one precondition conjunct per path level.
type leafNode struct {
	actions []*gaction.Action
}

func (n *leafNode) collect(s *state.State, out []*gaction.Action) []*gaction.Action {
	for _, a := range n.actions {
		if s.IsApplicable(a) {
			out = append(out, a)
		}
	}
	return out
}

// mentionedRanks returns, sorted ascending, every atom rank some action in
// actions mentions (positively or negatively) in its precondition.
func mentionedRanks(actions []*gaction.Action) []int {
	seen := make(map[int]bool)
	for _, a := range actions {
		for r := a.PosPre.NextSetBit(0); r != bitset.NoPosition; r = a.PosPre.NextSetBit(r + 1) {
			seen[r] = true
		}
		for r := 0; r < a.NegPre.Len(); r++ {
			if !a.NegPre.Get(r) {
				seen[r] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// selectBranchingAtom returns the index into atoms whose positive and
// negative precondition mention counts among actions are most imbalanced —
// the atom most likely to cleanly split the candidate set. Falls back to
// index 0 when no atom discriminates at all.
func selectBranchingAtom(actions []*gaction.Action, atoms []int) int {
	best, bestScore := 0, -1
	for i, r := range atoms {
		pos, neg := 0, 0
		for _, a := range actions {
			if a.PosPre.Get(r) {
				pos++
			}
			if !a.NegPre.Get(r) {
				neg++
			}
		}
		score := pos - neg
		if score < 0 {
			score = -score
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// buildTree recursively partitions actions by the rank chosen from atoms at
// each level until atoms is exhausted or the group drops to leafThreshold.
func buildTree(actions []*gaction.Action, atoms []int) decisionNode {
	if len(atoms) == 0 || len(actions) <= leafThreshold {
		return &leafNode{actions: actions}
	}

	idx := selectBranchingAtom(actions, atoms)
	r := atoms[idx]
	rest := make([]int, 0, len(atoms)-1)
	rest = append(rest, atoms[:idx]...)
	rest = append(rest, atoms[idx+1:]...)

	var present, absent, dontCare []*gaction.Action
	for _, a := range actions {
		switch {
		case a.PosPre.Get(r):
			present = append(present, a)
		case !a.NegPre.Get(r):
			absent = append(absent, a)
		default:
			dontCare = append(dontCare, a)
		}
	}

	n := &branchNode{rank: r}
	if len(present) > 0 {
		n.present = buildTree(present, rest)
	}
	if len(absent) > 0 {
		n.absent = buildTree(absent, rest)
	}
	if len(dontCare) > 0 {
		n.dontCare = buildTree(dontCare, rest)
	}
	return n
}

package goalmatch

import (
	"sort"
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/lifted"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
	"github.com/gopherplan/strips/statespace"
)

// distEntry is one discovered state's step distance from a chosen "from"
// state, used to walk the space closest-first.
type distEntry struct {
	idx      int
	distance int
}

// Matcher finds the discovered state closest to a "from" state (by actual
// step distance, via the space's all-pairs shortest paths) that satisfies
// the problem's goal.
type Matcher struct {
	space   *statespace.Space
	problem *formalism.Problem
	table   *rank.Table
	ground  bool

	goalSchemaGen *lifted.SchemaGenerator // nil when ground

	initialSorted []distEntry
}

// Build precomputes a Matcher over space, whose states were built with
// table. The initial state's distance-sorted state list is computed eagerly
// since BestMatch against it is the common case.
func Build(space *statespace.Space, table *rank.Table) *Matcher {
	problem := space.Problem()
	m := &Matcher{space: space, problem: problem, table: table, ground: problem.IsGoalGround()}

	if !m.ground {
		m.goalSchemaGen = lifted.Build(goalSchema(problem), problem, table)
	}

	m.initialSorted = m.computeSorted(0)
	return m
}

// goalSchema wraps the problem's goal conjunction as a synthetic, unit-cost,
// effect-free action schema. Its parameters are the goal's own free
// variable objects, reused directly rather than re-interned; asking whether
// it admits any grounding in a state is equivalent to asking whether some
// binding of the goal's free variables satisfies the goal there.
func goalSchema(problem *formalism.Problem) *formalism.ActionSchema {
	seen := make(map[*formalism.Object]bool)
	var params []*formalism.Object
	for _, lit := range problem.Goal {
		for _, arg := range lit.Atom.Arguments {
			if arg.IsVariable() && !seen[arg] {
				seen[arg] = true
				params = append(params, arg)
			}
		}
	}
	return &formalism.ActionSchema{
		Name:         "__goal_match",
		Parameters:   params,
		Precondition: problem.Goal,
		Cost:         formalism.ConstCost(1),
	}
}

// BestMatch finds the closest discovered state, by step distance from the
// state space's initial state, satisfying the goal.
func (m *Matcher) BestMatch() (*state.State, int, error) {
	return m.bestMatchSorted(m.initialSorted)
}

// BestMatchFrom finds the closest discovered state, by step distance from
// from, satisfying the goal. from must have been discovered while building
// the underlying state space, or ErrUnknownState is returned.
func (m *Matcher) BestMatchFrom(from *state.State) (*state.State, int, error) {
	idx, ok := m.space.IndexOf(from)
	if !ok {
		return nil, 0, ErrUnknownState
	}
	return m.bestMatchSorted(m.computeSorted(idx))
}

func (m *Matcher) bestMatchSorted(sorted []distEntry) (*state.State, int, error) {
	for _, e := range sorted {
		s := m.space.State(e.idx)
		ok, err := m.satisfies(s)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			return s, e.distance, nil
		}
	}
	return nil, 0, ErrNoMatch
}

func (m *Matcher) satisfies(s *state.State) (bool, error) {
	if m.ground {
		return m.literalsHold(s)
	}
	actions, _ := m.goalSchemaGen.GetApplicableActions(s, time.Time{})
	return len(actions) > 0, nil
}

// literalsHold reports whether every ground goal literal holds in s,
// handling negation via state.State.LiteralHolds's XOR semantics — a
// deliberate generalization beyond the original's positive-atom-only ground
// goal check, since the underlying state representation already supports
// negative literals directly.
func (m *Matcher) literalsHold(s *state.State) (bool, error) {
	for _, lit := range m.problem.Goal {
		ok, err := s.LiteralHolds(lit)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// computeSorted ranks every discovered state by its step distance from
// fromIdx, ascending (ties broken by index for determinism), dropping
// states unreachable from it.
func (m *Matcher) computeSorted(fromIdx int) []distEntry {
	n := m.space.NumStates()
	out := make([]distEntry, 0, n)
	for i := 0; i < n; i++ {
		d, ok := m.space.GetDistanceBetweenStates(fromIdx, i)
		if !ok {
			continue
		}
		out = append(out, distEntry{idx: i, distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].distance != out[j].distance {
			return out[i].distance < out[j].distance
		}
		return out[i].idx < out[j].idx
	})
	return out
}

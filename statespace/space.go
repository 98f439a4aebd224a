package statespace

import (
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/grounded"
	"github.com/gopherplan/strips/lifted"
	"github.com/gopherplan/strips/state"
)

// SuccessorFunc returns every ground action applicable in s. Both successor
// generator packages satisfy this once adapted via LiftedSuccessors or
// GroundedSuccessors below.
type SuccessorFunc func(s *state.State) []*gaction.Action

// LiftedSuccessors adapts a lifted.LiftedGenerator into a SuccessorFunc with
// no deadline; state space construction is an offline, exhaustive operation
// so the deadline-aware k-clique search is simply allowed to run to
// completion.
func LiftedSuccessors(lg *lifted.LiftedGenerator) SuccessorFunc {
	return func(s *state.State) []*gaction.Action {
		actions, _ := lg.GetApplicableActions(s, time.Time{})
		return actions
	}
}

// GroundedSuccessors adapts a grounded.Generator into a SuccessorFunc.
func GroundedSuccessors(g *grounded.Generator) SuccessorFunc {
	return g.GetApplicableActions
}

// transition is one forward edge: the action taken and the destination
// state's dense index.
type transition struct {
	action *gaction.Action
	to     int
}

// Space is the explicit state space reachable from one initial state.
type Space struct {
	problem *formalism.Problem

	states  []*state.State
	byHash  map[uint64][]int
	forward [][]transition
	backward [][]int // backward[i] = predecessor state indices of i

	goalIndices    []int
	distanceToGoal []int // -1 = unreached / dead end

	byDistance map[int][]int // distance bucket -> state indices
	deadEnds   []int

	apsp         [][]int // -1 = no path; computed lazily
	apspComputed bool
}

// Problem returns the problem this space was built for.
func (sp *Space) Problem() *formalism.Problem { return sp.problem }

// NumStates returns the number of discovered states.
func (sp *Space) NumStates() int { return len(sp.states) }

// State returns the state at dense index i.
func (sp *Space) State(i int) *state.State { return sp.states[i] }

// DistanceToGoal returns the backward BFS distance from state i to the
// nearest goal state, or -1 if i cannot reach any goal.
func (sp *Space) DistanceToGoal(i int) int { return sp.distanceToGoal[i] }

// GoalIndices returns the dense indices of every discovered goal state.
func (sp *Space) GoalIndices() []int { return sp.goalIndices }

// IndexOf returns the dense index of s if it was discovered during Build,
// without inserting it.
func (sp *Space) IndexOf(s *state.State) (idx int, ok bool) {
	for _, cand := range sp.byHash[s.Hash()] {
		if sp.states[cand].Equal(s) {
			return cand, true
		}
	}
	return 0, false
}

// findOrAdd returns the dense index of s, inserting it (with empty forward
// and backward edge lists; Build records the edges) if this is the first
// time it has been seen.
func (sp *Space) findOrAdd(s *state.State) (idx int, isNew bool) {
	h := s.Hash()
	for _, cand := range sp.byHash[h] {
		if sp.states[cand].Equal(s) {
			return cand, false
		}
	}
	idx = len(sp.states)
	sp.states = append(sp.states, s)
	sp.forward = append(sp.forward, nil)
	sp.backward = append(sp.backward, nil)
	sp.byHash[h] = append(sp.byHash[h], idx)
	return idx, true
}

// Build performs the forward BFS closure from initial under succ, bounded by
// maxStates (0 means unbounded), then a backward BFS from every state
// isGoal accepts to fill DistanceToGoal.
func Build(problem *formalism.Problem, initial *state.State, isGoal func(*state.State) bool, succ SuccessorFunc, maxStates int) (*Space, error) {
	sp := &Space{
		problem: problem,
		byHash:  make(map[uint64][]int),
	}

	initIdx, _ := sp.findOrAdd(initial)
	queue := []int{initIdx}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range succ(sp.states[cur]) {
			next, err := sp.states[cur].Apply(a)
			if err != nil {
				continue
			}
			toIdx, isNew := sp.findOrAdd(next)
			sp.forward[cur] = append(sp.forward[cur], transition{action: a, to: toIdx})
			sp.backward[toIdx] = append(sp.backward[toIdx], cur)
			if isNew {
				if maxStates > 0 && len(sp.states) > maxStates {
					return nil, ErrMaxStatesExceeded
				}
				queue = append(queue, toIdx)
			}
		}
	}

	for i, s := range sp.states {
		if isGoal(s) {
			sp.goalIndices = append(sp.goalIndices, i)
		}
	}

	sp.computeGoalDistances()
	return sp, nil
}

// computeGoalDistances runs a backward BFS seeded from every goal index,
// filling distanceToGoal and the distance-bucket index used by sampling.
func (sp *Space) computeGoalDistances() {
	n := len(sp.states)
	sp.distanceToGoal = make([]int, n)
	for i := range sp.distanceToGoal {
		sp.distanceToGoal[i] = -1
	}
	sp.byDistance = make(map[int][]int)

	queue := make([]int, 0, len(sp.goalIndices))
	for _, g := range sp.goalIndices {
		sp.distanceToGoal[g] = 0
		queue = append(queue, g)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := sp.distanceToGoal[cur]
		sp.byDistance[d] = append(sp.byDistance[d], cur)
		for _, pred := range sp.backward[cur] {
			if sp.distanceToGoal[pred] == -1 {
				sp.distanceToGoal[pred] = d + 1
				queue = append(queue, pred)
			}
		}
	}

	for i, d := range sp.distanceToGoal {
		if d == -1 {
			sp.deadEnds = append(sp.deadEnds, i)
		}
	}
}

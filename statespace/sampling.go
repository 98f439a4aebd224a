package statespace

import (
	"math/rand"

	"github.com/gopherplan/strips/state"
)

// SampleState draws a uniformly random state from the whole space using rng.
func (sp *Space) SampleState(rng *rand.Rand) (*state.State, error) {
	if len(sp.states) == 0 {
		return nil, ErrNoSuchSample
	}
	return sp.states[rng.Intn(len(sp.states))], nil
}

// SampleStateWithDistanceToGoal draws a uniformly random state whose
// DistanceToGoal equals d, using rng.
func (sp *Space) SampleStateWithDistanceToGoal(d int, rng *rand.Rand) (*state.State, error) {
	bucket := sp.byDistance[d]
	if len(bucket) == 0 {
		return nil, ErrNoSuchSample
	}
	return sp.states[bucket[rng.Intn(len(bucket))]], nil
}

// SampleDeadEndState draws a uniformly random state with no path to any
// goal state, using rng.
func (sp *Space) SampleDeadEndState(rng *rand.Rand) (*state.State, error) {
	if len(sp.deadEnds) == 0 {
		return nil, ErrNoSuchSample
	}
	return sp.states[sp.deadEnds[rng.Intn(len(sp.deadEnds))]], nil
}

package heuristic

import (
	"math"

	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/state"
)

// Delta1 computes h1: the minimum accumulated cost to achieve each rank
// under the delete relaxation, by Bellman-Ford-style relaxation to a
// dirty-flag fixpoint.
type Delta1 struct {
	numRanks int
	actions  []relaxedAction
	h1       []float64
}

// BuildDelta1 precomputes the relaxed action set over numRanks ranks.
func BuildDelta1(actions []*gaction.Action, numRanks int) *Delta1 {
	return &Delta1{numRanks: numRanks, actions: extractRelaxedActions(actions, numRanks)}
}

func (d *Delta1) fillTable(s *state.State) {
	d.h1 = make([]float64, d.numRanks)
	for r := range d.h1 {
		d.h1[r] = math.Inf(1)
	}
	for r := 0; r < d.numRanks; r++ {
		if s.IsInState(r) {
			d.h1[r] = 0
		}
	}

	changed := true
	for changed {
		changed = false
		for _, a := range d.actions {
			cPre := preCost(d.h1, a.pre)
			if math.IsInf(cPre, 1) {
				continue
			}
			for _, r := range a.add {
				if cand := cPre + a.cost; cand < d.h1[r] {
					d.h1[r] = cand
					changed = true
				}
			}
		}
	}
}

func preCost(h1 []float64, pre []int) float64 {
	var v float64
	for _, r := range pre {
		if h1[r] > v {
			v = h1[r]
		}
	}
	return v
}

// Evaluate reseeds the h1 table from s and returns the max h1 value over
// goalRanks. deadEnd is true iff any goal rank remains at +Inf.
func (d *Delta1) Evaluate(s *state.State, goalRanks []int) (cost float64, deadEnd bool) {
	d.fillTable(s)
	v := preCost(d.h1, goalRanks)
	if math.IsInf(v, 1) {
		return 0, true
	}
	return v, false
}

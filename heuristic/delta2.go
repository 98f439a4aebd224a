package heuristic

import (
	"math"

	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/state"
)

// Delta2 computes h2: the minimum cost to simultaneously achieve each pair
// of ranks under the delete relaxation, alongside the h1 table it
// generalizes from. Both tables are filled together in one fixpoint pass,
// since a pair relaxation step needs the running h1 values.
type Delta2 struct {
	numRanks int
	actions  []relaxedAction
	h1       []float64
	h2       [][]float64
}

// BuildDelta2 precomputes the relaxed action set over numRanks ranks.
func BuildDelta2(actions []*gaction.Action, numRanks int) *Delta2 {
	return &Delta2{numRanks: numRanks, actions: extractRelaxedActions(actions, numRanks)}
}

func (d *Delta2) fillTable(s *state.State) {
	d.h1 = make([]float64, d.numRanks)
	d.h2 = make([][]float64, d.numRanks)
	for r := range d.h1 {
		d.h1[r] = math.Inf(1)
		d.h2[r] = make([]float64, d.numRanks)
		for c := range d.h2[r] {
			d.h2[r][c] = math.Inf(1)
		}
	}

	var inState []int
	for r := 0; r < d.numRanks; r++ {
		if s.IsInState(r) {
			inState = append(inState, r)
		}
	}
	for _, r := range inState {
		d.h1[r] = 0
		for _, c := range inState {
			d.h2[r][c] = 0
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

			for i, r1 := range a.add {
				d.update1(r1, cPre+a.cost, &changed)

				for j := i + 1; j < len(a.add); j++ {
					r2 := a.add[j]
					if r1 != r2 {
						d.update2(r1, r2, cPre+a.cost, &changed)
					}
				}

				for _, r2 := range a.deleteComplement {
					cPre2 := maxFloat(cPre, d.evalWithRank(a.pre, r2))
					if math.IsInf(cPre2, 1) {
						continue
					}
					d.update2(r1, r2, cPre2+a.cost, &changed)
				}
			}
		}
	}
}

func (d *Delta2) update1(r int, v float64, changed *bool) {
	if d.h1[r] > v {
		d.h1[r] = v
		*changed = true
	}
}

func (d *Delta2) update2(r1, r2 int, v float64, changed *bool) {
	if d.h2[r1][r2] > v {
		d.h2[r1][r2] = v
		d.h2[r2][r1] = v
		*changed = true
	}
}

// evalWithRank folds in h1[rank] alongside the running max over pre's pairs
// with rank, mirroring the C++ eval(ranks, rank) overload used by the pair
// relaxation step.
func (d *Delta2) evalWithRank(pre []int, rank int) float64 {
	v := d.h1[rank]
	for _, r := range pre {
		if r == rank {
			continue
		}
		if d.h2[rank][r] > v {
			v = d.h2[rank][r]
		}
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// evalRanks returns the max over every singleton h1 value and every pairwise
// h2 value among ranks, the general form Evaluate specializes to goalRanks.
func (d *Delta2) evalRanks(ranks []int) float64 {
	var v float64
	for i, r1 := range ranks {
		if d.h1[r1] > v {
			v = d.h1[r1]
		}
		for j := i + 1; j < len(ranks); j++ {
			r2 := ranks[j]
			if d.h2[r1][r2] > v {
				v = d.h2[r1][r2]
			}
		}
	}
	return v
}

// Evaluate reseeds h1/h2 from s and returns the max singleton/pairwise cost
// over goalRanks. deadEnd is true iff that value never became finite.
func (d *Delta2) Evaluate(s *state.State, goalRanks []int) (cost float64, deadEnd bool) {
	d.fillTable(s)
	v := d.evalRanks(goalRanks)
	if math.IsInf(v, 1) {
		return 0, true
	}
	return v, false
}

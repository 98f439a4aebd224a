package heuristic

import "github.com/gopherplan/strips/gaction"

// relaxedAction is one ground action reduced to exactly what the delete
// relaxation needs: precondition ranks, add-effect ranks (unconditional and
// conditional consequences pooled together, since the relaxation never
// checks a conditional effect's antecedent), and deleteComplement — every
// rank the action does *not* delete, used by Delta2 to propagate pair costs
// through ranks that survive the action.
type relaxedAction struct {
	pre              []int
	add              []int
	deleteComplement []int
	cost             float64
}

// extractRelaxedActions reduces each ground action to its relaxedAction
// form against a rank space of size numRanks.
func extractRelaxedActions(actions []*gaction.Action, numRanks int) []relaxedAction {
	out := make([]relaxedAction, len(actions))
	for i, a := range actions {
		out[i] = extractRelaxedAction(a, numRanks)
	}
	return out
}

func extractRelaxedAction(a *gaction.Action, numRanks int) relaxedAction {
	var pre []int
	for r := 0; r < numRanks; r++ {
		if a.PosPre.Get(r) {
			pre = append(pre, r)
		}
	}

	added := make([]bool, numRanks)
	deleted := make([]bool, numRanks)

	collect := func(posEff, negEff interface{ Get(int) bool }) {
		for r := 0; r < numRanks; r++ {
			if posEff.Get(r) {
				added[r] = true
			}
			if !negEff.Get(r) {
				deleted[r] = true
			}
		}
	}
	collect(a.PosEff, a.NegEff)
	for _, ce := range a.Conditional {
		collect(ce.PosEff, ce.NegEff)
	}

	var add, deleteComplement []int
	for r := 0; r < numRanks; r++ {
		if added[r] {
			add = append(add, r)
		}
		if !deleted[r] {
			deleteComplement = append(deleteComplement, r)
		}
	}

	return relaxedAction{pre: pre, add: add, deleteComplement: deleteComplement, cost: a.Cost}
}

package formalism

// CostOp distinguishes the two mutation operations a non-constant cost
// expression can apply to its accumulator variable.
type CostOp int

const (
	// CostIncrease adds the evaluated source value to the accumulator.
	CostIncrease CostOp = iota
	// CostDecrease subtracts the evaluated source value from the accumulator.
	CostDecrease
)

// CostExpr is an action's cost function: either a constant, or an
// INCREASE/DECREASE applied to a source that is either a ground function
// atom (looked up in the problem's per-atom cost map at grounding time) or a
// literal constant.
type CostExpr struct {
	// IsConstant, when true, means Evaluate always returns Constant.
	IsConstant bool
	Constant   float64

	// Op is meaningful only when !IsConstant.
	Op CostOp

	// SourceIsFunction selects between looking up SourceAtom in the cost map
	// (true) or using SourceConstant directly (false).
	SourceIsFunction bool
	SourceAtom       Atom
	SourceConstant   float64
}

// ConstCost builds a constant CostExpr.
func ConstCost(v float64) CostExpr {
	return CostExpr{IsConstant: true, Constant: v}
}

// Evaluate resolves the cost expression to a real number, given the
// problem's per-atom cost map (keyed by Atom.Key()). Returns ErrUnknownCostAtom
// if a function-sourced expression references an atom outside the map.
func (c CostExpr) Evaluate(costAtoms map[string]float64) (float64, error) {
	if c.IsConstant {
		return c.Constant, nil
	}
	var v float64
	if c.SourceIsFunction {
		found, ok := costAtoms[c.SourceAtom.Key()]
		if !ok {
			return 0, ErrUnknownCostAtom
		}
		v = found
	} else {
		v = c.SourceConstant
	}
	if c.Op == CostDecrease {
		return -v, nil
	}
	return v, nil
}

// ActionSchema is a (possibly lifted) action: a name, typed parameters, a
// precondition, an unconditional effect, conditional effects, and a cost
// expression.
type ActionSchema struct {
	ID                  uint32
	Name                string
	Parameters          []*Object // free variables, one per formal parameter
	Precondition        []Literal
	UnconditionalEffect []Literal
	ConditionalEffect   []Implication
	Cost                CostExpr
}

// Arity returns the number of formal parameters this schema takes.
func (s *ActionSchema) Arity() int {
	return len(s.Parameters)
}

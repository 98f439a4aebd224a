package gaction

import (
	"strings"

	"github.com/gopherplan/strips/bitset"
	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/rank"
)

// ConditionalEffect is one implication's four precomputed bitsets, in the
// same polarity convention as Action's own fields.
type ConditionalEffect struct {
	PosPre *bitset.Bitset
	NegPre *bitset.Bitset
	PosEff *bitset.Bitset
	NegEff *bitset.Bitset
}

// Action is a ground action: a schema, its bound argument tuple, an
// evaluated cost, and the four bitsets driving applicability/apply, plus one
// ConditionalEffect per implication in the schema.
type Action struct {
	Schema    *formalism.ActionSchema
	Arguments []*formalism.Object
	Cost      float64

	PosPre *bitset.Bitset // defaultTail=false
	NegPre *bitset.Bitset // defaultTail=true
	PosEff *bitset.Bitset // defaultTail=false
	NegEff *bitset.Bitset // defaultTail=true

	Conditional []ConditionalEffect
}

// Name returns the underlying schema's name.
func (a *Action) Name() string { return a.Schema.Name }

// String renders the action as "schema-name(arg1, arg2, ...)", the plan
// output format expected by the CLI driver.
func (a *Action) String() string {
	var sb strings.Builder
	sb.WriteString(a.Schema.Name)
	sb.WriteByte('(')
	for i, arg := range a.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}

func substitute(atom formalism.Atom, binding map[*formalism.Object]*formalism.Object) formalism.Atom {
	args := make([]*formalism.Object, len(atom.Arguments))
	for i, a := range atom.Arguments {
		if bound, ok := binding[a]; ok {
			args[i] = bound
		} else {
			args[i] = a
		}
	}
	return formalism.Atom{Predicate: atom.Predicate, Arguments: args}
}

func setLiteral(b formalism.Literal, binding map[*formalism.Object]*formalism.Object, table *rank.Table, pos, neg *bitset.Bitset) error {
	atom := substitute(b.Atom, binding)
	r, err := table.GetRank(atom)
	if err != nil {
		return err
	}
	if b.Negated {
		neg.Unset(r)
	} else {
		pos.Set(r)
	}
	return nil
}

func groundCost(cost formalism.CostExpr, binding map[*formalism.Object]*formalism.Object, problem *formalism.Problem) (float64, error) {
	if cost.IsConstant {
		return cost.Constant, nil
	}
	grounded := cost
	if cost.SourceIsFunction {
		grounded.SourceAtom = substitute(cost.SourceAtom, binding)
	}
	return grounded.Evaluate(problem.Costs)
}

// Ground instantiates schema with args (one per schema.Parameters, in
// order), against problem and its rank table. Returns ErrNotGround if the
// argument count does not match, ErrTypeMismatch if an argument's type is
// not a subtype of its parameter's type.
func Ground(schema *formalism.ActionSchema, args []*formalism.Object, problem *formalism.Problem, table *rank.Table) (*Action, error) {
	if len(args) != len(schema.Parameters) {
		return nil, ErrNotGround
	}
	binding := make(map[*formalism.Object]*formalism.Object, len(args))
	for i, param := range schema.Parameters {
		if !args[i].Type.IsSubtypeOf(param.Type) {
			return nil, ErrTypeMismatch
		}
		binding[param] = args[i]
	}

	posPre, negPre := bitset.New(false), bitset.New(true)
	for _, lit := range schema.Precondition {
		if err := setLiteral(lit, binding, table, posPre, negPre); err != nil {
			return nil, err
		}
	}

	posEff, negEff := bitset.New(false), bitset.New(true)
	for _, lit := range schema.UnconditionalEffect {
		if err := setLiteral(lit, binding, table, posEff, negEff); err != nil {
			return nil, err
		}
	}

	conditionals := make([]ConditionalEffect, 0, len(schema.ConditionalEffect))
	for _, impl := range schema.ConditionalEffect {
		ce := ConditionalEffect{
			PosPre: bitset.New(false), NegPre: bitset.New(true),
			PosEff: bitset.New(false), NegEff: bitset.New(true),
		}
		for _, lit := range impl.Antecedent {
			if err := setLiteral(lit, binding, table, ce.PosPre, ce.NegPre); err != nil {
				return nil, err
			}
		}
		for _, lit := range impl.Consequence {
			if err := setLiteral(lit, binding, table, ce.PosEff, ce.NegEff); err != nil {
				return nil, err
			}
		}
		conditionals = append(conditionals, ce)
	}

	cost, err := groundCost(schema.Cost, binding, problem)
	if err != nil {
		return nil, err
	}

	return &Action{
		Schema:      schema,
		Arguments:   append([]*formalism.Object(nil), args...),
		Cost:        cost,
		PosPre:      posPre,
		NegPre:      negPre,
		PosEff:      posEff,
		NegEff:      negEff,
		Conditional: conditionals,
	}, nil
}

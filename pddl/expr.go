package pddl

import "github.com/gopherplan/strips/formalism"

// buildAtomOnly builds a ground-or-lifted Atom from a "(pred arg ...)"
// node, resolving each argument via resolve.
func buildAtomOnly(n *Node, resolve resolveFunc, d *formalism.Domain) (formalism.Atom, error) {
	if !n.IsList() || len(n.List) == 0 || !n.List[0].IsAtom() {
		return formalism.Atom{}, semErr(n, "expected an atom")
	}
	predName := n.List[0].Atom
	pred, err := d.LookupPredicate(predName)
	if err != nil {
		return formalism.Atom{}, semErr(n.List[0], "undefined predicate %q", predName)
	}
	tail := n.Tail()
	args := make([]*formalism.Object, len(tail))
	for i, argNode := range tail {
		obj, err := resolve(argNode)
		if err != nil {
			return formalism.Atom{}, err
		}
		args[i] = obj
	}
	atom, err := formalism.NewAtom(pred, args)
	if err != nil {
		return formalism.Atom{}, semErr(n, "%s", err)
	}
	return atom, nil
}

// buildLiteral builds a Literal from an atom node or a "(not atom)" node.
func buildLiteral(n *Node, resolve resolveFunc, d *formalism.Domain) (formalism.Literal, error) {
	if n.HeadIs("not") {
		tail := n.Tail()
		if len(tail) != 1 {
			return formalism.Literal{}, semErr(n, "'not' takes exactly one literal")
		}
		atom, err := buildAtomOnly(tail[0], resolve, d)
		if err != nil {
			return formalism.Literal{}, err
		}
		return formalism.Literal{Atom: atom, Negated: true}, nil
	}
	atom, err := buildAtomOnly(n, resolve, d)
	if err != nil {
		return formalism.Literal{}, err
	}
	return formalism.Literal{Atom: atom}, nil
}

// flattenPrecondition flattens a (possibly nested) "(and ...)" precondition
// expression into its literal conjuncts. Quantified and disjunctive forms
// are outside this subset and report a SemanticError naming the construct.
func flattenPrecondition(n *Node, resolve resolveFunc, d *formalism.Domain) ([]formalism.Literal, error) {
	if n.HeadIs("and") {
		var out []formalism.Literal
		for _, child := range n.Tail() {
			lits, err := flattenPrecondition(child, resolve, d)
			if err != nil {
				return nil, err
			}
			out = append(out, lits...)
		}
		return out, nil
	}
	if n.HeadIs("or") || n.HeadIs("forall") || n.HeadIs("exists") || n.HeadIs("imply") {
		return nil, semErr(n, "unsupported precondition construct %q", n.List[0].Atom)
	}
	lit, err := buildLiteral(n, resolve, d)
	if err != nil {
		return nil, err
	}
	return []formalism.Literal{lit}, nil
}

// flattenSimpleEffectLiterals flattens the consequence of a "when" guard
// (or a top-level "and" of plain literal effects): literals and nested
// "and", but never another "when" or "increase".
func flattenSimpleEffectLiterals(n *Node, resolve resolveFunc, d *formalism.Domain) ([]formalism.Literal, error) {
	if n.HeadIs("and") {
		var out []formalism.Literal
		for _, child := range n.Tail() {
			lits, err := flattenSimpleEffectLiterals(child, resolve, d)
			if err != nil {
				return nil, err
			}
			out = append(out, lits...)
		}
		return out, nil
	}
	if n.HeadIs("when") || n.HeadIs("increase") {
		return nil, semErr(n, "%q not supported inside a conditional effect's consequence", n.List[0].Atom)
	}
	lit, err := buildLiteral(n, resolve, d)
	if err != nil {
		return nil, err
	}
	return []formalism.Literal{lit}, nil
}

// buildCostSource resolves the second argument of "(increase target src)":
// either a numeric constant, or a function term looked up as a Predicate
// (this parser models PDDL's function symbols as ordinary Predicates,
// since a CostExpr only ever needs an Atom.Key() to index Problem.Costs).
func buildCostSource(n *Node, resolve resolveFunc, d *formalism.Domain) (atom formalism.Atom, isFunc bool, constVal float64, err error) {
	if n.IsAtom() {
		v, err := parseNumber(n)
		if err != nil {
			return formalism.Atom{}, false, 0, err
		}
		return formalism.Atom{}, false, v, nil
	}
	atom, err = buildAtomOnly(n, resolve, d)
	if err != nil {
		return formalism.Atom{}, false, 0, err
	}
	return atom, true, 0, nil
}

// buildEffectNode recursively decomposes one effect expression into its
// unconditional literals, conditional-effect implications, and (at most
// one) cost-increase expression.
func buildEffectNode(n *Node, resolve resolveFunc, d *formalism.Domain) (uncond []formalism.Literal, conds []formalism.Implication, cost *formalism.CostExpr, err error) {
	switch {
	case n.HeadIs("and"):
		for _, child := range n.Tail() {
			u, c, cst, e := buildEffectNode(child, resolve, d)
			if e != nil {
				return nil, nil, nil, e
			}
			uncond = append(uncond, u...)
			conds = append(conds, c...)
			if cst != nil {
				cost = cst
			}
		}
		return uncond, conds, cost, nil
	case n.HeadIs("when"):
		tail := n.Tail()
		if len(tail) != 2 {
			return nil, nil, nil, semErr(n, "'when' requires a condition and a consequence")
		}
		antecedent, err := flattenPrecondition(tail[0], resolve, d)
		if err != nil {
			return nil, nil, nil, err
		}
		consequence, err := flattenSimpleEffectLiterals(tail[1], resolve, d)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, []formalism.Implication{{Antecedent: antecedent, Consequence: consequence}}, nil, nil
	case n.HeadIs("increase"):
		tail := n.Tail()
		if len(tail) != 2 {
			return nil, nil, nil, semErr(n, "'increase' requires a function term and a value")
		}
		srcAtom, isFunc, constVal, err := buildCostSource(tail[1], resolve, d)
		if err != nil {
			return nil, nil, nil, err
		}
		ce := formalism.CostExpr{Op: formalism.CostIncrease, SourceIsFunction: isFunc, SourceAtom: srcAtom, SourceConstant: constVal}
		return nil, nil, &ce, nil
	default:
		lit, err := buildLiteral(n, resolve, d)
		if err != nil {
			return nil, nil, nil, err
		}
		return []formalism.Literal{lit}, nil, nil, nil
	}
}

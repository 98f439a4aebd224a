package pddl

import (
	"strings"

	"github.com/gopherplan/strips/formalism"
)

// ParseProblem parses a "(define (problem ...) ...)" form over domain,
// merging constants (ParseDomain's second return value) into the problem's
// object pool before resolving ":objects", ":init", and ":goal". When
// domain.Requirements[":equality"] is set, a reflexive equality atom over
// the "=" predicate (which ParseDomain injected) is added to the initial
// state for every object, per the parser contract.
func ParseProblem(src string, domain *formalism.Domain, constants []ConstantDecl) (*formalism.Problem, error) {
	root, err := NewParser(src).ParseTop()
	if err != nil {
		return nil, err
	}
	if !root.HeadIs("define") {
		return nil, semErr(root, "expected '(define ...)'")
	}
	tail := root.Tail()
	if len(tail) == 0 || !tail[0].HeadIs("problem") {
		return nil, semErr(root, "expected '(problem <name>)' as the first form")
	}
	nameTail := tail[0].Tail()
	if len(nameTail) != 1 || !nameTail[0].IsAtom() {
		return nil, semErr(tail[0], "expected a single problem name")
	}

	p := formalism.NewProblem(nameTail[0].Atom, domain)
	for _, c := range constants {
		if _, err := p.InternObject(c.Name, c.Type); err != nil {
			return nil, err
		}
	}

	resolve := func(argNode *Node) (*formalism.Object, error) {
		if !argNode.IsAtom() {
			return nil, semErr(argNode, "expected an object name")
		}
		obj, err := p.LookupObject(argNode.Atom)
		if err != nil {
			return nil, semErr(argNode, "undefined object %q", argNode.Atom)
		}
		return obj, nil
	}

	for _, section := range tail[1:] {
		if !section.IsList() || len(section.List) == 0 || !section.List[0].IsAtom() {
			return nil, semErr(section, "expected a problem section")
		}
		if err := applyProblemSection(section, p, domain, resolve); err != nil {
			return nil, err
		}
	}

	if domain.Requirements[":equality"] {
		eqPred, err := domain.LookupPredicate("=")
		if err != nil {
			return nil, semErr(root, "':equality' declared but '=' predicate missing")
		}
		for _, o := range p.Objects() {
			atom, err := formalism.NewAtom(eqPred, []*formalism.Object{o, o})
			if err != nil {
				return nil, semErr(root, "%s", err)
			}
			p.AddInitialAtom(atom)
		}
	}

	return p, nil
}

func applyProblemSection(section *Node, p *formalism.Problem, d *formalism.Domain, resolve resolveFunc) error {
	switch strings.ToLower(section.List[0].Atom) {
	case ":domain":
		tail := section.Tail()
		if len(tail) != 1 || !tail[0].IsAtom() || !strings.EqualFold(tail[0].Atom, d.Name) {
			return semErr(section, "':domain' does not match the parsed domain name %q", d.Name)
		}
		return nil
	case ":objects":
		slots, err := parseTypedList(section.Tail(), d)
		if err != nil {
			return err
		}
		for _, s := range slots {
			if _, err := p.InternObject(s.name, s.typ); err != nil {
				return err
			}
		}
		return nil
	case ":init":
		for _, fact := range section.Tail() {
			if fact.HeadIs("=") {
				tail := fact.Tail()
				if len(tail) != 2 {
					return semErr(fact, "'=' init fact requires a function term and a value")
				}
				atom, err := buildAtomOnly(tail[0], resolve, d)
				if err != nil {
					return err
				}
				value, err := parseNumber(tail[1])
				if err != nil {
					return err
				}
				p.SetAtomCost(atom, value)
				continue
			}
			atom, err := buildAtomOnly(fact, resolve, d)
			if err != nil {
				return err
			}
			p.AddInitialAtom(atom)
		}
		return nil
	case ":goal":
		tail := section.Tail()
		if len(tail) != 1 {
			return semErr(section, "':goal' requires exactly one expression")
		}
		lits, err := flattenGoal(tail[0], resolve, d)
		if err != nil {
			return err
		}
		for _, lit := range lits {
			p.AddGoalLiteral(lit)
		}
		return nil
	case ":metric":
		tail := section.Tail()
		if len(tail) != 2 || !tail[0].eqFold("minimize") || !tail[1].HeadIs("total-cost") {
			return semErr(section, "only '(:metric minimize (total-cost))' is supported")
		}
		p.HasTotalCostMetric = true
		return nil
	default:
		return semErr(section, "unknown problem section %q", section.List[0].Atom)
	}
}

// flattenGoal flattens a goal conjunction like flattenPrecondition, but
// rejects negated literals: a negated goal literal is an explicitly
// unsupported feature, independent of this state representation's own
// ability to evaluate negative literals at the goal-matching layer.
func flattenGoal(n *Node, resolve resolveFunc, d *formalism.Domain) ([]formalism.Literal, error) {
	if n.HeadIs("and") {
		var out []formalism.Literal
		for _, child := range n.Tail() {
			lits, err := flattenGoal(child, resolve, d)
			if err != nil {
				return nil, err
			}
			out = append(out, lits...)
		}
		return out, nil
	}
	if n.HeadIs("not") {
		return nil, semErr(n, "negated goal literals are not supported")
	}
	if n.HeadIs("or") || n.HeadIs("forall") || n.HeadIs("exists") || n.HeadIs("imply") {
		return nil, semErr(n, "unsupported goal construct %q", n.List[0].Atom)
	}
	lit, err := buildLiteral(n, resolve, d)
	if err != nil {
		return nil, err
	}
	return []formalism.Literal{lit}, nil
}

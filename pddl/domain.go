package pddl

import (
	"strings"

	"github.com/gopherplan/strips/formalism"
)

// ConstantDecl is one domain-level ":constants" entry, returned alongside
// the parsed Domain so ParseProblem can merge it into a problem's own
// object pool — constants are shared across every problem over the domain.
type ConstantDecl struct {
	Name string
	Type *formalism.Type
}

// ParseDomain parses a "(define (domain ...) ...)" form into an interned
// formalism.Domain, plus the domain's declared constants (if any).
func ParseDomain(src string) (*formalism.Domain, []ConstantDecl, error) {
	root, err := NewParser(src).ParseTop()
	if err != nil {
		return nil, nil, err
	}
	if !root.HeadIs("define") {
		return nil, nil, semErr(root, "expected '(define ...)'")
	}
	tail := root.Tail()
	if len(tail) == 0 || !tail[0].HeadIs("domain") {
		return nil, nil, semErr(root, "expected '(domain <name>)' as the first form")
	}
	nameTail := tail[0].Tail()
	if len(nameTail) != 1 || !nameTail[0].IsAtom() {
		return nil, nil, semErr(tail[0], "expected a single domain name")
	}

	d := formalism.NewDomain(nameTail[0].Atom)
	constants := formalism.NewProblem(d.Name+"$constants", d)

	for _, section := range tail[1:] {
		if !section.IsList() || len(section.List) == 0 || !section.List[0].IsAtom() {
			return nil, nil, semErr(section, "expected a domain section")
		}
		if err := applyDomainSection(section, d, constants); err != nil {
			return nil, nil, err
		}
	}

	var decls []ConstantDecl
	for _, o := range constants.Objects() {
		decls = append(decls, ConstantDecl{Name: o.Name, Type: o.Type})
	}
	return d, decls, nil
}

func applyDomainSection(section *Node, d *formalism.Domain, constants *formalism.Problem) error {
	switch strings.ToLower(section.List[0].Atom) {
	case ":requirements":
		reqs, err := parseRequirements(section)
		if err != nil {
			return err
		}
		d.Requirements = reqs
		if reqs[":equality"] {
			obj := objectType(d)
			if _, err := d.InternPredicate("=", []*formalism.Type{obj, obj}); err != nil {
				return err
			}
		}
		return nil
	case ":types":
		_, err := parseTypedList(section.Tail(), d)
		return err
	case ":constants":
		slots, err := parseTypedList(section.Tail(), d)
		if err != nil {
			return err
		}
		for _, s := range slots {
			if _, err := constants.InternObject(s.name, s.typ); err != nil {
				return err
			}
		}
		return nil
	case ":predicates":
		for _, pred := range section.Tail() {
			if err := internRelation(pred, d); err != nil {
				return err
			}
		}
		return nil
	case ":functions":
		for _, fn := range section.Tail() {
			if err := internRelation(fn, d); err != nil {
				return err
			}
		}
		return nil
	case ":action":
		schema, err := buildAction(section, d, constants)
		if err != nil {
			return err
		}
		return d.AddSchema(schema)
	default:
		return semErr(section, "unknown domain section %q", section.List[0].Atom)
	}
}

// internRelation interns a ":predicates"/":functions" entry — both are
// named, typed-argument relations, modeled identically as Predicates.
func internRelation(n *Node, d *formalism.Domain) error {
	if !n.IsList() || len(n.List) == 0 || !n.List[0].IsAtom() {
		return semErr(n, "expected a declaration of the form (name ...)")
	}
	slots, err := parseTypedList(n.Tail(), d)
	if err != nil {
		return err
	}
	types := make([]*formalism.Type, len(slots))
	for i, s := range slots {
		types[i] = s.typ
	}
	_, err = d.InternPredicate(n.List[0].Atom, types)
	return err
}

func buildAction(n *Node, d *formalism.Domain, constants *formalism.Problem) (*formalism.ActionSchema, error) {
	tail := n.Tail()
	if len(tail) == 0 || !tail[0].IsAtom() {
		return nil, semErr(n, "action missing a name")
	}
	name := tail[0].Atom
	rest := tail[1:]

	var paramNodes []*Node
	var preconditionNode, effectNode *Node
	for i := 0; i < len(rest); i++ {
		item := rest[i]
		if !item.IsAtom() {
			return nil, semErr(item, "expected an action keyword")
		}
		switch strings.ToLower(item.Atom) {
		case ":parameters":
			i++
			if i >= len(rest) || !rest[i].IsList() {
				return nil, semErr(item, "':parameters' requires a typed list")
			}
			paramNodes = rest[i].List
		case ":precondition":
			i++
			if i >= len(rest) {
				return nil, semErr(item, "':precondition' requires an expression")
			}
			preconditionNode = rest[i]
		case ":effect":
			i++
			if i >= len(rest) {
				return nil, semErr(item, "':effect' requires an expression")
			}
			effectNode = rest[i]
		default:
			return nil, semErr(item, "unknown action keyword %q", item.Atom)
		}
	}

	scratch := formalism.NewProblem(name+"$params", d)
	slots, err := parseTypedList(paramNodes, d)
	if err != nil {
		return nil, err
	}
	params := make([]*formalism.Object, len(slots))
	byName := make(map[string]*formalism.Object, len(slots))
	for i, s := range slots {
		obj, err := scratch.InternObject(s.name, s.typ)
		if err != nil {
			return nil, err
		}
		params[i] = obj
		byName[s.name] = obj
	}

	resolve := func(argNode *Node) (*formalism.Object, error) {
		if !argNode.IsAtom() {
			return nil, semErr(argNode, "expected an object or variable name")
		}
		if strings.HasPrefix(argNode.Atom, "?") {
			if obj, ok := byName[argNode.Atom]; ok {
				return obj, nil
			}
			return nil, semErr(argNode, "undefined parameter %q in action %q", argNode.Atom, name)
		}
		obj, err := constants.LookupObject(argNode.Atom)
		if err != nil {
			return nil, semErr(argNode, "undefined constant %q in action %q", argNode.Atom, name)
		}
		return obj, nil
	}

	schema := &formalism.ActionSchema{Name: name, Parameters: params, Cost: formalism.ConstCost(1)}

	if preconditionNode != nil {
		lits, err := flattenPrecondition(preconditionNode, resolve, d)
		if err != nil {
			return nil, err
		}
		schema.Precondition = lits
	}
	if effectNode != nil {
		uncond, conds, cost, err := buildEffectNode(effectNode, resolve, d)
		if err != nil {
			return nil, err
		}
		schema.UnconditionalEffect = uncond
		schema.ConditionalEffect = conds
		if cost != nil {
			schema.Cost = *cost
		}
	}
	return schema, nil
}

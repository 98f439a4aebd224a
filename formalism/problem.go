package formalism

import "fmt"

// Problem owns the interned Objects, initial atom set, goal, and per-atom
// costs for one problem instance over a Domain.
type Problem struct {
	Name   string
	Domain *Domain

	objects     []*Object
	objectByName map[string]*Object

	Initial []Atom
	Goal    []Literal

	// Costs maps Atom.Key() to its declared numeric cost, populated from
	// PDDL "(= (<func-atom>) <number>)" init facts.
	Costs map[string]float64

	// HasTotalCostMetric is true when the problem declares
	// "(:metric minimize (total-cost))"; this module supports no metric other
	// than that one.
	HasTotalCostMetric bool
}

// NewProblem creates an empty Problem named name over domain.
func NewProblem(name string, domain *Domain) *Problem {
	return &Problem{
		Name:         name,
		Domain:       domain,
		objectByName: make(map[string]*Object),
		Costs:        make(map[string]float64),
	}
}

// InternObject returns the existing *Object for name if already interned,
// otherwise creates one with the next dense id.
func (p *Problem) InternObject(name string, typ *Type) (*Object, error) {
	if existing, ok := p.objectByName[name]; ok {
		return existing, nil
	}
	o := &Object{ID: uint32(len(p.objects)), Name: name, Type: typ}
	p.objects = append(p.objects, o)
	p.objectByName[name] = o
	return o, nil
}

// LookupObject returns the interned *Object for name, or ErrUnknownObject.
func (p *Problem) LookupObject(name string) (*Object, error) {
	if o, ok := p.objectByName[name]; ok {
		return o, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
}

// Objects returns all interned objects, in id order.
func (p *Problem) Objects() []*Object { return p.objects }

// NumObjects returns the count of interned objects.
func (p *Problem) NumObjects() int { return len(p.objects) }

// AddInitialAtom appends a to the initial atom set (no deduplication here;
// callers that build from a set should dedupe before calling, matching the
// source's AtomList vs AtomSet constructor split).
func (p *Problem) AddInitialAtom(a Atom) {
	p.Initial = append(p.Initial, a)
}

// AddGoalLiteral appends lit to the goal conjunction.
func (p *Problem) AddGoalLiteral(lit Literal) {
	p.Goal = append(p.Goal, lit)
}

// SetAtomCost records value as the declared numeric cost of a, keyed by
// Atom.Key(). Later calls for the same atom overwrite the prior value.
func (p *Problem) SetAtomCost(a Atom, value float64) {
	p.Costs[a.Key()] = value
}

// CostOf looks up the declared cost of a, returning ErrUnknownCostAtom if
// absent.
func (p *Problem) CostOf(a Atom) (float64, error) {
	v, ok := p.Costs[a.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCostAtom, a.Key())
	}
	return v, nil
}

// IsGoalGround reports whether every literal in the goal conjunction is
// fully ground (no "?"-prefixed arguments). A lifted goal instead requires
// the goalmatch package's dummy-schema path.
func (p *Problem) IsGoalGround() bool {
	for _, lit := range p.Goal {
		if !lit.Atom.IsGround() {
			return false
		}
	}
	return true
}

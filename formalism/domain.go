package formalism

import "fmt"

// Domain owns the interned Types, Predicates, and ActionSchemas for one
// STRIPS domain. Construction happens once, after which a Domain and
// everything it owns is immutable and safely shared for reads.
type Domain struct {
	Name string

	types     []*Type
	typeByName map[string]*Type

	predicates     []*Predicate
	predicateByName map[string]*Predicate

	schemas     []*ActionSchema
	schemaByName map[string]*ActionSchema

	// Requirements declared by ":requirements", kept for the parser's
	// unsupported-feature checks and for diagnostics; the core engine does
	// not branch on these beyond what InternPredicate/AddSchema already do.
	Requirements map[string]bool
}

// NewDomain creates an empty Domain with the given name.
func NewDomain(name string) *Domain {
	return &Domain{
		Name:            name,
		typeByName:      make(map[string]*Type),
		predicateByName: make(map[string]*Predicate),
		schemaByName:    make(map[string]*ActionSchema),
		Requirements:    make(map[string]bool),
	}
}

// InternType returns the existing *Type for name if already interned,
// otherwise creates one with the given base (which must already be interned,
// or nil for a root type). Re-interning the same name with a different base
// is ErrDuplicateType; a base chain that would not terminate is ErrCyclicType.
func (d *Domain) InternType(name string, base *Type) (*Type, error) {
	if existing, ok := d.typeByName[name]; ok {
		if existing.Base != base {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, name)
		}
		return existing, nil
	}
	t := &Type{ID: uint32(len(d.types)), Name: name, Base: base}
	for cur := base; cur != nil; cur = cur.Base {
		if cur == t {
			return nil, fmt.Errorf("%w: %q", ErrCyclicType, name)
		}
	}
	d.types = append(d.types, t)
	d.typeByName[name] = t
	return t, nil
}

// LookupType returns the interned *Type for name, or ErrUnknownType.
func (d *Domain) LookupType(name string) (*Type, error) {
	if t, ok := d.typeByName[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Types returns all interned types, in id order.
func (d *Domain) Types() []*Type { return d.types }

// InternPredicate returns the existing *Predicate for name if already
// interned (matched by name only; params is not compared against the
// existing predicate's parameters), otherwise creates one with the next
// dense id.
func (d *Domain) InternPredicate(name string, params []*Type) (*Predicate, error) {
	if existing, ok := d.predicateByName[name]; ok {
		return existing, nil
	}
	p := &Predicate{ID: uint32(len(d.predicates)), Name: name, Parameters: append([]*Type(nil), params...)}
	d.predicates = append(d.predicates, p)
	d.predicateByName[name] = p
	return p, nil
}

// LookupPredicate returns the interned *Predicate for name, or ErrUnknownPredicate.
func (d *Domain) LookupPredicate(name string) (*Predicate, error) {
	if p, ok := d.predicateByName[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}

// Predicates returns all interned predicates, in id order.
func (d *Domain) Predicates() []*Predicate { return d.predicates }

// AddSchema registers a fully-built ActionSchema under its Name. Returns
// ErrDuplicateSchema if the name is already taken.
func (d *Domain) AddSchema(s *ActionSchema) error {
	if _, ok := d.schemaByName[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSchema, s.Name)
	}
	s.ID = uint32(len(d.schemas))
	d.schemas = append(d.schemas, s)
	d.schemaByName[s.Name] = s
	return nil
}

// Schemas returns all registered action schemas, in registration order.
func (d *Domain) Schemas() []*ActionSchema { return d.schemas }

// LookupSchema returns the registered *ActionSchema for name, or an error.
func (d *Domain) LookupSchema(name string) (*ActionSchema, error) {
	if s, ok := d.schemaByName[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("formalism: unknown action schema %q", name)
}

// IsStaticPredicate reports whether no schema's unconditional or conditional
// effect ever mentions p. Static predicates' ground atoms never change
// across reachable states, which both the rank table and the lifted
// generator's assignment-set filter rely on.
func (d *Domain) IsStaticPredicate(p *Predicate) bool {
	for _, s := range d.schemas {
		for _, lit := range s.UnconditionalEffect {
			if lit.Atom.Predicate == p {
				return false
			}
		}
		for _, impl := range s.ConditionalEffect {
			for _, lit := range impl.Consequence {
				if lit.Atom.Predicate == p {
					return false
				}
			}
		}
	}
	return true
}

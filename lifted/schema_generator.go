package lifted

import (
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

// vertex is one (parameter index, candidate object) pair in the general
// case's k-partite compatibility graph.
type vertex struct {
	paramIdx int
	object   *formalism.Object
}

// SchemaGenerator computes applicable groundings of one ActionSchema from a
// given state.
type SchemaGenerator struct {
	schema  *formalism.ActionSchema
	problem *formalism.Problem
	table   *rank.Table

	compatibleObjects [][]*formalism.Object // per parameter index

	// General-case precomputation.
	vertices              []vertex
	partitions            [][]int // partitions[paramIdx] = vertex indices
	staticallyConsistent  adjacency
	staticAssignmentSet   *assignmentSet

	nullaryStaticOK bool
}

// Build precomputes a SchemaGenerator for schema over problem/table. The
// initial state's atoms are used to seed the static assignment set and the
// nullary-static-preconditions check; both are invariant across all
// reachable states because static predicates never change.
func Build(schema *formalism.ActionSchema, problem *formalism.Problem, table *rank.Table) *SchemaGenerator {
	g := &SchemaGenerator{schema: schema, problem: problem, table: table}

	g.compatibleObjects = make([][]*formalism.Object, schema.Arity())
	for i, param := range schema.Parameters {
		for _, obj := range problem.Objects() {
			if obj.Type.IsSubtypeOf(param.Type) {
				g.compatibleObjects[i] = append(g.compatibleObjects[i], obj)
			}
		}
	}

	var staticAtoms []formalism.Atom
	for _, a := range problem.Initial {
		if problem.Domain.IsStaticPredicate(a.Predicate) {
			staticAtoms = append(staticAtoms, a)
		}
	}
	g.staticAssignmentSet = buildAssignmentSet(staticAtoms)

	g.nullaryStaticOK = g.checkNullaryStatic()

	if schema.Arity() >= 2 {
		g.buildGeneralCaseGraph()
	}

	return g
}

// checkNullaryStatic verifies every arity-0, static precondition literal
// holds in the initial state. If any fails, this generator is permanently
// empty.
func (g *SchemaGenerator) checkNullaryStatic() bool {
	initialSet := make(map[string]bool, len(g.problem.Initial))
	for _, a := range g.problem.Initial {
		initialSet[a.Key()] = true
	}
	for _, lit := range g.schema.Precondition {
		if len(lit.Atom.Arguments) != 0 {
			continue
		}
		if !g.problem.Domain.IsStaticPredicate(lit.Atom.Predicate) {
			continue
		}
		holds := initialSet[lit.Atom.Key()]
		if holds == lit.Negated {
			return false
		}
	}
	return true
}

func (g *SchemaGenerator) buildGeneralCaseGraph() {
	for paramIdx, objs := range g.compatibleObjects {
		var part []int
		for _, o := range objs {
			idx := len(g.vertices)
			g.vertices = append(g.vertices, vertex{paramIdx: paramIdx, object: o})
			part = append(part, idx)
		}
		g.partitions = append(g.partitions, part)
	}

	n := len(g.vertices)
	g.staticallyConsistent = make(adjacency, n)
	for i := range g.staticallyConsistent {
		g.staticallyConsistent[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || g.vertices[i].paramIdx == g.vertices[j].paramIdx {
				continue
			}
			g.staticallyConsistent[i][j] = g.pairConsistent(i, j, g.staticAssignmentSet, true)
		}
	}
}

// pairConsistent reports whether binding vertex i and vertex j simultaneously
// is consistent with every precondition literal whose predicate's
// static-ness matches staticOnly, according to as.
func (g *SchemaGenerator) pairConsistent(i, j int, as *assignmentSet, staticOnly bool) bool {
	vi, vj := g.vertices[i], g.vertices[j]
	p1, p2 := g.schema.Parameters[vi.paramIdx], g.schema.Parameters[vj.paramIdx]
	for _, lit := range g.schema.Precondition {
		isStatic := g.problem.Domain.IsStaticPredicate(lit.Atom.Predicate)
		if isStatic != staticOnly {
			continue
		}
		if !consistent(lit, p1, vi.object, p2, vj.object, as) {
			return false
		}
	}
	return true
}

// dynamicAdjacency builds the adjacency matrix for one query: statically
// consistent pairs filtered further by dynamic consistency against s.
func (g *SchemaGenerator) dynamicAdjacency(s *state.State) adjacency {
	dynamicAS := buildAssignmentSet(s.DynamicAtoms())
	n := len(g.vertices)
	adj := make(adjacency, n)
	for i := 0; i < n; i++ {
		adj[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if !g.staticallyConsistent[i][j] {
				continue
			}
			adj[i][j] = g.pairConsistent(i, j, dynamicAS, false)
		}
	}
	return adj
}

func (g *SchemaGenerator) groundAndTest(args []*formalism.Object, s *state.State) *gaction.Action {
	action, err := gaction.Ground(g.schema, args, g.problem, g.table)
	if err != nil {
		return nil
	}
	if !s.IsApplicable(action) {
		return nil
	}
	return action
}

// GetApplicableActions returns every ground action this schema admits in s.
// The second return value is false iff the deadline expired mid-search
// (general case only); a false result's action list must be discarded by
// the caller.
func (g *SchemaGenerator) GetApplicableActions(s *state.State, deadline time.Time) ([]*gaction.Action, bool) {
	if !g.nullaryStaticOK {
		return nil, true
	}

	switch g.schema.Arity() {
	case 0:
		if a := g.groundAndTest(nil, s); a != nil {
			return []*gaction.Action{a}, true
		}
		return nil, true
	case 1:
		var out []*gaction.Action
		for _, obj := range g.compatibleObjects[0] {
			if a := g.groundAndTest([]*formalism.Object{obj}, s); a != nil {
				out = append(out, a)
			}
		}
		return out, true
	default:
		return g.generalCase(s, deadline)
	}
}

func (g *SchemaGenerator) generalCase(s *state.State, deadline time.Time) ([]*gaction.Action, bool) {
	adj := g.dynamicAdjacency(s)
	cliques, ok := findAllKCliques(g.partitions, adj, deadline)
	if !ok {
		return nil, false
	}

	var out []*gaction.Action
	for _, clique := range cliques {
		args := make([]*formalism.Object, len(g.schema.Parameters))
		for _, vIdx := range clique {
			v := g.vertices[vIdx]
			args[v.paramIdx] = v.object
		}
		if a := g.groundAndTest(args, s); a != nil {
			out = append(out, a)
		}
	}
	return out, true
}

// GetAllGroundings enumerates every grounding of this schema consistent
// with parameter types and static preconditions, ignoring dynamic
// preconditions entirely. It answers "what ground actions could this schema
// ever produce in some reachable state", not "does this grounding apply
// right now" — every returned action must still be checked against a
// concrete state before use.
func (g *SchemaGenerator) GetAllGroundings(deadline time.Time) ([]*gaction.Action, bool) {
	if !g.nullaryStaticOK {
		return nil, true
	}

	switch g.schema.Arity() {
	case 0:
		a, err := gaction.Ground(g.schema, nil, g.problem, g.table)
		if err != nil {
			return nil, true
		}
		return []*gaction.Action{a}, true
	case 1:
		var out []*gaction.Action
		for _, obj := range g.compatibleObjects[0] {
			a, err := gaction.Ground(g.schema, []*formalism.Object{obj}, g.problem, g.table)
			if err == nil {
				out = append(out, a)
			}
		}
		return out, true
	default:
		cliques, ok := findAllKCliques(g.partitions, g.staticallyConsistent, deadline)
		if !ok {
			return nil, false
		}
		var out []*gaction.Action
		for _, clique := range cliques {
			args := make([]*formalism.Object, len(g.schema.Parameters))
			for _, vIdx := range clique {
				v := g.vertices[vIdx]
				args[v.paramIdx] = v.object
			}
			a, err := gaction.Ground(g.schema, args, g.problem, g.table)
			if err == nil {
				out = append(out, a)
			}
		}
		return out, true
	}
}

// Schema returns the ActionSchema this generator was built for.
func (g *SchemaGenerator) Schema() *formalism.ActionSchema { return g.schema }

package lifted

import (
	"time"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/gaction"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

// LiftedGenerator aggregates one SchemaGenerator per action schema in a
// domain. A naive implementation would hand the whole remaining deadline to
// the first schema and starve the rest; this one round-robins the budget
// across schemas that have not yet finished, giving each an equal slice of
// whatever time remains each pass.
type LiftedGenerator struct {
	generators []*SchemaGenerator
}

// BuildAll constructs a SchemaGenerator for every schema in domain.
func BuildAll(domain *formalism.Domain, problem *formalism.Problem, table *rank.Table) *LiftedGenerator {
	lg := &LiftedGenerator{}
	for _, schema := range domain.Schemas() {
		lg.generators = append(lg.generators, Build(schema, problem, table))
	}
	return lg
}

// roundRobin pools call(g, deadline) across every generator in lg, splitting
// whatever deadline remains evenly across the schemas that have not yet
// finished each pass, so one expensive schema cannot starve the rest.
func (lg *LiftedGenerator) roundRobin(deadline time.Time, call func(*SchemaGenerator, time.Time) ([]*gaction.Action, bool)) ([]*gaction.Action, bool) {
	var all []*gaction.Action
	overallOK := true

	pending := make([]*SchemaGenerator, len(lg.generators))
	copy(pending, lg.generators)

	for len(pending) > 0 {
		if deadline.IsZero() {
			for _, g := range pending {
				actions, ok := call(g, deadline)
				all = append(all, actions...)
				if !ok {
					overallOK = false
				}
			}
			break
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			overallOK = false
			break
		}
		share := remaining / time.Duration(len(pending))

		var next []*SchemaGenerator
		for _, g := range pending {
			schemaDeadline := time.Now().Add(share)
			if schemaDeadline.After(deadline) {
				schemaDeadline = deadline
			}
			actions, ok := call(g, schemaDeadline)
			if ok {
				all = append(all, actions...)
				continue
			}
			if time.Now().After(deadline) {
				overallOK = false
				continue
			}
			// This schema's slice expired but the overall deadline has not;
			// give it another round rather than discarding it outright.
			next = append(next, g)
		}
		if len(next) == len(pending) {
			// No progress was made this pass (every schema's slice was too
			// small to finish even once); avoid spinning forever.
			overallOK = false
			break
		}
		pending = next
	}

	return all, overallOK
}

// GetApplicableActions returns every ground action any schema admits in s,
// pooling results across schemas. ok is false iff the overall deadline
// expired before every schema finished; per the per-schema contract, any
// schema that did not finish contributes nothing to the result, so a caller
// that only cares about a single successor may still get a useful (if
// incomplete) list alongside ok=false.
func (lg *LiftedGenerator) GetApplicableActions(s *state.State, deadline time.Time) ([]*gaction.Action, bool) {
	return lg.roundRobin(deadline, func(g *SchemaGenerator, d time.Time) ([]*gaction.Action, bool) {
		return g.GetApplicableActions(s, d)
	})
}

// GetAllGroundings returns every syntactically valid grounding across every
// schema, ignoring dynamic preconditions — the full action universe a
// grounded decision tree is built from.
func (lg *LiftedGenerator) GetAllGroundings(deadline time.Time) ([]*gaction.Action, bool) {
	return lg.roundRobin(deadline, func(g *SchemaGenerator, d time.Time) ([]*gaction.Action, bool) {
		return g.GetAllGroundings(d)
	})
}

// Schemas returns the ActionSchema each underlying generator was built for,
// in the order they were added.
func (lg *LiftedGenerator) Schemas() []*formalism.ActionSchema {
	out := make([]*formalism.ActionSchema, len(lg.generators))
	for i, g := range lg.generators {
		out[i] = g.Schema()
	}
	return out
}

package pddl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/pddl"
)

const tinyDomain = `
; a tiny one-block world, exercising typing, negative preconditions,
; conditional effects, action costs, and equality
(define (domain tiny-blocks)
  (:requirements :strips :typing :negative-preconditions :conditional-effects :action-costs :equality)
  (:types block)
  (:constants table - block)
  (:predicates (clear ?x - block) (ontable ?x - block) (holding ?x - block))
  (:functions (total-cost))
  (:action pickup
    :parameters (?x - block)
    :precondition (and (clear ?x) (ontable ?x) (not (holding ?x)))
    :effect (and
      (holding ?x) (not (clear ?x)) (not (ontable ?x))
      (when (= ?x table) (clear table))
      (increase (total-cost) 2))
  )
  (:action putdown
    :parameters (?x - block)
    :precondition (holding ?x)
    :effect (and (ontable ?x) (clear ?x) (not (holding ?x)))
  )
)
`

const tinyProblem = `
(define (problem tiny-blocks-p1)
  (:domain tiny-blocks)
  (:objects a - block)
  (:init (clear a) (ontable a) (= (total-cost) 0))
  (:goal (holding a))
  (:metric minimize (total-cost))
)
`

func TestParseDomainProducesExpectedCounts(t *testing.T) {
	d, constants, err := pddl.ParseDomain(tinyDomain)
	require.NoError(t, err)

	assert.Equal(t, "tiny-blocks", d.Name)
	assert.Len(t, d.Schemas(), 2)
	assert.Len(t, d.Predicates(), 5) // =, clear, ontable, holding, total-cost
	require.Len(t, constants, 1)
	assert.Equal(t, "table", constants[0].Name)

	pickup, err := d.LookupSchema("pickup")
	require.NoError(t, err)
	assert.Len(t, pickup.Precondition, 3)
	assert.Len(t, pickup.UnconditionalEffect, 3)
	require.Len(t, pickup.ConditionalEffect, 1)
	assert.Equal(t, formalism.CostIncrease, pickup.Cost.Op)
	assert.Equal(t, 2.0, pickup.Cost.SourceConstant)

	putdown, err := d.LookupSchema("putdown")
	require.NoError(t, err)
	assert.True(t, putdown.Cost.IsConstant)
	assert.Equal(t, 1.0, putdown.Cost.Constant)
}

func TestParseProblemMergesConstantsAndInjectsEquality(t *testing.T) {
	d, constants, err := pddl.ParseDomain(tinyDomain)
	require.NoError(t, err)

	p, err := pddl.ParseProblem(tinyProblem, d, constants)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumObjects()) // a, table
	require.Len(t, p.Goal, 1)
	assert.False(t, p.Goal[0].Negated)
	assert.True(t, p.HasTotalCostMetric)

	eqPred, err := d.LookupPredicate("=")
	require.NoError(t, err)
	eqCount := 0
	for _, a := range p.Initial {
		if a.Predicate == eqPred {
			eqCount++
		}
	}
	assert.Equal(t, 2, eqCount) // (= a a), (= table table)
}

func TestParseDomainRejectsUnsupportedRequirement(t *testing.T) {
	src := `(define (domain d) (:requirements :strips :universal-preconditions))`
	_, _, err := pddl.ParseDomain(src)
	require.Error(t, err)
	var semErr *pddl.SemanticError
	assert.ErrorAs(t, err, &semErr)
}

func TestParseProblemRejectsNegatedGoalLiteral(t *testing.T) {
	d, constants, err := pddl.ParseDomain(tinyDomain)
	require.NoError(t, err)

	src := `
(define (problem p)
  (:domain tiny-blocks)
  (:objects a - block)
  (:init (clear a))
  (:goal (not (clear a))))
`
	_, err = pddl.ParseProblem(src, d, constants)
	require.Error(t, err)
	var semErr *pddl.SemanticError
	assert.ErrorAs(t, err, &semErr)
}

func TestParserReportsParseErrorOnUnbalancedParens(t *testing.T) {
	_, err := pddl.NewParser("(define (domain d)").ParseTop()
	require.Error(t, err)
	var parseErr *pddl.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParserSkipsCommentsAndNestsLists(t *testing.T) {
	n, err := pddl.NewParser("(foo ?x (bar)) ; trailing comment").ParseTop()
	require.NoError(t, err)
	require.True(t, n.IsList())
	require.Len(t, n.List, 3)
	assert.Equal(t, "foo", n.List[0].Atom)
	assert.Equal(t, "?x", n.List[1].Atom)
	assert.True(t, n.List[2].HeadIs("bar"))
}

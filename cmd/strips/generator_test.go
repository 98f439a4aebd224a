package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/formalism"
	"github.com/gopherplan/strips/pddl"
	"github.com/gopherplan/strips/rank"
	"github.com/gopherplan/strips/state"
)

func buildTestProblem(t *testing.T) (*formalism.Domain, *formalism.Problem, *rank.Table, *state.State) {
	t.Helper()
	domain, constants, err := pddl.ParseDomain(testDomain)
	require.NoError(t, err)
	problem, err := pddl.ParseProblem(testProblem, domain, constants)
	require.NoError(t, err)
	table := rank.Build(problem)
	initial, err := state.FromAtoms(problem.Initial, problem, table)
	require.NoError(t, err)
	return domain, problem, table, initial
}

func TestBuildGeneratorRejectsUnknownKind(t *testing.T) {
	domain, problem, table, _ := buildTestProblem(t)
	_, err := buildGenerator("quantum", domain, problem, table, time.Now().Add(time.Second))
	assert.Error(t, err)
}

func TestBuildGeneratorLiftedAndGroundedAgreeOnSuccessorCount(t *testing.T) {
	domain, problem, table, initial := buildTestProblem(t)

	groundedBundle, err := buildGenerator("grounded", domain, problem, table, time.Now().Add(time.Second))
	require.NoError(t, err)
	liftedBundle, err := buildGenerator("lifted", domain, problem, table, time.Now().Add(time.Second))
	require.NoError(t, err)

	assert.Len(t, groundedBundle.succ(initial), len(liftedBundle.succ(initial)))
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherplan/strips/planconfig"
)

const testDomain = `
(define (domain tiny-blocks)
  (:requirements :strips :typing :negative-preconditions)
  (:types block)
  (:predicates (clear ?x - block) (ontable ?x - block) (holding ?x - block))
  (:action pickup
    :parameters (?x - block)
    :precondition (and (clear ?x) (ontable ?x) (not (holding ?x)))
    :effect (and (holding ?x) (not (clear ?x)) (not (ontable ?x)))
  )
  (:action putdown
    :parameters (?x - block)
    :precondition (holding ?x)
    :effect (and (ontable ?x) (clear ?x) (not (holding ?x)))
  )
)
`

const testProblem = `
(define (problem tiny-blocks-p1)
  (:domain tiny-blocks)
  (:objects a - block)
  (:init (clear a) (ontable a))
  (:goal (holding a))
)
`

func silentLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPlannerSolvesTinyDomainWithBFS(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "grounded", "bfs", planconfig.Default(), silentLog())
	require.NoError(t, err)
	assert.Equal(t, exitSolved, code)
}

func TestRunPlannerSolvesTinyDomainWithAStar(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "lifted", "astar", planconfig.Default(), silentLog())
	require.NoError(t, err)
	assert.Equal(t, exitSolved, code)
}

func TestRunPlannerMissingDomainFile(t *testing.T) {
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(filepath.Join(t.TempDir(), "missing.pddl"), problemPath, "automatic", "bfs", planconfig.Default(), silentLog())
	require.Error(t, err)
	assert.Equal(t, exitDomainMissing, code)
}

func TestRunPlannerMissingProblemFile(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)

	code, err := runPlanner(domainPath, filepath.Join(t.TempDir(), "missing.pddl"), "automatic", "bfs", planconfig.Default(), silentLog())
	require.Error(t, err)
	assert.Equal(t, exitProblemMissing, code)
}

func TestRunPlannerUnknownGenerator(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "quantum", "bfs", planconfig.Default(), silentLog())
	require.Error(t, err)
	assert.Equal(t, exitUnknownGenerator, code)
}

func TestRunPlannerUnknownAlgorithm(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "grounded", "greedy", planconfig.Default(), silentLog())
	require.Error(t, err)
	assert.Equal(t, exitArgumentError, code)
}

func TestRunPlannerMalformedDomainIsParseFailure(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", "(define (domain d)")
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "grounded", "bfs", planconfig.Default(), silentLog())
	require.Error(t, err)
	assert.Equal(t, exitParseFailure, code)
}

func TestRunPlannerStatespaceMode(t *testing.T) {
	domainPath := writeFixture(t, "domain.pddl", testDomain)
	problemPath := writeFixture(t, "problem.pddl", testProblem)

	code, err := runPlanner(domainPath, problemPath, "grounded", "statespace", planconfig.Default(), silentLog())
	require.NoError(t, err)
	assert.Equal(t, exitSolved, code)
}

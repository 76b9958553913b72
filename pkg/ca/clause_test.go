package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseBuilderTautologyDetection(t *testing.T) {
	var b ClauseBuilder
	assert.False(t, b.AddLiteral(3))
	assert.False(t, b.AddLiteral(-5))
	assert.True(t, b.AddLiteral(-3))
	assert.True(t, b.IsSatisfied())
}

func TestClauseBuilderResetClearsState(t *testing.T) {
	var b ClauseBuilder
	b.AddLiteral(1)
	b.MarkSatisfied()
	b.Reset()
	assert.False(t, b.IsSatisfied())
	assert.True(t, b.Empty())
}

func TestClauseBuilderClauseCopiesLiterals(t *testing.T) {
	var b ClauseBuilder
	b.AddLiteral(2)
	b.AddLiteral(-7)
	c := b.Clause()
	assert.Equal(t, Clause{2, -7}, c)
	b.AddLiteral(9)
	assert.Equal(t, Clause{2, -7}, c, "Clause() must not alias the builder's backing array")
}

// TestEmitTransitionClausesAllKnownSatisfyingContextYieldsNoClauses checks
// that a fully-known context already obeying the rule produces no clauses,
// since every implicant is satisfied by the known values.
func TestEmitTransitionClausesAllKnownSatisfyingContextYieldsNoClauses(t *testing.T) {
	// A dead center with exactly 3 live neighbors is born: birth case.
	context := [10]int{1, 1, 1, 0, 0, 0, 0, 0, 0, 1}
	clauses := EmitTransitionClauses(nil, context, LifeEngine.Implicants())
	assert.Empty(t, clauses)
}

// TestEmitTransitionClausesAllKnownViolatingContextYieldsEmptyClause
// checks that a fully-known, rule-violating context produces an empty
// (unsatisfiable) clause from at least one implicant.
func TestEmitTransitionClausesAllKnownViolatingContextYieldsEmptyClause(t *testing.T) {
	// No live neighbors, dead center, yet asserted alive next: impossible.
	context := [10]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	clauses := EmitTransitionClauses(nil, context, LifeEngine.Implicants())
	found := false
	for _, c := range clauses {
		if len(c) == 0 {
			found = true
		}
	}
	assert.True(t, found, "a fully-determined rule violation must produce an empty clause")
}

// TestEmitTransitionClausesAllUnknownProducesLiteralsOnly checks that when
// every context position is an unknown variable, every implicant produces
// a clause whose literals refer to those variables (no constant folding).
func TestEmitTransitionClausesAllUnknownProducesLiteralsOnly(t *testing.T) {
	var context [10]int
	for i := range context {
		context[i] = i + 2
	}
	clauses := EmitTransitionClauses(nil, context, LifeEngine.Implicants())
	implicants := LifeEngine.Implicants()
	assert.Len(t, clauses, len(implicants))
	for _, c := range clauses {
		assert.NotEmpty(t, c)
		for _, lit := range c {
			assert.NotEqual(t, 0, lit)
		}
	}
}

func TestEmitTransitionClausesAppendsToExistingSlice(t *testing.T) {
	dst := []Clause{{42}}
	context := [10]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	out := EmitTransitionClauses(dst, context, LifeEngine.Implicants())
	assert.Equal(t, Clause{42}, out[0])
	assert.Greater(t, len(out), 1)
}

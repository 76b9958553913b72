package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablePatternUnknownCellsGetDistinctCodes(t *testing.T) {
	vp := NewVariablePattern(NewBounds(2, 1, 0))
	require.NoError(t, vp.Build())

	a := vp.CellValue(Point{X: 0, Y: 0, T: 0})
	b := vp.CellValue(Point{X: 1, Y: 0, T: 0})
	assert.GreaterOrEqual(t, a, 2)
	assert.GreaterOrEqual(t, b, 2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, vp.NumVariables())
}

// TestVariablePatternKnownCellsGetFixedCodes is property P2 at the
// sub-pattern level: every cell marked known resolves to code 0 or 1
// matching its state, regardless of grouping.
func TestVariablePatternKnownCellsGetFixedCodes(t *testing.T) {
	vp := NewVariablePattern(NewBounds(3, 1, 0))
	vp.SetDead(Point{X: 0, Y: 0, T: 0})
	vp.SetAlive(Point{X: 1, Y: 0, T: 0})
	vp.SetDead(Point{X: 2, Y: 0, T: 0})
	require.NoError(t, vp.Build())

	assert.Equal(t, 0, vp.CellValue(Point{X: 0, Y: 0, T: 0}))
	assert.Equal(t, 1, vp.CellValue(Point{X: 1, Y: 0, T: 0}))
	assert.Equal(t, 0, vp.CellValue(Point{X: 2, Y: 0, T: 0}))
	assert.Equal(t, 0, vp.NumVariables())
}

func TestVariablePatternContradictionIsFatal(t *testing.T) {
	vp := NewVariablePattern(NewBounds(1, 1, 1))
	g := vp.AddGroup(CellGroup{TimeTransform: AffineTransform{A11: 1, A22: 1, Bt: 1}})
	vp.SetCellGroupIf(g, func(Point) bool { return true })
	vp.SetDead(Point{X: 0, Y: 0, T: 0})
	vp.SetAlive(Point{X: 0, Y: 0, T: 1})

	err := vp.Build()
	require.Error(t, err)
	var ce *ContradictionError
	assert.ErrorAs(t, err, &ce)
}

// TestVariablePatternTemporalSymmetryLinksImages is property P3: cells
// related by a group's time transform share the same variable code.
func TestVariablePatternTemporalSymmetryLinksImages(t *testing.T) {
	bounds := NewBounds(3, 3, 2)
	vp := NewVariablePattern(bounds)
	transform := AffineTransform{A11: 1, A22: 1, Bt: 2}
	g := vp.AddGroup(CellGroup{TimeTransform: transform})
	vp.SetCellGroupIf(g, func(Point) bool { return true })
	require.NoError(t, vp.Build())

	for _, p := range sortedPositions(bounds) {
		img := transform.Apply(p)
		if !bounds.Contains(img) {
			continue
		}
		assert.Equal(t, vp.CellValue(p), vp.CellValue(img), "p=%v img=%v", p, img)
	}
}

// TestVariablePatternPriorityRule is property P4: a higher-priority cell
// unites toward a lower-or-equal priority image, but a lower-priority
// cell does not unite toward a higher-priority image.
func TestVariablePatternPriorityRule(t *testing.T) {
	bounds := NewBounds(4, 1, 0)
	vp := NewVariablePattern(bounds)

	mirror := AffineTransform{A11: -1, A22: 1, Bx: 3}
	loGroup := vp.AddGroup(CellGroup{SpatialTransforms: []AffineTransform{mirror}})
	hiGroup := vp.AddGroup(CellGroup{SpatialTransforms: []AffineTransform{mirror}})

	lo := Point{X: 0, Y: 0, T: 0}
	hi := Point{X: 3, Y: 0, T: 0} // mirror(lo) == hi, mirror(hi) == lo
	vp.SetCellGroup(lo, loGroup)
	vp.SetCellGroup(hi, hiGroup)

	require.NoError(t, vp.Build())

	// hi has the higher-priority group and links toward its lower-priority
	// image lo; both must share a code.
	assert.Equal(t, vp.CellValue(hi), vp.CellValue(lo))
}

func TestVariablePatternGetClausesOnAllKnownViolationProducesContradiction(t *testing.T) {
	vp := NewVariablePattern(NewBounds(3, 3, 1))
	for _, p := range sortedPositions(vp.Bounds()) {
		vp.SetDead(p)
	}
	vp.SetAlive(Point{X: 1, Y: 1, T: 1})
	vp.SetFollowsRules(Point{X: 1, Y: 1, T: 1}, true)
	require.NoError(t, vp.Build())

	clauses := vp.GetClauses(2, LifeEngine)
	found := false
	for _, c := range clauses {
		if len(c) == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

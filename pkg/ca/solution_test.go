package ca

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelState(t *testing.T) {
	model := map[int]bool{1: true, 2: false, 5: true}
	assert.False(t, ModelState(0, model))
	assert.True(t, ModelState(1, model))
	assert.True(t, ModelState(2, model)) // code 2 -> literal 1 -> true
	assert.False(t, ModelState(3, model))
	assert.True(t, ModelState(6, model)) // code 6 -> literal 5 -> true
}

func TestReconstructGridMatchesCodes(t *testing.T) {
	bounds := NewBounds(2, 1, 0)
	codes := map[Point]int{
		{X: 0, Y: 0, T: 0}: 0,
		{X: 1, Y: 0, T: 0}: 2,
	}
	model := map[int]bool{1: true}
	grid := ReconstructGrid(bounds, func(p Point) int { return codes[p] }, model)

	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)
	assert.Equal(t, []bool{false, true}, grid[0][0])
}

// TestModelToGridInversionObeysRule is property P6 at the reconstruction
// level: a model derived straight from a known pattern's own states
// reconstructs exactly those states.
func TestModelToGridInversionObeysRule(t *testing.T) {
	k := NewKnownPattern(gliderGenZero(), Point{})
	k.Simulate(LifeRule, 1)
	bounds := k.Bounds()

	grid := ReconstructGrid(bounds, k.CellValue, nil)
	for y := bounds.Y.Min; y <= bounds.Y.Max; y++ {
		for x := bounds.X.Min; x <= bounds.X.Max; x++ {
			p := Point{X: x, Y: y, T: 0}
			assert.Equal(t, k.State(p), grid[0][y-bounds.Y.Min][x-bounds.X.Min])
		}
	}
}

func TestWriteCSVSeparatesGenerationsByBlankLine(t *testing.T) {
	grid := Grid{
		{{true, false}},
		{{false, true}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, grid))
	assert.Equal(t, "1,0\n\n0,1\n", buf.String())
}

func TestWriteCSVSingleGeneration(t *testing.T) {
	grid := Grid{
		{{true, true}, {false, false}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, grid))
	assert.Equal(t, "1,1\n0,0\n", buf.String())
}

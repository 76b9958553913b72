package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseRLEGlider is scenario S6: parsing the glider's RLE and
// simulating four generations reproduces the same shape displaced by
// (+1, +1).
func TestParseRLEGlider(t *testing.T) {
	k, err := ParseRLE("bo$2bo$3o!")
	require.NoError(t, err)

	for p := range gliderGenZero() {
		assert.True(t, k.State(p), "expected %v alive at generation zero", p)
	}

	k.Simulate(LifeRule, 4)
	for p := range gliderGenZero() {
		shifted := Point{X: p.X + 1, Y: p.Y + 1, T: p.T + 4}
		assert.True(t, k.State(shifted))
	}
}

func TestParseRLESkipsHeaderLines(t *testing.T) {
	k, err := ParseRLE("x = 3, y = 3, rule = B3/S23\n#C a comment\nbo$2bo$3o!")
	require.NoError(t, err)
	assert.True(t, k.State(Point{X: 1, Y: 0}))
}

func TestParseRLEDefaultRunCountIsOne(t *testing.T) {
	k, err := ParseRLE("o$o!")
	require.NoError(t, err)
	assert.True(t, k.State(Point{X: 0, Y: 0}))
	assert.True(t, k.State(Point{X: 0, Y: 1}))
}

func TestParseRLEMissingTerminatorIsError(t *testing.T) {
	_, err := ParseRLE("bo$2bo$3o")
	assert.Error(t, err)
}

func TestParseRLEInvalidTokenIsError(t *testing.T) {
	_, err := ParseRLE("3z!")
	assert.Error(t, err)
}

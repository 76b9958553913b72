package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindUniteAndSame(t *testing.T) {
	uf := NewUnionFind(func(a, b int) bool { return a < b })

	uf.Unite(1, 2)
	uf.Unite(2, 3)

	assert.True(t, uf.Same(1, 3))
	assert.False(t, uf.Same(1, 4))
}

func TestUnionFindSmallerRootWins(t *testing.T) {
	uf := NewUnionFind(func(a, b int) bool { return a < b })

	uf.Unite(5, 2)
	uf.Unite(2, 9)

	root := uf.Find(9)
	assert.Equal(t, 2, root)
	assert.Equal(t, root, uf.Find(5))
}

func TestUnionFindSentinelAlwaysWins(t *testing.T) {
	const sentinel = -1

	uf := NewUnionFind(func(a, b int) bool { return a < b })

	for _, v := range []int{100, 42, 7, 1000} {
		uf.Unite(v, sentinel)
	}

	for _, v := range []int{100, 42, 7, 1000} {
		assert.Equal(t, sentinel, uf.Find(v))
	}
}

func TestUnionFindFindIsIdempotent(t *testing.T) {
	uf := NewUnionFind(func(a, b int) bool { return a < b })

	uf.Unite(10, 20)
	first := uf.Find(10)
	second := uf.Find(10)

	assert.Equal(t, first, second)
}

package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattan(t *testing.T) {
	assert.Equal(t, uint64(7), Manhattan(0, 0, 3, 4))
	assert.Equal(t, uint64(0), Manhattan(5, 5, 5, 5))
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, uint64(4), Chebyshev(0, 0, 3, 4))
	assert.Equal(t, uint64(3), Chebyshev(0, 0, 3, 1))
}

func TestOctile(t *testing.T) {
	// pure diagonal: 3 diagonal steps
	assert.Equal(t, uint64(defaultDiagonalCost)*3, Octile(0, 0, 3, 3))
	// pure straight: 3 cardinal steps
	assert.Equal(t, uint64(defaultCardinalCost)*3, Octile(0, 0, 3, 0))
	// mixed: 2 diagonal + 1 straight
	got := Octile(0, 0, 3, 2)
	want := uint64(defaultDiagonalCost)*2 + uint64(defaultCardinalCost)*1
	assert.Equal(t, want, got)
}

func TestEuclideanSquared(t *testing.T) {
	assert.Equal(t, uint64(25), EuclideanSquared(0, 0, 3, 4))
}

func TestZero(t *testing.T) {
	assert.Equal(t, uint64(0), Zero(0, 0, 100, 100))
}

func TestHeuristicByName(t *testing.T) {
	h, ok := HeuristicByName("manhattan")
	assert.True(t, ok)
	assert.Equal(t, uint64(7), h(0, 0, 3, 4))

	_, ok = HeuristicByName("not-a-heuristic")
	assert.False(t, ok)
}

func TestSupportedHeuristics(t *testing.T) {
	names := SupportedHeuristics()
	assert.Contains(t, names, "manhattan")
	assert.Contains(t, names, "octile")
	for _, n := range names {
		_, ok := HeuristicByName(n)
		assert.True(t, ok, "name %q should resolve", n)
	}
}

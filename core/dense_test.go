package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmalkmus/maxclique/core"
)

func TestDenseAdjacency_Triangle(t *testing.T) {
	g, err := core.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	m := g.DenseAdjacency()
	require.NotNil(t, m)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for u := 0; u < 3; u++ {
		assert.Zero(t, m.At(u, u), "diagonal must stay zero")
		for v := u + 1; v < 3; v++ {
			assert.Equal(t, 1.0, m.At(u, v))
			assert.Equal(t, 1.0, m.At(v, u), "SymDense mirrors the entry")
		}
	}
}

func TestDenseAdjacency_PathAndIsolated(t *testing.T) {
	g, err := core.FromEdges(3, [][2]int{{0, 1}})
	require.NoError(t, err)

	m := g.DenseAdjacency()
	require.NotNil(t, m)
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Zero(t, m.At(1, 2))
	assert.Zero(t, m.At(0, 2))
}

func TestDenseAdjacency_EmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)
	assert.Nil(t, g.DenseAdjacency())
}

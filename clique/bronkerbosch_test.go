package clique_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmalkmus/maxclique/clique"
	"github.com/zmalkmus/maxclique/core"
)

// buildComplete creates K_n.
func buildComplete(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, g.AddEdge(u, v))
		}
	}

	return g
}

// bruteForceMaxCliqueSize checks every vertex subset; usable for n ≤ ~16.
func bruteForceMaxCliqueSize(t *testing.T, g *core.Graph) int {
	t.Helper()
	n := g.Order()
	best := 0
	for mask := 0; mask < 1<<n; mask++ {
		var members []int
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				members = append(members, v)
			}
		}
		ok, err := clique.IsClique(g, members)
		require.NoError(t, err)
		if ok && len(members) > best {
			best = len(members)
		}
	}

	return best
}

func TestFindMaxClique_NilGraph(t *testing.T) {
	res, err := clique.FindMaxClique(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

func TestFindMaxClique_EmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)

	res, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	assert.Empty(t, res, "N=0 graph has the empty max clique")
}

func TestFindMaxClique_EdgelessGraph(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)

	res, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	assert.Len(t, res, 1, "any single vertex is the max clique when no edges exist")
}

func TestFindMaxClique_CompleteGraph(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 9} {
		g := buildComplete(t, n)
		res, err := clique.FindMaxClique(g)
		require.NoError(t, err)
		assert.Len(t, res, n, "K_%d max clique must be all of it", n)

		ok, err := clique.IsClique(g, res)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestFindMaxClique_TrianglePlusIsolated(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	res, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res)
}

func TestFindMaxClique_PathGraph(t *testing.T) {
	// 0-1-2-3: any adjacent pair, never a triple.
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	res, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.True(t, g.HasEdge(res[0], res[1]))
}

func TestFindMaxClique_ResultAlwaysValidates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(11)
		g, err := core.New(n)
		require.NoError(t, err)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.4 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}

		res, err := clique.FindMaxClique(g)
		require.NoError(t, err)
		ok, err := clique.IsClique(g, res)
		require.NoError(t, err)
		assert.True(t, ok, "engine result must be a clique")

		assert.Equal(t, bruteForceMaxCliqueSize(t, g), len(res),
			"engine must match exhaustive subset search")
	}
}

func TestFindMaxClique_Idempotent(t *testing.T) {
	g, err := core.FromEdges(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5},
	})
	require.NoError(t, err)

	first, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	second, err := clique.FindMaxClique(g)
	require.NoError(t, err)
	assert.Equal(t, first, second, "fixed iteration order makes runs identical")
}

func TestFindMaxClique_PivotSameResult(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(12)
		g, err := core.New(n)
		require.NoError(t, err)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.5 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}

		plain, err := clique.FindMaxClique(g)
		require.NoError(t, err)
		pivoted, err := clique.FindMaxClique(g, clique.WithPivot())
		require.NoError(t, err)

		assert.Len(t, pivoted, len(plain), "pivoting must not change the maximum size")
		ok, err := clique.IsClique(g, pivoted)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestFindMaxClique_ContextCanceled(t *testing.T) {
	g := buildComplete(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // canceled before the search even starts

	res, err := clique.FindMaxClique(g, clique.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindMaxClique_OnCliqueHook(t *testing.T) {
	// Triangle plus isolated vertex: maximal cliques are {0,1,2} and {3}.
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	var seen [][]int
	res, err := clique.FindMaxClique(g, clique.WithOnClique(func(members []int) error {
		seen = append(seen, members)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, seen)
}

func TestFindMaxClique_HookErrorAborts(t *testing.T) {
	g := buildComplete(t, 4)
	boom := errors.New("stop here")

	res, err := clique.FindMaxClique(g, clique.WithOnClique(func([]int) error {
		return boom
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestMaximal_EnumeratesAll(t *testing.T) {
	// Two triangles sharing vertex 2, plus edge 4-5 already in the second.
	//   0─1    3
	//    \│   /│
	//     2──4─5 with {3,4,5} a triangle
	g, err := core.FromEdges(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{2, 4},
		{3, 4}, {3, 5}, {4, 5},
	})
	require.NoError(t, err)

	all, err := clique.Maximal(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {2, 4}, {3, 4, 5}}, all)

	for _, c := range all {
		ok, cerr := clique.IsClique(g, c)
		require.NoError(t, cerr)
		assert.True(t, ok)
	}
}

func TestMaximal_EmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)

	all, err := clique.Maximal(g)
	require.NoError(t, err)
	require.Len(t, all, 1, "the empty set is the only maximal clique")
	assert.Empty(t, all[0])
}

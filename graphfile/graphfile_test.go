package graphfile_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmalkmus/maxclique/builder"
	"github.com/zmalkmus/maxclique/core"
	"github.com/zmalkmus/maxclique/graphfile"
)

func TestRead_Triangle(t *testing.T) {
	in := "4 3\n0 1 1\n1 2 1\n0 2 1\n"
	g, err := graphfile.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.HasEdge(0, 2))

	d, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 0, d, "vertex 3 exists but stays isolated")
}

func TestRead_BlankLinesAndDuplicates(t *testing.T) {
	in := "\n3 2\n\n0 1 1\n0 1 1\n1 0 1\n\n1 2 1\n"
	g, err := graphfile.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size(), "duplicate rows collapse")
}

func TestRead_AdvisoryEdgeCountIgnored(t *testing.T) {
	// Header claims 99 edges; the reader never checks.
	g, err := graphfile.Read(strings.NewReader("2 99\n0 1 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Size())
}

func TestRead_BadHeader(t *testing.T) {
	for _, in := range []string{"", "5\n", "a b\n", "3 x\n"} {
		_, err := graphfile.Read(strings.NewReader(in))
		assert.ErrorIs(t, err, graphfile.ErrBadHeader, "input %q", in)
	}
}

func TestRead_BadEdgeLine(t *testing.T) {
	for _, in := range []string{"3 1\n0 1\n", "3 1\n0 1 x\n", "3 1\n0 one 1\n"} {
		_, err := graphfile.Read(strings.NewReader(in))
		assert.ErrorIs(t, err, graphfile.ErrBadEdgeLine, "input %q", in)
	}
}

func TestRead_CoreErrorsWrapped(t *testing.T) {
	_, err := graphfile.Read(strings.NewReader("3 1\n1 1 1\n"))
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = graphfile.Read(strings.NewReader("3 1\n0 9 1\n"))
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestWrite_CanonicalOrder(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{2, 0}, {1, 0}, {3, 2}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, graphfile.Write(&sb, g))
	assert.Equal(t, "4 3\n0 1 1\n0 2 1\n2 3 1\n", sb.String())
}

func TestRoundTrip_File(t *testing.T) {
	g, err := builder.RandomSparse(25, 0.3, builder.WithSeed(4))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, graphfile.WriteFile(path, g))

	back, err := graphfile.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.Order(), back.Order())
	require.Equal(t, g.Size(), back.Size())
	for u := 0; u < g.Order(); u++ {
		for v := u + 1; v < g.Order(); v++ {
			assert.Equal(t, g.HasEdge(u, v), back.HasEdge(u, v))
		}
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := graphfile.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmalkmus/maxclique/graphfile"
)

// writeTriangleFile stores a triangle-plus-isolated-vertex instance.
func writeTriangleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 3\n0 1 1\n1 2 1\n0 2 1\n"), 0o644))

	return path
}

func TestSolveFile_Triangle(t *testing.T) {
	path := writeTriangleFile(t)

	best, err := solveFile(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, best)

	pivoted, err := solveFile(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, best, pivoted)
}

func TestSolveFile_MissingFile(t *testing.T) {
	_, err := solveFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), false)
	assert.Error(t, err)
}

func TestSolveCommand_Output(t *testing.T) {
	path := writeTriangleFile(t)

	var out bytes.Buffer
	cmd := newSolveCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "max clique: [0 1 2]")
	assert.Contains(t, out.String(), "size: 3")
}

func TestCrossvalCommand_Agreement(t *testing.T) {
	path := writeTriangleFile(t)

	var out bytes.Buffer
	cmd := newCrossvalCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute(), "engine and oracle must agree")
	assert.Contains(t, out.String(), "size 3")
}

func TestGenCommand_StdoutRoundTrip(t *testing.T) {
	var out bytes.Buffer
	cmd := newGenCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--n", "12", "--p", "0.5", "--seed", "3"})

	require.NoError(t, cmd.Execute())

	g, err := graphfile.Read(&out)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Order())
}

func TestGenCommand_SeedReproducible(t *testing.T) {
	render := func() string {
		var out bytes.Buffer
		cmd := newGenCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--n", "20", "--p", "0.3", "--seed", "8"})
		require.NoError(t, cmd.Execute())

		return out.String()
	}

	assert.Equal(t, render(), render())
}

func TestGenCommand_BadProbability(t *testing.T) {
	cmd := newGenCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--n", "5", "--p", "1.5"})

	assert.Error(t, cmd.Execute())
}

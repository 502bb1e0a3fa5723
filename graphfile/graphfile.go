package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zmalkmus/maxclique/core"
)

var (
	// ErrBadHeader indicates a missing or malformed "n m" header line.
	ErrBadHeader = errors.New("graphfile: bad header line")

	// ErrBadEdgeLine indicates an edge row that does not parse as three
	// integers.
	ErrBadEdgeLine = errors.New("graphfile: bad edge line")
)

// Read parses a graph from r. The first non-blank line must be the "n m"
// header; every following non-blank line is an edge row "u v w" whose
// weight column is ignored. Duplicate rows are tolerated (edge insertion
// is idempotent); self-loops and out-of-range endpoints fail with the
// core sentinel wrapped.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var g *core.Graph
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if g == nil {
			// Header: n and the advisory edge count.
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: want \"n m\", got %q: %w", lineNo, line, ErrBadHeader)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex count %q: %w", lineNo, fields[0], ErrBadHeader)
			}
			if _, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: edge count %q: %w", lineNo, fields[1], ErrBadHeader)
			}
			if g, err = core.New(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		u, v, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}

	return g, nil
}

// parseEdge extracts the endpoints of one "u v w" row.
func parseEdge(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, ErrBadEdgeLine
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, ErrBadEdgeLine
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, ErrBadEdgeLine
	}
	if _, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, ErrBadEdgeLine
	}

	return u, v, nil
}

// ReadFile parses the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits g in the edge-list format: the "n m" header, then one
// "u v 1" row per edge in canonical ascending (u < v) order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size()); err != nil {
		return fmt.Errorf("graphfile: write header: %w", err)
	}

	for u := 0; u < g.Order(); u++ {
		ids, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("graphfile: %w", err)
		}
		for _, v := range ids {
			if v <= u {
				continue // each unordered pair once
			}
			if _, err = fmt.Fprintf(bw, "%d %d 1\n", u, v); err != nil {
				return fmt.Errorf("graphfile: write edge: %w", err)
			}
		}
	}

	return bw.Flush()
}

// WriteFile stores g at path, creating or truncating the file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}

	if err = Write(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

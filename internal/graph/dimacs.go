package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDIMACS reads a graph in the DIMACS edge format described by the
// minor checker's external interface: lines beginning with 'c' or 'p'
// (or empty lines) are ignored, and lines of the form "e u v" add the
// edge {u-1, v-1} (DIMACS vertices are 1-based). The number of
// vertices is taken to be the largest 1-based vertex number referenced
// by any edge line; the counts on a 'p' line are not read.
func ReadDIMACS(r io.Reader) (*Graph, error) {
	var edges [][2]int
	maxVertex := -1

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		if !strings.HasPrefix(line, "e") {
			return nil, fmt.Errorf("dimacs: line %d: unrecognized line %q", lineNum, line)
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("dimacs: line %d: expected \"e u v\", got %q", lineNum, line)
		}
		u, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("dimacs: line %d: invalid vertex %q: %w", lineNum, fields[1], err)
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("dimacs: line %d: invalid vertex %q: %w", lineNum, fields[2], err)
		}
		if u < 1 || v < 1 {
			return nil, fmt.Errorf("dimacs: line %d: vertex indices are 1-based, got (%d, %d)", lineNum, u, v)
		}
		u, v = u-1, v-1
		edges = append(edges, [2]int{u, v})
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}

	g := New(maxVertex + 1)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g, nil
}

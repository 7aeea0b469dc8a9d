package graph

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeIdempotent(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(0, 1)

	assert.Len(t, g.Edges(), 1)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
}

func TestAddEdgeSelfLoopIgnored(t *testing.T) {
	g := New(2)
	g.AddEdge(0, 0)

	assert.Empty(t, g.Edges())
	assert.False(t, g.HasEdge(0, 0))
}

func TestEdgeIterationOrderStable(t *testing.T) {
	g := New(4)
	g.AddEdge(2, 3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	got := g.Edges()
	require.Len(t, got, 3)
	assert.Equal(t, Edge{2, 3}, got[0])
	assert.Equal(t, Edge{0, 1}, got[1])
	assert.Equal(t, Edge{1, 2}, got[2])
}

func TestReadDIMACS(t *testing.T) {
	input := `c a triangle
p edge 3 3
e 1 2
e 2 3
e 1 3
`
	g, err := ReadDIMACS(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, g.N())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(0, 2))
}

func TestReadDIMACSDuplicateEdgesIdempotent(t *testing.T) {
	input := "e 1 2\ne 2 1\ne 1 2\n"
	g, err := ReadDIMACS(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, g.Edges(), 1)
}

func TestReadDIMACSMalformed(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
	}{
		{"bad line kind", "x 1 2\n"},
		{"wrong arity", "e 1\n"},
		{"non-numeric vertex", "e a 2\n"},
		{"zero vertex", "e 0 2\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDIMACS(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestNeighbors(t *testing.T) {
	g := New(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)

	neighbors := g.Neighbors(0).ToSlice()
	sort.Ints(neighbors)
	assert.Equal(t, []int{1, 2}, neighbors)
	assert.True(t, g.Neighbors(3).IsEmpty())
}

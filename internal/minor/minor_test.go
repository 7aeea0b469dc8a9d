package minor

import (
	"context"
	"testing"
	"time"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s6dafabe/kminor/internal/graph"
)

func complete(n int) *graph.Graph {
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func completeMinusEdge(n, removeU, removeV int) *graph.Graph {
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if u == removeU && v == removeV {
				continue
			}
			g.AddEdge(u, v)
		}
	}
	return g
}

func path(n int) *graph.Graph {
	g := graph.New(n)
	for v := 0; v+1 < n; v++ {
		g.AddEdge(v, v+1)
	}
	return g
}

func completeBipartite(a, b int) *graph.Graph {
	g := graph.New(a + b)
	for u := 0; u < a; u++ {
		for v := a; v < a+b; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func petersen() *graph.Graph {
	g := graph.New(10)
	outer := [5][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	for _, e := range outer {
		g.AddEdge(e[0], e[1])
	}
	inner := [5][2]int{{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}}
	for _, e := range inner {
		g.AddEdge(e[0], e[1])
	}
	for i := 0; i < 5; i++ {
		g.AddEdge(i, i+5)
	}
	return g
}

func runChecker(t *testing.T, gr *graph.Graph, k int) *Checker {
	t.Helper()
	c, err := NewChecker(gr, k)
	require.NoError(t, err)
	require.NoError(t, c.Run(context.Background()))
	return c
}

func TestTriangleContainsK3(t *testing.T) {
	c := runChecker(t, complete(3), 3)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, complete(3), 3)
}

func TestPathDoesNotContainK3(t *testing.T) {
	c := runChecker(t, path(4), 3)
	assert.False(t, c.ContainsMinor())
}

func TestK4ContainsK4(t *testing.T) {
	gr := complete(4)
	c := runChecker(t, gr, 4)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, gr, 4)
}

func TestK4MinusEdgeDoesNotContainK4(t *testing.T) {
	gr := completeMinusEdge(4, 0, 1)
	c := runChecker(t, gr, 4)
	assert.False(t, c.ContainsMinor())
}

func TestK5MinusEdgeContainsK4(t *testing.T) {
	gr := completeMinusEdge(5, 0, 1)
	c := runChecker(t, gr, 4)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, gr, 4)
}

func TestCompleteBipartiteContainsK3(t *testing.T) {
	c := runChecker(t, completeBipartite(3, 3), 3)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, completeBipartite(3, 3), 3)
}

func TestPetersenContainsK5(t *testing.T) {
	c := runChecker(t, petersen(), 5)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, petersen(), 5)
}

func TestEmptyGraphK1(t *testing.T) {
	c := runChecker(t, graph.New(0), 1)
	assert.False(t, c.ContainsMinor())
}

func TestSingleVertexK1(t *testing.T) {
	c := runChecker(t, graph.New(1), 1)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, graph.New(1), 1)
}

func TestTwoVerticesNoEdgeK2(t *testing.T) {
	c := runChecker(t, graph.New(2), 2)
	assert.False(t, c.ContainsMinor())
}

func TestTwoVerticesWithEdgeK2(t *testing.T) {
	gr := graph.New(2)
	gr.AddEdge(0, 1)
	c := runChecker(t, gr, 2)
	assert.True(t, c.ContainsMinor())
	assertValidWitness(t, c, gr, 2)
}

func TestNewCheckerRejectsInvalidK(t *testing.T) {
	_, err := NewChecker(graph.New(3), 0)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestContainsMinorPanicsBeforeRun(t *testing.T) {
	c, err := NewChecker(complete(3), 3)
	require.NoError(t, err)
	assert.Panics(t, func() { c.ContainsMinor() })
}

func TestSolutionPanicsWhenUnsatisfiable(t *testing.T) {
	c := runChecker(t, path(4), 3)
	assert.Panics(t, func() { c.Solution() })
}

func TestRunReturnsIndeterminateOnCancelledContext(t *testing.T) {
	gr := petersen()
	c, err := NewChecker(gr, 5)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Run(ctx)
	assert.ErrorIs(t, err, ErrIndeterminate)
	assert.Panics(t, func() { c.ContainsMinor() })
}

func TestRunReturnsIndeterminateOnExpiredDeadline(t *testing.T) {
	gr := petersen()
	c, err := NewChecker(gr, 5)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	err = c.Run(ctx)
	assert.ErrorIs(t, err, ErrIndeterminate)
}

// assertValidWitness checks that a satisfiable Checker's Solution is a
// genuine K_k-minor witness for gr: it checks directly that every branch
// set is present, then runs validate on the solution for connectivity
// and pairwise adjacency.
func assertValidWitness(t *testing.T, c *Checker, gr *graph.Graph, k int) {
	t.Helper()
	solution := c.Solution()
	require.Len(t, solution, gr.N())

	present := make([]bool, k)
	for _, i := range solution {
		if i >= 0 {
			present[i] = true
		}
	}
	for i, ok := range present {
		assert.True(t, ok, "branch set %d is empty", i)
	}

	ok, err := validate(solution, gr, k)
	if !ok {
		t.Errorf("validator rejected Checker's own witness: %v\n%# v", err, pretty.Formatter(solution))
	}
}

package minor

import (
	"sort"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/s6dafabe/kminor/internal/graph"
	"github.com/s6dafabe/kminor/internal/satutil"
)

// encode emits the clause families F1-F8 implementing "G has a
// K_k minor" into g, using pool to name the variables involved. The
// families are emitted in a fixed order (F1..F8) so that clause
// emission, and therefore solver behavior, is deterministic across
// runs on identical input.
func encode(g inter.Adder, pool *variablePool, gr *graph.Graph, k int) {
	n := gr.N()

	encodeRoots(g, pool, n, k)               // F1
	encodeOrderImpliesAssign(g, pool, n, k)  // F2
	encodeOneOrderPerVertex(g, pool, n, k)   // F3
	encodeAssignImpliesOrder(g, pool, n, k)  // F4
	encodeOneBranchPerVertex(g, pool, n, k)  // F5
	encodeBFSPredecessor(g, pool, gr, k)     // F6
	encodeContactEndpoints(g, pool, gr, k)   // F7
	encodeContactExists(g, pool, gr, k)      // F8
}

// F1 - single root per branch: ExactlyOne({P(v,0,i) : v in V}).
func encodeRoots(g inter.Adder, pool *variablePool, n, k int) {
	for i := 0; i < k; i++ {
		roots := make([]z.Lit, n)
		for v := 0; v < n; v++ {
			roots[v] = pool.P(v, 0, i)
		}
		satutil.AssertExactlyOne(pool.c, g, roots)
	}
}

// F2 - order implies assignment: P(v,o,i) -> A(v,i).
func encodeOrderImpliesAssign(g inter.Adder, pool *variablePool, n, k int) {
	for i := 0; i < k; i++ {
		for v := 0; v < n; v++ {
			for o := 0; o < n; o++ {
				g.Add(pool.P(v, o, i).Not())
				g.Add(pool.A(v, i))
				g.Add(z.LitNull)
			}
		}
	}
}

// F3 - at most one order per (vertex, branch): AtMostOne({P(v,o,i) : o in [0,n)}).
func encodeOneOrderPerVertex(g inter.Adder, pool *variablePool, n, k int) {
	for i := 0; i < k; i++ {
		for v := 0; v < n; v++ {
			orders := make([]z.Lit, n)
			for o := 0; o < n; o++ {
				orders[o] = pool.P(v, o, i)
			}
			satutil.AssertAtMostOne(pool.c, g, orders)
		}
	}
}

// F4 - assignment implies some order: A(v,i) -> OR_o P(v,o,i).
func encodeAssignImpliesOrder(g inter.Adder, pool *variablePool, n, k int) {
	for i := 0; i < k; i++ {
		for v := 0; v < n; v++ {
			for o := 0; o < n; o++ {
				g.Add(pool.P(v, o, i))
			}
			g.Add(pool.A(v, i).Not())
			g.Add(z.LitNull)
		}
	}
}

// F5 - at most one branch per vertex: AtMostOne({A(v,i) : i in [0,k)}).
func encodeOneBranchPerVertex(g inter.Adder, pool *variablePool, n, k int) {
	for v := 0; v < n; v++ {
		branches := make([]z.Lit, k)
		for i := 0; i < k; i++ {
			branches[i] = pool.A(v, i)
		}
		satutil.AssertAtMostOne(pool.c, g, branches)
	}
}

// F6 - BFS predecessor: P(v,o,i) -> OR_{w in N(v)} P(w,o-1,i).
// A vertex with no neighbors can never occupy a non-root order, which
// this reduces to correctly: the clause becomes the unit
// ¬P(v,o,i).
func encodeBFSPredecessor(g inter.Adder, pool *variablePool, gr *graph.Graph, k int) {
	n := gr.N()
	for i := 0; i < k; i++ {
		for v := 0; v < n; v++ {
			neighbors := gr.Neighbors(v).ToSlice()
			sort.Ints(neighbors)
			for o := 1; o < n; o++ {
				g.Add(pool.P(v, o, i).Not())
				for _, w := range neighbors {
					g.Add(pool.P(w, o-1, i))
				}
				g.Add(z.LitNull)
			}
		}
	}
}

// F7 - contact endpoint consistency: C(u,v,i,j) -> A(u,i) and
// C(u,v,i,j) -> A(v,j), for every edge {u,v} and every ordered pair
// i != j. Same-branch pairs (i == j) are skipped entirely: F8 never
// references a C(u,v,i,i) variable, so constraining one would be pure
// overhead (open question in the source encoding, resolved here by
// not allocating those variables at all).
func encodeContactEndpoints(g inter.Adder, pool *variablePool, gr *graph.Graph, k int) {
	for _, e := range gr.Edges() {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				if i == j {
					continue
				}
				c := pool.C(e.U, e.V, i, j)
				g.Add(c.Not())
				g.Add(pool.A(e.U, i))
				g.Add(z.LitNull)

				g.Add(c.Not())
				g.Add(pool.A(e.V, j))
				g.Add(z.LitNull)
			}
		}
	}
}

// F8 - at least one contact per unordered branch pair: for i < j,
// OR over every edge {u,v} of (C(u,v,i,j) OR C(u,v,j,i)), i.e. the
// edge witnesses the contact in either direction (u in branch i and v
// in branch j, or u in branch j and v in branch i). This must stay in
// terms of the same (u,v) tuple F7 constrained for that edge: a
// C(v,u,i,j) variable, with the endpoints swapped, is never
// referenced by F7 and would be a free variable here, trivially
// satisfying the clause regardless of the actual assignment.
func encodeContactExists(g inter.Adder, pool *variablePool, gr *graph.Graph, k int) {
	edges := gr.Edges()
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			for _, e := range edges {
				g.Add(pool.C(e.U, e.V, i, j))
				g.Add(pool.C(e.U, e.V, j, i))
			}
			g.Add(z.LitNull)
		}
	}
}

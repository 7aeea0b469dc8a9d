package minor

import "github.com/go-air/gini/inter"

// decode reads a satisfying model off g and returns the vertex ->
// branch-set assignment s of length n, with s[v] == i iff A(v,i) is
// true in the model and s[v] == -1 if v was assigned to no branch
// set. F5 guarantees at most one i per v, so the first branch found
// true is the only one.
func decode(model inter.Model, pool *variablePool, n, k int) []int {
	solution := make([]int, n)
	for v := range solution {
		solution[v] = -1
	}
	for v := 0; v < n; v++ {
		for i := 0; i < k; i++ {
			if model.Value(pool.A(v, i)) {
				solution[v] = i
				break
			}
		}
	}
	return solution
}

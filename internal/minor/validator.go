package minor

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/s6dafabe/kminor/internal/graph"
)

// validate independently checks that solution is a K_k-minor witness
// for gr, without trusting anything the encoder or solver claim. It
// does not mutate solution or gr. The returned error, when non-nil,
// describes the first violation found and is purely diagnostic: the
// boolean is authoritative.
func validate(solution []int, gr *graph.Graph, k int) (bool, error) {
	branches := make([][]int, k)
	for v, i := range solution {
		if i < 0 {
			continue
		}
		branches[i] = append(branches[i], v)
	}

	for i, members := range branches {
		if len(members) == 0 {
			return false, fmt.Errorf("branch set %d is empty", i)
		}
		if !connected(gr, members) {
			return false, fmt.Errorf("branch set %d does not induce a connected subgraph", i)
		}
	}

	for i, members := range branches {
		adjacent := adjacentBranches(gr, solution, members, i)
		if adjacent.Cardinality() < k-1 {
			return false, fmt.Errorf(
				"branch set %d is adjacent to only %d of the other %d branch sets",
				i, adjacent.Cardinality(), k-1,
			)
		}
	}

	return true, nil
}

// connected reports whether gr induced on members is connected, via a
// BFS confined to the member set.
func connected(gr *graph.Graph, members []int) bool {
	inSet := mapset.NewThreadUnsafeSet(members...)
	visited := mapset.NewThreadUnsafeSet[int]()

	queue := []int{members[0]}
	visited.Add(members[0])
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range gr.Neighbors(v).ToSlice() {
			if inSet.Contains(w) && !visited.Contains(w) {
				visited.Add(w)
				queue = append(queue, w)
			}
		}
	}
	return visited.Cardinality() == len(members)
}

// adjacentBranches returns the set of branch indices, other than
// self, that some vertex outside members is adjacent to a vertex of
// members and assigned to.
func adjacentBranches(gr *graph.Graph, solution []int, members []int, self int) mapset.Set[int] {
	inSet := mapset.NewThreadUnsafeSet(members...)
	adjacent := mapset.NewThreadUnsafeSet[int]()
	for _, v := range members {
		for _, w := range gr.Neighbors(v).ToSlice() {
			if inSet.Contains(w) {
				continue
			}
			branch := solution[w]
			if branch < 0 || branch == self {
				continue
			}
			adjacent.Add(branch)
		}
	}
	return adjacent
}

package satutil

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// AssertAtMostOne adds clauses to g asserting that at most one literal
// of ms is true, via a sorting-network cardinality constraint built
// in c. Fewer than two literals trivially satisfy the constraint and
// are skipped.
func AssertAtMostOne(c *logic.C, g inter.Adder, ms []z.Lit) {
	if len(ms) < 2 {
		return
	}
	assertBound(c, g, ms, 1, false)
}

// AssertExactlyOne adds clauses to g asserting that exactly one
// literal of ms is true. If ms is empty there is no way to satisfy
// the constraint, so the empty clause is added directly, forcing the
// formula unsatisfiable.
func AssertExactlyOne(c *logic.C, g inter.Adder, ms []z.Lit) {
	if len(ms) == 0 {
		g.Add(z.LitNull)
		return
	}
	assertBound(c, g, ms, 1, true)
}

// assertBound builds a CardSort network over ms and asserts Leq(n)
// (and, if exact, Geq(n)) as hard unit clauses. Only the portion of
// the network newly introduced by this call is Tseitinized: marks
// records every node that existed in c before this call so CnfSince
// does not redefine nodes a previous call already taught to g.
func assertBound(c *logic.C, g inter.Adder, ms []z.Lit, n int, exact bool) {
	clen := c.Len()
	cs := c.CardSort(ms)
	marks := make([]int8, clen, c.Len())
	for i := range marks {
		marks[i] = 1
	}

	roots := []z.Lit{cs.Leq(n)}
	if exact {
		roots = append(roots, cs.Geq(n))
	}
	c.CnfSince(g, marks, roots...)

	assertUnit(g, cs.Leq(n))
	if exact {
		assertUnit(g, cs.Geq(n))
	}
}

func assertUnit(g inter.Adder, m z.Lit) {
	g.Add(m)
	g.Add(z.LitNull)
}

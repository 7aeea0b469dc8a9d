package minor

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/s6dafabe/kminor/internal/satutil"
)

// assignKey identifies the descriptor A(v, i): vertex v is assigned
// to branch set i.
type assignKey struct {
	v, i int
}

// orderKey identifies the descriptor P(v, o, i): vertex v occupies
// BFS order o within branch set i.
type orderKey struct {
	v, o, i int
}

// contactKey identifies the descriptor C(u, v, i, j): the edge {u, v}
// witnesses contact between branch sets i and j, with u assigned to i
// and v assigned to j.
type contactKey struct {
	u, v, i, j int
}

// variablePool is the bijection between the A/P/C symbolic
// descriptors of the encoding and the SAT variables that represent
// them. All three descriptor families are allocated through the same
// underlying circuit, so ids are guaranteed fresh and distinct across
// families: a vertex-assignment, a BFS-order, and a contact-witness
// descriptor can never collide, regardless of which integers they
// carry.
type variablePool struct {
	c       *logic.C
	assign  *satutil.Pool[assignKey]
	order   *satutil.Pool[orderKey]
	contact *satutil.Pool[contactKey]
}

func newVariablePool(capHint int) *variablePool {
	c := logic.NewCCap(capHint)
	return &variablePool{
		c:       c,
		assign:  satutil.NewPool[assignKey](c),
		order:   satutil.NewPool[orderKey](c),
		contact: satutil.NewPool[contactKey](c),
	}
}

// A returns the literal for A(v, i).
func (p *variablePool) A(v, i int) z.Lit {
	return p.assign.Lit(assignKey{v: v, i: i})
}

// P returns the literal for P(v, o, i).
func (p *variablePool) P(v, o, i int) z.Lit {
	return p.order.Lit(orderKey{v: v, o: o, i: i})
}

// C returns the literal for C(u, v, i, j). Callers never request
// i == j: the encoder omits same-branch contact variables entirely,
// since F8 only ever sums over i < j and an i == j contact variable
// would be unconstrained (see the encoder's doc comment).
func (p *variablePool) C(u, v, i, j int) z.Lit {
	return p.contact.Lit(contactKey{u: u, v: v, i: i, j: j})
}

// Package satutil provides small, generic plumbing for building CNF
// problems on top of github.com/go-air/gini: a lazy descriptor-to-literal
// allocator and a cardinality-constraint helper built on gini's
// sorting-network encoder. It knows nothing about any particular
// problem domain.
package satutil

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Pool lazily allocates a fresh SAT variable for each distinct key of
// type K on first use, and returns the same literal on every
// subsequent lookup. Every Pool must be backed by a shared *logic.C so
// that literals handed out by different Pools (e.g. one per
// descriptor family in a larger encoding) are guaranteed never to
// collide: the circuit's internal counter is the sole source of fresh
// ids.
type Pool[K comparable] struct {
	c    *logic.C
	lits map[K]z.Lit
}

// NewPool returns a Pool that allocates variables through c.
func NewPool[K comparable](c *logic.C) *Pool[K] {
	return &Pool[K]{c: c, lits: make(map[K]z.Lit)}
}

// Lit returns the literal associated with key, allocating a fresh one
// the first time key is seen.
func (p *Pool[K]) Lit(key K) z.Lit {
	if m, ok := p.lits[key]; ok {
		return m
	}
	m := p.c.Lit()
	p.lits[key] = m
	return m
}

// Len reports the number of distinct keys allocated so far.
func (p *Pool[K]) Len() int {
	return len(p.lits)
}

// Package graph provides the undirected simple graph model the minor
// checker operates over: vertices labelled 0..n-1, an edge set with
// stable iteration order, and adjacency lookups backed by sets.
package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Edge is an unordered pair of vertices.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph on vertices {0, ..., N()-1}.
type Graph struct {
	n     int
	adj   []mapset.Set[int]
	edges []Edge
	seen  map[Edge]struct{}
}

// New returns an empty graph on n vertices.
func New(n int) *Graph {
	adj := make([]mapset.Set[int], n)
	for i := range adj {
		adj[i] = mapset.NewThreadUnsafeSet[int]()
	}
	return &Graph{
		n:    n,
		adj:  adj,
		seen: make(map[Edge]struct{}),
	}
}

// N returns the number of vertices.
func (g *Graph) N() int {
	return g.n
}

// AddEdge adds the edge {u, v} to the graph. Adding the same edge (in
// either orientation) more than once is a no-op: the edge set and
// iteration order are unaffected by duplicates.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	key := canonical(u, v)
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.edges = append(g.edges, key)
	g.adj[u].Add(v)
	g.adj[v].Add(u)
}

// HasEdge reports whether {u, v} is an edge of the graph.
func (g *Graph) HasEdge(u, v int) bool {
	return g.adj[u].Contains(v)
}

// Neighbors returns the set of vertices adjacent to v. The returned
// set must not be mutated by the caller.
func (g *Graph) Neighbors(v int) mapset.Set[int] {
	return g.adj[v]
}

// Edges returns the edges of the graph in the order they were first
// added. The returned slice must not be mutated by the caller.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func canonical(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

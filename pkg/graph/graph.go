package graph

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/soniakeys/bits"
)

var (
	ErrNegativeOrder    = errors.New("graph order must not be negative")
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrSelfLoop         = errors.New("self loops are not allowed")
	ErrDuplicateEdge    = errors.New("duplicate edge")
)

// Graph is a simple undirected graph on the vertices 0..n-1. A Graph is never
// modified after Build, so it can be shared between searches.
type Graph struct {
	adj  [][]int
	rows []bits.Bits
	size int
}

// Builder collects edges for a Graph and validates them on insertion.
type Builder struct {
	adj  [][]int
	rows []bits.Bits
	size int
}

func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	b := &Builder{
		adj:  make([][]int, n),
		rows: make([]bits.Bits, n),
	}
	for i := range b.rows {
		b.rows[i] = bits.New(n)
	}
	return b, nil
}

func (b *Builder) Order() int {
	return len(b.adj)
}

// AddEdge inserts the undirected edge {u, v}.
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge (%d, %d) in a graph of order %d", ErrVertexOutOfRange, u, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	if b.rows[u].Bit(v) == 1 {
		return fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, u, v)
	}
	b.link(u, v)
	return nil
}

// link adds {u, v} without validation.
func (b *Builder) link(u, v int) {
	b.rows[u].SetBit(v, 1)
	b.rows[v].SetBit(u, 1)
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)
	b.size++
}

// Build freezes the builder. The builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	for _, l := range b.adj {
		slices.Sort(l)
	}
	g := &Graph{adj: b.adj, rows: b.rows, size: b.size}
	b.adj, b.rows, b.size = nil, nil, 0
	return g
}

// FromEdges builds a graph of order n from 0-based edge pairs.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	b, err := NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Random returns a G(n, p) graph drawn from r.
func Random(n int, p float64, r *rand.Rand) *Graph {
	b, err := NewBuilder(n)
	if err != nil {
		panic(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			// u < v are in range and visited once
			if r.Float64() < p {
				b.link(u, v)
			}
		}
	}
	return b.Build()
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return g.size
}

func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Neighbors returns the neighbours of v in ascending order. The returned
// slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[v]
}

// Row returns the adjacency bit row of v. It is shared with the graph and
// must not be modified.
func (g *Graph) Row(v int) bits.Bits {
	return g.rows[v]
}

func (g *Graph) HasEdge(u, v int) bool {
	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}
	return g.rows[u].Bit(v) == 1
}

// Edges calls visit once per edge with u < v, in lexicographic order.
func (g *Graph) Edges(visit func(u, v int)) {
	for u, l := range g.adj {
		for _, v := range l {
			if u < v {
				visit(u, v)
			}
		}
	}
}

// EdgeList returns all edges as pairs with u < v.
func (g *Graph) EdgeList() [][2]int {
	edges := make([][2]int, 0, g.size)
	g.Edges(func(u, v int) {
		edges = append(edges, [2]int{u, v})
	})
	return edges
}

// Density is 2m / (n(n-1)); 0 for graphs with fewer than two vertices.
func (g *Graph) Density() float64 {
	n := len(g.adj)
	if n < 2 {
		return 0
	}
	return float64(2*g.size) / float64(n*(n-1))
}

// Equal reports whether both graphs have the same order and edge set.
func (g *Graph) Equal(o *Graph) bool {
	if g.Order() != o.Order() || g.size != o.size {
		return false
	}
	for v := range g.rows {
		if !g.rows[v].Equal(o.rows[v]) {
			return false
		}
	}
	return true
}

// Complement returns the graph with an edge {u, v}, u != v, exactly where g
// has none.
func (g *Graph) Complement() *Graph {
	n := len(g.adj)
	c := &Graph{
		adj:  make([][]int, n),
		rows: make([]bits.Bits, n),
		size: n*(n-1)/2 - g.size,
	}
	for u := 0; u < n; u++ {
		row := bits.New(n)
		row.Not(g.rows[u])
		row.SetBit(u, 0)
		l := make([]int, 0, n-1-len(g.adj[u]))
		row.IterateOnes(func(v int) bool {
			l = append(l, v)
			return true
		})
		c.rows[u] = row
		c.adj[u] = l
	}
	return c
}

func (g *Graph) String() string {
	return fmt.Sprintf("graph(order=%d, size=%d)", g.Order(), g.size)
}

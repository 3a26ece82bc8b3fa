package graph

import "github.com/soniakeys/bits"

func (g *Graph) members(vertices []int) (bits.Bits, bool) {
	set := bits.New(g.Order())
	for _, v := range vertices {
		if v < 0 || v >= g.Order() {
			return set, false
		}
		set.SetBit(v, 1)
	}
	return set, true
}

// IsVertexCover reports whether every edge has at least one endpoint in
// cover. Out of range vertices make the answer false.
func (g *Graph) IsVertexCover(cover []int) bool {
	set, ok := g.members(cover)
	if !ok {
		return false
	}
	for u, l := range g.adj {
		if set.Bit(u) == 1 {
			continue
		}
		for _, v := range l {
			if set.Bit(v) == 0 {
				return false
			}
		}
	}
	return true
}

// IsClique reports whether the given vertices are pairwise adjacent.
func (g *Graph) IsClique(vertices []int) bool {
	if _, ok := g.members(vertices); !ok {
		return false
	}
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if u == v || !g.HasEdge(u, v) {
				return false
			}
		}
	}
	return true
}

// IsIndependentSet reports whether no two of the given vertices are adjacent.
func (g *Graph) IsIndependentSet(vertices []int) bool {
	if _, ok := g.members(vertices); !ok {
		return false
	}
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if u == v || g.HasEdge(u, v) {
				return false
			}
		}
	}
	return true
}

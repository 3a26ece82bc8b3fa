// Package naive solves vertex cover and clique problems by exhaustive
// enumeration. It is exponential in the graph order and only meant for
// small graphs and for cross-checking the branch and bound search.
package naive

import (
	"errors"
	"fmt"

	"github.com/vertexlab/vertex/pkg/graph"
)

// MaxOrder is the largest graph order accepted.
const MaxOrder = 32

var ErrTooLarge = errors.New("graph too large for exhaustive search")

// MinVertexCover returns the lexicographically smallest among the minimum
// vertex covers of g.
func MinVertexCover(g *graph.Graph) ([]int, error) {
	adj, err := masks(g)
	if err != nil {
		return nil, err
	}
	covers := func(set uint64) bool {
		for u, row := range adj {
			if set&(1<<u) == 0 && row&^set != 0 {
				return false
			}
		}
		return true
	}
	for k := 0; k <= len(adj); k++ {
		if c := first(len(adj), k, covers); c != nil {
			return c, nil
		}
	}
	panic("the full vertex set is always a cover")
}

// MaxClique returns the lexicographically smallest among the maximum cliques
// of g.
func MaxClique(g *graph.Graph) ([]int, error) {
	adj, err := masks(g)
	if err != nil {
		return nil, err
	}
	clique := func(set uint64) bool {
		for u, row := range adj {
			if set&(1<<u) != 0 && set&^row&^(1<<u) != 0 {
				return false
			}
		}
		return true
	}
	for k := len(adj); k >= 0; k-- {
		if c := first(len(adj), k, clique); c != nil {
			return c, nil
		}
	}
	panic("the empty set is always a clique")
}

func masks(g *graph.Graph) ([]uint64, error) {
	if g.Order() > MaxOrder {
		return nil, fmt.Errorf("%w: order %d exceeds %d", ErrTooLarge, g.Order(), MaxOrder)
	}
	adj := make([]uint64, g.Order())
	g.Edges(func(u, v int) {
		adj[u] |= 1 << v
		adj[v] |= 1 << u
	})
	return adj, nil
}

// first walks the k-subsets of 0..n-1 in lexicographic order and returns the
// first one accepted by ok, or nil.
func first(n, k int, ok func(uint64) bool) []int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		var set uint64
		for _, v := range idx {
			set |= 1 << v
		}
		if ok(set) {
			return idx
		}
		// advance to the next combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

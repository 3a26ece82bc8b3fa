// Package certify checks vertex cover sizes with a SAT solver, independently
// of the branch and bound search.
package certify

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vertexlab/vertex/pkg/graph"
)

var ErrNoCover = errors.New("no vertex cover of the claimed size exists")

// CoverExists reports whether g has a vertex cover of at most k vertices and
// returns one if so.
func CoverExists(g *graph.Graph, k int) (bool, []int) {
	switch {
	case k < 0:
		return false, nil
	case g.Size() == 0:
		return true, []int{}
	case k >= g.Order():
		all := make([]int, g.Order())
		for v := range all {
			all[v] = v
		}
		return true, all
	}
	e := newEncoder(g)
	e.atMost(k)
	logrus.Debugf("Solving cover of size %d for %s with %d variables", k, g, e.varsCount)
	cover, ok := e.solve()
	return ok, cover
}

// Optimal reports whether size is the minimum vertex cover size of g. It
// returns ErrNoCover if g has no cover of that size at all.
func Optimal(g *graph.Graph, size int) (bool, error) {
	ok, cover := CoverExists(g, size)
	if !ok {
		return false, fmt.Errorf("%w: size %d on %s", ErrNoCover, size, g)
	}
	if !g.IsVertexCover(cover) {
		return false, fmt.Errorf("failed to certify %s: solver returned an invalid cover", g)
	}
	if smaller, _ := CoverExists(g, size-1); smaller {
		return false, nil
	}
	return true, nil
}

package mvc

import (
	"cmp"
	"slices"
	"strings"

	"github.com/soniakeys/bits"
)

// Bounds selects the lower bound estimators used for pruning.
type Bounds uint8

const (
	BoundDegree Bounds = 1 << iota
	BoundClique
	// BoundCliqueCover partitions the active vertices greedily into cliques.
	// It is never weaker than BoundClique, so BoundClique is skipped when
	// both are set.
	BoundCliqueCover

	DefaultBounds = BoundDegree | BoundClique
	AllBounds     = BoundDegree | BoundClique | BoundCliqueCover
)

var boundNames = []struct {
	b    Bounds
	name string
}{
	{BoundDegree, "degree"},
	{BoundClique, "clique"},
	{BoundCliqueCover, "clique-cover"},
}

func (b Bounds) String() string {
	if b == 0 {
		return "none"
	}
	var names []string
	for _, n := range boundNames {
		if b&n.b != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseBounds turns a list of estimator names into a flag set. Unknown names
// are reported as false.
func ParseBounds(names []string) (Bounds, bool) {
	var b Bounds
	for _, name := range names {
		found := false
		for _, n := range boundNames {
			if n.name == name {
				b |= n.b
				found = true
			}
		}
		if !found && name != "none" {
			return 0, false
		}
	}
	return b, true
}

// DegreeBound returns ceil(m / Δ) for the uncovered edge count m and the
// largest active degree Δ. Any cover needs that many vertices because no
// vertex covers more than Δ of the remaining edges.
func DegreeBound(s *State) int {
	m := s.UncoveredEdges()
	if m == 0 {
		return 0
	}
	_, d, _ := s.MaxActiveDegree()
	return (m + d - 1) / d
}

// CliqueBound returns k-1 for a clique of size k found greedily among the
// active vertices.
func CliqueBound(s *State) int {
	return newEstimator(s.Graph().Order()).clique(s)
}

// CliqueCoverBound partitions the active vertices into cliques C1..Cr and
// returns the sum of |Ci|-1. The cliques are disjoint, so a cover needs that
// many vertices from each of them.
func CliqueCoverBound(s *State) int {
	return newEstimator(s.Graph().Order()).cliqueCover(s)
}

// estimator keeps scratch space so repeated bounds do not allocate.
type estimator struct {
	n       int
	order   []int
	cand    bits.Bits
	common  []bits.Bits
	members []int
}

func newEstimator(n int) *estimator {
	return &estimator{n: n, cand: bits.New(n)}
}

// byDegree fills e.order with the active vertices by descending active degree,
// lowest index first on ties.
func (e *estimator) byDegree(s *State) []int {
	e.order = e.order[:0]
	s.active.IterateOnes(func(v int) bool {
		e.order = append(e.order, v)
		return true
	})
	slices.SortFunc(e.order, func(a, b int) int {
		if c := cmp.Compare(s.degree[b], s.degree[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return e.order
}

func (e *estimator) clique(s *State) int {
	order := e.byDegree(s)
	if len(order) == 0 {
		return 0
	}
	g := s.Graph()
	e.cand.Set(g.Row(order[0]))
	k := 1
	for _, v := range order[1:] {
		if e.cand.Bit(v) == 1 {
			k++
			e.cand.And(e.cand, g.Row(v))
		}
	}
	return k - 1
}

func (e *estimator) cliqueCover(s *State) int {
	order := e.byDegree(s)
	g := s.Graph()
	// common[i] holds the vertices adjacent to every member of clique i.
	cliques := 0
	e.members = e.members[:0]
	for _, v := range order {
		placed := false
		for i := 0; i < cliques; i++ {
			if e.common[i].Bit(v) == 1 {
				e.common[i].And(e.common[i], g.Row(v))
				e.members[i]++
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		if cliques == len(e.common) {
			e.common = append(e.common, bits.New(e.n))
		}
		e.common[cliques].Set(g.Row(v))
		e.members = append(e.members, 1)
		cliques++
	}
	lb := 0
	for _, size := range e.members {
		lb += size - 1
	}
	return lb
}

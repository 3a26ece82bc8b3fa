package mvc

import (
	"iter"

	"github.com/soniakeys/bits"
	"github.com/vertexlab/vertex/pkg/graph"
)

// State is the mutable view of a graph threaded through the search. A vertex
// is active until it is decided; an edge is uncovered iff both endpoints are
// active. Deactivate and Reactivate must be applied in stack order.
type State struct {
	g       *graph.Graph
	active  bits.Bits
	nActive int
	// degree[v] is the number of active neighbours of v, kept for every
	// vertex whether active or not.
	degree    []int
	uncovered int
	cover     []int
}

// NewState returns a state with every vertex active and an empty partial
// cover.
func NewState(g *graph.Graph) *State {
	n := g.Order()
	s := &State{
		g:         g,
		active:    bits.New(n),
		nActive:   n,
		degree:    make([]int, n),
		uncovered: g.Size(),
	}
	s.active.SetAll()
	for v := range s.degree {
		s.degree[v] = g.Degree(v)
	}
	return s
}

func (s *State) Graph() *graph.Graph {
	return s.g
}

func (s *State) IsActive(v int) bool {
	return s.active.Bit(v) == 1
}

func (s *State) ActiveCount() int {
	return s.nActive
}

// Deactivate marks v as decided. Every edge from v to an active neighbour
// stops being uncovered.
func (s *State) Deactivate(v int) {
	if s.active.Bit(v) == 0 {
		panic("deactivating an inactive vertex")
	}
	s.active.SetBit(v, 0)
	s.nActive--
	for _, u := range s.g.Neighbors(v) {
		s.degree[u]--
		if s.active.Bit(u) == 1 {
			s.uncovered--
		}
	}
}

// Reactivate is the exact inverse of Deactivate.
func (s *State) Reactivate(v int) {
	if s.active.Bit(v) == 1 {
		panic("reactivating an active vertex")
	}
	for _, u := range s.g.Neighbors(v) {
		s.degree[u]++
		if s.active.Bit(u) == 1 {
			s.uncovered++
		}
	}
	s.active.SetBit(v, 1)
	s.nActive++
}

// ActiveDegree returns the number of active neighbours of v.
func (s *State) ActiveDegree(v int) int {
	return s.degree[v]
}

// MaxActiveDegree returns the active vertex with the most active neighbours,
// preferring the lowest index on ties. ok is false when no vertex is active.
func (s *State) MaxActiveDegree() (v, d int, ok bool) {
	v, d = -1, -1
	s.active.IterateOnes(func(u int) bool {
		if s.degree[u] > d {
			v, d = u, s.degree[u]
		}
		return true
	})
	if v < 0 {
		return 0, 0, false
	}
	return v, d, true
}

// UncoveredEdges returns the number of edges with both endpoints active.
func (s *State) UncoveredEdges() int {
	return s.uncovered
}

// ActiveNeighbors yields the active neighbours of v in ascending order. The
// sequence is evaluated lazily and may be ranged over repeatedly.
func (s *State) ActiveNeighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, u := range s.g.Neighbors(v) {
			if s.active.Bit(u) == 1 && !yield(u) {
				return
			}
		}
	}
}

// Cover returns a copy of the partial cover in the order vertices were added.
func (s *State) Cover() []int {
	return append(make([]int, 0, len(s.cover)), s.cover...)
}

func (s *State) CoverSize() int {
	return len(s.cover)
}

// Take deactivates v and adds it to the partial cover.
func (s *State) Take(v int) {
	s.Deactivate(v)
	s.cover = append(s.cover, v)
}

// Untake undoes the most recent Take and returns the vertex it removed.
func (s *State) Untake() int {
	last := len(s.cover) - 1
	v := s.cover[last]
	s.cover = s.cover[:last]
	s.Reactivate(v)
	return v
}

package certify

import (
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/vertexlab/vertex/pkg/graph"
)

// encoder turns "g has a vertex cover of at most k vertices" into a boolean
// formula. Vertex v is in the cover iff its variable is true.
type encoder struct {
	ands       []bf.Formula
	varsCount  int
	vertexVars []string
}

func newEncoder(g *graph.Graph) *encoder {
	e := &encoder{vertexVars: make([]string, g.Order())}
	for v := range e.vertexVars {
		e.vertexVars[v] = e.ticket()
	}
	g.Edges(func(u, v int) {
		e.ands = append(e.ands, bf.Or(e.vertex(u), e.vertex(v)))
	})
	return e
}

func (e *encoder) ticket() string {
	e.varsCount++
	return "x" + strconv.Itoa(e.varsCount)
}

func (e *encoder) vertex(v int) bf.Formula {
	return bf.Var(e.vertexVars[v])
}

// atMost limits the number of true vertex variables to k with a sequential
// counter: s[i][j] holds if at least j+1 of the first i+1 vertices are true.
func (e *encoder) atMost(k int) {
	n := len(e.vertexVars)
	if k >= n {
		return
	}
	if k == 0 {
		for v := range e.vertexVars {
			e.ands = append(e.ands, bf.Not(e.vertex(v)))
		}
		return
	}
	s := make([][]bf.Formula, n)
	for i := range s {
		s[i] = make([]bf.Formula, k)
		for j := range s[i] {
			s[i][j] = bf.Var(e.ticket())
		}
	}
	e.ands = append(e.ands, bf.Implies(e.vertex(0), s[0][0]))
	for j := 1; j < k; j++ {
		e.ands = append(e.ands, bf.Not(s[0][j]))
	}
	for i := 1; i < n; i++ {
		x := e.vertex(i)
		e.ands = append(e.ands,
			bf.Implies(x, s[i][0]),
			bf.Implies(s[i-1][0], s[i][0]),
			bf.Implies(x, bf.Not(s[i-1][k-1])),
		)
		for j := 1; j < k; j++ {
			e.ands = append(e.ands,
				bf.Implies(s[i-1][j], s[i][j]),
				bf.Implies(bf.And(x, s[i-1][j-1]), s[i][j]),
			)
		}
	}
}

// solve returns the vertices set to true in a model, or false if the formula
// is unsatisfiable.
func (e *encoder) solve() ([]int, bool) {
	model := bf.Solve(bf.And(e.ands...))
	if model == nil {
		return nil, false
	}
	cover := []int{}
	for v, name := range e.vertexVars {
		if model[name] {
			cover = append(cover, v)
		}
	}
	return cover, true
}

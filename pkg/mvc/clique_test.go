package mvc

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/vertexlab/vertex/pkg/graph"
	"github.com/vertexlab/vertex/pkg/naive"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// bronKerbosch returns the maximum clique size of g as found by gonum.
func bronKerbosch(g *graph.Graph) int {
	u := simple.NewUndirectedGraph()
	for v := 0; v < g.Order(); v++ {
		u.AddNode(simple.Node(v))
	}
	g.Edges(func(a, b int) {
		u.SetEdge(u.NewEdge(simple.Node(a), simple.Node(b)))
	})
	best := 0
	for _, c := range topo.BronKerbosch(u) {
		best = max(best, len(c))
	}
	return best
}

func TestMaxCliqueMatchesBronKerbosch(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 37))
	for i := range 40 {
		n := r.IntN(26)
		p := r.Float64()
		t.Run(fmt.Sprintf("n=%d p=%.2f #%d", n, p, i), func(t *testing.T) {
			g := NewGomegaWithT(t)
			gr := graph.Random(n, p, r)
			res := MaxClique(context.Background(), gr, DefaultOptions())
			g.Expect(res.Exact()).To(BeTrue())
			g.Expect(res.Size).To(Equal(bronKerbosch(gr)))
			g.Expect(res.Clique).To(HaveLen(res.Size))
			g.Expect(gr.IsClique(res.Clique)).To(BeTrue())
			g.Expect(res.Cover.Size + res.Size).To(Equal(n))
		})
	}
}

func TestMaxCliqueMatchesExhaustiveSearch(t *testing.T) {
	r := rand.New(rand.NewPCG(41, 43))
	for i := range 30 {
		n := 1 + r.IntN(16)
		t.Run(fmt.Sprintf("n=%d #%d", n, i), func(t *testing.T) {
			g := NewGomegaWithT(t)
			gr := graph.Random(n, 0.6, r)
			want, err := naive.MaxClique(gr)
			g.Expect(err).ToNot(HaveOccurred())
			res := MaxClique(context.Background(), gr, Options{Bounds: AllBounds})
			g.Expect(res.Size).To(Equal(len(want)))
		})
	}
}

func TestCliqueOfTriangleWithPendant(t *testing.T) {
	g := NewGomegaWithT(t)
	gr := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}})
	res := MaxClique(context.Background(), gr, DefaultOptions())
	g.Expect(res.Size).To(Equal(3))
	g.Expect(res.Clique).To(Equal([]int{0, 1, 2}))
	g.Expect(res.Cover.Cover).To(Equal([]int{3}))
}

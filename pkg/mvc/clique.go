package mvc

import (
	"context"

	"github.com/vertexlab/vertex/pkg/graph"
)

// CliqueResult is a maximum clique derived from a cover of the complement.
type CliqueResult struct {
	Size   int
	Clique []int
	// Cover is the search result on the complement graph.
	Cover *Result
}

func (r *CliqueResult) Exact() bool {
	return r.Cover.Exact
}

// SolveComplement runs Solve on the complement of g.
func SolveComplement(ctx context.Context, g *graph.Graph, opts Options) *Result {
	return Solve(ctx, g.Complement(), opts)
}

// MaxClique finds a maximum clique of g. A vertex set is a clique of g iff it
// is independent in the complement, and the vertices outside a minimum cover
// of the complement form a maximum independent set there.
func MaxClique(ctx context.Context, g *graph.Graph, opts Options) *CliqueResult {
	res := SolveComplement(ctx, g, opts)
	return &CliqueResult{
		Size:   g.Order() - res.Size,
		Clique: outside(g.Order(), res.Cover),
		Cover:  res,
	}
}

// outside returns the vertices 0..n-1 missing from the sorted set.
func outside(n int, sorted []int) []int {
	rest := make([]int, 0, n-len(sorted))
	i := 0
	for v := 0; v < n; v++ {
		if i < len(sorted) && sorted[i] == v {
			i++
			continue
		}
		rest = append(rest, v)
	}
	return rest
}

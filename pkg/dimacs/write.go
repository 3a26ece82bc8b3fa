package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vertexlab/vertex/pkg/graph"
)

// Write stores g in DIMACS edge format, optionally preceded by comment lines.
func Write(w io.Writer, g *graph.Graph, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		fmt.Fprintf(bw, "c %s\n", c)
	}
	fmt.Fprintf(bw, "p edge %d %d\n", g.Order(), g.Size())
	g.Edges(func(u, v int) {
		fmt.Fprintf(bw, "e %d %d\n", u+1, v+1)
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

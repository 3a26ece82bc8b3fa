package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vertexlab/vertex/pkg/mvc"
	"github.com/vertexlab/vertex/pkg/store"
)

type report struct {
	graph string
	// what names the reported vertex set, e.g. "vertex cover".
	what    string
	size    int
	members []int
	exact   bool
	stop    mvc.Stop
	nodes   int64
	elapsed time.Duration
	phases  *mvc.PhaseTimes
	// annotation is nil when the store was not consulted.
	annotation *store.Annotation
}

func newSearchReport(graph, what string, res *mvc.Result, members []int) *report {
	return &report{
		graph:   graph,
		what:    what,
		size:    len(members),
		members: members,
		exact:   res.Exact,
		stop:    res.Stop,
		nodes:   res.Nodes,
		elapsed: res.Elapsed,
		phases:  &res.Phases,
	}
}

// vertexList prints vertices numbered from 1, as in DIMACS files.
func vertexList(vertices []int) string {
	s := make([]string, len(vertices))
	for i, v := range vertices {
		s[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(s, " ")
}

func percent(part, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

func (r *report) write(w io.Writer) {
	status := "optimal"
	if !r.exact {
		status = fmt.Sprintf("best found, stopped: %s", r.stop)
	}
	fmt.Fprintf(w, "graph: %s\n", r.graph)
	fmt.Fprintf(w, "%s size: %d (%s)\n", r.what, r.size, status)
	fmt.Fprintf(w, "members: %s\n", vertexList(r.members))
	if r.nodes > 0 {
		fmt.Fprintf(w, "search nodes: %d\n", r.nodes)
	}
	if r.phases != nil {
		for _, p := range mvc.Phases() {
			fmt.Fprintf(w, "time in %s: %.2f%%\n", p, percent(r.phases.Of(p), r.elapsed))
		}
	}
	fmt.Fprintf(w, "total time: %s\n", r.elapsed)
	if r.annotation != nil {
		fmt.Fprintf(w, "store: %s\n", r.annotation)
	}
}

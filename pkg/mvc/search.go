package mvc

import (
	"context"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vertexlab/vertex/pkg/graph"
)

type searcher struct {
	state *State
	est   *estimator
	opts  Options
	inst  Instrumentation

	done     <-chan struct{}
	deadline time.Time
	nodes    int64
	stop     Stop

	bestSize  int
	bestCover []int
}

// Solve searches g for a minimum vertex cover. The search can be stopped by
// cancelling ctx or through the limits in opts; the result then holds the
// best cover found so far and Exact is false.
func Solve(ctx context.Context, g *graph.Graph, opts Options) *Result {
	start := time.Now()
	s := &searcher{
		state: NewState(g),
		est:   newEstimator(g.Order()),
		opts:  opts,
		inst:  opts.Instrumentation,
		done:  ctx.Done(),
	}
	if s.inst == nil {
		s.inst = nop{}
	}
	if opts.TimeLimit > 0 {
		s.deadline = start.Add(opts.TimeLimit)
	}
	s.seed(g)

	logrus.Debugf("Searching %s with bounds %s, initial cover size %d", g, opts.Bounds, s.bestSize)
	s.branch()

	res := &Result{
		Size:    s.bestSize,
		Cover:   s.bestCover,
		Exact:   s.stop == StopNone,
		Stop:    s.stop,
		Nodes:   s.nodes,
		Elapsed: time.Since(start),
	}
	if r, ok := s.inst.(PhaseReporter); ok {
		res.Phases = r.Phases()
	}
	logrus.Debugf("Search finished after %d nodes in %s: size %d, exact %v", res.Nodes, res.Elapsed, res.Size, res.Exact)
	return res
}

// seed starts from the cover holding every vertex, replaced by
// opts.InitialCover when that one is valid and smaller.
func (s *searcher) seed(g *graph.Graph) {
	s.bestSize = g.Order()
	s.bestCover = make([]int, g.Order())
	for v := range s.bestCover {
		s.bestCover[v] = v
	}
	if s.opts.InitialCover == nil {
		return
	}
	cover := slices.Clone(s.opts.InitialCover)
	slices.Sort(cover)
	cover = slices.Compact(cover)
	if !g.IsVertexCover(cover) {
		logrus.Warnf("Ignoring initial cover of size %d: not a vertex cover of %s", len(cover), g)
		return
	}
	if len(cover) < s.bestSize {
		s.bestSize = len(cover)
		s.bestCover = cover
	}
}

func (s *searcher) interrupted() bool {
	if s.stop != StopNone {
		return true
	}
	select {
	case <-s.done:
		s.stop = StopCancelled
		return true
	default:
	}
	if s.opts.NodeLimit > 0 && s.nodes > s.opts.NodeLimit {
		s.stop = StopNodeLimit
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.stop = StopTimeLimit
		return true
	}
	return false
}

func (s *searcher) improve() {
	cover := s.state.Cover()
	slices.Sort(cover)
	s.bestSize = len(cover)
	s.bestCover = cover
	logrus.Debugf("New incumbent of size %d after %d nodes", s.bestSize, s.nodes)
	if s.opts.OnIncumbent != nil {
		s.opts.OnIncumbent(s.bestSize, slices.Clone(cover))
	}
}

func (s *searcher) lowerBound() int {
	lb := 0
	if s.opts.Bounds&BoundDegree != 0 {
		s.inst.Enter(PhaseDegreeBound)
		lb = max(lb, DegreeBound(s.state))
		s.inst.Exit(PhaseDegreeBound)
	}
	switch {
	case s.opts.Bounds&BoundCliqueCover != 0:
		s.inst.Enter(PhaseCliqueBound)
		lb = max(lb, s.est.cliqueCover(s.state))
		s.inst.Exit(PhaseCliqueBound)
	case s.opts.Bounds&BoundClique != 0:
		s.inst.Enter(PhaseCliqueBound)
		lb = max(lb, s.est.clique(s.state))
		s.inst.Exit(PhaseCliqueBound)
	}
	return lb
}

func (s *searcher) branch() {
	s.nodes++
	if s.interrupted() {
		return
	}
	st := s.state
	if s.opts.visit != nil {
		s.opts.visit(st)
	}
	if st.UncoveredEdges() == 0 {
		if st.CoverSize() < s.bestSize {
			s.improve()
		}
		return
	}
	if st.CoverSize()+s.lowerBound() >= s.bestSize {
		return
	}

	s.inst.Enter(PhaseBranching)
	v, _, _ := st.MaxActiveDegree()
	s.inst.Exit(PhaseBranching)

	// v joins the cover
	s.inst.Enter(PhaseSaveRestore)
	st.Take(v)
	s.inst.Exit(PhaseSaveRestore)

	s.branch()

	s.inst.Enter(PhaseSaveRestore)
	st.Untake()
	s.inst.Exit(PhaseSaveRestore)
	if s.stop != StopNone {
		return
	}

	// v stays out, so every active neighbour has to join
	s.inst.Enter(PhaseSaveRestore)
	mark := st.CoverSize()
	st.Deactivate(v)
	for u := range st.ActiveNeighbors(v) {
		st.Take(u)
	}
	s.inst.Exit(PhaseSaveRestore)

	s.branch()

	s.inst.Enter(PhaseSaveRestore)
	for st.CoverSize() > mark {
		st.Untake()
	}
	st.Reactivate(v)
	s.inst.Exit(PhaseSaveRestore)
}

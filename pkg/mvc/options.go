package mvc

import (
	"fmt"
	"time"
)

// Options control a single search.
type Options struct {
	// Bounds selects the lower bound estimators. Zero disables pruning by
	// estimate, leaving only the incumbent comparison.
	Bounds Bounds
	// TimeLimit stops the search once exceeded. Zero means no limit.
	TimeLimit time.Duration
	// NodeLimit stops the search after this many search nodes. Zero means no
	// limit.
	NodeLimit int64
	// InitialCover seeds the incumbent when it is a valid cover smaller than
	// the trivial one.
	InitialCover []int
	// Instrumentation is told about phase changes. Nil disables it.
	Instrumentation Instrumentation
	// OnIncumbent is called with every improved cover, in the order found.
	// The slice is owned by the callee.
	OnIncumbent func(size int, cover []int)

	// visit is called at every search node before any pruning.
	visit func(*State)
}

func DefaultOptions() Options {
	return Options{Bounds: DefaultBounds}
}

// Stop tells why a search ended before proving optimality.
type Stop int

const (
	StopNone Stop = iota
	StopCancelled
	StopTimeLimit
	StopNodeLimit
)

func (s Stop) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopCancelled:
		return "cancelled"
	case StopTimeLimit:
		return "time limit"
	case StopNodeLimit:
		return "node limit"
	}
	return fmt.Sprintf("stop(%d)", int(s))
}

// Result is the outcome of a search. Cover is always a valid vertex cover;
// it is a minimum one when Exact is true.
type Result struct {
	Size    int
	Cover   []int
	Exact   bool
	Stop    Stop
	Nodes   int64
	Elapsed time.Duration
	// Phases is only filled when the instrumentation implements
	// PhaseReporter.
	Phases PhaseTimes
}

package mvc

import (
	"fmt"
	"time"
)

// Phase names a part of the search whose running time is accounted
// separately.
type Phase int

const (
	PhaseDegreeBound Phase = iota
	PhaseCliqueBound
	PhaseBranching
	// PhaseSaveRestore covers deactivating and reactivating vertices.
	PhaseSaveRestore
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseDegreeBound:
		return "degree bound"
	case PhaseCliqueBound:
		return "clique bound"
	case PhaseBranching:
		return "branching"
	case PhaseSaveRestore:
		return "save/restore"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Phases lists every phase in reporting order.
func Phases() []Phase {
	return []Phase{PhaseDegreeBound, PhaseCliqueBound, PhaseBranching, PhaseSaveRestore}
}

// Instrumentation receives a call when the search enters and leaves a phase.
// Calls for one phase never nest.
type Instrumentation interface {
	Enter(Phase)
	Exit(Phase)
}

// PhaseReporter is implemented by instrumentation that can report the time
// spent per phase.
type PhaseReporter interface {
	Phases() PhaseTimes
}

// PhaseTimes holds the accumulated duration of every phase.
type PhaseTimes [phaseCount]time.Duration

func (t PhaseTimes) Of(p Phase) time.Duration {
	return t[p]
}

// Total sums all phases.
func (t PhaseTimes) Total() time.Duration {
	var total time.Duration
	for _, d := range t {
		total += d
	}
	return total
}

type nop struct{}

func (nop) Enter(Phase) {}
func (nop) Exit(Phase)  {}

// Clock is an Instrumentation that measures wall clock time per phase.
type Clock struct {
	now     func() time.Time
	entered [phaseCount]time.Time
	spent   PhaseTimes
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Enter(p Phase) {
	c.entered[p] = c.now()
}

func (c *Clock) Exit(p Phase) {
	c.spent[p] += c.now().Sub(c.entered[p])
}

func (c *Clock) Phases() PhaseTimes {
	return c.spent
}

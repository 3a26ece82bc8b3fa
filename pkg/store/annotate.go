package store

import "fmt"

type Verdict int

const (
	Unknown Verdict = iota
	Optimal
	NotOptimal
	// Unavailable means the store itself could not be read.
	Unavailable
)

// Annotation compares a computed cover size with the recorded one. It is
// informational only.
type Annotation struct {
	Verdict  Verdict
	Recorded int
	Err      error
}

func (a Annotation) String() string {
	switch a.Verdict {
	case Optimal:
		return "optimal"
	case NotOptimal:
		return fmt.Sprintf("not optimal, recorded value is %d", a.Recorded)
	case Unavailable:
		return fmt.Sprintf("unknown, store unavailable: %v", a.Err)
	}
	return "unknown"
}

// Annotate checks value against the recorded value of id. A nil store
// yields Unknown.
func Annotate(s *Store, id string, value int) Annotation {
	if s == nil {
		return Annotation{}
	}
	recorded, _, ok := s.Lookup(id)
	switch {
	case !ok:
		return Annotation{}
	case recorded == value:
		return Annotation{Verdict: Optimal, Recorded: recorded}
	}
	return Annotation{Verdict: NotOptimal, Recorded: recorded}
}

// AnnotateFile loads the store at path and annotates value. Load failures
// are folded into the annotation.
func AnnotateFile(path, id string, value int) Annotation {
	s, err := Load(path)
	if err != nil {
		return Annotation{Verdict: Unavailable, Err: err}
	}
	return Annotate(s, id, value)
}

package vertex

import "time"

type Store struct {
	Graphs []GraphInfo `json:"graphs"`
}

// GraphInfo describes a benchmark graph and its minimum vertex cover size,
// if known.
type GraphInfo struct {
	ID       string     `json:"id"`
	Format   string     `json:"format"`
	Order    int        `json:"order"`
	Size     int        `json:"size"`
	Value    *int       `json:"value,omitempty"`
	Recorded *time.Time `json:"recorded,omitempty"`
	Runs     []Run      `json:"runs,omitempty"`
}

// Run is one solver execution on a graph. Value is always a vertex cover size
// of the entry's graph; clique searches are kept under the complement's entry.
type Run struct {
	Date      time.Time `json:"date"`
	Value     int       `json:"value"`
	Elapsed   string    `json:"elapsed"`
	TimeLimit bool      `json:"timeLimit"`
	Algorithm string    `json:"algorithm"`
	Comment   string    `json:"comment,omitempty"`
}

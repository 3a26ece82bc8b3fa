package vertex

// Config holds solver defaults read from vertex.yaml. Command line flags
// override every field.
type Config struct {
	// Bounds names the lower bound estimators, e.g. degree, clique or
	// clique-cover.
	Bounds    []string `json:"bounds,omitempty"`
	TimeLimit string   `json:"timeLimit,omitempty"`
	NodeLimit int64    `json:"nodeLimit,omitempty"`
	// GraphDir is searched for graph files given by name only.
	GraphDir string `json:"graphDir,omitempty"`
	Store    string `json:"store,omitempty"`
	Record   bool   `json:"record,omitempty"`
}

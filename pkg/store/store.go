// Package store keeps known minimum vertex cover sizes of benchmark graphs
// together with a log of solver runs in a YAML file.
package store

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/vertexlab/vertex/pkg/api/vertex"
	"github.com/vertexlab/vertex/pkg/graph"
	"sigs.k8s.io/yaml"
)

var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrStoreMalformed = errors.New("store malformed")
	ErrUnknownGraph   = errors.New("graph not in store")
)

// Error records a failed store operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DefaultPath returns the store location below the XDG data home.
func DefaultPath() (string, error) {
	p, err := xdg.DataFile(filepath.Join("vertex", "graphs.yaml"))
	if err != nil {
		return "", fmt.Errorf("failed to determine store location: %w", err)
	}
	return p, nil
}

type Store struct {
	path string
	data vertex.Store
}

// New returns an empty store which will be written to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the store at path. A missing file is reported as
// ErrStoreNotFound and an unreadable one as ErrStoreMalformed.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Op: "load", Path: path, Err: ErrStoreNotFound}
	}
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	s := &Store{path: path}
	if err := yaml.UnmarshalStrict(raw, &s.data); err != nil {
		return nil, &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: %v", ErrStoreMalformed, err)}
	}
	for _, info := range s.data.Graphs {
		if info.ID == "" {
			return nil, &Error{Op: "load", Path: path, Err: fmt.Errorf("%w: entry without id", ErrStoreMalformed)}
		}
	}
	return s, nil
}

// LoadOrNew is Load, except that a missing file yields an empty store.
func LoadOrNew(path string) (*Store, error) {
	s, err := Load(path)
	if errors.Is(err, ErrStoreNotFound) {
		logrus.Infof("Creating new store at %s", path)
		return New(path), nil
	}
	return s, err
}

func (s *Store) Path() string {
	return s.path
}

// Graphs returns the ids of all graphs in the store, sorted.
func (s *Store) Graphs() []string {
	ids := make([]string, 0, len(s.data.Graphs))
	for _, info := range s.data.Graphs {
		ids = append(ids, info.ID)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) find(id string) *vertex.GraphInfo {
	for i := range s.data.Graphs {
		if s.data.Graphs[i].ID == id {
			return &s.data.Graphs[i]
		}
	}
	return nil
}

// Info returns a copy of the entry for id.
func (s *Store) Info(id string) (vertex.GraphInfo, bool) {
	info := s.find(id)
	if info == nil {
		return vertex.GraphInfo{}, false
	}
	c := *info
	c.Runs = slices.Clone(info.Runs)
	return c, true
}

// Lookup returns the known minimum cover size of id. ok is false when the
// graph is missing or its value was never recorded.
func (s *Store) Lookup(id string) (value int, recorded time.Time, ok bool) {
	info := s.find(id)
	if info == nil || info.Value == nil {
		return 0, time.Time{}, false
	}
	if info.Recorded != nil {
		recorded = *info.Recorded
	}
	return *info.Value, recorded, true
}

// Add registers g under id without a known value. It returns false if id is
// already present.
func (s *Store) Add(id, format string, g *graph.Graph) bool {
	if s.find(id) != nil {
		return false
	}
	s.data.Graphs = append(s.data.Graphs, vertex.GraphInfo{
		ID:     id,
		Format: format,
		Order:  g.Order(),
		Size:   g.Size(),
	})
	return true
}

// SetValue records value as the minimum cover size of id.
func (s *Store) SetValue(id string, value int, at time.Time) error {
	info := s.find(id)
	if info == nil {
		return &Error{Op: "set value", Path: s.path, Err: fmt.Errorf("%w: %s", ErrUnknownGraph, id)}
	}
	at = at.UTC().Truncate(time.Second)
	info.Value = &value
	info.Recorded = &at
	return nil
}

// RecordRun appends run to the log of id.
func (s *Store) RecordRun(id string, run vertex.Run) error {
	info := s.find(id)
	if info == nil {
		return &Error{Op: "record run", Path: s.path, Err: fmt.Errorf("%w: %s", ErrUnknownGraph, id)}
	}
	run.Date = run.Date.UTC().Truncate(time.Second)
	info.Runs = append(info.Runs, run)
	return nil
}

// Save writes the store back to its path, replacing the previous file
// atomically.
func (s *Store) Save() error {
	slices.SortFunc(s.data.Graphs, func(a, b vertex.GraphInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".graphs-*.yaml")
	if err != nil {
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &Error{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

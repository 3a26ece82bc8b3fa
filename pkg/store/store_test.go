package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/vertexlab/vertex/pkg/api/vertex"
	"github.com/vertexlab/vertex/pkg/graph"
)

func triangle(t *testing.T) *graph.Graph {
	g, err := graph.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSaveAndLoad(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "nested", "graphs.yaml")
	at := time.Date(2024, 3, 1, 12, 30, 15, 999, time.UTC)

	s := New(path)
	g.Expect(s.Add("triangle.clq", "clq", triangle(t))).To(BeTrue())
	g.Expect(s.Add("triangle.clq", "clq", triangle(t))).To(BeFalse())
	g.Expect(s.Add("other.col", "col", triangle(t))).To(BeTrue())
	g.Expect(s.SetValue("triangle.clq", 2, at)).To(Succeed())
	g.Expect(s.RecordRun("triangle.clq", vertex.Run{
		Date:      at,
		Value:     2,
		Elapsed:   "1.5ms",
		Algorithm: "bnb",
	})).To(Succeed())
	g.Expect(s.Save()).To(Succeed())

	loaded, err := Load(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(loaded.Graphs()).To(Equal([]string{"other.col", "triangle.clq"}))

	value, recorded, ok := loaded.Lookup("triangle.clq")
	g.Expect(ok).To(BeTrue())
	g.Expect(value).To(Equal(2))
	g.Expect(recorded.Equal(at.Truncate(time.Second))).To(BeTrue())

	_, _, ok = loaded.Lookup("other.col")
	g.Expect(ok).To(BeFalse())
	_, _, ok = loaded.Lookup("missing.clq")
	g.Expect(ok).To(BeFalse())

	info, ok := loaded.Info("triangle.clq")
	g.Expect(ok).To(BeTrue())
	g.Expect(info.Order).To(Equal(3))
	g.Expect(info.Size).To(Equal(3))
	g.Expect(info.Runs).To(HaveLen(1))
	g.Expect(info.Runs[0].Algorithm).To(Equal("bnb"))
	g.Expect(info.Runs[0].Elapsed).To(Equal("1.5ms"))
}

func TestUnknownGraph(t *testing.T) {
	g := NewGomegaWithT(t)
	s := New(filepath.Join(t.TempDir(), "graphs.yaml"))
	err := s.SetValue("nope", 1, time.Now())
	g.Expect(err).To(MatchError(ErrUnknownGraph))
	err = s.RecordRun("nope", vertex.Run{})
	g.Expect(err).To(MatchError(ErrUnknownGraph))
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.yaml")
	if err := os.WriteFile(malformed, []byte("graphs: [this is: not: valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	unknownField := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknownField, []byte("graphs:\n- id: a.clq\n  colour: red\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	noID := filepath.Join(dir, "noid.yaml")
	if err := os.WriteFile(noID, []byte("graphs:\n- format: clq\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		err  error
	}{
		{name: "missing", path: filepath.Join(dir, "missing.yaml"), err: ErrStoreNotFound},
		{name: "malformed", path: malformed, err: ErrStoreMalformed},
		{name: "unknown field", path: unknownField, err: ErrStoreMalformed},
		{name: "entry without id", path: noID, err: ErrStoreMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			s, err := Load(tt.path)
			g.Expect(s).To(BeNil())
			g.Expect(err).To(MatchError(tt.err))
			var serr *Error
			g.Expect(err).To(BeAssignableToTypeOf(serr))
			g.Expect(err.(*Error).Path).To(Equal(tt.path))
		})
	}

	g := NewGomegaWithT(t)
	s, err := LoadOrNew(filepath.Join(dir, "missing.yaml"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(s.Graphs()).To(BeEmpty())
	_, err = LoadOrNew(malformed)
	g.Expect(err).To(MatchError(ErrStoreMalformed))
}

func TestAnnotate(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "graphs.yaml")
	s := New(path)
	s.Add("triangle.clq", "clq", triangle(t))
	s.Add("fresh.clq", "clq", triangle(t))
	g.Expect(s.SetValue("triangle.clq", 2, time.Now())).To(Succeed())

	g.Expect(Annotate(s, "triangle.clq", 2).Verdict).To(Equal(Optimal))
	a := Annotate(s, "triangle.clq", 3)
	g.Expect(a.Verdict).To(Equal(NotOptimal))
	g.Expect(a.String()).To(Equal("not optimal, recorded value is 2"))
	g.Expect(Annotate(s, "fresh.clq", 2).Verdict).To(Equal(Unknown))
	g.Expect(Annotate(s, "missing.clq", 2).String()).To(Equal("unknown"))
	g.Expect(Annotate(nil, "triangle.clq", 2).Verdict).To(Equal(Unknown))

	unavailable := AnnotateFile(path, "triangle.clq", 2)
	g.Expect(unavailable.Verdict).To(Equal(Unavailable))
	g.Expect(unavailable.Err).To(MatchError(ErrStoreNotFound))

	g.Expect(s.Save()).To(Succeed())
	g.Expect(AnnotateFile(path, "triangle.clq", 2).Verdict).To(Equal(Optimal))
}

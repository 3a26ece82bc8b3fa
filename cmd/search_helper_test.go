package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/api/vertex"
	"github.com/vertexlab/vertex/pkg/dimacs"
	"github.com/vertexlab/vertex/pkg/graph"
	"github.com/vertexlab/vertex/pkg/mvc"
	"github.com/vertexlab/vertex/pkg/store"
)

func withStore(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "graphs.yaml")
	old := rootopts.store
	rootopts.store = path
	t.Cleanup(func() { rootopts.store = old })
	return path
}

func TestRecordRunThenAnnotate(t *testing.T) {
	g := NewGomegaWithT(t)
	path := withStore(t)
	tri, err := graph.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	g.Expect(err).ToNot(HaveOccurred())

	a := annotate("triangle.clq", 2)
	g.Expect(a.Verdict).To(Equal(store.Unavailable))
	g.Expect(a.Err).To(MatchError(store.ErrStoreNotFound))

	id, format := graphID("graphs/triangle.clq.gz")
	g.Expect(recordRun(id, format, tri, "bnb", 2, time.Millisecond, false, "first")).To(Succeed())
	s, err := store.Load(path)
	g.Expect(err).ToNot(HaveOccurred())
	info, ok := s.Info("triangle.clq")
	g.Expect(ok).To(BeTrue())
	g.Expect(info.Format).To(Equal("clq"))
	g.Expect(info.Runs).To(HaveLen(1))
	g.Expect(info.Runs[0].Comment).To(Equal("first"))

	// a run is not a known optimum
	g.Expect(annotate("triangle.clq", 2).Verdict).To(Equal(store.Unknown))
	g.Expect(s.SetValue("triangle.clq", 2, time.Now())).To(Succeed())
	g.Expect(s.Save()).To(Succeed())
	g.Expect(annotate("triangle.clq", 2).Verdict).To(Equal(store.Optimal))
	g.Expect(annotate("triangle.clq", 3).Verdict).To(Equal(store.NotOptimal))
}

func TestSearchOptionsLayering(t *testing.T) {
	g := NewGomegaWithT(t)
	old := cfg
	t.Cleanup(func() { cfg = old })
	cfg = &vertex.Config{Bounds: []string{"degree"}, TimeLimit: "1m", NodeLimit: 5}

	o := &searchOpts{}
	cmd := &cobra.Command{}
	addSearchFlags(cmd, o)

	opts, err := o.options(cmd)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(opts.Bounds).To(Equal(mvc.BoundDegree))
	g.Expect(opts.TimeLimit).To(Equal(time.Minute))
	g.Expect(opts.NodeLimit).To(Equal(int64(5)))
	g.Expect(opts.Instrumentation).To(BeAssignableToTypeOf(&mvc.Clock{}))

	g.Expect(cmd.Flags().Parse([]string{"--bounds", "clique-cover", "--time-limit", "2s"})).To(Succeed())
	opts, err = o.options(cmd)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(opts.Bounds).To(Equal(mvc.BoundCliqueCover))
	g.Expect(opts.TimeLimit).To(Equal(2 * time.Second))
	g.Expect(opts.NodeLimit).To(Equal(int64(5)))

	g.Expect(cmd.Flags().Parse([]string{"--bounds", "parity"})).To(Succeed())
	_, err = o.options(cmd)
	g.Expect(err).To(HaveOccurred())
}

func TestGraphLocation(t *testing.T) {
	g := NewGomegaWithT(t)
	old := cfg
	t.Cleanup(func() { cfg = old })
	dir := t.TempDir()
	local := filepath.Join(dir, "here.clq")
	g.Expect(os.WriteFile(local, []byte("p edge 1 0\n"), 0o644)).To(Succeed())

	cfg = &vertex.Config{GraphDir: "/data/graphs"}
	g.Expect(graphLocation(local)).To(Equal(local))
	g.Expect(graphLocation("C125.9.clq")).To(Equal(filepath.Join("/data/graphs", "C125.9.clq")))
	g.Expect(graphLocation("https://example.com/g.clq")).To(Equal("https://example.com/g.clq"))

	cfg = &vertex.Config{}
	g.Expect(graphLocation("C125.9.clq")).To(Equal("C125.9.clq"))
}

func TestComplementRunsHaveTheirOwnEntry(t *testing.T) {
	g := NewGomegaWithT(t)
	path := withStore(t)
	// a path on four vertices, its complement is a path as well
	p4, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	g.Expect(err).ToNot(HaveOccurred())

	id, format := graphID("p4.col")
	g.Expect(recordRun(id, format, p4, "bnb", 2, time.Millisecond, false, "")).To(Succeed())
	g.Expect(recordRun(complementID(id), format, p4.Complement(), "clique", 2, time.Millisecond, false, "")).To(Succeed())

	s, err := store.Load(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(s.Graphs()).To(Equal([]string{"p4.col", "p4.col#complement"}))
	info, ok := s.Info("p4.col")
	g.Expect(ok).To(BeTrue())
	g.Expect(info.Runs).To(HaveLen(1))
	g.Expect(info.Runs[0].Algorithm).To(Equal("bnb"))
	info, ok = s.Info("p4.col#complement")
	g.Expect(ok).To(BeTrue())
	g.Expect(info.Format).To(Equal("col"))
	g.Expect(info.Size).To(Equal(3))
	g.Expect(info.Runs).To(HaveLen(1))
	g.Expect(info.Runs[0].Algorithm).To(Equal("clique"))
}

func writeGraph(t *testing.T, path string, gr *graph.Graph, compress bool) {
	var buf bytes.Buffer
	if compress {
		zw := gzip.NewWriter(&buf)
		if err := dimacs.Write(zw, gr); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
	} else if err := dimacs.Write(&buf, gr); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGraphFiles(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()
	tri, err := graph.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	g.Expect(err).ToNot(HaveOccurred())
	writeGraph(t, filepath.Join(dir, "b.col.gz"), tri, true)
	writeGraph(t, filepath.Join(dir, "a.clq"), tri, false)
	g.Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)).To(Succeed())
	g.Expect(os.Mkdir(filepath.Join(dir, "more.clq"), 0o755)).To(Succeed())

	files, err := graphFiles(dir)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(files).To(Equal([]string{filepath.Join(dir, "a.clq"), filepath.Join(dir, "b.col.gz")}))

	_, err = graphFiles(filepath.Join(dir, "missing"))
	g.Expect(err).To(HaveOccurred())
}

func TestUpdateStoreScansGraphDirectory(t *testing.T) {
	g := NewGomegaWithT(t)
	path := withStore(t)
	old := cfg
	t.Cleanup(func() { cfg = old })
	dir := t.TempDir()
	cfg = &vertex.Config{GraphDir: dir}

	tri, err := graph.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	g.Expect(err).ToNot(HaveOccurred())
	p4, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	g.Expect(err).ToNot(HaveOccurred())
	writeGraph(t, filepath.Join(dir, "triangle.clq"), tri, false)
	writeGraph(t, filepath.Join(dir, "p4.col.gz"), p4, true)

	cmd := NewUpdateStoreCmd()
	cmd.SetArgs([]string{"--solve"})
	g.Expect(cmd.ExecuteContext(context.Background())).To(Succeed())

	s, err := store.Load(path)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(s.Graphs()).To(Equal([]string{"p4.col", "triangle.clq"}))
	value, _, ok := s.Lookup("triangle.clq")
	g.Expect(ok).To(BeTrue())
	g.Expect(value).To(Equal(2))
	value, _, ok = s.Lookup("p4.col")
	g.Expect(ok).To(BeTrue())
	g.Expect(value).To(Equal(2))

	cfg = &vertex.Config{}
	cmd = NewUpdateStoreCmd()
	cmd.SetArgs([]string{})
	g.Expect(cmd.ExecuteContext(context.Background())).To(MatchError(ContainSubstring("no graph directory")))
}

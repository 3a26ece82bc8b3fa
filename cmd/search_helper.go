package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/api/vertex"
	"github.com/vertexlab/vertex/pkg/config"
	"github.com/vertexlab/vertex/pkg/dimacs"
	"github.com/vertexlab/vertex/pkg/graph"
	"github.com/vertexlab/vertex/pkg/mvc"
	"github.com/vertexlab/vertex/pkg/store"
)

var compressionExts = []string{".gz", ".bz2", ".xz", ".zst", ".lz4", ".br", ".sz", ".lz"}

// graphLocation resolves a graph argument. Names that are neither URLs nor
// existing files are looked up in the configured graph directory.
func graphLocation(name string) string {
	if strings.Contains(name, "://") {
		return name
	}
	if _, err := os.Stat(name); err == nil || cfg.GraphDir == "" {
		return name
	}
	return filepath.Join(cfg.GraphDir, name)
}

// graphID derives the store id and format of a graph from its location,
// e.g. "graphs/C125.9.clq.gz" has id "C125.9.clq" and format "clq".
func graphID(location string) (id, format string) {
	id = path.Base(filepath.ToSlash(location))
	for _, ext := range compressionExts {
		if strings.HasSuffix(id, ext) {
			id = strings.TrimSuffix(id, ext)
			break
		}
	}
	return id, strings.TrimPrefix(path.Ext(id), ".")
}

// complementID names the store entry of a graph's complement. Searches on
// the complement record there, so every stored value is a minimum cover
// size of the graph its entry describes.
func complementID(id string) string {
	return id + "#complement"
}

// graphFiles lists the .clq and .col files in dir, compressed ones included.
func graphFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, format := graphID(e.Name()); format == "clq" || format == "col" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func loadGraph(ctx context.Context, name string) (*graph.Graph, string, error) {
	location := graphLocation(name)
	logrus.Infof("Loading graph %s.", location)
	g, err := dimacs.Load(ctx, location)
	if err != nil {
		return nil, "", err
	}
	logrus.Infof("Loaded %s with density %.4f.", g, g.Density())
	return g, location, nil
}

type searchOpts struct {
	bounds    []string
	timeLimit time.Duration
	nodeLimit int64
	record    bool
	comment   string
}

func addSearchFlags(cmd *cobra.Command, o *searchOpts) {
	addLimitFlags(cmd, o)
	addRecordFlags(cmd, o)
}

func addLimitFlags(cmd *cobra.Command, o *searchOpts) {
	cmd.Flags().StringSliceVarP(&o.bounds, "bounds", "b", nil, "lower bounds to prune with: degree, clique, clique-cover or none (default from config, else degree,clique)")
	cmd.Flags().DurationVarP(&o.timeLimit, "time-limit", "t", 0, "stop the search after this long and report the best cover found")
	cmd.Flags().Int64Var(&o.nodeLimit, "node-limit", 0, "stop the search after this many search nodes")
}

func addRecordFlags(cmd *cobra.Command, o *searchOpts) {
	cmd.Flags().BoolVar(&o.record, "record", false, "append the run to the store")
	cmd.Flags().StringVar(&o.comment, "comment", "", "comment stored with a recorded run")
}

// options layers the command line over the config file.
func (o *searchOpts) options(cmd *cobra.Command) (mvc.Options, error) {
	c := *cfg
	if cmd.Flags().Changed("bounds") {
		c.Bounds = o.bounds
	}
	if cmd.Flags().Changed("time-limit") {
		c.TimeLimit = o.timeLimit.String()
	}
	if cmd.Flags().Changed("node-limit") {
		c.NodeLimit = o.nodeLimit
	}
	opts, err := config.Options(&c)
	if err != nil {
		return opts, err
	}
	opts.Instrumentation = mvc.NewClock()
	return opts, nil
}

func (o *searchOpts) recording() bool {
	return o.record || cfg.Record
}

// recordRun appends a run to the store entry id, adding g under that id
// first if needed.
func recordRun(id, format string, g *graph.Graph, algorithm string, value int, elapsed time.Duration, limited bool, comment string) error {
	p, err := storePath()
	if err != nil {
		return err
	}
	s, err := store.LoadOrNew(p)
	if err != nil {
		return err
	}
	if s.Add(id, format, g) {
		logrus.Infof("Added %s to the store.", id)
	}
	err = s.RecordRun(id, vertex.Run{
		Date:      time.Now(),
		Value:     value,
		Elapsed:   elapsed.String(),
		TimeLimit: limited,
		Algorithm: algorithm,
		Comment:   comment,
	})
	if err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	logrus.Infof("Recorded run in %s.", p)
	return nil
}

// annotate compares value with the store entry id. Problems with the store
// never fail the command.
func annotate(id string, value int) store.Annotation {
	p, err := storePath()
	if err != nil {
		return store.Annotation{Verdict: store.Unavailable, Err: err}
	}
	return store.AnnotateFile(p, id, value)
}

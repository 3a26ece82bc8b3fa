package main

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/mvc"
	"github.com/vertexlab/vertex/pkg/store"
)

type updateStoreOpts struct {
	searchOpts
	solve bool
	value int
	dir   string
}

var updatestoreopts = updateStoreOpts{}

func NewUpdateStoreCmd() *cobra.Command {
	updateStoreCmd := &cobra.Command{
		Use:   "update-store [graph]...",
		Short: "adds graphs and their minimum vertex cover sizes to the store",
		Long: `Adds graphs to the store of known optimal values. Without arguments, all .clq
and .col graphs in --dir, or else in the configured graph directory, are added.
With --solve the minimum cover size is computed and stored, with --value it is
set directly. Graphs that fail are reported together after all others were
processed`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if updatestoreopts.solve && updatestoreopts.value >= 0 {
				return fmt.Errorf("--solve and --value are mutually exclusive")
			}
			names, err := storeCandidates(args)
			if err != nil {
				return err
			}
			if updatestoreopts.value >= 0 && len(names) != 1 {
				return fmt.Errorf("--value needs exactly one graph")
			}
			opts, err := updatestoreopts.options(cmd)
			if err != nil {
				return err
			}
			p, err := storePath()
			if err != nil {
				return err
			}
			s, err := store.LoadOrNew(p)
			if err != nil {
				return err
			}

			var result *multierror.Error
			for _, name := range names {
				if err := updateGraph(cmd, s, name, opts); err != nil {
					logrus.Warnf("Skipping %s: %v", name, err)
					result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
				}
			}
			if err := s.Save(); err != nil {
				result = multierror.Append(result, err)
			}
			logrus.Infof("Store %s has %d graphs.", p, len(s.Graphs()))
			return result.ErrorOrNil()
		},
	}
	addLimitFlags(updateStoreCmd, &updatestoreopts.searchOpts)
	updateStoreCmd.Flags().BoolVar(&updatestoreopts.solve, "solve", false, "compute the minimum cover size with branch and bound")
	updateStoreCmd.Flags().IntVar(&updatestoreopts.value, "value", -1, "known minimum cover size of the graph")
	updateStoreCmd.Flags().StringVar(&updatestoreopts.dir, "dir", "", "add all graphs in this directory")
	return updateStoreCmd
}

// storeCandidates returns the graphs named on the command line followed by
// those found in the graph directory. The directory is scanned when --dir is
// set or no graph was named.
func storeCandidates(args []string) ([]string, error) {
	dir := updatestoreopts.dir
	if dir == "" && len(args) > 0 {
		return args, nil
	}
	if dir == "" {
		dir = cfg.GraphDir
	}
	if dir == "" {
		return nil, fmt.Errorf("no graphs given and no graph directory configured")
	}
	files, err := graphFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .clq or .col graphs in %s", dir)
	}
	logrus.Infof("Found %d graphs in %s.", len(files), dir)
	return append(args, files...), nil
}

func updateGraph(cmd *cobra.Command, s *store.Store, name string, opts mvc.Options) error {
	g, location, err := loadGraph(cmd.Context(), name)
	if err != nil {
		return err
	}
	id, format := graphID(location)
	if s.Add(id, format, g) {
		logrus.Infof("Added %s.", id)
	}
	switch {
	case updatestoreopts.value >= 0:
		if updatestoreopts.value > g.Order() {
			return fmt.Errorf("value %d exceeds the graph order %d", updatestoreopts.value, g.Order())
		}
		return s.SetValue(id, updatestoreopts.value, time.Now())
	case updatestoreopts.solve:
		res := mvc.Solve(cmd.Context(), g, opts)
		if !res.Exact {
			return fmt.Errorf("search stopped early (%s) with a cover of size %d", res.Stop, res.Size)
		}
		logrus.Infof("Minimum vertex cover of %s has size %d.", id, res.Size)
		return s.SetValue(id, res.Size, time.Now())
	}
	return nil
}

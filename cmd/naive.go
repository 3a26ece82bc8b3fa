package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/naive"
)

var naiveopts = searchOpts{}

func NewNaiveCmd() *cobra.Command {
	naiveCmd := &cobra.Command{
		Use:   "naive <graph>",
		Short: "finds a minimum vertex cover by trying all vertex subsets",
		Long:  `Enumerates vertex subsets by increasing size. Only usable on small graphs, mostly to cross-check the branch and bound search`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, location, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logrus.Info("Searching exhaustively.")
			start := time.Now()
			cover, err := naive.MinVertexCover(g)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			r := &report{
				graph:   location,
				what:    "vertex cover",
				size:    len(cover),
				members: cover,
				exact:   true,
				elapsed: elapsed,
			}
			id, format := graphID(location)
			a := annotate(id, len(cover))
			r.annotation = &a
			r.write(os.Stdout)
			if naiveopts.recording() {
				if err := recordRun(id, format, g, "naive", len(cover), elapsed, false, naiveopts.comment); err != nil {
					return err
				}
			}
			logrus.Info("Done.")
			return nil
		},
	}
	addRecordFlags(naiveCmd, &naiveopts)
	return naiveCmd
}

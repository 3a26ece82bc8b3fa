package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/mvc"
)

var cliqueopts = searchOpts{}

func NewCliqueCmd() *cobra.Command {
	cliqueCmd := &cobra.Command{
		Use:   "clique <graph>",
		Short: "finds a maximum clique",
		Long:  `Finds a maximum clique as the vertices outside a minimum vertex cover of the complement graph`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cliqueopts.options(cmd)
			if err != nil {
				return err
			}
			g, location, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logrus.Infof("Solving the complement with bounds %s.", opts.Bounds)
			res := mvc.MaxClique(cmd.Context(), g, opts)
			if !res.Exact() {
				logrus.Warnf("Search stopped early (%s), the clique may not be maximum.", res.Cover.Stop)
			}
			newSearchReport(location, "clique", res.Cover, res.Clique).write(os.Stdout)
			if cliqueopts.recording() {
				// the run is kept with the complement cover it came from
				id, format := graphID(location)
				if err := recordRun(complementID(id), format, g.Complement(), "clique", res.Cover.Size, res.Cover.Elapsed, !res.Exact(), cliqueopts.comment); err != nil {
					return err
				}
			}
			logrus.Info("Done.")
			return nil
		},
	}
	addSearchFlags(cliqueCmd, &cliqueopts)
	return cliqueCmd
}

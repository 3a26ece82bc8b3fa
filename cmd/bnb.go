package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/mvc"
)

type bnbOpts struct {
	searchOpts
	complement bool
}

var bnbopts = bnbOpts{}

func NewBnbCmd() *cobra.Command {
	bnbCmd := &cobra.Command{
		Use:   "bnb <graph>",
		Short: "finds a minimum vertex cover with branch and bound",
		Long: `Finds a minimum vertex cover with branch and bound. When interrupted or out of
budget, the best cover found so far is reported and marked as not proven optimal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := bnbopts.options(cmd)
			if err != nil {
				return err
			}
			g, location, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var res *mvc.Result
			id, format := graphID(location)
			what, algorithm := "vertex cover", "bnb"
			if bnbopts.complement {
				logrus.Infof("Solving the complement with bounds %s.", opts.Bounds)
				res = mvc.SolveComplement(cmd.Context(), g, opts)
				g, id = g.Complement(), complementID(id)
				what, algorithm = "complement vertex cover", "bnb-complement"
			} else {
				logrus.Infof("Solving with bounds %s.", opts.Bounds)
				res = mvc.Solve(cmd.Context(), g, opts)
			}
			if !res.Exact {
				logrus.Warnf("Search stopped early (%s), the cover may not be minimum.", res.Stop)
			}

			r := newSearchReport(location, what, res, res.Cover)
			a := annotate(id, res.Size)
			r.annotation = &a
			r.write(os.Stdout)
			if bnbopts.recording() {
				if err := recordRun(id, format, g, algorithm, res.Size, res.Elapsed, !res.Exact, bnbopts.comment); err != nil {
					return err
				}
			}
			logrus.Info("Done.")
			return nil
		},
	}
	addSearchFlags(bnbCmd, &bnbopts.searchOpts)
	bnbCmd.Flags().BoolVarP(&bnbopts.complement, "complement", "c", false, "solve the complement graph instead")
	return bnbCmd
}

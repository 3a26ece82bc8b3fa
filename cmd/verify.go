package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/certify"
	"github.com/vertexlab/vertex/pkg/mvc"
)

type verifyOpts struct {
	searchOpts
	size int
}

var verifyopts = verifyOpts{}

func NewVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify <graph>",
		Short: "certifies a minimum vertex cover size with a SAT solver",
		Long: `Certifies that a cover of the given size exists and that no smaller one does.
Without --size the size found by branch and bound is certified`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, location, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			size := verifyopts.size
			if size < 0 {
				opts, err := verifyopts.options(cmd)
				if err != nil {
					return err
				}
				logrus.Info("Solving with branch and bound.")
				res := mvc.Solve(cmd.Context(), g, opts)
				if !res.Exact {
					return fmt.Errorf("search stopped early (%s), nothing to certify", res.Stop)
				}
				size = res.Size
			}
			logrus.Infof("Certifying cover size %d.", size)
			optimal, err := certify.Optimal(g, size)
			if err != nil {
				return err
			}
			if !optimal {
				return fmt.Errorf("%s has a vertex cover smaller than %d", location, size)
			}
			fmt.Printf("%s: minimum vertex cover size %d certified\n", location, size)
			logrus.Info("Done.")
			return nil
		},
	}
	addLimitFlags(verifyCmd, &verifyopts.searchOpts)
	verifyCmd.Flags().IntVarP(&verifyopts.size, "size", "s", -1, "cover size to certify instead of searching for one")
	return verifyCmd
}

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/dimacs"
	"github.com/vertexlab/vertex/pkg/graph"
)

type genOpts struct {
	order   int
	density float64
	seed    uint64
	out     string
}

var genopts = genOpts{}

func NewGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "generates a random graph in DIMACS format",
		Long:  `Generates a G(n, p) random graph, each edge present independently with probability p`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if genopts.order < 1 {
				return fmt.Errorf("order must be positive, got %d", genopts.order)
			}
			if genopts.density < 0 || genopts.density > 1 {
				return fmt.Errorf("density must be within [0, 1], got %v", genopts.density)
			}
			r := rand.New(rand.NewPCG(genopts.seed, genopts.seed^0x9e3779b97f4a7c15))
			g := graph.Random(genopts.order, genopts.density, r)

			var w io.Writer = os.Stdout
			if genopts.out != "" {
				f, err := os.Create(genopts.out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", genopts.out, err)
				}
				defer f.Close()
				w = f
			}
			comment := fmt.Sprintf("G(%d, %v) seed %d", genopts.order, genopts.density, genopts.seed)
			if err := dimacs.Write(w, g, comment); err != nil {
				return err
			}
			logrus.Infof("Generated %s.", g)
			return nil
		},
	}
	genCmd.Flags().IntVarP(&genopts.order, "order", "n", 50, "number of vertices")
	genCmd.Flags().Float64VarP(&genopts.density, "density", "p", 0.5, "edge probability")
	genCmd.Flags().Uint64Var(&genopts.seed, "seed", 1, "random seed")
	genCmd.Flags().StringVarP(&genopts.out, "output", "o", "", "output file (default stdout)")
	return genCmd
}

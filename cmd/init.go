package main

import (
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/config"
)

type initOpts struct {
	out      string
	graphDir string
	store    string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a basic vertex.yaml file",
		Long:  `Create a config file with the default search bounds, which all search commands pick up`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&config.Init{
				File:     initopts.out,
				GraphDir: initopts.graphDir,
				Store:    initopts.store,
			}).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output", "o", config.DefaultFile, "where to write the config")
	initCmd.Flags().StringVar(&initopts.graphDir, "graph-dir", "", "directory to look up graphs given by name")
	initCmd.Flags().StringVar(&initopts.store, "store-file", "", "store of known optimal values")
	return initCmd
}

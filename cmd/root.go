package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vertexlab/vertex/pkg/config"
	"github.com/vertexlab/vertex/pkg/store"
)

type rootOpts struct {
	verbose bool
	config  string
	store   string
}

var rootopts = rootOpts{}

// cfg holds the defaults from the config file, if there is one.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "vertex",
	Short: "vertex computes exact minimum vertex covers and maximum cliques",
	Long: `The tool solves minimum vertex cover exactly with a branch and bound search
and derives maximum cliques from covers of the complement graph. Graphs are
read in DIMACS edge format.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootopts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		c, err := config.Load(rootopts.config)
		switch {
		case err == nil:
			logrus.Debugf("Using config %s", rootopts.config)
			cfg = c
		case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		default:
			return err
		}
		return nil
	},
}

func storePath() (string, error) {
	if rootopts.store != "" {
		return rootopts.store, nil
	}
	if cfg.Store != "" {
		return cfg.Store, nil
	}
	return store.DefaultPath()
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&rootopts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&rootopts.config, "config", config.DefaultFile, "solver defaults file")
	rootCmd.PersistentFlags().StringVar(&rootopts.store, "store", "", "known optimal values file (defaults to the XDG data home)")

	rootCmd.AddCommand(NewNaiveCmd())
	rootCmd.AddCommand(NewBnbCmd())
	rootCmd.AddCommand(NewCliqueCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewUpdateStoreCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewGenCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

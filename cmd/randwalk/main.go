// Command randwalk runs batches of confined 3D random walks described by a
// YAML scenario file.
//
//	randwalk init -c walk.yaml
//	randwalk describe -c walk.yaml
//	randwalk run -c walk.yaml --walks 500 --workers 8
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/randwalk/config"
)

// app carries state shared between the root command and its subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "randwalk",
		Short: "Confined 3D random walk simulator",
		Long: `randwalk launches random walkers from a start point inside an optional
boundary shape and stops each one when it steps into the target shape or runs
out of steps. Shapes are spheres, axis-aligned boxes or ellipsoids; the target
may wander inside the boundary while the walk is in progress.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = cfg.Logging.BuildLogger(a.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "randwalk.yaml", "scenario file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCmd(a), newDescribeCmd(a), newInitCmd(a))

	return root
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/randwalk/batch"
	"github.com/katalvlaran/randwalk/config"
	"github.com/katalvlaran/randwalk/geom"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		walks   int
		seed    int64
		workers int
		paths   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of walks and print one line per walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("walks") {
				a.cfg.Walks = walks
			}
			if flags.Changed("seed") {
				a.cfg.Seed = seed
			}
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}
			if flags.Changed("paths") {
				a.cfg.RecordPaths = paths
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			sc, err := a.cfg.Scenario()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, sc.Describe())

			runner := batch.NewRunner(append(a.cfg.RunnerOptions(), batch.WithLogger(a.logger))...)
			res, err := runner.Run(ctx, sc, a.cfg.Walks)
			if err != nil {
				return err
			}
			a.logger.Info("results ready", zap.String("run_id", res.RunID.String()), zap.Int("walks", len(res.Outcomes)))
			printOutcomes(out, res, sc.Target != nil)

			return nil
		},
	}
	cmd.Flags().IntVar(&walks, "walks", 0, "number of walks (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "batch seed (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent walks, 0 = GOMAXPROCS (overrides config)")
	cmd.Flags().BoolVar(&paths, "paths", false, "print every accepted position of every walk")

	return cmd
}

func printOutcomes(w io.Writer, res *batch.Result, targeted bool) {
	fmt.Fprintf(w, "Run %s (seed %d)\n", res.RunID, res.Seed)
	hits := 0
	for _, o := range res.Outcomes {
		fmt.Fprintf(w, "walk %d: hit=%v steps=%d attempts=%d final=%s",
			o.Index, o.TargetHit, o.Steps, o.Attempts, geom.FormatPoint(o.Final))
		if targeted {
			fmt.Fprintf(w, " target=%s", geom.FormatPoint(o.FinalTarget))
		}
		fmt.Fprintln(w)
		if len(o.Path) > 0 {
			pts := make([]string, len(o.Path))
			for i, p := range o.Path {
				pts[i] = geom.FormatPoint(p)
			}
			fmt.Fprintf(w, "  path: %s\n", strings.Join(pts, " "))
		}
		if o.TargetHit {
			hits++
		}
	}
	if targeted {
		fmt.Fprintf(w, "%d/%d walks hit the target\n", hits, len(res.Outcomes))
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Validate the scenario and print its characteristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			sc, err := a.cfg.Scenario()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sc.Describe())

			return nil
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(a.configPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			if err := config.DefaultConfig().Save(a.configPath); err != nil {
				return err
			}
			a.logger.Debug("scenario written", zap.String("path", a.configPath))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.configPath)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

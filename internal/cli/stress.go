package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/billie-coop/grove/internal/family"
	"github.com/billie-coop/grove/internal/metrics"
	"github.com/billie-coop/grove/internal/stress"
	"github.com/billie-coop/grove/tree"
)

func newStressCommand(a *app) *cobra.Command {
	var (
		workers int
		ops     int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Push and move nodes from many goroutines, then verify the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if !cmd.Flags().Changed("ops") {
				ops = a.cfg.Operations
			}

			collector := metrics.NewCollector()
			root, err := family.Build(tree.WithLogger(a.logger), tree.WithObserver(collector))
			if err != nil {
				return err
			}

			res, err := stress.Run(cmd.Context(), root, stress.Config{
				Workers:    workers,
				Operations: ops,
				Seed:       seed,
			}, collector, a.logger)
			if err != nil {
				return fmt.Errorf("stress run failed: %w", err)
			}

			samples, err := collector.Snapshot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d workers, %d operations in %s\n", workers, ops, res.Elapsed)
			fmt.Fprintf(out, "tree: %d nodes, %d leaves, depth %d, fan-out %d (valid)\n\n",
				res.Stats.Nodes, res.Stats.Leaves, res.Stats.MaxDepth, res.Stats.MaxFanout)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "METRIC\tLABELS\tVALUE")
			for _, s := range samples {
				fmt.Fprintf(tw, "%s\t%s\t%g\n", s.Name, s.Labels, s.Value)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of goroutines (default from config)")
	cmd.Flags().IntVarP(&ops, "ops", "n", 0, "total operations (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopsim/internal/config"
	"github.com/katalvlaran/hopsim/internal/logging"
	"github.com/katalvlaran/hopsim/netgraph"
	"github.com/katalvlaran/hopsim/simulation"
	"github.com/katalvlaran/hopsim/topology"
)

func addEstimateFlags(cmd *cobra.Command) {
	cmd.Flags().Int("trials", simulation.DefaultTrials, "Number of simulation steps")
	cmd.Flags().Int("workers", 0, "Concurrent workers (0 = GOMAXPROCS)")
	cmd.Flags().Int("chunk-size", simulation.DefaultChunkSize, "Trials per work chunk")
	cmd.Flags().Uint64("seed", 0, "Base seed for reproducible runs (default: random)")
	cmd.Flags().Bool("verify", false, "Cross-check the distance table against BFS before simulating")
	cmd.Flags().Bool("json", false, "Output the full result as JSON")
}

// estimateOutput is the --json payload.
type estimateOutput struct {
	Topology string `json:"topology"`
	Nodes    int    `json:"nodes"`
	simulation.Result
}

func runEstimate(cmd *cobra.Command, args []string) error {
	kind, n, err := parseTarget(args)
	if err != nil {
		return err
	}
	cfg, log, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	tbl, err := topology.Build(kind, n)
	if err != nil {
		return fmt.Errorf("building %s table: %w", kind, err)
	}
	log.Debug("table built", slog.String("topology", kind.String()), slog.Int("nodes", n))

	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		if err := verifyTable(tbl); err != nil {
			return err
		}
		log.Info("table verified against bfs", slog.String("topology", kind.String()), slog.Int("nodes", n))
	}

	opts := append(cfg.EstimatorOptions(), simulation.WithLogger(log))
	res := simulation.NewEstimator(opts...).Run(tbl)

	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return json.NewEncoder(out).Encode(estimateOutput{
			Topology: kind.String(),
			Nodes:    n,
			Result:   res,
		})
	}
	fmt.Fprintf(out, "Average hop count after %d simulation steps: %.3f hops\n", res.Trials, res.Mean)
	return nil
}

// resolveConfig layers explicitly set flags over config.Load, validates the
// result and builds the logger. Subcommands without the estimate flags get
// only --config and --log-level applied.
func resolveConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, usageErrorf("%w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Simulation.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("chunk-size") {
		cfg.Simulation.ChunkSize, _ = flags.GetInt("chunk-size")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Simulation.Seed = &seed
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, usageErrorf("invalid configuration: %w", err)
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

// verifyTable proves tbl against BFS on the reference graph of its kind.
func verifyTable(tbl *topology.DistanceTable) error {
	g, err := netgraph.New(tbl.Kind(), tbl.N())
	if err != nil {
		return fmt.Errorf("building reference graph: %w", err)
	}
	if err := netgraph.CheckTable(tbl, g); err != nil {
		return fmt.Errorf("verifying %s table: %w", tbl.Kind(), err)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopsim/topology"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOPOLOGY COUNT",
		Short: "Check the distance table against breadth-first search",
		Args:  exactTargetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, n, err := parseTarget(args)
			if err != nil {
				return err
			}
			_, log, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			tbl, err := topology.Build(kind, n)
			if err != nil {
				return fmt.Errorf("building %s table: %w", kind, err)
			}
			if err := verifyTable(tbl); err != nil {
				return err
			}
			log.Debug("table verified against bfs", slog.String("topology", kind.String()), slog.Int("nodes", n))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s with %d nodes matches bfs distances\n", kind, n)
			return nil
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopsim/topology"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table TOPOLOGY COUNT",
		Short: "Print the distance table, one row per node",
		Long: `Print the distance table used by the simulation. Row i lists the hop
distances from node i to every other node; column order carries no meaning.`,
		Args: exactTargetArgs,
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
			log.Debug("table built", slog.String("topology", kind.String()), slog.Int("nodes", n))

			w := bufio.NewWriter(cmd.OutOrStdout())
			buf := make([]byte, 0, 8*tbl.RowLen())
			for i := 0; i < tbl.N(); i++ {
				buf = buf[:0]
				for j := 0; j < tbl.RowLen(); j++ {
					if j > 0 {
						buf = append(buf, ' ')
					}
					buf = strconv.AppendInt(buf, int64(tbl.At(i, j)), 10)
				}
				buf = append(buf, '\n')
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

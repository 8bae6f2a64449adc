// SPDX-License-Identifier: MIT

// Command hopsim estimates the average message hop count of a network
// topology by Monte Carlo simulation.
//
//	hopsim star 5
//	Average hop count after 1000000 simulation steps: 1.800 hops
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with the given arguments and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return exitUsage
	}
	return exitFailure
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopsim TOPOLOGY COUNT",
		Short: "Estimate the average hop count of a network topology",
		Long: `hopsim estimates, by repeated random trials, the average number of hops a
message travels when every node of a topology sends one message to a
uniformly random other node.

TOPOLOGY is one of ring, oneway_ring, star, line (case-insensitive).
COUNT is the number of nodes and must be greater than 1.`,
		Args:          exactTargetArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runEstimate,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace")

	addEstimateFlags(rootCmd)

	rootCmd.AddCommand(
		newTableCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hopsim version %s\n", version)
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopsim/topology"
)

// usageError marks failures caused by bad input rather than by the run.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exactTargetArgs requires the TOPOLOGY and COUNT positionals.
func exactTargetArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return usageErrorf("expected TOPOLOGY and COUNT, got %d argument(s)", len(args))
	}
	return nil
}

// parseTarget validates the positionals before any table is built.
func parseTarget(args []string) (topology.Kind, int, error) {
	kind, err := topology.ParseKind(args[0])
	if err != nil {
		return 0, 0, &usageError{err: err}
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, 0, usageErrorf("COUNT must be an integer, got %q: %w", args[1], err)
	}
	if n < topology.MinNodes {
		return 0, 0, usageErrorf("COUNT must be greater than 1, got %d: %w", n, topology.ErrInvalidNodeCount)
	}
	if n > topology.MaxNodes {
		return 0, 0, usageErrorf("COUNT must be at most %d, got %d: %w", topology.MaxNodes, n, topology.ErrTooManyNodes)
	}
	return kind, n, nil
}

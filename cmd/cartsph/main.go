// SPDX-License-Identifier: MIT

// Command cartsph prints Cartesian→spherical transformation matrices for
// inspection. It is a thin presentation layer over the cart2sph package:
// one block per shell, m column headers, Cartesian verb row labels.
//
// Usage:
//
//	cartsph [l_max] [--not-normalized] [--zero-small] [--zero-thresh 1e-14] [--parallel]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cartsph/cart2sph"
	"github.com/katalvlaran/cartsph/momentum"
)

const defaultLMax = 3

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cartsph: logger init:", err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("cartsph failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// newRootCmd wires flags and the run function; kept separate from main so
// tests can execute the command against a buffer.
func newRootCmd() *cobra.Command {
	var (
		notNormalized bool
		zeroSmall     bool
		zeroThresh    float64
		parallel      bool
	)

	cmd := &cobra.Command{
		Use:           "cartsph [l_max]",
		Short:         "Print Cartesian→real-spherical Gaussian transformation matrices",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lMax := defaultLMax
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("l_max %q is not an integer: %w", args[0], err)
				}
				lMax = parsed
			}

			var opts []cart2sph.Option
			if notNormalized {
				opts = append(opts, cart2sph.WithUnnormalized())
			}
			if zeroSmall {
				opts = append(opts, cart2sph.WithZeroSmall(), cart2sph.WithZeroThreshold(zeroThresh))
			}
			if parallel {
				opts = append(opts, cart2sph.WithParallel())
			}

			family, err := cart2sph.Coeffs(lMax, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for l := 0; l <= lMax; l++ {
				if err := printShell(out, l, family[l]); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&notNormalized, "not-normalized", false,
		"use the unnormalized-Gaussian coefficient convention")
	cmd.Flags().BoolVar(&zeroSmall, "zero-small", false,
		"zero entries at or below --zero-thresh")
	cmd.Flags().Float64Var(&zeroThresh, "zero-thresh", cart2sph.DefaultZeroThreshold,
		"sparsification threshold used with --zero-small")
	cmd.Flags().BoolVar(&parallel, "parallel", false,
		"build the per-l matrices concurrently")

	return cmd
}

// printShell writes one l block: an m header line, then one line per
// Cartesian component in canonical order.
func printShell(w io.Writer, l int, C *mat.Dense) error {
	if _, err := fmt.Fprintf(w, "l=%d\n", l); err != nil {
		return err
	}

	for m := -l; m <= l; m++ {
		if _, err := fmt.Fprintf(w, "%13d", m); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	triples, err := momentum.CanonicalOrder(l)
	if err != nil {
		return err
	}

	rows, _ := C.Dims()
	for col, tr := range triples {
		if _, err := fmt.Fprintf(w, "%s: ", tr); err != nil {
			return err
		}
		for row := 0; row < rows; row++ {
			if _, err := fmt.Fprintf(w, "%12.4f", C.At(row, col)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)

	return err
}

// SPDX-License-Identifier: MIT

// Package cart2sph: normalization constants for spherical and Cartesian
// Gaussians, Eqs. (8) and (9) of Schlegel & Frisch (1995), without the
// orbital exponent. The exponent cancels in the ratio actually consumed by
// the transform, so it is never modeled here.

package cart2sph

import (
	"fmt"
	"math"
)

// fact returns n! as float64 via the Gamma function. Exact for every n that
// fits a float64 factorial (n <= 22), far beyond any practical shell.
func fact(n int) float64 {
	return math.Gamma(float64(n) + 1)
}

// binom returns the binomial coefficient C(n,k) with the standard
// out-of-range convention: 0 for k < 0, k > n or n < 0.
func binom(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}

	return fact(n) / (fact(k) * fact(n-k))
}

// SphNorm returns the normalization constant of a spherical-harmonic
// Gaussian of total degree n (orbital-exponent-independent part):
//
//	1 / sqrt( (2n+2)! · √π / (2^(2n+3) · (n+1)!) )
//
// The radicand is positive for every valid n, so the principal non-negative
// real root is taken. Returns ErrNegativeMomentum for n < 0.
func SphNorm(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("SphNorm(%d): %w", n, ErrNegativeMomentum)
	}

	return 1 / math.Sqrt(fact(2*n+2)*math.Sqrt(math.Pi)/(math.Exp2(float64(2*n+3))*fact(n+1))), nil
}

// CartNorm returns the normalization constant of a Cartesian Gaussian with
// exponents (lx, ly, lz), l = lx+ly+lz (orbital-exponent-independent part):
//
//	1 / sqrt( (2lx)!(2ly)!(2lz)! · π^(3/2) / (2^(2l) · lx!·ly!·lz!) )
//
// Returns ErrNegativeMomentum if any exponent is negative.
func CartNorm(lx, ly, lz int) (float64, error) {
	if lx < 0 || ly < 0 || lz < 0 {
		return 0, fmt.Errorf("CartNorm(%d,%d,%d): %w", lx, ly, lz, ErrNegativeMomentum)
	}

	l := lx + ly + lz
	rad := fact(2*lx) * fact(2*ly) * fact(2*lz) * math.Pow(math.Pi, 1.5) /
		(math.Exp2(float64(2*l)) * fact(lx) * fact(ly) * fact(lz))

	return 1 / math.Sqrt(rad), nil
}

// NormRatio returns SphNorm(lx+ly+lz) / CartNorm(lx,ly,lz) — the factor
// converting between the normalized and unnormalized coefficient
// conventions. Returns ErrNegativeMomentum if any exponent is negative.
func NormRatio(lx, ly, lz int) (float64, error) {
	sph, err := SphNorm(lx + ly + lz)
	if err != nil {
		return 0, fmt.Errorf("NormRatio(%d,%d,%d): %w", lx, ly, lz, ErrNegativeMomentum)
	}

	cart, err := CartNorm(lx, ly, lz)
	if err != nil {
		return 0, fmt.Errorf("NormRatio(%d,%d,%d): %w", lx, ly, lz, ErrNegativeMomentum)
	}

	return sph / cart, nil
}

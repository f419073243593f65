// SPDX-License-Identifier: MIT

// Package cart2sph: functional configuration for the transform builders.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package cart2sph

import (
	"math"

	"github.com/katalvlaran/cartsph/momentum"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroThreshold is the magnitude at or below which entries are
	// zeroed when sparsification is enabled (WithZeroSmall).
	DefaultZeroThreshold = 1e-14

	// DefaultImagTolerance bounds the imaginary residue tolerated when the
	// real combination is asserted; anything above it is ErrComplexResidue.
	DefaultImagTolerance = 1e-10

	// DefaultNormalized: coefficients refer to normalized Gaussians unless
	// WithUnnormalized is applied.
	DefaultNormalized = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderingNil      = "cart2sph: WithOrdering: ordering must be non-nil"
	panicThresholdBad     = "cart2sph: WithZeroThreshold: threshold must be finite, non-negative"
	panicImagToleranceBad = "cart2sph: WithImagTolerance: tolerance must be finite, positive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the resolved configuration for the transform builders.
// Fields are unexported; construct via the WithX helpers.
type Options struct {
	normalized    bool
	ordering      momentum.Ordering
	zeroSmall     bool
	zeroThreshold float64
	imagTolerance float64
	parallel      bool
}

// defaultOptions mirrors the Default* constants above.
func defaultOptions() Options {
	return Options{
		normalized:    DefaultNormalized,
		ordering:      momentum.CanonicalOrder,
		zeroSmall:     false,
		zeroThreshold: DefaultZeroThreshold,
		imagTolerance: DefaultImagTolerance,
		parallel:      false,
	}
}

// WithUnnormalized switches coefficients to the unnormalized-Gaussian
// convention: every coefficient is divided by NormRatio(lx,ly,lz).
func WithUnnormalized() Option {
	return func(o *Options) { o.normalized = false }
}

// WithOrdering injects the Cartesian enumeration convention used for matrix
// columns. Panics if ord is nil (programmer error).
func WithOrdering(ord momentum.Ordering) Option {
	if ord == nil {
		panic(panicOrderingNil)
	}

	return func(o *Options) { o.ordering = ord }
}

// WithZeroSmall enables in-place sparsification of the assembled matrices:
// entries with |v| <= threshold become exactly 0. Idempotent by construction.
func WithZeroSmall() Option {
	return func(o *Options) { o.zeroSmall = true }
}

// WithZeroThreshold sets the sparsification threshold consulted by
// WithZeroSmall. Panics on NaN, ±Inf or negative values (programmer error).
// Setting a threshold does not by itself enable sparsification.
func WithZeroThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdBad)
	}

	return func(o *Options) { o.zeroThreshold = t }
}

// WithImagTolerance overrides the imaginary-residue tolerance used by the
// realness assertion in CoeffsForL. Panics on NaN, ±Inf or non-positive
// values (programmer error).
func WithImagTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicImagToleranceBad)
	}

	return func(o *Options) { o.imagTolerance = tol }
}

// WithParallel builds the per-l matrices of a family concurrently. Safe
// because builds for distinct l share no writable memory; output is
// identical to the sequential path.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

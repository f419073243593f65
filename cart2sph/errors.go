// SPDX-License-Identifier: MIT
// Package cart2sph: sentinel error set.
// This file defines ONLY package-level sentinel errors. All public functions
// MUST return these sentinels and tests MUST check them via errors.Is. No
// function panics on caller-triggered conditions; panics are reserved for
// programmer errors in option constructors (see options.go).

package cart2sph

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cart2sph: ..." for consistency and easy
// grepping. Call sites wrap with fmt.Errorf("ctx: %w", ErrX) where context
// (the offending quadruple, the l value) is essential; errors.Is still
// matches through the wrap.

var (
	// ErrNegativeMomentum indicates a negative Cartesian exponent or total
	// angular momentum where non-negative integers are required. Contract
	// violation: fail fast, no silent coercion.
	ErrNegativeMomentum = errors.New("cart2sph: negative angular momentum or exponent")

	// ErrMagneticRange indicates |m| > l for the given exponent triple.
	// Contract violation, not a selection-rule zero.
	ErrMagneticRange = errors.New("cart2sph: magnetic quantum number outside [-l, l]")

	// ErrComplexResidue indicates that after the real combination across
	// ±m pairs the matrix still carried imaginary parts above tolerance.
	// This is a formula/arithmetic bug surfaced as a hard failure — the
	// imaginary parts are never silently truncated.
	ErrComplexResidue = errors.New("cart2sph: real combination left a complex residue")

	// ErrBadOrdering indicates that the injected momentum.Ordering returned
	// a sequence inconsistent with l (wrong length or wrong triple total).
	ErrBadOrdering = errors.New("cart2sph: ordering provider returned an invalid sequence")
)

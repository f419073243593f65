// SPDX-License-Identifier: MIT
// Package basis: sentinel error set. All public functions return these
// sentinels (possibly wrapped with context) and tests check them via
// errors.Is.

package basis

import "errors"

var (
	// ErrUnknownElement indicates an element symbol that is not in the
	// periodic table (typo, placeholder, dummy atom).
	ErrUnknownElement = errors.New("basis: unknown element symbol")

	// ErrElementMissing indicates that the parsed set carries no shells for
	// a requested atomic number.
	ErrElementMissing = errors.New("basis: element not present in basis set")

	// ErrSPShell indicates a combined shell (angular_momentum with more
	// than one entry, e.g. SP). Split such shells upstream.
	ErrSPShell = errors.New("basis: combined multi-momentum shells are not supported")

	// ErrBadNumber indicates a string-encoded exponent or coefficient that
	// does not parse as a float.
	ErrBadNumber = errors.New("basis: malformed numeric literal")

	// ErrShellShape indicates a contraction whose coefficient count does
	// not match its exponent count.
	ErrShellShape = errors.New("basis: coefficient/exponent length mismatch")

	// ErrCoordsShape indicates coordinates whose length is not 3 × the
	// number of atoms.
	ErrCoordsShape = errors.New("basis: coordinates are not a flat 3N slice")

	// ErrNegativeShellL indicates a shell with negative angular momentum in
	// the input data.
	ErrNegativeShellL = errors.New("basis: negative shell angular momentum")
)

// SPDX-License-Identifier: MIT

// Package momentum: exponent triples, component counts and canonical order.
//
// Everything here is pure: no globals, no allocation beyond the returned
// slices, fixed loop orders for deterministic output.

package momentum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeL indicates that a negative total angular momentum was supplied
// where l >= 0 is required. Matched via errors.Is.
var ErrNegativeL = errors.New("momentum: negative angular momentum")

// Triple is one Cartesian exponent triple (Lx, Ly, Lz) identifying a single
// Cartesian Gaussian component x^Lx · y^Ly · z^Lz · exp(-αr²).
// All exponents are non-negative; the total angular momentum is Lx+Ly+Lz.
type Triple struct {
	Lx, Ly, Lz int
}

// L returns the total angular momentum Lx+Ly+Lz of the triple.
func (t Triple) L() int { return t.Lx + t.Ly + t.Lz }

// String renders the triple in "verb" form: one letter per exponent unit,
// e.g. (2,0,1) → "xxz". The s-component (0,0,0) renders as "s".
func (t Triple) String() string {
	if t.Lx == 0 && t.Ly == 0 && t.Lz == 0 {
		return "s"
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("x", t.Lx))
	b.WriteString(strings.Repeat("y", t.Ly))
	b.WriteString(strings.Repeat("z", t.Lz))

	return b.String()
}

// CartCount returns the number of Cartesian components of a shell with total
// angular momentum l: (l+1)(l+2)/2. Returns ErrNegativeL for l < 0.
// Complexity: O(1).
func CartCount(l int) (int, error) {
	if l < 0 {
		return 0, fmt.Errorf("CartCount(%d): %w", l, ErrNegativeL)
	}

	return (l + 1) * (l + 2) / 2, nil
}

// SphCount returns the number of real spherical components of a shell with
// total angular momentum l: 2l+1. Returns ErrNegativeL for l < 0.
// Complexity: O(1).
func SphCount(l int) (int, error) {
	if l < 0 {
		return 0, fmt.Errorf("SphCount(%d): %w", l, ErrNegativeL)
	}

	return 2*l + 1, nil
}

// Ordering enumerates the Cartesian exponent triples of a shell with total
// angular momentum l, in the convention the caller wants transform columns
// laid out in. Implementations must be pure: same l, same sequence, every
// time. The returned slice has exactly (l+1)(l+2)/2 entries, each with
// Lx+Ly+Lz == l.
type Ordering func(l int) ([]Triple, error)

// CanonicalOrder is the default Ordering: lexicographic by decreasing Lx,
// then decreasing Ly (so Lz grows last). For l = 1 this gives x, y, z; for
// l = 2: x², xy, xz, y², yz, z².
//
// This matches the ordering conventionally used with the Schlegel–Frisch
// transform tables and is the order the cart2sph package documents its
// matrix columns in.
//
// Complexity: O(l²) time and space (the size of the result).
func CanonicalOrder(l int) ([]Triple, error) {
	n, err := CartCount(l)
	if err != nil {
		return nil, fmt.Errorf("CanonicalOrder(%d): %w", l, ErrNegativeL)
	}

	out := make([]Triple, 0, n)
	for lx := l; lx >= 0; lx-- {
		for ly := l - lx; ly >= 0; ly-- {
			out = append(out, Triple{Lx: lx, Ly: ly, Lz: l - lx - ly})
		}
	}

	return out, nil
}

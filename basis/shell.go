// SPDX-License-Identifier: MIT

// Package basis: contracted shells on atom centers.
//
// A Shell is one contraction from a Set placed at a concrete center; Shells
// is the ordered list for a whole molecule. Order is deterministic: atoms
// in input order, shells per atom in set order — integral consumers index
// blocks by this order, so it must never depend on map iteration.

package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cartsph/cart2sph"
	"github.com/katalvlaran/cartsph/momentum"
)

// Shell is one contracted Gaussian shell placed on an atom center.
type Shell struct {
	// L is the total angular momentum of the shell (0=s, 1=p, 2=d, ...).
	L int
	// Center is the Cartesian position of the shell origin, in the units
	// the coordinates were supplied in.
	Center [3]float64
	// CenterIndex is the index of the owning atom in the input atom list.
	CenterIndex int
	// AtomicNum is the atomic number of the owning atom.
	AtomicNum int
	// Exponents and Coefficients describe the contraction; equal lengths,
	// one coefficient per primitive.
	Exponents    []float64
	Coefficients []float64
}

// CartSize returns the number of Cartesian components of the shell.
func (s Shell) CartSize() int {
	n, _ := momentum.CartCount(s.L) // L validated non-negative at construction
	return n
}

// SphSize returns the number of real spherical components of the shell.
func (s Shell) SphSize() int {
	n, _ := momentum.SphCount(s.L) // L validated non-negative at construction
	return n
}

// Shells is the ordered shell list of a molecule.
type Shells []Shell

// CartSize returns the total Cartesian basis dimension.
func (s Shells) CartSize() int {
	total := 0
	for _, sh := range s {
		total += sh.CartSize()
	}

	return total
}

// SphSize returns the total spherical basis dimension.
func (s Shells) SphSize() int {
	total := 0
	for _, sh := range s {
		total += sh.SphSize()
	}

	return total
}

// MaxL returns the highest angular momentum present, or -1 for an empty
// list.
func (s Shells) MaxL() int {
	maxL := -1
	for _, sh := range s {
		if sh.L > maxL {
			maxL = sh.L
		}
	}

	return maxL
}

// SphTransforms returns the cart2sph matrix family covering every angular
// momentum these shells use (l = 0..MaxL). Options forward to
// cart2sph.Coeffs unchanged. Empty shell lists get an empty family.
func (s Shells) SphTransforms(opts ...cart2sph.Option) (map[int]*mat.Dense, error) {
	if len(s) == 0 {
		return map[int]*mat.Dense{}, nil
	}

	family, err := cart2sph.Coeffs(s.MaxL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("basis: SphTransforms: %w", err)
	}

	return family, nil
}

// ShellsWithBasis assembles the shell list for a molecule: atoms are element
// symbols, coords a flat 3N slice in atom order, set a parsed basis set.
//
// Errors: ErrCoordsShape on a length mismatch, ErrUnknownElement for bad
// symbols, ErrElementMissing when the set lacks an element.
func ShellsWithBasis(atoms []string, coords []float64, set Set) (Shells, error) {
	if len(coords) != 3*len(atoms) {
		return nil, fmt.Errorf("basis: ShellsWithBasis: %d coords for %d atoms: %w",
			len(coords), len(atoms), ErrCoordsShape)
	}

	shells := make(Shells, 0, len(atoms))
	for i, atom := range atoms {
		z, err := AtomicNumber(atom)
		if err != nil {
			return nil, fmt.Errorf("basis: ShellsWithBasis: atom %d: %w", i, err)
		}

		defs, err := set.Shells(z)
		if err != nil {
			return nil, fmt.Errorf("basis: ShellsWithBasis: atom %d (%s): %w", i, atom, err)
		}

		center := [3]float64{coords[3*i], coords[3*i+1], coords[3*i+2]}
		for _, def := range defs {
			shells = append(shells, Shell{
				L:            def.L,
				Center:       center,
				CenterIndex:  i,
				AtomicNum:    z,
				Exponents:    def.Exponents,
				Coefficients: def.Coefficients,
			})
		}
	}

	return shells, nil
}

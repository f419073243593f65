// SPDX-License-Identifier: MIT

// Package basis: element bookkeeping. Symbols follow IUPAC; lookup is
// case-insensitive so "h", "H" and "he"/"He" all resolve.

package basis

import (
	"fmt"
	"strings"
)

// symbols lists the periodic table in atomic-number order; index+1 == Z.
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// atomicNumbers maps lower-cased symbol → Z, built once at init.
var atomicNumbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[strings.ToLower(s)] = i + 1
	}

	return m
}()

// AtomicNumber resolves an element symbol (case-insensitive) to its atomic
// number. Returns ErrUnknownElement for anything not in the periodic table.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNumbers[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return 0, fmt.Errorf("AtomicNumber(%q): %w", symbol, ErrUnknownElement)
	}

	return z, nil
}

// Symbol returns the IUPAC symbol for atomic number z, or ErrUnknownElement
// if z is outside 1..118.
func Symbol(z int) (string, error) {
	if z < 1 || z > len(symbols) {
		return "", fmt.Errorf("Symbol(%d): %w", z, ErrUnknownElement)
	}

	return symbols[z-1], nil
}

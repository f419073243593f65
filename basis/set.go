// SPDX-License-Identifier: MIT

// Package basis: Basis Set Exchange JSON parsing.
//
// The on-disk format keys elements by stringified atomic number and encodes
// every exponent and contraction coefficient as a string (to preserve the
// published significant digits). A generally-contracted shell carries one
// exponent list and several coefficient rows; parsing flattens it into one
// ShellDef per row, which is the shape downstream shell assembly wants.

package basis

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ShellDef is one primitive-contraction definition from a basis set: a
// single angular momentum, shared exponents, one coefficient per exponent.
type ShellDef struct {
	L            int
	Exponents    []float64
	Coefficients []float64
}

// Set maps atomic number → shell definitions, in file order.
type Set map[int][]ShellDef

// Shells returns the definitions for atomic number z, or ErrElementMissing.
func (s Set) Shells(z int) ([]ShellDef, error) {
	defs, ok := s[z]
	if !ok {
		return nil, fmt.Errorf("Set.Shells(%d): %w", z, ErrElementMissing)
	}

	return defs, nil
}

// wire types mirroring the JSON layout; internal only.
type setFile struct {
	Elements map[string]setElement `json:"elements"`
}

type setElement struct {
	ElectronShells []electronShell `json:"electron_shells"`
}

type electronShell struct {
	AngularMomentum []int      `json:"angular_momentum"`
	Exponents       []string   `json:"exponents"`
	Coefficients    [][]string `json:"coefficients"`
}

// ParseSet decodes Basis Set Exchange JSON into a Set.
//
// Errors: ErrSPShell for combined-momentum shells, ErrNegativeShellL for a
// negative L, ErrBadNumber for unparsable literals, ErrShellShape for
// coefficient rows whose length differs from the exponent list, plus plain
// JSON syntax errors from encoding/json.
func ParseSet(data []byte) (Set, error) {
	var file setFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("basis: ParseSet: %w", err)
	}

	set := make(Set, len(file.Elements))
	for key, elem := range file.Elements {
		z, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("basis: ParseSet: element key %q: %w", key, ErrBadNumber)
		}

		defs := make([]ShellDef, 0, len(elem.ElectronShells))
		for _, sh := range elem.ElectronShells {
			flat, err := flattenShell(z, sh)
			if err != nil {
				return nil, err
			}
			defs = append(defs, flat...)
		}
		set[z] = defs
	}

	return set, nil
}

// LoadSet reads and parses a basis-set JSON file.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("basis: LoadSet(%s): %w", path, err)
	}

	return ParseSet(data)
}

// flattenShell expands one electron_shell entry into per-contraction
// ShellDefs, validating momentum and shapes.
func flattenShell(z int, sh electronShell) ([]ShellDef, error) {
	if len(sh.AngularMomentum) != 1 {
		return nil, fmt.Errorf("basis: element %d shell momenta %v: %w", z, sh.AngularMomentum, ErrSPShell)
	}

	l := sh.AngularMomentum[0]
	if l < 0 {
		return nil, fmt.Errorf("basis: element %d shell L=%d: %w", z, l, ErrNegativeShellL)
	}

	exps, err := parseFloats(sh.Exponents)
	if err != nil {
		return nil, fmt.Errorf("basis: element %d exponents: %w", z, err)
	}

	defs := make([]ShellDef, 0, len(sh.Coefficients))
	for _, row := range sh.Coefficients {
		if len(row) != len(exps) {
			return nil, fmt.Errorf("basis: element %d has %d coefficients for %d exponents: %w",
				z, len(row), len(exps), ErrShellShape)
		}

		coeffs, err := parseFloats(row)
		if err != nil {
			return nil, fmt.Errorf("basis: element %d coefficients: %w", z, err)
		}

		defs = append(defs, ShellDef{L: l, Exponents: exps, Coefficients: coeffs})
	}

	return defs, nil
}

// parseFloats converts the string-encoded numeric lists of the format.
func parseFloats(in []string) ([]float64, error) {
	out := make([]float64, len(in))
	for i, s := range in {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrBadNumber)
		}
		out[i] = v
	}

	return out, nil
}

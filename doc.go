// Package cartsph builds the transformation matrices between Cartesian
// Gaussian basis functions and real solid (spherical) harmonic Gaussians,
// as used to assemble quantum-chemical atomic-orbital bases.
//
// 🚀 What is cartsph?
//
//	A small, deterministic library that brings together:
//		• Angular-momentum primitives: exponent triples & canonical ordering
//		• Normalization: spherical & Cartesian Gaussian norms and their ratio
//		• The Schlegel–Frisch transform: per-component Cartesian→spherical
//		  coefficients via the closed-form double sum
//		• Matrix assembly: real (2l+1)×((l+1)(l+2)/2) matrices per shell,
//		  whole families for l = 0..lMax, optional sparsification
//		• Basis glue: Basis Set Exchange JSON parsing & per-atom shells
//
// ✨ Why choose cartsph?
//
//   - Pure functions – every output is a deterministic function of its inputs
//   - Complex-safe – intermediates stay complex until realness is proven
//   - Parallel-ready – per-l builds are independent and race-free
//   - Convention-pinned – row/column order is documented, not implied
//
// Under the hood, everything is organized under three subpackages:
//
//	momentum/ — exponent triples, component counts, canonical ordering
//	cart2sph/ — norms, single coefficients, matrix assembly, caching
//	basis/    — basis-set JSON parsing & contracted-shell assembly
//
// Quick ASCII example (l = 1, normalized):
//
//	        x     y     z
//	m=-1  1.0   0.0   0.0
//	m= 0  0.0   0.0   1.0
//	m=+1  0.0   1.0   0.0
//
// The transform follows Schlegel & Frisch, Int. J. Quantum Chem. 54 (1995)
// 83–87. Dive into the per-package docs for formulas, conventions and
// worked examples.
//
//	go get github.com/katalvlaran/cartsph
package cartsph

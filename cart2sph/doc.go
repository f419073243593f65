// Package cart2sph computes the transformation between Cartesian Gaussian
// basis functions and real solid (spherical) harmonic Gaussians, following
// the closed-form expressions of Schlegel & Frisch, Int. J. Quantum Chem.
// 54 (1995) 83–87.
//
// 🚀 What is cart2sph?
//
//	For a shell of total angular momentum l it produces the coefficient
//	matrix mapping the (l+1)(l+2)/2 Cartesian components onto the 2l+1
//	real spherical components, including normalization:
//	  • SphNorm / CartNorm / NormRatio — per-component normalization
//	  • Coeff — one (generally complex) coefficient for (lx,ly,lz,m)
//	  • CoeffsForL — the full real matrix for one l, rows m = -l..l
//	  • Coeffs — the family l → matrix for l = 0..lMax
//	  • Cache — an explicit memoization wrapper over CoeffsForL
//
// ✨ Key properties:
//   - complex arithmetic is carried through every intermediate step; the
//     result is asserted real (ErrComplexResidue otherwise), never truncated
//   - the selection rule (lx+ly-|m| odd ⇒ 0) is exact, not a tolerance
//   - column order is injected via momentum.Ordering (CanonicalOrder default)
//   - per-l builds are independent; WithParallel races nothing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cartsph/cart2sph"
//
//	// One shell:
//	C, err := cart2sph.CoeffsForL(2)             // shape (5, 6)
//
//	// A whole family, sparsified:
//	Cs, err := cart2sph.Coeffs(4,
//	    cart2sph.WithZeroSmall(),
//	    cart2sph.WithZeroThreshold(1e-12),
//	)
//
// Conventions:
//
//	Rows are real spherical components in order m = -l..l; columns are
//	Cartesian components in the injected ordering (momentum.CanonicalOrder
//	unless overridden). The real combinations follow the source formula:
//	for m ≠ 0, (c(m) + sign·c(-m)) / sqrt(sign·2) with sign = +1 for m < 0
//	and -1 for m > 0. Under this convention the p-shell maps m=-1→x,
//	m=0→z, m=+1→y, and the d-shell maps m=-2→(x²−y²), m=+2→xy.
//
// Performance:
//
//   - Coeff: O(l²) arithmetic per call
//   - CoeffsForL: O(l⁵) total; exact small-integer combinatorics in float64
//   - matrices are deterministic pure values — memoize freely (see Cache)
//
// See example_test.go for worked p- and d-shell matrices.
package cart2sph

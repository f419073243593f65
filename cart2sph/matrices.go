// SPDX-License-Identifier: MIT

// Package cart2sph: assembly of whole transformation matrices.
//
// Shapes and orientation:
//   - the complex accumulation stage is (cartesian × spherical): one row per
//     exponent triple in the injected ordering, one column per m = -l..l;
//   - the public real matrix is its transpose, (2l+1) × (l+1)(l+2)/2, the
//     orientation consumers multiply integral blocks with.
//
// Realness is proven, not assumed: after combining ±m pairs the maximal
// imaginary residue is checked against the configured tolerance and a
// violation surfaces as ErrComplexResidue. The imaginary parts are dropped
// only after that check passes.

package cart2sph

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cartsph/momentum"
)

// CoeffsForL builds the real transformation matrix for one shell of total
// angular momentum l. Rows are real spherical components in order m = -l..l;
// columns are Cartesian components in the injected ordering
// (momentum.CanonicalOrder unless WithOrdering overrides it).
//
// For m ≠ 0 the ±m pair is combined into the real solid harmonic as
// (c(m) + sign·c(-m)) / sqrt(sign·2), sign = +1 for m < 0 and -1 otherwise;
// the square root of a negative real is taken in the complex plane. For
// m = 0 the raw coefficient is already real by construction.
//
// Errors: ErrNegativeMomentum (l < 0), ErrBadOrdering (broken provider),
// ErrComplexResidue (imaginary residue above tolerance after combination).
//
// Complexity: O(l⁵) arithmetic, O(l³) space for the result.
func CoeffsForL(l int, opts ...Option) (*mat.Dense, error) {
	o := gatherOptions(opts...)

	matrix, err := coeffsForL(l, o)
	if err != nil {
		return nil, err
	}

	if o.zeroSmall {
		ZeroSmall(matrix, o.zeroThreshold)
	}

	return matrix, nil
}

// CoeffsForLComplex builds the raw complex coefficient matrix for one shell,
// without the real ±m combination: shape (cartesian × spherical), entry
// (row, m+l) = Coeff(triple, m). Useful for consumers that work in the
// complex spherical basis directly.
//
// Errors: ErrNegativeMomentum, ErrBadOrdering.
func CoeffsForLComplex(l int, opts ...Option) (*mat.CDense, error) {
	o := gatherOptions(opts...)

	return accumulate(l, o, false)
}

// Coeffs builds the family l → matrix for every l in 0..lMax via CoeffsForL.
// With WithZeroSmall, entries with |v| <= threshold are zeroed in place
// (idempotent; rows and columns are NOT renormalized). With WithParallel the
// per-l builds run concurrently — they share no writable memory, so the
// result is identical to the sequential path.
//
// Errors: ErrNegativeMomentum (lMax < 0) plus anything CoeffsForL returns.
func Coeffs(lMax int, opts ...Option) (map[int]*mat.Dense, error) {
	if lMax < 0 {
		return nil, fmt.Errorf("Coeffs(%d): %w", lMax, ErrNegativeMomentum)
	}

	o := gatherOptions(opts...)
	perL := make([]*mat.Dense, lMax+1)

	if o.parallel {
		var g errgroup.Group
		for l := 0; l <= lMax; l++ {
			l := l
			g.Go(func() error {
				m, err := coeffsForL(l, o)
				if err != nil {
					return err
				}
				perL[l] = m

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for l := 0; l <= lMax; l++ {
			m, err := coeffsForL(l, o)
			if err != nil {
				return nil, err
			}
			perL[l] = m
		}
	}

	coeffs := make(map[int]*mat.Dense, lMax+1)
	for l, m := range perL {
		if o.zeroSmall {
			ZeroSmall(m, o.zeroThreshold)
		}
		coeffs[l] = m
	}

	return coeffs, nil
}

// ZeroSmall zeroes, in place, every entry of m with |v| <= thresh. Entries
// already zero stay zero and entries above the threshold are untouched, so
// applying it twice equals applying it once. A nil matrix is a no-op.
func ZeroSmall(m *mat.Dense, thresh float64) {
	if m == nil {
		return
	}

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(m.At(i, j)) <= thresh {
				m.Set(i, j, 0)
			}
		}
	}
}

// coeffsForL is CoeffsForL without the option gathering and sparsification,
// shared by the sequential and parallel family builders.
func coeffsForL(l int, o Options) (*mat.Dense, error) {
	combined, err := accumulate(l, o, true)
	if err != nil {
		return nil, err
	}

	cart, sph := combined.Dims()

	// Prove realness before dropping imaginary parts.
	var residue float64
	for i := 0; i < cart; i++ {
		for j := 0; j < sph; j++ {
			if im := math.Abs(imag(combined.At(i, j))); im > residue {
				residue = im
			}
		}
	}
	if residue > o.imagTolerance {
		return nil, fmt.Errorf("CoeffsForL(%d): imaginary residue %.3e: %w", l, residue, ErrComplexResidue)
	}

	// Cast to real and transpose: rows become spherical components.
	out := mat.NewDense(sph, cart, nil)
	for i := 0; i < cart; i++ {
		for j := 0; j < sph; j++ {
			out.Set(j, i, realPart(combined.At(i, j)))
		}
	}

	return out, nil
}

// accumulate fills the (cartesian × spherical) complex matrix for one shell.
// With combine=true, ±m pairs are folded into real solid harmonics.
func accumulate(l int, o Options, combine bool) (*mat.CDense, error) {
	if l < 0 {
		return nil, fmt.Errorf("cart2sph: l=%d: %w", l, ErrNegativeMomentum)
	}

	triples, err := orderedTriples(l, o.ordering)
	if err != nil {
		return nil, err
	}

	sph := 2*l + 1
	acc := mat.NewCDense(len(triples), sph, nil)

	for row, tr := range triples {
		for m := -l; m <= l; m++ {
			coeff := rawCoeff(tr.Lx, tr.Ly, tr.Lz, m, o.normalized)

			if combine && m != 0 {
				minus := rawCoeff(tr.Lx, tr.Ly, tr.Lz, -m, o.normalized)
				sign := -1.0
				if m < 0 {
					sign = 1.0
				}
				coeff = (coeff + complex(sign, 0)*minus) / cmplx.Sqrt(complex(sign*2, 0))
			}

			acc.Set(row, m+l, coeff)
		}
	}

	return acc, nil
}

// orderedTriples runs the injected Ordering and validates its output: the
// sequence must have exactly (l+1)(l+2)/2 entries, each summing to l.
func orderedTriples(l int, ord momentum.Ordering) ([]momentum.Triple, error) {
	triples, err := ord(l)
	if err != nil {
		return nil, fmt.Errorf("cart2sph: ordering(%d): %w", l, err)
	}

	want, err := momentum.CartCount(l)
	if err != nil {
		return nil, fmt.Errorf("cart2sph: ordering(%d): %w", l, err)
	}
	if len(triples) != want {
		return nil, fmt.Errorf("cart2sph: ordering(%d) yielded %d triples, want %d: %w",
			l, len(triples), want, ErrBadOrdering)
	}
	for _, tr := range triples {
		if tr.Lx < 0 || tr.Ly < 0 || tr.Lz < 0 || tr.L() != l {
			return nil, fmt.Errorf("cart2sph: ordering(%d) yielded triple %v: %w", l, tr, ErrBadOrdering)
		}
	}

	return triples, nil
}

// realPart is a tiny named helper so the cast site reads as intent, not as
// an accidental truncation.
func realPart(c complex128) float64 { return real(c) }

// SPDX-License-Identifier: MIT

// Package cart2sph: the single-coefficient formula, Eq. (15) of Schlegel &
// Frisch (1995).
//
// The coefficient is generally complex: the inner sum carries the sign
// factor (-1)^(sign(m)·(|m|-lx+2k)/2), whose exponent may be a half-integer.
// That power is evaluated with complex exponentiation semantics — exactly
// exp(iπ·exponent) for base -1 — so a half-integer exponent contributes ±i.
// Truncating to real here would destroy the cancellation that makes the
// final real-harmonic matrices real; see matrices.go for where realness is
// asserted.

package cart2sph

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Coeff computes the contribution of the Cartesian component (lx,ly,lz) to
// the complex spherical harmonic Y^l_m with l = lx+ly+lz.
//
// Contract:
//   - lx, ly, lz >= 0, otherwise ErrNegativeMomentum;
//   - -l <= m <= l, otherwise ErrMagneticRange;
//   - (lx+ly-|m|) odd is NOT an error: the selection rule makes the
//     coefficient exactly 0 and no arithmetic is performed.
//
// Only WithUnnormalized is consulted from opts; it divides the result by
// NormRatio(lx,ly,lz).
//
// Complexity: O((l-|m|)·(lx+ly-|m|)) arithmetic, O(1) space.
func Coeff(lx, ly, lz, m int, opts ...Option) (complex128, error) {
	if lx < 0 || ly < 0 || lz < 0 {
		return 0, fmt.Errorf("Coeff(%d,%d,%d,%d): %w", lx, ly, lz, m, ErrNegativeMomentum)
	}

	l := lx + ly + lz
	if m < -l || m > l {
		return 0, fmt.Errorf("Coeff(%d,%d,%d,%d): %w", lx, ly, lz, m, ErrMagneticRange)
	}

	o := gatherOptions(opts...)

	return rawCoeff(lx, ly, lz, m, o.normalized), nil
}

// rawCoeff is the unchecked core of Coeff. Callers guarantee lx,ly,lz >= 0
// and -l <= m <= l.
func rawCoeff(lx, ly, lz, m int, normalized bool) complex128 {
	l := lx + ly + lz

	mAbs := m
	if mAbs < 0 {
		mAbs = -mAbs
	}

	// Selection rule: j = (lx+ly-|m|)/2 must be an integer.
	if (lx+ly-mAbs)%2 != 0 {
		return 0
	}
	j := (lx + ly - mAbs) / 2

	sign := 1
	if m < 0 {
		sign = -1
	}
	lmm := l - mAbs // (l - |m|)

	var coeff complex128
	for i := 0; i <= lmm/2; i++ {
		iFact := binom(l, i) * binom(i, j) * parity(i) * fact(2*l-2*i) / fact(lmm-2*i)

		var kSum complex128
		for k := 0; k <= j; k++ {
			// Half-integer exponents are legal here; evaluate (-1)^x as a
			// complex power, never an integer one.
			expo := float64(sign*(mAbs-lx+2*k)) / 2
			prefact := cmplx.Pow(-1, complex(expo, 0))
			kSum += prefact * complex(binom(j, k)*binom(mAbs, lx-2*k), 0)
		}

		coeff += complex(iFact, 0) * kSum
	}

	pre := math.Sqrt(
		fact(2*lx) * fact(2*ly) * fact(2*lz) * fact(l) * fact(lmm) /
			(fact(2*l) * fact(lx) * fact(ly) * fact(lz) * fact(l+mAbs)),
	)
	coeff *= complex(pre/(math.Exp2(float64(l))*fact(l)), 0)

	if !normalized {
		ratio, _ := NormRatio(lx, ly, lz) // exponents validated by callers
		coeff /= complex(ratio, 0)
	}

	return coeff
}

// parity returns (-1)^i as a float64 without going through math.Pow.
func parity(i int) float64 {
	if i%2 != 0 {
		return -1
	}

	return 1
}

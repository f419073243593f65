// Package momentum provides the angular-momentum primitives shared by the
// Cartesian→spherical transform machinery: exponent triples, component
// counts, and the canonical ordering of Cartesian Gaussian components.
//
// 🚀 What lives here?
//
//   - Triple — one Cartesian exponent triple (lx, ly, lz) with lx+ly+lz = l
//   - CartCount / SphCount — component counts (l+1)(l+2)/2 and 2l+1
//   - Ordering — the injectable canonical-order provider
//   - CanonicalOrder — the default, documented enumeration convention
//
// ✨ Why a separate package?
//
//	The enumeration order of Cartesian components is a *convention*, not a
//	consequence of the math. Transform matrices inherit their column order
//	from it, so the convention must be fixed, documented, and swappable:
//	consumers that integrate against a package using a different order can
//	inject their own Ordering without touching the transform core.
//
// Canonical convention (CanonicalOrder):
//
//	Triples are enumerated lexicographically by decreasing lx, then
//	decreasing ly. For l = 2 this yields
//
//	  x², xy, xz, y², yz, z²
//
// All functions are pure and deterministic; invalid input (negative l)
// yields ErrNegativeL via errors.Is.
package momentum

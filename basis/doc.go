// Package basis reads Gaussian basis-set definitions and assembles the
// per-atom contracted shells that consume the cart2sph transform matrices.
//
// 🚀 What lives here?
//
//   - Set / ParseSet / LoadSet — Basis Set Exchange JSON parsing, keyed by
//     atomic number
//   - AtomicNumber / Symbol — element bookkeeping for all 118 elements
//   - Shell / Shells — contracted Gaussian shells placed on atom centers
//   - ShellsWithBasis — atoms + coordinates + set → ordered shell list
//
// ✨ Scope:
//
//	This is deliberately thin glue: it resolves element keys, converts the
//	string-encoded exponents/coefficients of the JSON format, and flattens
//	generally-contracted shells into one Shell per contraction. All the
//	mathematics lives in cart2sph; Shells only reports sizes and fetches
//	the transform family its angular momenta require.
//
// Conventions:
//
//	Combined SP shells (angular_momentum lists with more than one entry)
//	are rejected with ErrSPShell — they must be split upstream. Coordinates
//	are a flat 3N slice in atom order, reshaped internally.
//
// Errors are package-prefixed sentinels matched via errors.Is.
package basis

// Package palette builds ordered color palettes along the Hilbert curve of
// package hilbert, and re-orients them with the 48 symmetries of the color
// cube.
//
// What
//
//   - Build(n): n colors in curve order. For n == 2^24 every color appears
//     exactly once; otherwise the curve is sampled evenly and the last entry
//     is always the curve's final color, so Build(2) returns black and blue.
//   - HasAllColors: reports whether a slice is a permutation of all 2^24
//     colors.
//   - SortByCurve: orders an arbitrary slice of colors along the curve.
//   - Symmetry: one of the 48 ways to read RGB as cube coordinates (8 origin
//     corners × 6 axis orders). Applying the same Symmetry to every entry of a
//     palette keeps it a valid curve order that starts and ends elsewhere.
//
// Why
//
//	The curve always runs from black to blue. A random Symmetry lets one
//	generator produce 48 differently-colored layouts from the same tree.
//
// Randomness
//
//	RandomSymmetry draws from an explicit Rand (satisfied by *math/rand.Rand)
//	so callers control reproducibility. It consumes exactly one Intn(48).
//
// Complexity
//
//   - Build:        O(n) time, O(n) memory.
//   - HasAllColors: O(n) time, 2 MiB bitmap.
//   - SortByCurve:  O(n log n) comparisons.
//
// Errors
//
//   - ErrPaletteTooSmall: Build called with n < 2.
//   - ErrSymmetryIndex:   SymmetryFromIndex outside [0, 48).
//   - ErrInvalidSymmetry: Symmetry.Axes is not a permutation of {0, 1, 2}.
package palette

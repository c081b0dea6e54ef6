package palette

import "errors"

// Sentinel errors for palette operations.
var (
	// ErrPaletteTooSmall indicates a palette of fewer than two colors was requested.
	ErrPaletteTooSmall = errors.New("palette: size must be at least 2")

	// ErrSymmetryIndex indicates an index outside [0, NumSymmetries).
	ErrSymmetryIndex = errors.New("palette: symmetry index out of range")

	// ErrInvalidSymmetry indicates Axes is not a permutation of the three channels.
	ErrInvalidSymmetry = errors.New("palette: symmetry axes must be a permutation of 0, 1, 2")
)

// NumSymmetries is the number of symmetries of the color cube.
const NumSymmetries = 48

// Rand is the random source used by RandomSymmetry.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

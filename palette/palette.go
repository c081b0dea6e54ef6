package palette

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/katalvlaran/allrgb/hilbert"
	"github.com/katalvlaran/allrgb/rgb"
)

// Build returns n colors in curve order.
//
// For n == 2^24 the result is every color exactly once. Otherwise the curve
// is sampled at i·(2^24/(n-1)) for i in [0, n-1), and the last entry is forced
// to hilbert.Decode(2^24-1) so rounding can never drop the curve's end. When
// n > 2^24 colors repeat.
//
// Returns ErrPaletteTooSmall if n < 2.
// Complexity: O(n) time and memory.
func Build(n int) ([]rgb.Color, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, n)
	}

	colors := make([]rgb.Color, n)
	if n == rgb.NumColors {
		for i := range colors {
			colors[i] = hilbert.Decode(uint32(i))
		}
		return colors, nil
	}

	delta := float64(rgb.NumColors) / float64(n-1)
	for i := 0; i < n-1; i++ {
		colors[i] = hilbert.Decode(uint32(float64(i) * delta))
	}
	colors[n-1] = hilbert.Decode(rgb.NumColors - 1)

	return colors, nil
}

// HasAllColors reports whether colors holds each of the 2^24 colors exactly
// once. Since the length must equal 2^24, a duplicate always leaves some
// color missing, so a full presence bitmap is sufficient.
func HasAllColors(colors []rgb.Color) bool {
	if len(colors) != rgb.NumColors {
		return false
	}

	seen := make([]uint64, rgb.NumColors/64)
	for _, c := range colors {
		v := c.Uint32()
		seen[v/64] |= 1 << (v % 64)
	}
	for _, w := range seen {
		if bits.OnesCount64(w) != 64 {
			return false
		}
	}
	return true
}

// SortByCurve orders colors in place along the Hilbert curve.
// Complexity: O(n log n).
func SortByCurve(colors []rgb.Color) {
	slices.SortFunc(colors, hilbert.Compare)
}

package hilbert

import (
	"fmt"

	"github.com/katalvlaran/allrgb/rgb"
)

// Encode returns the position of c along the curve, in [0, 2^24).
//
// Steps:
//  1. Find the octant of the current color at this step.
//  2. Append its visiting order as the next 3-bit digit (most significant first).
//  3. Rotate the color for the next subdivision.
func Encode(c rgb.Color) uint32 {
	v := [3]uint8{c.R, c.G, c.B}
	var d uint32
	for step := uint(0); step < steps; step++ {
		o := octantAt(v, step)
		d |= uint32(orderForOctant[o]) << ((steps - 1 - step) * 3)
		v = apply(o, v)
	}
	return d
}

// Decode returns the color at position d along the curve.
// It panics if d is outside [0, 2^24).
//
// Digits are consumed from the innermost subdivision outwards: the
// accumulator is un-rotated, shifted down one bit, and the octant bits are
// placed in the most significant bit of each channel.
func Decode(d uint32) rgb.Color {
	if d >= rgb.NumColors {
		panic(fmt.Sprintf("hilbert: index %d outside [0, %d)", d, rgb.NumColors))
	}
	var v [3]uint8
	for i := 0; i < steps; i++ {
		o := octantForOrder[d&0b111]
		v = invert(o, v)
		v[0] = v[0]>>1 | (o&0b100)<<5
		v[1] = v[1]>>1 | (o&0b010)<<6
		v[2] = v[2]>>1 | (o&0b001)<<7
		d >>= 3
	}
	return rgb.Color{R: v[0], G: v[1], B: v[2]}
}

// Compare returns -1 if a comes before b on the curve, +1 if after, and 0 if
// a == b. It stops at the first subdivision where the two colors part ways.
func Compare(a, b rgb.Color) int {
	va := [3]uint8{a.R, a.G, a.B}
	vb := [3]uint8{b.R, b.G, b.B}
	for step := uint(0); step < steps; step++ {
		oa, ob := octantAt(va, step), octantAt(vb, step)
		if oa != ob {
			if orderForOctant[oa] < orderForOctant[ob] {
				return -1
			}
			return 1
		}
		// same octant, so both take the same rotation
		va = apply(oa, va)
		vb = apply(ob, vb)
	}
	return 0
}

// Less reports whether a comes strictly before b on the curve.
func Less(a, b rgb.Color) bool {
	return Compare(a, b) < 0
}

package hilbert

// steps is the number of subdivisions, one per channel bit.
const steps = 8

// octantForOrder lists octants in the order the curve visits them.
var octantForOrder = [8]uint8{0, 2, 6, 4, 5, 7, 3, 1}

// orderForOctant is the inverse of octantForOrder.
var orderForOctant = [8]uint8{0, 7, 1, 6, 3, 4, 2, 5}

// rotation re-orients a color for the next subdivision.
// Output channel i takes input channel src[i], XORed with flip[i].
type rotation struct {
	src  [3]uint8
	flip [3]uint8
}

// rotations holds the five rotation classes.
var rotations = [5]rotation{
	{src: [3]uint8{2, 0, 1}},
	{src: [3]uint8{0, 2, 1}, flip: [3]uint8{0, 0xff, 0xff}},
	{src: [3]uint8{1, 2, 0}},
	{src: [3]uint8{1, 2, 0}, flip: [3]uint8{0, 0xff, 0xff}},
	{src: [3]uint8{1, 0, 2}, flip: [3]uint8{0xff, 0xff, 0}},
}

// classForOctant selects the rotation class applied inside each octant.
var classForOctant = [8]uint8{0, 1, 2, 3, 4, 4, 2, 3}

// apply rotates c as it enters octant o.
func apply(o uint8, c [3]uint8) [3]uint8 {
	r := &rotations[classForOctant[o]]
	return [3]uint8{
		c[r.src[0]] ^ r.flip[0],
		c[r.src[1]] ^ r.flip[1],
		c[r.src[2]] ^ r.flip[2],
	}
}

// invert undoes apply for octant o.
func invert(o uint8, c [3]uint8) [3]uint8 {
	r := &rotations[classForOctant[o]]
	var out [3]uint8
	out[r.src[0]] = c[0] ^ r.flip[0]
	out[r.src[1]] = c[1] ^ r.flip[1]
	out[r.src[2]] = c[2] ^ r.flip[2]
	return out
}

// octantAt returns the octant of c at the given step (0 is the top level).
func octantAt(c [3]uint8, step uint) uint8 {
	mask := uint8(0x80) >> step
	var o uint8
	if c[0]&mask != 0 {
		o |= 0b100
	}
	if c[1]&mask != 0 {
		o |= 0b010
	}
	if c[2]&mask != 0 {
		o |= 0b001
	}
	return o
}

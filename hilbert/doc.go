// Package hilbert orders the RGB color cube along a 3D Hilbert curve.
//
// What
//
//   - Encode maps a color to its position on the curve, in [0, 2^24).
//   - Decode maps a curve position back to its color.
//   - Compare / Less order two colors by curve position without computing
//     either position in full.
//
// The curve
//
//	The cube is split into 8 octants, visited in a fixed order; each octant is
//	split again and visited in the same shape, rotated and reflected so the
//	exit of one octant touches the entrance of the next. Eight subdivisions
//	consume the 8 bits of each channel, most significant first.
//
//	The octant number at a step is one bit from each channel: R→4, G→2, B→1.
//	So at step 0 the color (0, 0, 128) lies in octant 1.
//
//	Octants are visited in the order 0, 2, 6, 4, 5, 7, 3, 1: the curve starts
//	at black (0, 0, 0) and ends at blue (0, 0, 255).
//
//	                       110 ------ 111
//	                      . |        . |
//	                   100 ------ 101  |
//	                    |  010 ----|- 011
//	                    | .        | .
//	                   000 ------ 001
//	                  (B)          (E)
//
//	This is curve A26.2b.b3 from Haverkort's "An inventory of
//	three-dimensional Hilbert space-filling curves". Consecutive positions
//	always differ by one step along exactly one channel.
//
// Rotations
//
//	After choosing an octant, the remaining bits are re-oriented so the next
//	subdivision sees the same visiting order. The 8 octants share 5 rotation
//	classes (2&6, 3&7 and 4&5 pair up). Each class is a channel permutation
//	plus an optional complement of some output channels; the tables live in
//	tables.go and drive Encode, Decode and Compare alike.
//
// Complexity
//
//   - Encode, Decode, Compare: O(8) table lookups, no allocation.
package hilbert

// Package abstract generates "abstract" allRGB images: every pixel of a
// rows×cols grid receives a distinct color, ordered so that neighbors along a
// random spanning tree of the grid get neighbors along a Hilbert curve through
// the RGB cube.
//
// What:
//
//   - Generate composes the pipeline: palette sampling, an optional cube
//     symmetry, Wilson's spanning tree, a tree traversal and the final pixel
//     assignment.
//   - Assign pairs the i-th palette entry with the i-th traversal position.
//
// When rows·cols == 2^24 (4096×4096, 8192×2048, ...) the result uses each
// 24-bit color exactly once. Smaller grids get an evenly spaced sample of the
// curve, larger ones repeat colors.
//
// Options:
//
//   - WithSeed(seed):        deterministic seed; 0 selects the fixed default 1.
//   - WithOrder(o):          traversal order, default gridgraph.ShortestFirstDFS.
//   - WithSymmetry(s):       fixed cube symmetry, default palette.Identity.
//   - WithRandomSymmetry():  draw the symmetry from the seed.
//   - WithLogger(l):         zerolog logger for per-phase Debug events.
//
// Randomness:
//
//	The spanning tree consumes rand.New(rand.NewSource(seed)) and nothing else,
//	so a tree is fully determined by (rows, cols, seed). A random symmetry is
//	drawn from a separate stream derived from the seed and never shifts the
//	tree's draws.
//
// Errors:
//
//   - ErrOptionViolation:               invalid option value.
//   - gridgraph.ErrInvalidDimensions:   rows or cols not positive.
//   - palette.ErrPaletteTooSmall:       rows·cols < 2.
//
// Complexity:
//
//   - Time:   O(N log N)-ish, dominated by Span on grids; N = rows·cols.
//   - Memory: N bytes of graph, 3N bytes of palette and raster each, plus the
//     int order and int32 heights.
package abstract

// Package gridgraph builds uniformly random spanning trees over a rows×cols
// pixel grid and linearizes them with tree traversals.
//
// What:
//
//   - Graph models the 4-connected grid with one packed byte per cell, so a
//     4096×4096 grid fits in 16 MiB.
//   - Span runs Wilson's algorithm (loop-erased random walks) to produce a
//     spanning tree drawn uniformly from all spanning trees of the grid.
//   - DFS, SDFS and BFS turn the finished tree into a permutation of cell
//     indices.
//
// Why:
//
//   - A random spanning tree is a locality-preserving but irregular order over
//     the grid. Painting colors along that order gives organic, branching
//     structure instead of scanlines.
//   - SDFS visits each node's shortest subtree first. The tree has a few very
//     long branches and many short ones; finishing the short ones first keeps
//     the traversal near its parent for longer.
//
// Node layout:
//
//	bit 0      in-tree flag (build phase)
//	bits 1..2  direction towards the parent (valid once in-tree, non-root)
//	bits 3..6  one bit per direction (up, right, down, left): grid boundaries
//	           while spanning, children once Span has returned
//
//	The boundary meaning is read only inside Span; Span rewrites the field
//	into child bits before marking the graph spanned, and every traversal
//	refuses to run until then (ErrNotSpanned).
//
// Randomness:
//
//	Span takes an explicit Rand (satisfied by *math/rand.Rand) and consumes it
//	in a fixed sequence: one Intn(rows·cols) for the root, then one Intn(k)
//	per random-walk step, where k is the number of in-grid neighbors of the
//	current cell, starting walks at cells in index order. The walk count has
//	no fixed bound; it terminates with probability 1.
//
// Complexity:
//
//   - New:         O(W×H) time, W×H bytes.
//   - Span:        expected O(W×H · mean hitting time) steps, no extra memory.
//   - DFS / BFS:   O(W×H) time, O(W×H) memory for the order and stack/queue.
//   - SDFS:        two DFS passes plus a 4-element sort per node; adds one
//     int32 height per node.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive, or rows·cols overflows.
//   - ErrNilRand:           Span called with a nil random source.
//   - ErrAlreadySpanned:    Span called twice on one Graph.
//   - ErrNotSpanned:        traversal requested before Span.
//   - ErrUnknownOrder:      unrecognized traversal Order.
package gridgraph

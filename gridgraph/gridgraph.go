package gridgraph

import (
	"fmt"
	"math"
)

// New constructs an unspanned rows×cols grid.
//
// Steps:
//  1. Validate dimensions; rows·cols must fit in an int.
//  2. Mark grid boundaries on the edge cells (corners get two bits, and a
//     1×N or N×1 grid gets three or four).
//  3. Build the jump table and the per-pattern neighbor lists.
//
// Returns ErrInvalidDimensions on bad input.
// Complexity: O(rows·cols) time, rows·cols bytes.
func New(rows, cols int) (*Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d cells overflow", ErrInvalidDimensions, rows, cols)
	}

	g := &Graph{
		rows:  rows,
		cols:  cols,
		nodes: make([]node, rows*cols),
		root:  -1,
	}
	g.initBoundaries()
	g.initJumpTable()
	g.initNeighbors()

	return g, nil
}

// NewSpanningTree is New followed by Span.
func NewSpanningTree(rows, cols int, r Rand) (*Graph, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = g.Span(r); err != nil {
		return nil, err
	}
	return g, nil
}

// initBoundaries sets a boundary bit on each cell for every direction that
// would step off the grid, so random walks never bounds-check.
func (g *Graph) initBoundaries() {
	n := len(g.nodes)
	for i := 0; i < g.cols; i++ {
		g.nodes[i].setBoundary(Up)
	}
	for i := n - g.cols; i < n; i++ {
		g.nodes[i].setBoundary(Down)
	}
	for i := 0; i < n; i += g.cols {
		g.nodes[i].setBoundary(Left)
	}
	for i := g.cols - 1; i < n; i += g.cols {
		g.nodes[i].setBoundary(Right)
	}
}

func (g *Graph) initJumpTable() {
	g.jump[Up] = -g.cols
	g.jump[Right] = 1
	g.jump[Down] = g.cols
	g.jump[Left] = -1
}

// initNeighbors lists, for each boundary pattern, the directions that stay on
// the grid. Pattern 0b1111 only occurs on a 1×1 grid and stays empty; its
// single cell is always the root, so it is never walked from.
func (g *Graph) initNeighbors() {
	for pattern := 0; pattern < len(g.neighbors); pattern++ {
		var avail []Direction
		for _, d := range directions {
			if pattern&(1<<d) == 0 {
				avail = append(avail, d)
			}
		}
		g.neighbors[pattern] = avail
	}
}

// Rows returns the number of grid rows.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Graph) Cols() int { return g.cols }

// Len returns the number of cells, rows·cols.
func (g *Graph) Len() int { return len(g.nodes) }

// Spanned reports whether Span has completed.
func (g *Graph) Spanned() bool { return g.spanned }

// Root returns the index of the tree root, or -1 before Span.
func (g *Graph) Root() int { return g.root }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Graph) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to the row-major index row*cols + col.
// Complexity: O(1).
func (g *Graph) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Graph) Coordinate(i int) (row, col int) {
	return i / g.cols, i % g.cols
}

// Parent returns the parent of node i in the spanning tree. ok is false for
// the root and before Span.
func (g *Graph) Parent(i int) (parent int, ok bool) {
	if !g.spanned || i == g.root {
		return -1, false
	}
	return i + g.jump[g.nodes[i].parentDir()], true
}

// Children returns the children of node i in direction order (up, right,
// down, left), or nil before Span.
func (g *Graph) Children(i int) []int {
	if !g.spanned {
		return nil
	}
	var buf [4]int
	k := g.childrenInto(i, &buf)
	if k == 0 {
		return nil
	}
	return append([]int(nil), buf[:k]...)
}

// childrenInto writes the children of i into buf and returns how many.
func (g *Graph) childrenInto(i int, buf *[4]int) int {
	k := 0
	n := g.nodes[i]
	for _, d := range directions {
		if n.hasChild(d) {
			buf[k] = i + g.jump[d]
			k++
		}
	}
	return k
}

package gridgraph

// node packs one grid cell into a byte.
//
//	bit 0      in-tree
//	bits 1..2  parent direction
//	bits 3..6  edge bits, indexed by Direction
//
// The edge bits mean "boundary" before the link pass and "child" after it.
// Only span.go touches the boundary accessors, and only before linkChildren.
type node uint8

const (
	inTreeBit node = 1 << 0

	dirShift      = 1
	dirMask  node = 0b11 << dirShift

	edgeShift      = 3
	edgeMask  node = 0b1111 << edgeShift
)

func (n node) inTree() bool {
	return n&inTreeBit != 0
}

func (n *node) markInTree() {
	*n |= inTreeBit
}

func (n node) parentDir() Direction {
	return Direction((n & dirMask) >> dirShift)
}

func (n *node) setParentDir(d Direction) {
	*n = *n&^dirMask | node(d)<<dirShift
}

func (n node) edges() uint8 {
	return uint8((n & edgeMask) >> edgeShift)
}

func (n *node) clearEdges() {
	*n &^= edgeMask
}

func (n *node) setEdge(d Direction) {
	*n |= 1 << (edgeShift + node(d))
}

// Build phase.

// boundaries returns the 4-bit pattern of directions that leave the grid.
func (n node) boundaries() uint8 {
	return n.edges()
}

func (n *node) setBoundary(d Direction) {
	n.setEdge(d)
}

// Traversal phase.

func (n node) hasChild(d Direction) bool {
	return n.edges()&(1<<d) != 0
}

func (n *node) setChild(d Direction) {
	n.setEdge(d)
}

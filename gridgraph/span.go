package gridgraph

// Span builds a uniformly random spanning tree with Wilson's algorithm.
//
// Steps:
//  1. Pick the root with r.Intn(Len()) and mark it in-tree.
//  2. For each start cell in index order that is not yet in-tree, walk
//     randomly, recording at every visited cell the direction just taken.
//     Revisiting a cell overwrites its direction, which erases the loop.
//     Stop on reaching any in-tree cell.
//  3. Retrace from the start following the recorded directions, marking
//     cells in-tree until the existing tree is reached. Only the final,
//     loop-erased path is committed.
//  4. Rewrite the edge bits from boundaries into child links.
//
// The order in which starts are processed does not affect the distribution
// of the result. Do not alter the direction draw or the overwrite rule: they
// are what make the tree uniform.
//
// Returns ErrNilRand or ErrAlreadySpanned.
func (g *Graph) Span(r Rand) error {
	if r == nil {
		return ErrNilRand
	}
	if g.spanned {
		return ErrAlreadySpanned
	}

	// 1. Root
	g.root = r.Intn(len(g.nodes))
	g.nodes[g.root].markInTree()

	for start := range g.nodes {
		// 2. Loop-erased random walk
		for here := start; !g.nodes[here].inTree(); {
			avail := g.neighbors[g.nodes[here].boundaries()]
			d := avail[r.Intn(len(avail))]
			g.nodes[here].setParentDir(d)
			here += g.jump[d]
		}

		// 3. Commit the surviving path
		for here := start; !g.nodes[here].inTree(); {
			g.nodes[here].markInTree()
			here += g.jump[g.nodes[here].parentDir()]
		}
	}

	// 4. Boundaries are never read again past this point.
	g.linkChildren()
	g.spanned = true

	return nil
}

// linkChildren repurposes the edge bits: clear them everywhere, then have each
// non-root node set, on its parent, the bit pointing back at itself.
func (g *Graph) linkChildren() {
	for i := range g.nodes {
		g.nodes[i].clearEdges()
	}
	for i := range g.nodes {
		if i == g.root {
			continue
		}
		d := g.nodes[i].parentDir()
		g.nodes[i+g.jump[d]].setChild(d.Opposite())
	}
}

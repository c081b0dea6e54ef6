package gridgraph

import "fmt"

// Traverse dispatches to DFS, SDFS or BFS.
// Returns ErrUnknownOrder for any other Order value.
func (g *Graph) Traverse(o Order) ([]int, error) {
	switch o {
	case ShortestFirstDFS:
		return g.SDFS()
	case PreorderDFS:
		return g.DFS()
	case BreadthFirst:
		return g.BFS()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(o))
	}
}

// DFS returns the preorder of the spanning tree from Root.
//
// Steps:
//  1. Push root.
//  2. Pop a node, append it, push its children in direction order
//     (up, right, down, left).
//  3. Repeat until the stack is empty.
//
// The last child pushed is visited first, so a node's left child subtree
// precedes its up child subtree.
// Complexity: O(N) time, O(N) memory.
func (g *Graph) DFS() ([]int, error) {
	if !g.spanned {
		return nil, ErrNotSpanned
	}

	n := len(g.nodes)
	order := make([]int, 0, n)
	stack := make([]int, 0, 64)
	stack = append(stack, g.root)

	var buf [4]int
	for len(stack) > 0 {
		top := len(stack) - 1
		v := stack[top]
		stack = stack[:top]
		order = append(order, v)

		k := g.childrenInto(v, &buf)
		stack = append(stack, buf[:k]...)
	}

	return order, nil
}

// SubtreeHeights returns, for every node, the height of the subtree rooted
// there: 0 for a leaf, otherwise 1 + the tallest child.
//
// Heights are filled bottom-up by walking a preorder backwards, so every child
// is final before its parent is read.
// Complexity: O(N) time, O(N) memory.
func (g *Graph) SubtreeHeights() ([]int32, error) {
	pre, err := g.DFS()
	if err != nil {
		return nil, err
	}

	heights := make([]int32, len(g.nodes))
	var buf [4]int
	for i := len(pre) - 1; i >= 0; i-- {
		v := pre[i]
		k := g.childrenInto(v, &buf)
		if k == 0 {
			continue
		}
		var tallest int32
		for _, c := range buf[:k] {
			if heights[c] > tallest {
				tallest = heights[c]
			}
		}
		heights[v] = tallest + 1
	}

	return heights, nil
}

// SDFS is a preorder traversal that descends into the child with the smallest
// subtree height first.
//
// Steps:
//  1. Compute SubtreeHeights.
//  2. Push root.
//  3. Pop a node, append it, sort its children by descending height (ties keep
//     direction order) and push them, leaving the shortest on top.
//
// Complexity: O(N) time (the per-node sort is over at most 4 items),
// O(N) memory for heights, stack and order.
func (g *Graph) SDFS() ([]int, error) {
	heights, err := g.SubtreeHeights()
	if err != nil {
		return nil, err
	}

	n := len(g.nodes)
	order := make([]int, 0, n)
	stack := make([]int, 0, 64)
	stack = append(stack, g.root)

	var buf [4]int
	for len(stack) > 0 {
		top := len(stack) - 1
		v := stack[top]
		stack = stack[:top]
		order = append(order, v)

		k := g.childrenInto(v, &buf)
		sortByHeightDesc(buf[:k], heights)
		stack = append(stack, buf[:k]...)
	}

	return order, nil
}

// sortByHeightDesc is a stable insertion sort; len(kids) <= 4.
func sortByHeightDesc(kids []int, heights []int32) {
	for i := 1; i < len(kids); i++ {
		for j := i; j > 0 && heights[kids[j]] > heights[kids[j-1]]; j-- {
			kids[j], kids[j-1] = kids[j-1], kids[j]
		}
	}
}

// BFS returns the level order of the spanning tree from Root. Children are
// enqueued in direction order, and tree depth is non-decreasing along the
// result.
//
// The order slice doubles as the FIFO queue: a head index walks it while
// children are appended at the tail.
// Complexity: O(N) time, O(N) memory.
func (g *Graph) BFS() ([]int, error) {
	if !g.spanned {
		return nil, ErrNotSpanned
	}

	order := make([]int, 0, len(g.nodes))
	order = append(order, g.root)

	var buf [4]int
	for head := 0; head < len(order); head++ {
		k := g.childrenInto(order[head], &buf)
		order = append(order, buf[:k]...)
	}

	return order, nil
}

// Depths returns the number of tree edges between each node and Root.
// Complexity: O(N) time, O(N) memory.
func (g *Graph) Depths() ([]int32, error) {
	level, err := g.BFS()
	if err != nil {
		return nil, err
	}

	depths := make([]int32, len(g.nodes))
	for _, v := range level[1:] {
		p := v + g.jump[g.nodes[v].parentDir()]
		depths[v] = depths[p] + 1
	}

	return depths, nil
}
